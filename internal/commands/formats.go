package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/uuidprobe/uuidprobe"
	"github.com/uuidprobe/uuidprobe/render"
)

var formatsOnly []string

var formatsCmd = &cobra.Command{
	Use:   "formats <uuid>",
	Short: "Print the derived textual representations",
	Long: `Print the representations derivable from a UUID: the canonical lowercase
form, the braced uppercase form, the 128-bit integer value, the OID form
(2.25.<decimal>) and the URN form.

The set defaults to all five, or to the "formats" list in the preferences
file; --only narrows it for a single invocation.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormats,
}

func init() {
	formatsCmd.Flags().StringSliceVar(&formatsOnly, "only", nil, "Representations to print (canonical, braced, int, oid, urn)")
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	findings, err := uuidprobe.Analyze(args[0], time.Now)
	if err != nil {
		return err
	}

	names := formatsOnly
	if len(names) == 0 {
		names = cfg.Formats
	}

	cmd.Print(render.Formats(findings, names, render.Options{NoColor: cfg.NoColor}))
	return nil
}
