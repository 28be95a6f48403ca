// Package render turns analysis findings into the textual diagnostic
// report: the verdict summary, a box diagram of the 128-bit field layout,
// the decoded field values and the derived representations.
//
// The package consumes uuidprobe.Findings only; it never reaches back into
// parsing or classification.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uuidprobe/uuidprobe"
)

// Semantic colors, shared between light and dark terminals.
var (
	successColor = lipgloss.Color("#8BC34A")
	warningColor = lipgloss.Color("#FFC107")
	dangerColor  = lipgloss.Color("#e53935")
	infoColor    = lipgloss.Color("#2196F3")
	mutedColor   = lipgloss.Color("#6b7280")
)

// Options controls rendering. NoColor strips all styling, for pipes and
// deterministic test output; the box diagram keeps its border characters.
type Options struct {
	NoColor bool
}

type styles struct {
	summary lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(kind uuidprobe.VerdictKind, opts Options) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Align(lipgloss.Center)

	if opts.NoColor {
		plain := lipgloss.NewStyle()
		return styles{summary: plain, heading: plain, label: plain, muted: plain, box: box}
	}

	var verdictColor lipgloss.Color
	switch kind {
	case uuidprobe.VerdictValid, uuidprobe.VerdictNil:
		verdictColor = successColor
	case uuidprobe.VerdictDefinitelyInvalid:
		verdictColor = dangerColor
	case uuidprobe.VerdictMicrosoft:
		verdictColor = infoColor
	default:
		verdictColor = warningColor
	}

	return styles{
		summary: lipgloss.NewStyle().Bold(true).Foreground(verdictColor),
		heading: lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(infoColor),
		muted:   lipgloss.NewStyle().Foreground(mutedColor),
		box:     box.BorderForeground(mutedColor),
	}
}

// Text renders the full diagnostic report.
func Text(f *uuidprobe.Findings, opts Options) string {
	st := newStyles(f.Verdict.Kind, opts)

	var b strings.Builder

	b.WriteString(st.heading.Render("UUID: "+f.Representations.Canonical) + "\n")
	b.WriteString(st.summary.Render(f.Summary) + "\n\n")

	b.WriteString(st.heading.Render("Bit layout") + "\n")
	b.WriteString(Diagram(f, opts) + "\n")

	b.WriteString(st.heading.Render("Fields") + "\n")
	for _, bf := range f.BitFields {
		hexWidth := bf.Width / 4
		b.WriteString(fmt.Sprintf("  %s = %s  %s\n",
			st.label.Render(fmt.Sprintf("%-25s", bf.Name)),
			fmt.Sprintf("0x%0*X", hexWidth, bf.Value),
			st.muted.Render(fmt.Sprintf("(%d bits)", bf.Width))))
	}
	b.WriteString("\n")

	b.WriteString(st.heading.Render("Derived values") + "\n")
	b.WriteString(fmt.Sprintf("  %s = %d\n",
		st.label.Render(fmt.Sprintf("%-25s", "timestamp")), f.Timestamp))
	b.WriteString(fmt.Sprintf("  %s = %d  %s\n",
		st.label.Render(fmt.Sprintf("%-25s", "clock sequence")), f.ClockSequence,
		st.muted.Render("("+f.ClockSeqMeaning+")")))
	b.WriteString(fmt.Sprintf("  %s = %03b  %s\n",
		st.label.Render(fmt.Sprintf("%-25s", "variant bits")), f.VariantBits,
		st.muted.Render("("+f.VariantName+")")))
	b.WriteString(fmt.Sprintf("  %s = %d  %s\n",
		st.label.Render(fmt.Sprintf("%-25s", "version")), f.VersionNibble,
		st.muted.Render("("+f.VersionMeaning+")")))
	b.WriteString(timestampLine(f, st))
	b.WriteString("\n")

	b.WriteString(st.heading.Render("Representations") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render("canonical"), f.Representations.Canonical))
	b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render("braced   "), f.Representations.Braced))
	b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render("integer  "), f.Representations.Integer))
	b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render("OID      "), f.Representations.OID))
	b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render("URN      "), f.Representations.URN))

	return b.String()
}

// timestampLine prints the calendar interpretation of the timestamp bits.
// For non-time-based versions the instant is coincidental, so the wording
// shifts from "equals" to "approximately".
func timestampLine(f *uuidprobe.Findings, st styles) string {
	when := f.Time.Format("2006-01-02 15:04:05.9999999 UTC")
	if f.TimeExact {
		return fmt.Sprintf("  %s equals %s\n",
			st.label.Render(fmt.Sprintf("%-25s", "embedded time")), when)
	}
	return fmt.Sprintf("  %s approximately %s  %s\n",
		st.label.Render(fmt.Sprintf("%-25s", "embedded time")), when,
		st.muted.Render("(coincidental, bits are not a timestamp)"))
}

// Diagram draws the 128-bit layout as a row of boxes, one per logical
// field, labeled with the field name, its value and its width in bits.
func Diagram(f *uuidprobe.Findings, opts Options) string {
	st := newStyles(f.Verdict.Kind, opts)

	boxes := make([]string, 0, len(f.BitFields))
	for _, bf := range f.BitFields {
		hexWidth := bf.Width / 4
		content := fmt.Sprintf("%s\n0x%0*X\n%d bits", bf.Name, hexWidth, bf.Value, bf.Width)
		boxes = append(boxes, st.box.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Formats renders the representation list alone, for the formats command.
func Formats(f *uuidprobe.Findings, names []string, opts Options) string {
	st := newStyles(f.Verdict.Kind, opts)

	all := []struct {
		name  string
		value string
	}{
		{"canonical", f.Representations.Canonical},
		{"braced", f.Representations.Braced},
		{"int", f.Representations.Integer},
		{"oid", f.Representations.OID},
		{"urn", f.Representations.URN},
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(n)] = true
	}

	var b strings.Builder
	for _, r := range all {
		if len(names) > 0 && !want[r.name] {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", st.label.Render(fmt.Sprintf("%-9s", r.name)), r.value))
	}
	return b.String()
}
