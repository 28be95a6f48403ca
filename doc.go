// Package uuidprobe performs forensic structural analysis of UUID strings
// as laid out by RFC 4122.
//
// Given the canonical 36-character textual form, the package decodes the six
// RFC-defined fields, derives the embedded 60-bit timestamp and 14-bit clock
// sequence, classifies variant and version by bit pattern, and runs a chain
// of plausibility heuristics (nil UUID, Microsoft well-known GUID, reasonable
// timestamp window, undefined version or variant) to reach a single verdict.
//
// Basic Usage:
//
//	findings, err := uuidprobe.Analyze("f47ac10b-58cc-4372-a567-0e02b2c3d479", time.Now)
//	if err != nil {
//	    log.Fatal(err) // malformed input
//	}
//	fmt.Println(findings.Summary)
//
// A structurally valid but implausible UUID is not an error: implausibility
// is reported through the verdict, never through the error return.
//
// Determinism:
//
// The only clock read (the reasonable-time upper bound for version-1 UUIDs)
// goes through the injected Clock, so analyses are reproducible in tests.
// Everything else is a pure function of the input text; ParsedUUID is an
// immutable value and analyses may run concurrently without synchronization.
package uuidprobe
