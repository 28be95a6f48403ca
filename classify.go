package uuidprobe

import "time"

// VariantKind classifies the top 3 bits of clock_seq_hi_and_reserved.
// The four kinds are mutually exclusive and cover every 3-bit pattern.
type VariantKind byte

const (
	VariantNCS VariantKind = iota
	VariantRFC4122
	VariantMicrosoft
	VariantReserved
)

// String returns a short human-readable name for the variant.
func (v VariantKind) String() string {
	switch v {
	case VariantNCS:
		return "NCS (reserved for backward compatibility)"
	case VariantRFC4122:
		return "RFC 4122"
	case VariantMicrosoft:
		return "Microsoft (reserved, legacy GUID)"
	default:
		return "reserved for future definition"
	}
}

// Variant returns the variant kind of the UUID, tested high-bit-first:
// 0xx NCS, 10x RFC 4122, 110 Microsoft, 111 reserved.
func (u ParsedUUID) Variant() VariantKind {
	switch {
	case (u.ClockSeqHiAndReserved & 0x80) == 0x00:
		return VariantNCS
	case (u.ClockSeqHiAndReserved & 0xC0) == 0x80:
		return VariantRFC4122
	case (u.ClockSeqHiAndReserved & 0xE0) == 0xC0:
		return VariantMicrosoft
	default:
		return VariantReserved
	}
}

// VersionKind is the 4-bit version field. Only 1 through 5 have defined
// meaning; every other nibble value maps to VersionUndefined. The version
// is meaningful only under the RFC 4122 variant.
type VersionKind byte

const (
	VersionUndefined VersionKind = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// VersionOf maps a raw version nibble to its kind.
func VersionOf(nibble uint8) VersionKind {
	if nibble >= 1 && nibble <= 5 {
		return VersionKind(nibble)
	}
	return VersionUndefined
}

// Version returns the version kind of the UUID.
func (u ParsedUUID) Version() VersionKind {
	return VersionOf(u.VersionNibble())
}

// Description returns the fixed descriptive label for the version.
func (v VersionKind) Description() string {
	switch v {
	case VersionTimeBased:
		return "time-based"
	case VersionDCESecurity:
		return "DCE Security with embedded POSIX UIDs"
	case VersionNameBasedMD5:
		return "name-based (MD5)"
	case VersionRandom:
		return "randomly generated"
	case VersionNameBasedSHA1:
		return "name-based (SHA-1)"
	default:
		return "undefined"
	}
}

// ClockSequenceMeaning describes what the clock-sequence bits hold under a
// given version. Descriptive metadata only; it never affects the verdict.
func ClockSequenceMeaning(v VersionKind) string {
	switch v {
	case VersionTimeBased:
		return "clock sequence value"
	case VersionNameBasedMD5:
		return "MD5 hash bits 66-95"
	case VersionRandom:
		return "random bits"
	case VersionNameBasedSHA1:
		return "SHA-1 hash bits 66-95"
	default:
		return "???"
	}
}

// VerdictKind enumerates the possible classification outcomes.
type VerdictKind byte

const (
	// VerdictUnrecognized: the bit pattern does not look like an RFC 4122
	// UUID, or conformance cannot be determined from the bits alone.
	VerdictUnrecognized VerdictKind = iota
	// VerdictDefinitelyInvalid: RFC-shaped but internally inconsistent.
	VerdictDefinitelyInvalid
	// VerdictNil: the all-zero UUID defined by RFC 4122 as "nil".
	VerdictNil
	// VerdictMicrosoft: matches a well-known Microsoft GUID.
	VerdictMicrosoft
	// VerdictValid: plausibly generated according to RFC 4122 or DCE.
	VerdictValid
)

// Verdict is the tagged classification outcome. Version is set only when
// Kind is VerdictValid. Exactly one outcome holds per analysis; a UUID is
// never partially valid.
type Verdict struct {
	Kind    VerdictKind
	Version VersionKind
}

// Summary returns the one-line summary sentence for the verdict. The exact
// wording is part of the external contract and must not drift.
func (v Verdict) Summary() string {
	switch v.Kind {
	case VerdictNil:
		return `This UUID is specifically defined by RFC 4122 as the "nil" UUID.`
	case VerdictMicrosoft:
		return "This seems like a UUID from Microsoft."
	case VerdictDefinitelyInvalid:
		return "This is DEFINITELY NOT a UUID generated according to RFC 4122."
	case VerdictValid:
		switch v.Version {
		case VersionTimeBased:
			return "This seems like a UUID generated according to RFC 4122 or DCE."
		case VersionDCESecurity:
			return "This seems like a UUID generated according to DCE Security."
		default:
			return "This seems like a UUID generated according to RFC 4122."
		}
	default:
		return "This doesn't seem like a UUID generated according to RFC 4122."
	}
}

// String returns a short machine-friendly word for the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case VerdictDefinitelyInvalid:
		return "definitely-invalid"
	case VerdictNil:
		return "nil"
	case VerdictMicrosoft:
		return "microsoft"
	case VerdictValid:
		return "valid"
	default:
		return "unrecognized"
	}
}

// microsoftIUnknownNode is the node value of the well-known Microsoft
// IUnknown GUID (00000000-0000-0000-c000-000000000046).
const microsoftIUnknownNode = 0x46

// A rule inspects the UUID and either produces a verdict or passes. Rules
// are evaluated in order and the first match wins, which keeps the
// precedence of the heuristic chain auditable and testable per rule.
type rule func(u ParsedUUID, now time.Time) (Verdict, bool)

var classifyRules = []rule{
	ruleNilUUID,
	ruleMicrosoftVariant,
	ruleUndefinedVersion,
	ruleTimeBased,
	ruleDefinedVersion,
	ruleForeignVariant,
}

// Classify runs the ordered plausibility rules and returns the verdict.
// The clock is consulted only by the version-1 reasonable-time rule.
func Classify(u ParsedUUID, clock Clock) Verdict {
	now := clock()
	for _, r := range classifyRules {
		if v, ok := r(u, now); ok {
			return v
		}
	}
	// Unreachable: the rule list is exhaustive over variants.
	return Verdict{Kind: VerdictUnrecognized}
}

func ruleNilUUID(u ParsedUUID, _ time.Time) (Verdict, bool) {
	if u.IsNil() {
		return Verdict{Kind: VerdictNil}, true
	}
	return Verdict{}, false
}

// ruleMicrosoftVariant settles every Microsoft-variant UUID. A well-known
// value is proven by zero clock sequence, zero timestamp and the IUnknown
// node; anything else under this variant is inconclusive, neither proven
// valid nor proven invalid, and reports as unrecognized.
func ruleMicrosoftVariant(u ParsedUUID, _ time.Time) (Verdict, bool) {
	if u.Variant() != VariantMicrosoft {
		return Verdict{}, false
	}
	if u.ClockSequence() == 0 && u.Timestamp() == 0 && u.Node == microsoftIUnknownNode {
		return Verdict{Kind: VerdictMicrosoft}, true
	}
	return Verdict{Kind: VerdictUnrecognized}, true
}

func ruleUndefinedVersion(u ParsedUUID, _ time.Time) (Verdict, bool) {
	if u.Variant() == VariantRFC4122 && u.Version() == VersionUndefined {
		return Verdict{Kind: VerdictDefinitelyInvalid}, true
	}
	return Verdict{}, false
}

// ruleTimeBased gates version-1 UUIDs on the embedded timestamp falling in
// the reasonable window.
func ruleTimeBased(u ParsedUUID, now time.Time) (Verdict, bool) {
	if u.Variant() != VariantRFC4122 || u.Version() != VersionTimeBased {
		return Verdict{}, false
	}
	if ReasonableTime(u.Time(), now) {
		return Verdict{Kind: VerdictValid, Version: VersionTimeBased}, true
	}
	return Verdict{Kind: VerdictDefinitelyInvalid}, true
}

func ruleDefinedVersion(u ParsedUUID, _ time.Time) (Verdict, bool) {
	if u.Variant() == VariantRFC4122 {
		return Verdict{Kind: VerdictValid, Version: u.Version()}, true
	}
	return Verdict{}, false
}

// ruleForeignVariant covers NCS and reserved variants, whose conformance
// cannot be determined from the bit pattern alone.
func ruleForeignVariant(u ParsedUUID, _ time.Time) (Verdict, bool) {
	switch u.Variant() {
	case VariantNCS, VariantReserved:
		return Verdict{Kind: VerdictUnrecognized}, true
	}
	return Verdict{}, false
}
