package uuidprobe

import "time"

// BitField describes one logical field of the 128-bit layout for diagram
// rendering: which bits it occupies (by width, most significant first) and
// the value encoded in them.
type BitField struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
	Value uint64 `json:"value"`
}

// Representations carries every textual form derivable from a ParsedUUID.
type Representations struct {
	Canonical string `json:"canonical"`
	Braced    string `json:"braced"`
	Integer   string `json:"integer"`
	OID       string `json:"oid"`
	URN       string `json:"urn"`
}

// Findings is the structured analysis record handed to renderers. It
// contains everything a report needs; renderers never reach back into the
// parsing or classification machinery.
type Findings struct {
	Input string     `json:"input"`
	UUID  ParsedUUID `json:"-"`

	// Raw fields, in layout order.
	TimeLow               uint32 `json:"time_low"`
	TimeMid               uint16 `json:"time_mid"`
	TimeHiAndVersion      uint16 `json:"time_hi_and_version"`
	ClockSeqHiAndReserved uint8  `json:"clock_seq_hi_and_reserved"`
	ClockSeqLow           uint8  `json:"clock_seq_low"`
	Node                  uint64 `json:"node"`

	// Derived values.
	Timestamp     uint64 `json:"timestamp"`
	ClockSequence uint16 `json:"clock_sequence"`
	VariantBits   uint8  `json:"variant_bits"`
	VersionNibble uint8  `json:"version_nibble"`

	Variant VariantKind `json:"-"`
	Version VersionKind `json:"-"`
	Verdict Verdict     `json:"-"`

	VariantName string `json:"variant"`
	VerdictName string `json:"verdict"`
	Summary     string `json:"summary"`

	// Calendar interpretation of the timestamp. TimeExact is true only for
	// version-1 UUIDs under the RFC 4122 variant; otherwise the instant is
	// coincidental and renderers say "approximately".
	Time      time.Time `json:"time"`
	TimeExact bool      `json:"time_exact"`

	VersionMeaning  string `json:"version_meaning"`
	ClockSeqMeaning string `json:"clock_seq_meaning"`

	BitFields       []BitField      `json:"bit_fields"`
	Representations Representations `json:"representations"`
}

// Analyze is the single entry point of the engine: it parses the input,
// classifies it and assembles the findings. The only possible error is
// ErrMalformedInput; every structurally valid UUID yields findings, however
// implausible its bits.
func Analyze(input string, clock Clock) (*Findings, error) {
	u, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Assemble(input, u, clock), nil
}

// Assemble builds the findings record for an already-parsed UUID.
func Assemble(input string, u ParsedUUID, clock Clock) *Findings {
	verdict := Classify(u, clock)
	version := u.Version()
	variant := u.Variant()

	return &Findings{
		Input: input,
		UUID:  u,

		TimeLow:               u.TimeLow,
		TimeMid:               u.TimeMid,
		TimeHiAndVersion:      u.TimeHiAndVersion,
		ClockSeqHiAndReserved: u.ClockSeqHiAndReserved,
		ClockSeqLow:           u.ClockSeqLow,
		Node:                  u.Node,

		Timestamp:     u.Timestamp(),
		ClockSequence: u.ClockSequence(),
		VariantBits:   u.VariantBits(),
		VersionNibble: u.VersionNibble(),

		Variant: variant,
		Version: version,
		Verdict: verdict,

		VariantName: variant.String(),
		VerdictName: verdict.Kind.String(),
		Summary:     verdict.Summary(),

		Time:      u.Time(),
		TimeExact: variant == VariantRFC4122 && version == VersionTimeBased,

		VersionMeaning:  version.Description(),
		ClockSeqMeaning: ClockSequenceMeaning(version),

		BitFields: []BitField{
			{Name: "time_low", Width: 32, Value: uint64(u.TimeLow)},
			{Name: "time_mid", Width: 16, Value: uint64(u.TimeMid)},
			{Name: "time_hi_and_version", Width: 16, Value: uint64(u.TimeHiAndVersion)},
			{Name: "clock_seq_hi_and_reserved", Width: 8, Value: uint64(u.ClockSeqHiAndReserved)},
			{Name: "clock_seq_low", Width: 8, Value: uint64(u.ClockSeqLow)},
			{Name: "node", Width: 48, Value: u.Node},
		},

		Representations: Representations{
			Canonical: u.String(),
			Braced:    u.Braced(),
			Integer:   u.Int().String(),
			OID:       u.OID(),
			URN:       u.URN(),
		},
	}
}
