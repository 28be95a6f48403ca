package uuidprobe

import (
	"testing"
	"time"
)

// fixedClock pins "now" so verdicts near the reasonable-time boundary stay
// reproducible.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

var analysisInstant = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// timeBasedUUID builds a version-1, RFC 4122-variant UUID whose timestamp
// encodes the given instant.
func timeBasedUUID(t time.Time) ParsedUUID {
	ticks := uint64(t.Unix()-gregorianEpoch.Unix()) * ticksPerSecond
	return ParsedUUID{
		TimeLow:               uint32(ticks),
		TimeMid:               uint16(ticks >> 32),
		TimeHiAndVersion:      uint16(ticks>>48)&0x0FFF | 0x1000,
		ClockSeqHiAndReserved: 0x80,
		ClockSeqLow:           0x01,
		Node:                  0x0e02b2c3d479,
	}
}

func TestVariant(t *testing.T) {
	tests := []struct {
		name        string
		clockSeqHi  uint8
		wantVariant VariantKind
	}{
		{name: "0xx is NCS", clockSeqHi: 0x00, wantVariant: VariantNCS},
		{name: "0xx high pattern is NCS", clockSeqHi: 0x7F, wantVariant: VariantNCS},
		{name: "10x is RFC 4122", clockSeqHi: 0x80, wantVariant: VariantRFC4122},
		{name: "10x high pattern is RFC 4122", clockSeqHi: 0xBF, wantVariant: VariantRFC4122},
		{name: "110 is Microsoft", clockSeqHi: 0xC0, wantVariant: VariantMicrosoft},
		{name: "110 high pattern is Microsoft", clockSeqHi: 0xDF, wantVariant: VariantMicrosoft},
		{name: "111 is reserved", clockSeqHi: 0xE0, wantVariant: VariantReserved},
		{name: "111 high pattern is reserved", clockSeqHi: 0xFF, wantVariant: VariantReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := ParsedUUID{ClockSeqHiAndReserved: tt.clockSeqHi}
			if got := u.Variant(); got != tt.wantVariant {
				t.Errorf("Variant() = %v, want %v", got, tt.wantVariant)
			}
		})
	}
}

func TestVersionOf(t *testing.T) {
	for nibble := uint8(0); nibble <= 15; nibble++ {
		got := VersionOf(nibble)
		if nibble >= 1 && nibble <= 5 {
			if got != VersionKind(nibble) {
				t.Errorf("VersionOf(%d) = %v, want %d", nibble, got, nibble)
			}
		} else if got != VersionUndefined {
			t.Errorf("VersionOf(%d) = %v, want VersionUndefined", nibble, got)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    VerdictKind
		wantVersion VersionKind
	}{
		{
			name:     "nil UUID",
			input:    "00000000-0000-0000-0000-000000000000",
			wantKind: VerdictNil,
		},
		{
			name:     "Microsoft IUnknown GUID",
			input:    "00000000-0000-0000-c000-000000000046",
			wantKind: VerdictMicrosoft,
		},
		{
			name:     "same bits under RFC variant are not Microsoft",
			input:    "00000000-0000-0000-8000-000000000046",
			wantKind: VerdictDefinitelyInvalid,
		},
		{
			name:     "Microsoft variant with other bits is inconclusive",
			input:    "f47ac10b-58cc-4372-c567-0e02b2c3d479",
			wantKind: VerdictUnrecognized,
		},
		{
			name:     "undefined version nibble 9 under RFC variant",
			input:    "f47ac10b-58cc-9372-a567-0e02b2c3d479",
			wantKind: VerdictDefinitelyInvalid,
		},
		{
			name:     "undefined version nibble 0 under RFC variant",
			input:    "f47ac10b-58cc-0372-a567-0e02b2c3d479",
			wantKind: VerdictDefinitelyInvalid,
		},
		{
			name:        "version 2 DCE Security",
			input:       "f47ac10b-58cc-2372-a567-0e02b2c3d479",
			wantKind:    VerdictValid,
			wantVersion: VersionDCESecurity,
		},
		{
			name:        "version 3 name-based MD5",
			input:       "f47ac10b-58cc-3372-a567-0e02b2c3d479",
			wantKind:    VerdictValid,
			wantVersion: VersionNameBasedMD5,
		},
		{
			name:        "version 4 random",
			input:       "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantKind:    VerdictValid,
			wantVersion: VersionRandom,
		},
		{
			name:        "version 5 name-based SHA-1",
			input:       "f47ac10b-58cc-5372-a567-0e02b2c3d479",
			wantKind:    VerdictValid,
			wantVersion: VersionNameBasedSHA1,
		},
		{
			name:     "NCS variant is unrecognized",
			input:    "f47ac10b-58cc-4372-2567-0e02b2c3d479",
			wantKind: VerdictUnrecognized,
		},
		{
			name:     "reserved variant is unrecognized",
			input:    "f47ac10b-58cc-4372-e567-0e02b2c3d479",
			wantKind: VerdictUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := MustParse(tt.input)
			got := Classify(u, fixedClock(analysisInstant))
			if got.Kind != tt.wantKind {
				t.Errorf("Classify() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Version != tt.wantVersion {
				t.Errorf("Classify() version = %v, want %v", got.Version, tt.wantVersion)
			}
		})
	}
}

func TestClassify_TimeBased(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		wantKind VerdictKind
	}{
		{
			name:     "year 2000 timestamp is valid",
			instant:  time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantKind: VerdictValid,
		},
		{
			name:     "year 1970 timestamp is definitely invalid",
			instant:  time.Date(1970, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantKind: VerdictDefinitelyInvalid,
		},
		{
			name:     "30 minutes ahead is within the skew allowance",
			instant:  analysisInstant.Add(30 * time.Minute),
			wantKind: VerdictValid,
		},
		{
			name:     "two hours ahead is definitely invalid",
			instant:  analysisInstant.Add(2 * time.Hour),
			wantKind: VerdictDefinitelyInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := timeBasedUUID(tt.instant)
			got := Classify(u, fixedClock(analysisInstant))
			if got.Kind != tt.wantKind {
				t.Errorf("Classify() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if tt.wantKind == VerdictValid && got.Version != VersionTimeBased {
				t.Errorf("Classify() version = %v, want VersionTimeBased", got.Version)
			}
		})
	}
}

func TestClassify_MicrosoftWellKnownRequiresAllZero(t *testing.T) {
	// Node matches IUnknown but the clock sequence is nonzero: inconclusive.
	u := MustParse("00000000-0000-0000-c001-000000000046")
	got := Classify(u, fixedClock(analysisInstant))
	if got.Kind != VerdictUnrecognized {
		t.Errorf("Classify() kind = %v, want VerdictUnrecognized", got.Kind)
	}
}

func TestVerdict_Summary(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    string
	}{
		{
			name:    "unrecognized",
			verdict: Verdict{Kind: VerdictUnrecognized},
			want:    "This doesn't seem like a UUID generated according to RFC 4122.",
		},
		{
			name:    "definitely invalid",
			verdict: Verdict{Kind: VerdictDefinitelyInvalid},
			want:    "This is DEFINITELY NOT a UUID generated according to RFC 4122.",
		},
		{
			name:    "nil",
			verdict: Verdict{Kind: VerdictNil},
			want:    `This UUID is specifically defined by RFC 4122 as the "nil" UUID.`,
		},
		{
			name:    "microsoft",
			verdict: Verdict{Kind: VerdictMicrosoft},
			want:    "This seems like a UUID from Microsoft.",
		},
		{
			name:    "valid version 1",
			verdict: Verdict{Kind: VerdictValid, Version: VersionTimeBased},
			want:    "This seems like a UUID generated according to RFC 4122 or DCE.",
		},
		{
			name:    "valid version 2",
			verdict: Verdict{Kind: VerdictValid, Version: VersionDCESecurity},
			want:    "This seems like a UUID generated according to DCE Security.",
		},
		{
			name:    "valid version 3",
			verdict: Verdict{Kind: VerdictValid, Version: VersionNameBasedMD5},
			want:    "This seems like a UUID generated according to RFC 4122.",
		},
		{
			name:    "valid version 4",
			verdict: Verdict{Kind: VerdictValid, Version: VersionRandom},
			want:    "This seems like a UUID generated according to RFC 4122.",
		},
		{
			name:    "valid version 5",
			verdict: Verdict{Kind: VerdictValid, Version: VersionNameBasedSHA1},
			want:    "This seems like a UUID generated according to RFC 4122.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClockSequenceMeaning(t *testing.T) {
	tests := []struct {
		version VersionKind
		want    string
	}{
		{VersionTimeBased, "clock sequence value"},
		{VersionDCESecurity, "???"},
		{VersionNameBasedMD5, "MD5 hash bits 66-95"},
		{VersionRandom, "random bits"},
		{VersionNameBasedSHA1, "SHA-1 hash bits 66-95"},
		{VersionUndefined, "???"},
	}

	for _, tt := range tests {
		if got := ClockSequenceMeaning(tt.version); got != tt.want {
			t.Errorf("ClockSequenceMeaning(%v) = %q, want %q", tt.version, got, tt.want)
		}
	}
}
