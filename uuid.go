package uuidprobe

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ParsedUUID holds the six fields of a UUID exactly as laid out by RFC 4122.
// It is an immutable value object: construct it with Parse and derive
// everything else (timestamp, clock sequence, variant, version) through the
// pure accessor methods.
//
// Note that the third hyphen-delimited hex group of the textual form is
// stored as two single-byte fields, ClockSeqHiAndReserved and ClockSeqLow,
// not as one 16-bit field.
type ParsedUUID struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  uint64 // low 48 bits used
}

// canonicalPattern matches the 36-character canonical textual form:
// 8-4-4-4-12 hexadecimal groups separated by hyphens, case-insensitive.
var canonicalPattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{2}[0-9a-f]{2}-[0-9a-f]{12}$`)

// Parse decodes a UUID from its canonical string representation
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, case-insensitive).
//
// Only the canonical form is accepted as analysis input; braced, URN and
// bare-hex forms are produced as output representations but never consumed.
// On any mismatch Parse returns ErrMalformedInput and the zero value: there
// is no partial decode.
func Parse(s string) (ParsedUUID, error) {
	var u ParsedUUID

	if !canonicalPattern.MatchString(s) {
		return u, ErrMalformedInput
	}

	timeLow, err := strconv.ParseUint(s[0:8], 16, 32)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}
	timeMid, err := strconv.ParseUint(s[9:13], 16, 16)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}
	timeHi, err := strconv.ParseUint(s[14:18], 16, 16)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}
	// The fourth group splits into the two clock-sequence bytes.
	clockSeqHi, err := strconv.ParseUint(s[19:21], 16, 8)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}
	clockSeqLow, err := strconv.ParseUint(s[21:23], 16, 8)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}
	node, err := strconv.ParseUint(s[24:36], 16, 48)
	if err != nil {
		return ParsedUUID{}, ErrMalformedInput
	}

	u.TimeLow = uint32(timeLow)
	u.TimeMid = uint16(timeMid)
	u.TimeHiAndVersion = uint16(timeHi)
	u.ClockSeqHiAndReserved = uint8(clockSeqHi)
	u.ClockSeqLow = uint8(clockSeqLow)
	u.Node = node
	return u, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) ParsedUUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidprobe: Parse(%q): %v", s, err))
	}
	return u
}

// Timestamp returns the 60-bit timestamp value: the low 12 bits of
// TimeHiAndVersion, then TimeMid, then TimeLow. The version nibble is
// excluded. For non-time-based versions the bits carry no time meaning.
func (u ParsedUUID) Timestamp() uint64 {
	return uint64(u.TimeHiAndVersion&0x0FFF)<<48 |
		uint64(u.TimeMid)<<32 |
		uint64(u.TimeLow)
}

// ClockSequence returns the 14-bit clock sequence: the low 6 bits of
// ClockSeqHiAndReserved followed by ClockSeqLow. The top 2 bits of the high
// byte belong to the variant discriminator and do not participate.
func (u ParsedUUID) ClockSequence() uint16 {
	return uint16(u.ClockSeqHiAndReserved&0x3F)<<8 | uint16(u.ClockSeqLow)
}

// VariantBits returns the top 3 bits of ClockSeqHiAndReserved.
func (u ParsedUUID) VariantBits() uint8 {
	return u.ClockSeqHiAndReserved >> 5
}

// VersionNibble returns the top 4 bits of TimeHiAndVersion.
func (u ParsedUUID) VersionNibble() uint8 {
	return uint8(u.TimeHiAndVersion >> 12)
}

// IsNil returns true if all six fields are zero (the RFC 4122 nil UUID).
func (u ParsedUUID) IsNil() bool {
	return u == ParsedUUID{}
}

// Equal returns true if u and other represent the same UUID.
func (u ParsedUUID) Equal(other ParsedUUID) bool {
	return u == other
}

// Bytes returns the 16-byte big-endian encoding of the UUID.
func (u ParsedUUID) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint32(b[0:4], u.TimeLow)
	binary.BigEndian.PutUint16(b[4:6], u.TimeMid)
	binary.BigEndian.PutUint16(b[6:8], u.TimeHiAndVersion)
	b[8] = u.ClockSeqHiAndReserved
	b[9] = u.ClockSeqLow
	b[10] = byte(u.Node >> 40)
	b[11] = byte(u.Node >> 32)
	b[12] = byte(u.Node >> 24)
	b[13] = byte(u.Node >> 16)
	b[14] = byte(u.Node >> 8)
	b[15] = byte(u.Node)
	return b
}

// String returns the canonical lowercase string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u ParsedUUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%012x",
		u.TimeLow, u.TimeMid, u.TimeHiAndVersion,
		u.ClockSeqHiAndReserved, u.ClockSeqLow, u.Node)
}

// Braced returns the uppercase registry-style representation:
// {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}
func (u ParsedUUID) Braced() string {
	return "{" + strings.ToUpper(u.String()) + "}"
}

// URN returns the URN representation: urn:uuid:<canonical form>.
func (u ParsedUUID) URN() string {
	return "urn:uuid:" + u.String()
}

// Int returns the UUID as a 128-bit integer, the big-endian concatenation
// of all six fields.
func (u ParsedUUID) Int() *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

// OID returns the ISO object identifier form: 2.25.<decimal 128-bit value>.
func (u ParsedUUID) OID() string {
	return "2.25." + u.Int().String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u ParsedUUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *ParsedUUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface so analyses read back from the
// history ledger decode into ParsedUUID.
func (u *ParsedUUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuidprobe: cannot scan type %T into ParsedUUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
func (u ParsedUUID) Value() (driver.Value, error) {
	return u.String(), nil
}
