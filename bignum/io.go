package bignum

import (
	"strconv"
	"strings"

	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/codec"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
)

// ParseU parses a non-empty decimal digit string (no sign) into a
// magnitude, bucketing 8-digit groups from the least-significant end via
// the digit codec. Leading zeros are permitted ("00042" == 42). It fails
// with a bnerr.KindMalformedText PreconditionViolation on an empty string
// or a stray non-digit byte, when config.Validate is true.
func ParseU(s string) (U, error) {
	if config.Validate {
		if len(s) == 0 {
			return U{}, bnerr.New("bignum.ParseU", bnerr.KindMalformedText, "input is empty")
		}
		for i := 0; i < len(s); i++ {
			if !codec.IsDigit(s[i]) {
				return U{}, bnerr.New("bignum.ParseU", bnerr.KindMalformedText,
					"byte %d (%q) is not an ASCII digit", i, s[i])
			}
		}
	}
	buf := parseDigits(s)
	return U{buf: buf}, nil
}

// parseDigits decodes a validated all-digit string into base-B limbs,
// least-significant group (the end of the string) first, two ASCII digits
// per codec lookup.
// Grounded on UnsignedInteger::construct.
func parseDigits(s string) limb.Buffer {
	n := len(s)
	limbCount := (n + 7) / 8
	if limbCount == 0 {
		limbCount = 1
	}
	buf := limb.New(limbCount)
	pos := n
	for i := 0; i < limbCount; i++ {
		start := pos - 8
		if start < 0 {
			start = 0
		}
		buf.SetLimb(i, decodeGroup(s[start:pos]))
		pos = start
	}
	buf.Canonicalize()
	return buf
}

// decodeGroup decodes a run of 1 to 8 ASCII digits (most-significant
// first) into its integer value, two digits at a time via
// codec.DecodePair, with a single leading byte handled directly when the
// run has odd length.
func decodeGroup(s string) uint32 {
	i := 0
	var v uint32
	if len(s)%2 == 1 {
		v = uint32(s[0] - '0')
		i = 1
	}
	for ; i < len(s); i += 2 {
		v = v*100 + codec.DecodePair(s[i], s[i+1])
	}
	return v
}

// String renders u in decimal: the top limb without leading zeros,
// followed by every remaining limb zero-padded to 8 digits via two
// 4-digit codec.EncodeGroup stores. Grounded on spec.md §4.9's emit
// algorithm.
func (u U) String() string {
	if u.IsZero() {
		return "0"
	}
	var sb strings.Builder
	top := u.buf.Len() - 1
	sb.WriteString(strconv.FormatUint(uint64(u.buf.Limb(top)), 10))
	var group [8]byte
	for i := top - 1; i >= 0; i-- {
		v := u.buf.Limb(i)
		codec.EncodeGroup(group[0:4], v/10000)
		codec.EncodeGroup(group[4:8], v%10000)
		sb.Write(group[:])
	}
	return sb.String()
}
