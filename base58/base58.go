// Package base58 converts between raw bytes and base58 text.
//
// The number is the big-endian value of the input bytes written in radix 58
// with the characters of Alphabet. Leading zero bytes would vanish in that
// number, so each one is written as a single '1' and vice versa.
//
// Both directions do schoolbook arithmetic over the whole buffer and are
// O(n²) in the input length. That is fine for identifiers and small files,
// not for gigabytes.
package base58

import "strings"

// Encode returns the base58 text for src. It never fails; an empty src gives
// an empty string. src is not modified.
func Encode(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// magnitude without the leading zeros, divided in place
	num := make([]byte, len(src)-zeros)
	copy(num, src[zeros:])

	// log(256) / log(58) ≈ 1.37
	digits := make([]byte, 0, len(num)*138/100+1)
	for start := 0; start < len(num); {
		var rem uint32
		for i := start; i < len(num); i++ {
			acc := rem<<8 | uint32(num[i])
			num[i] = byte(acc / 58)
			rem = acc % 58
		}
		digits = append(digits, Alphabet[rem])
		for start < len(num) && num[start] == 0 {
			start++
		}
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteByte(zero)
	}
	// digits come out least significant first
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// Decode returns the bytes encoded in s. Any character outside Alphabet,
// whitespace included, fails with an *InvalidCharacterError and no data.
// The error's Position counts characters (runes), not bytes.
// s is taken as is; trimming is up to the caller. An empty s decodes to an
// empty slice.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == zero {
		zeros++
	}

	// little-endian accumulator; the top byte is never zero
	acc := make([]byte, 0, (len(s)-zeros)*733/1000+1)
	pos := 0
	for _, r := range s {
		d, ok := digit(r)
		if !ok {
			return nil, &InvalidCharacterError{Position: pos, Char: r}
		}
		pos++
		carry := uint32(d)
		for i := range acc {
			carry += uint32(acc[i]) * 58
			acc[i] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(acc))
	for i, b := range acc {
		out[len(out)-1-i] = b
	}
	return out, nil
}
