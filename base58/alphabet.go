package base58

// Alphabet is the Bitcoin base58 alphabet.
// 0 O I l are left out because they are easily confused in print.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// zero is the digit standing for one leading zero byte.
const zero = '1'

const invalid = 0xff

// byte → digit value, invalid for everything outside the alphabet
var decodeMap = newDecodeMap()

func newDecodeMap() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}

// Returns the digit value of r and whether r belongs to the alphabet.
func digit(r rune) (byte, bool) {
	if r < 0 || r >= 0x80 {
		return 0, false
	}
	d := decodeMap[r]
	return d, d != invalid
}
