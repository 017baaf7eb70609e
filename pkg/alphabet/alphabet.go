// Package alphabet defines the 26-letter alphabet the cipher works over,
// the Vigenère substitution table and text normalization.
package alphabet

const (
	// Size is the number of letters in the alphabet.
	Size = 26

	// Uppercase lists the alphabet in index order.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Index returns the position of an upper-case letter in the alphabet.
// ok is false for anything outside 'A'..'Z'.
func Index(c byte) (idx int, ok bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int(c - 'A'), true
}

// Letter returns the letter at position i, reduced modulo Size.
func Letter(i int) byte {
	return 'A' + byte(Mod(i))
}

// Mod reduces i into 0..Size-1, also for negative i.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}
