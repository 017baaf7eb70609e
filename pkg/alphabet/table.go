package alphabet

// Table is the Vigenère square: row = key letter, column = plaintext
// letter, cell = ciphertext letter. Each row is a permutation of the
// alphabet.
type Table struct {
	cells [Size][Size]byte
}

// NewTable builds the substitution table once. It is read-only afterwards
// and safe to share.
func NewTable() *Table {
	t := &Table{}
	for k := 0; k < Size; k++ {
		for p := 0; p < Size; p++ {
			t.cells[k][p] = Letter(p + k)
		}
	}
	return t
}

// Encipher returns the ciphertext letter for plaintext index p under key
// index k. Both indexes must be in 0..Size-1.
func (t *Table) Encipher(p, k int) byte {
	return t.cells[k][p]
}

// Decipher returns the plaintext letter for ciphertext index c under key
// index k. The inverse is computed arithmetically instead of from a
// second table.
func (t *Table) Decipher(c, k int) byte {
	return Letter(c - k)
}
