// Package cipher implements Vigenère encryption and decryption over the
// normalized 26-letter alphabet.
package cipher

import (
	"fmt"

	"github.com/Glqzer/vigenere/pkg/alphabet"
)

// Cipher encrypts and decrypts with a shared, read-only substitution table.
type Cipher struct {
	table *alphabet.Table
}

// New returns a Cipher over table. A nil table builds a fresh one.
func New(table *alphabet.Table) *Cipher {
	if table == nil {
		table = alphabet.NewTable()
	}
	return &Cipher{table: table}
}

// Encrypt normalizes message and enciphers it under key.
// The result has the length of the normalized message.
func (c *Cipher) Encrypt(message, key string) (string, error) {
	text := alphabet.Normalize(message)
	stream, err := Keystream(key, len(text))
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		p, _ := alphabet.Index(text[i])
		out[i] = c.table.Encipher(p, stream[i])
	}
	return string(out), nil
}

// Decrypt normalizes ciphertext and deciphers it under key.
func (c *Cipher) Decrypt(ciphertext, key string) (string, error) {
	text := alphabet.Normalize(ciphertext)
	stream, err := Keystream(key, len(text))
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		ci, _ := alphabet.Index(text[i])
		out[i] = c.table.Decipher(ci, stream[i])
	}
	return string(out), nil
}
