package cipher

import (
	"errors"

	"github.com/Glqzer/vigenere/pkg/alphabet"
)

// ErrInvalidKey is returned when a key has no alphabetic characters.
var ErrInvalidKey = errors.New("key must contain at least one letter")

// Keystream normalizes key and repeats it cyclically to exactly n letter
// indexes: position i holds the index of key[i % len(key)].
func Keystream(key string, n int) ([]int, error) {
	k := alphabet.Normalize(key)
	if k == "" {
		return nil, ErrInvalidKey
	}

	stream := make([]int, n)
	for i := range stream {
		stream[i], _ = alphabet.Index(k[i%len(k)])
	}
	return stream, nil
}
