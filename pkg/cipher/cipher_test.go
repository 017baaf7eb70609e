package cipher

import (
	"testing"

	"github.com/Glqzer/vigenere/pkg/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeystream(t *testing.T) {
	stream, err := Keystream("key", 7)
	require.NoError(t, err)
	// K=10 E=4 Y=24
	assert.Equal(t, []int{10, 4, 24, 10, 4, 24, 10}, stream)

	stream, err = Keystream("LONGERKEY", 3)
	require.NoError(t, err)
	assert.Len(t, stream, 3)

	stream, err = Keystream("k", 0)
	require.NoError(t, err)
	assert.Empty(t, stream)
}

func TestKeystream_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "123", " !? ", "Привет"} {
		_, err := Keystream(key, 5)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestEncrypt_KnownVector(t *testing.T) {
	c := New(nil)

	out, err := c.Encrypt("HELLO", "KEY")
	require.NoError(t, err)
	assert.Equal(t, "RIJVS", out)

	out, err = c.Encrypt("attack at dawn", "LEMON")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", out)
}

func TestDecrypt_KnownVector(t *testing.T) {
	c := New(alphabet.NewTable())

	out, err := c.Decrypt("lxfopv efrnhr", "lemon")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", out)
}

func TestRoundTrip(t *testing.T) {
	c := New(nil)
	messages := []string{
		"",
		"a",
		"Águia! Voa alto.",
		"The quick brown fox jumps over the lazy dog",
		"Não há mal que sempre dure, nem bem que nunca se acabe.",
	}
	keys := []string{"k", "KEY", "chave secreta", "Ç", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"}

	for _, m := range messages {
		for _, k := range keys {
			enc, err := c.Encrypt(m, k)
			require.NoError(t, err)
			assert.Len(t, enc, len(alphabet.Normalize(m)))

			dec, err := c.Decrypt(enc, k)
			require.NoError(t, err)
			assert.Equal(t, alphabet.Normalize(m), dec, "message %q key %q", m, k)
		}
	}
}

func TestEncryptDecrypt_InvalidKey(t *testing.T) {
	c := New(nil)

	_, err := c.Encrypt("hello", "42")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = c.Decrypt("hello", "")
	assert.ErrorIs(t, err, ErrInvalidKey)

	// An empty message still needs a usable key.
	_, err = c.Encrypt("", "!!")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
