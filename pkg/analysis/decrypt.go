package analysis

import "github.com/Glqzer/vigenere/pkg/alphabet"

// DecryptWithKey shifts every ASCII letter of text back by the current key
// position and keeps its case. Any other character is copied unchanged and
// does not move the key position. An empty key returns text as is.
func DecryptWithKey(text string, key Key) string {
	if len(key) == 0 {
		return text
	}

	out := []byte(text)
	pos := 0
	for i, c := range out {
		var base byte
		switch {
		case 'A' <= c && c <= 'Z':
			base = 'A'
		case 'a' <= c && c <= 'z':
			base = 'a'
		default:
			continue
		}
		out[i] = base + byte(alphabet.Mod(int(c-base)-key[pos]))
		pos = (pos + 1) % len(key)
	}
	return string(out)
}
