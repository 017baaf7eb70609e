package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexAndLetter(t *testing.T) {
	for i := 0; i < Size; i++ {
		c := Uppercase[i]
		idx, ok := Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, c, Letter(i))
	}

	_, ok := Index('a')
	assert.False(t, ok, "lower case is not an alphabet member")
	_, ok = Index('[')
	assert.False(t, ok)
}

func TestMod(t *testing.T) {
	assert.Equal(t, 0, Mod(26))
	assert.Equal(t, 25, Mod(-1))
	assert.Equal(t, 1, Mod(-51))
	assert.Equal(t, byte('Z'), Letter(-1))
}

// Every row of the square must be a permutation of the alphabet.
func TestTable_LatinSquare(t *testing.T) {
	table := NewTable()
	for k := 0; k < Size; k++ {
		seen := map[byte]bool{}
		for p := 0; p < Size; p++ {
			c := table.Encipher(p, k)
			_, ok := Index(c)
			require.True(t, ok, "cell (%d,%d) = %q", p, k, c)
			assert.False(t, seen[c], "row %c repeats %c", Letter(k), c)
			seen[c] = true
		}
		assert.Len(t, seen, Size)
	}
}

func TestTable_DecipherInvertsEncipher(t *testing.T) {
	table := NewTable()
	for k := 0; k < Size; k++ {
		for p := 0; p < Size; p++ {
			c, _ := Index(table.Encipher(p, k))
			assert.Equal(t, Letter(p), table.Decipher(c, k))
		}
	}
}

func TestTable_Encipher(t *testing.T) {
	table := NewTable()
	row := make([]byte, Size)
	for p := range row {
		row[p] = table.Encipher(p, 1)
	}
	assert.Equal(t, "BCDEFGHIJKLMNOPQRSTUVWXYZA", string(row))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Águia!", "AGUIA"},
		{"hello, world", "HELLOWORLD"},
		{"Ação e coração", "ACAOECORACAO"},
		{"naïve café", "NAIVECAFE"},
		{"straße", "STRASSE"},
		{"1234 !?", ""},
		{"ÀÉÎÕÜ", "AEIOU"},
		{"Привет", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "Águia!", "The quick brown fox", "çãõ éê", "ABC", "x-y_z"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "ABCXYZ", Letters("a b-c, X.y!z"))
	assert.Equal(t, "", Letters("é ü"))
}
