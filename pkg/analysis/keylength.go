package analysis

import (
	"cmp"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidRange is returned for a key-length range that is empty, starts
// below 1 or ends above MaxKeyLength.
var ErrInvalidRange = errors.New("invalid key length range")

// Range is an inclusive range of candidate key lengths.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// MaxKeyLength is the longest key length a Range may include.
const MaxKeyLength = 100

// DefaultRange is the key-length search range used when none is given.
var DefaultRange = Range{Min: 1, Max: 20}

// Validate checks that 1 <= Min <= Max <= MaxKeyLength.
func (r Range) Validate() error {
	if r.Min < 1 || r.Max < r.Min || r.Max > MaxKeyLength {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Len is the number of candidate lengths in the range.
func (r Range) Len() int {
	return r.Max - r.Min + 1
}

// KeySizeScore is the mean index of coincidence of the columns obtained by
// splitting a ciphertext with a candidate key length.
type KeySizeScore struct {
	Length int
	IC     float64
}

// RankKeyLengths scores every key length in r against text (upper-case
// letters only) and returns the scores by descending IC. Equal scores
// keep the shorter length first.
func RankKeyLengths(text string, r Range) ([]KeySizeScore, error) {
	return rankKeyLengths(text, r, runtime.NumCPU())
}

func rankKeyLengths(text string, r Range, workers int) ([]KeySizeScore, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	scores := make([]KeySizeScore, r.Len())

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range scores {
		length := r.Min + i
		g.Go(func() error {
			scores[i] = KeySizeScore{Length: length, IC: meanColumnIC(text, length)}
			return nil
		})
	}
	_ = g.Wait()

	slices.SortStableFunc(scores, func(a, b KeySizeScore) int {
		if c := cmp.Compare(b.IC, a.IC); c != 0 {
			return c
		}
		return cmp.Compare(a.Length, b.Length)
	})
	return scores, nil
}

func meanColumnIC(text string, length int) float64 {
	sum := 0.0
	for _, col := range columns(text, length) {
		sum += IndexOfCoincidence(col)
	}
	return sum / float64(length)
}

// TopLengths returns the key lengths of the first n ranked scores.
func TopLengths(scores []KeySizeScore, n int) []int {
	n = max(0, min(n, len(scores)))
	out := make([]int, n)
	for i := range out {
		out[i] = scores[i].Length
	}
	return out
}
