package analysis

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/Glqzer/vigenere/pkg/alphabet"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidKeyLength is returned when a key length below 1 is requested.
var ErrInvalidKeyLength = errors.New("key length must be at least 1")

// ErrUnknownScorer is returned for an unrecognized shift scorer name.
var ErrUnknownScorer = errors.New("unknown shift scorer")

// Scorer names the statistic used to rank the Caesar shifts of a column.
type Scorer string

const (
	// Correlation scores a shift by the dot product of the observed letter
	// distribution with the language profile. Higher is better.
	Correlation Scorer = "correlation"

	// ChiSquared scores a shift by the chi-squared distance between the
	// observed distribution and the profile. Lower is better.
	ChiSquared Scorer = "chi-squared"
)

// scoreFunc rates an observed distribution against a profile; higher wins.
type scoreFunc func(observed *[alphabet.Size]float64, p Profile) float64

func (s Scorer) resolve() (scoreFunc, error) {
	switch s {
	case Correlation, "":
		return correlation, nil
	case ChiSquared:
		return negChiSquared, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, s)
	}
}

// Validate reports whether s is a recognized scorer.
func (s Scorer) Validate() error {
	_, err := s.resolve()
	return err
}

func correlation(observed *[alphabet.Size]float64, p Profile) float64 {
	score := 0.0
	for i, f := range observed {
		score += f * p.Expected(i)
	}
	return score
}

func negChiSquared(observed *[alphabet.Size]float64, p Profile) float64 {
	chiSq := 0.0
	for i, f := range observed {
		// letters the language never uses carry no information
		if e := p.Expected(i); e != 0 {
			chiSq += (f - e) * (f - e) / e
		}
	}
	return -chiSq
}

// Key is an estimated key: one Caesar shift (0..25) per key position.
type Key []int

// String spells the key as letters, shift s being the letter at index s.
func (k Key) String() string {
	var b strings.Builder
	for _, s := range k {
		b.WriteByte(alphabet.Letter(s))
	}
	return b.String()
}

// EstimateKey recovers the most likely key of the given length for text
// (upper-case letters only) using correlation against profile.
func EstimateKey(text string, length int, profile Profile) (Key, error) {
	return estimateKey(text, length, profile, correlation, runtime.NumCPU())
}

func estimateKey(text string, length int, profile Profile, score scoreFunc, workers int) (Key, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, length)
	}

	key := make(Key, length)

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for j, col := range columns(text, length) {
		g.Go(func() error {
			key[j] = bestShift(col, profile, score)
			return nil
		})
	}
	_ = g.Wait()

	return key, nil
}

// bestShift tries all 26 backward shifts of block and returns the one that
// scores highest. Ties keep the lower shift; an empty block yields 0.
func bestShift(block string, profile Profile, score scoreFunc) int {
	var counts [alphabet.Size]int
	total := 0
	for i := 0; i < len(block); i++ {
		if idx, ok := alphabet.Index(block[i]); ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	best, bestScore := 0, math.Inf(-1)
	for shift := 0; shift < alphabet.Size; shift++ {
		var observed [alphabet.Size]float64
		for c, n := range counts {
			observed[alphabet.Mod(c-shift)] = float64(n) / float64(total)
		}
		if s := score(&observed, profile); s > bestScore {
			best, bestScore = shift, s
		}
	}
	return best
}
