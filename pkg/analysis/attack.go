// Package analysis implements a ciphertext-only attack on the Vigenère
// cipher.
//
// The attack runs in three stages:
//
//  1. Rank candidate key lengths by the mean index of coincidence of the
//     interleaved columns each length produces (RankKeyLengths).
//  2. For each of the best lengths, recover one Caesar shift per column by
//     comparing letter frequencies with a language profile (EstimateKey).
//  3. Decrypt the ciphertext with each recovered key (DecryptWithKey).
//
// The result is a ranked shortlist. Picking the real plaintext from it is
// left to the caller.
package analysis

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Glqzer/vigenere/pkg/alphabet"
	"github.com/Glqzer/vigenere/pkg/logging"
)

// DefaultTop is the number of key lengths tried when Options.Top is unset.
const DefaultTop = 5

// Options configures an Attacker. Zero values select the defaults:
// English, correlation scoring, DefaultRange, DefaultTop and one worker
// per CPU.
type Options struct {
	Language Language
	Scorer   Scorer
	Range    Range
	Top      int
	Workers  int
	Logger   *slog.Logger
}

// Candidate is one attempted decryption.
type Candidate struct {
	KeyLength int
	IC        float64
	Key       Key
	Plaintext string
}

// Attacker holds the immutable profile and search settings of an attack.
// It is safe for concurrent use.
type Attacker struct {
	profile Profile
	scorer  Scorer
	score   scoreFunc
	search  Range
	top     int
	workers int
	logger  *slog.Logger
}

// NewAttacker validates opts and builds an Attacker.
func NewAttacker(opts Options) (*Attacker, error) {
	if opts.Language == "" {
		opts.Language = English
	}
	if opts.Scorer == "" {
		opts.Scorer = Correlation
	}
	if opts.Range == (Range{}) {
		opts.Range = DefaultRange
	}
	if opts.Top <= 0 {
		opts.Top = DefaultTop
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	profile, err := ProfileFor(opts.Language)
	if err != nil {
		return nil, err
	}
	score, err := opts.Scorer.resolve()
	if err != nil {
		return nil, err
	}
	if err := opts.Range.Validate(); err != nil {
		return nil, err
	}

	return &Attacker{
		profile: profile,
		scorer:  opts.Scorer,
		score:   score,
		search:  opts.Range,
		top:     opts.Top,
		workers: opts.Workers,
		logger:  opts.Logger,
	}, nil
}

// Profile returns the language profile the attacker scores against.
func (a *Attacker) Profile() Profile {
	return a.profile
}

// RankKeyLengths ranks every key length of the search range for ciphertext.
func (a *Attacker) RankKeyLengths(ciphertext string) []KeySizeScore {
	// the range was validated by NewAttacker
	scores, _ := rankKeyLengths(alphabet.Letters(ciphertext), a.search, a.workers)
	return scores
}

// Attack ranks key lengths and decrypts ciphertext with a recovered key
// for each of the best ones, in ranking order.
func (a *Attacker) Attack(ciphertext string) []Candidate {
	letters := alphabet.Letters(ciphertext)
	scores, _ := rankKeyLengths(letters, a.search, a.workers)

	lengths := TopLengths(scores, a.top)
	candidates := make([]Candidate, 0, len(lengths))
	for i, length := range lengths {
		key, _ := estimateKey(letters, length, a.profile, a.score, a.workers)
		a.logger.Debug("estimated key",
			"key_length", length,
			"ic", scores[i].IC,
			"key", key.String(),
			"language", a.profile.Language,
			"scorer", a.scorer,
		)
		candidates = append(candidates, Candidate{
			KeyLength: length,
			IC:        scores[i].IC,
			Key:       key,
			Plaintext: DecryptWithKey(ciphertext, key),
		})
	}
	return candidates
}

// RecoverKey estimates the key of a known length and decrypts ciphertext
// with it.
func (a *Attacker) RecoverKey(ciphertext string, length int) (Candidate, error) {
	letters := alphabet.Letters(ciphertext)
	key, err := estimateKey(letters, length, a.profile, a.score, a.workers)
	if err != nil {
		return Candidate{}, fmt.Errorf("recover key: %w", err)
	}
	a.logger.Debug("estimated key", "key_length", length, "key", key.String())

	return Candidate{
		KeyLength: length,
		IC:        meanColumnIC(letters, length),
		Key:       key,
		Plaintext: DecryptWithKey(ciphertext, key),
	}, nil
}
