package analysis

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/Glqzer/vigenere/pkg/alphabet"
	"gopkg.in/yaml.v3"
)

// Language selects a frequency profile.
type Language string

const (
	English    Language = "english"
	Portuguese Language = "portuguese"
)

// ErrUnknownLanguage is returned for a language without a profile.
var ErrUnknownLanguage = errors.New("unknown language")

// Profile holds the expected percentage frequency of each letter in a
// language, indexed by letter position.
type Profile struct {
	Language Language
	Percent  [alphabet.Size]float64
}

// Expected returns the expected frequency of letter index i as a fraction.
func (p Profile) Expected(i int) float64 {
	return p.Percent[i] / 100
}

//go:embed profiles.yaml
var profilesYAML []byte

var profiles = mustParseProfiles(profilesYAML)

// ProfileFor returns the frequency profile for lang.
func ProfileFor(lang Language) (Profile, error) {
	p, ok := profiles[lang]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return p, nil
}

// Languages lists the languages that have a profile, sorted.
func Languages() []Language {
	langs := make([]Language, 0, len(profiles))
	for l := range profiles {
		langs = append(langs, l)
	}
	slices.Sort(langs)
	return langs
}

// parseProfiles decodes a document of language -> letter -> percent.
func parseProfiles(data []byte) (map[Language]Profile, error) {
	var raw map[string]map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse frequency profiles: %w", err)
	}

	out := make(map[Language]Profile, len(raw))
	for name, letters := range raw {
		p := Profile{Language: Language(name)}
		for letter, pct := range letters {
			if len(letter) != 1 {
				return nil, fmt.Errorf("profile %s: invalid letter %q", name, letter)
			}
			idx, ok := alphabet.Index(letter[0])
			if !ok {
				return nil, fmt.Errorf("profile %s: invalid letter %q", name, letter)
			}
			if pct < 0 {
				return nil, fmt.Errorf("profile %s: negative frequency for %s", name, letter)
			}
			p.Percent[idx] = pct
		}
		out[p.Language] = p
	}
	return out, nil
}

func mustParseProfiles(data []byte) map[Language]Profile {
	p, err := parseProfiles(data)
	if err != nil {
		panic(err)
	}
	return p
}
