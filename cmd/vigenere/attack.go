package main

import (
	"fmt"
	"strings"

	"github.com/Glqzer/vigenere/pkg/analysis"
	"github.com/spf13/cobra"
)

func newAttackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attack [file]",
		Short: "Recover the key and plaintext from ciphertext alone",
		Long: `Attack ranks candidate key lengths by index of coincidence, estimates a
key for each of the best lengths by letter-frequency correlation and
prints one decryption per key, best ranked first.

With --key-length the ranking is skipped and only that length is tried.`,
		Example: `  vigenere attack ciphertext.txt
  vigenere attack --lang portuguese --top 3 ciphertext.txt
  vigenere attack --key-length 5 ciphertext.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			attacker, err := a.newAttacker(cmd)
			if err != nil {
				return err
			}

			if length, _ := cmd.Flags().GetInt("key-length"); length > 0 {
				c, err := attacker.RecoverKey(text, length)
				if err != nil {
					return err
				}
				printCandidates(cmd.OutOrStdout(), []analysis.Candidate{c})
				return nil
			}

			candidates := attacker.Attack(text)
			a.logger.Info("attack finished",
				"candidates", len(candidates),
				"language", attacker.Profile().Language,
			)
			printCandidates(cmd.OutOrStdout(), candidates)
			return nil
		},
	}
	addAttackFlags(cmd)
	cmd.Flags().Int("key-length", 0, "Try only this key length")
	addTextFlag(cmd)
	return cmd
}

func newKeyLengthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keylength [file]",
		Short: "Rank candidate key lengths by index of coincidence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			attacker, err := a.newAttacker(cmd)
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), attacker.RankKeyLengths(text))
			return nil
		},
	}
	addAttackFlags(cmd)
	addTextFlag(cmd)
	return cmd
}

func addAttackFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "Plaintext language ("+languageList()+")")
	cmd.Flags().String("scorer", "", "Shift scorer (correlation, chi-squared)")
	cmd.Flags().Int("min", 0, "Shortest key length to consider")
	cmd.Flags().Int("max", 0, "Longest key length to consider")
	cmd.Flags().IntP("top", "n", 0, "Number of key lengths to try")
	cmd.Flags().IntP("workers", "p", 0, "Parallel workers (0 = one per CPU)")
}

// languageList joins the languages that have a frequency profile.
func languageList() string {
	langs := analysis.Languages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// newAttacker applies the attack flags that were set on top of the loaded
// configuration.
func (a *app) newAttacker(cmd *cobra.Command) (*analysis.Attacker, error) {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("scorer") {
		cfg.Scorer, _ = flags.GetString("scorer")
	}
	if flags.Changed("min") {
		cfg.KeyLength.Min, _ = flags.GetInt("min")
	}
	if flags.Changed("max") {
		cfg.KeyLength.Max, _ = flags.GetInt("max")
	}
	if flags.Changed("top") {
		cfg.Top, _ = flags.GetInt("top")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := cfg.AttackOptions()
	opts.Logger = a.logger
	attacker, err := analysis.NewAttacker(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the attack: %w", err)
	}
	return attacker, nil
}
