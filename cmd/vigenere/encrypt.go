package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEncryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt text with a key",
		Long: `Encrypt normalizes the message (upper case, accents and non-letters
removed) and enciphers it with the Vigenère square under the key.`,
		Example: `  vigenere encrypt --key KEY --text "Hello"
  vigenere encrypt -k lemon message.txt
  echo "attack at dawn" | vigenere encrypt -k lemon`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString("key")
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := a.cipher.Encrypt(text, key)
			if err != nil {
				return err
			}
			a.logger.Debug("encrypted", "letters", len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringP("key", "k", "", "Encryption key")
	_ = cmd.MarkFlagRequired("key")
	addTextFlag(cmd)
	return cmd
}
