package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDecryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt ciphertext with a known key",
		Example: `  vigenere decrypt --key KEY --text RIJVS
  vigenere decrypt -k lemon ciphertext.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString("key")
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := a.cipher.Decrypt(text, key)
			if err != nil {
				return err
			}
			a.logger.Debug("decrypted", "letters", len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringP("key", "k", "", "Decryption key")
	_ = cmd.MarkFlagRequired("key")
	addTextFlag(cmd)
	return cmd
}
