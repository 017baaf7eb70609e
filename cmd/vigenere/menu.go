package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Glqzer/vigenere/pkg/analysis"
	"github.com/spf13/cobra"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu: encrypt, decrypt or simulate an attack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &menu{
				app:         a,
				in:          bufio.NewReader(cmd.InOrStdin()),
				out:         cmd.OutOrStdout(),
				interactive: isTerminal(cmd.InOrStdin()),
			}
			return m.run()
		},
	}
}

type menu struct {
	app         *app
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// prompt prints label when a user is at the terminal and reads one line.
// It returns io.EOF once input is exhausted.
func (m *menu) prompt(label string) (string, error) {
	if m.interactive {
		fmt.Fprint(m.out, label)
	}
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *menu) run() error {
	for {
		if m.interactive {
			fmt.Fprintln(m.out, "### Vigenère cipher ###")
			fmt.Fprintln(m.out, "1. Encrypt")
			fmt.Fprintln(m.out, "2. Decrypt")
			fmt.Fprintln(m.out, "3. Simulate attack")
			fmt.Fprintln(m.out, "4. Exit")
		}
		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.encrypt()
		case "2":
			err = m.decrypt()
		case "3":
			err = m.attack()
		case "4":
			return nil
		default:
			fmt.Fprintln(m.out, "Choose one of the options offered.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) encrypt() error {
	msg, err := m.prompt("Message: ")
	if err != nil {
		return err
	}
	key, err := m.prompt("Key: ")
	if err != nil {
		return err
	}
	out, err := m.app.cipher.Encrypt(msg, key)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return nil
	}
	fmt.Fprintln(m.out, "Encrypted message:", out)
	return nil
}

func (m *menu) decrypt() error {
	msg, err := m.prompt("Encrypted message: ")
	if err != nil {
		return err
	}
	key, err := m.prompt("Key: ")
	if err != nil {
		return err
	}
	out, err := m.app.cipher.Decrypt(msg, key)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return nil
	}
	fmt.Fprintln(m.out, "Decrypted message:", out)
	return nil
}

func (m *menu) attack() error {
	msg, err := m.prompt("Encrypted message: ")
	if err != nil {
		return err
	}
	lang, err := m.prompt("Language:\n 1 - English\n 2 - Portuguese: ")
	if err != nil {
		return err
	}

	opts := m.app.cfg.AttackOptions()
	opts.Logger = m.app.logger
	opts.Language = analysis.English
	if strings.TrimSpace(lang) == "2" {
		opts.Language = analysis.Portuguese
	}
	attacker, err := analysis.NewAttacker(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Attack result:")
	printCandidates(m.out, attacker.Attack(msg))
	return nil
}
