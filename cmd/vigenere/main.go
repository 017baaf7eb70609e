// Command vigenere encrypts and decrypts with the Vigenère cipher and
// attacks Vigenère ciphertexts by frequency analysis.
package main

import (
	"log/slog"
	"os"

	"github.com/Glqzer/vigenere/pkg/alphabet"
	"github.com/Glqzer/vigenere/pkg/cipher"
	"github.com/Glqzer/vigenere/pkg/config"
	"github.com/Glqzer/vigenere/pkg/logging"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands, set up before any of them
// runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	cipher *cipher.Cipher
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		logLevel   string
		jsonLogs   bool
		quiet      bool
	)

	root := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenère cipher tool with a frequency-analysis attack",
		Long: `vigenere encrypts and decrypts text with the Vigenère cipher and recovers
keys from ciphertext alone using the index of coincidence and letter
frequencies of English or Portuguese.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("json-logs") {
				cfg.Log.JSON = jsonLogs
			}
			if cmd.Flags().Changed("quiet") {
				cfg.Log.Quiet = quiet
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			lc, err := cfg.LoggingConfig()
			if err != nil {
				return err
			}
			lc.Output = cmd.ErrOrStderr()

			a.cfg = cfg
			a.logger = logging.New(lc)
			a.cipher = cipher.New(alphabet.NewTable())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")

	root.AddCommand(
		newEncryptCmd(a),
		newDecryptCmd(a),
		newKeyLengthCmd(a),
		newAttackCmd(a),
		newMenuCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
