// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/logger"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/sample"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/store"
	"github.com/verte-zerg/typesprint/internal/tui"
)

const summaryWidth = 80

var sessionCfg model.Config

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesprint",
		Short:         "Timed typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runSessionCmd,
	}

	def := config.Defaults()
	flags := rootCmd.Flags()
	flags.IntVar(&sessionCfg.Duration, "duration", def.Duration, "test length in seconds")
	flags.StringVar(&sessionCfg.Text, "text", "", "sample text to type")
	flags.StringVar(&sessionCfg.TextFile, "text-file", "", "read the sample text from a file")
	flags.StringVar(&sessionCfg.TextName, "text-name", "", "use a named text from the library")
	flags.BoolVar(&sessionCfg.RandomText, "random-text", false, "use a random text from the library")
	flags.StringVar(&sessionCfg.WordList, "wordlist", "", "generate the sample from a word list file")
	flags.StringVar(&sessionCfg.Lang, "lang", def.Lang, "language of the word list")
	flags.IntVar(&sessionCfg.Words, "words", def.Words, "generated words per sample")
	flags.Float64Var(&sessionCfg.CapsPct, "caps", def.CapsPct, "probability of capitalized first letter (0-1)")
	flags.StringVar(&sessionCfg.LogLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&sessionCfg.LogFile, "log-file", def.LogFile, "log file path")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTextsCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSessionConfig(cmd)
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()

	resolver := sample.Resolver{Generator: generator.New(0)}
	if sample.NeedsLibrary(cfg) {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return errors.Wrap(err, "failed to open text library")
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		resolver.Library = st
	}
	resolved, err := resolver.Resolve(cmd.Context(), cfg)
	if err != nil {
		return errors.Wrap(err, "failed to pick sample text")
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("typesprint needs an interactive terminal")
	}

	engine := session.New(resolved.Text, cfg.Duration)
	m := tui.NewModel(engine, resolved.Origin)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "failed to run TUI")
	}

	res, ok := m.Result()
	if !ok {
		zlog.Debug().Msg("exited before typing")
		return nil
	}
	width := summaryWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	return stats.RenderResult(cmd.OutOrStdout(), res, width)
}

// loadSessionConfig merges the config file under the command-line flags and validates the result.
func loadSessionConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, errors.Wrap(err, "failed to load config")
	}
	cfg := sessionCfg
	config.Merge(&cfg, fileCfg, cmd.Flags().Changed)
	if err := config.Finalize(&cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "failed to open editor")
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to stat config")
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

func defaultConfigTemplate() string {
	def := config.Defaults()
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# duration = %d            # Test length in seconds
# text = "..."             # Sample text to type
# text-file = "..."        # Read the sample text from a file
# text-name = "..."        # Named text from the library (see: typesprint texts list)
# random-text = false      # Random text from the library
# wordlist = "..."         # Generate the sample from a word list file
# lang = %q               # Language of the word list
# words = %d               # Generated words per sample
# caps = 0.0               # Probability of capitalized first letter (0-1)

[log]
# level = %q           # debug, info, warn or error
# file = %q
`,
		def.Duration,
		def.Lang,
		def.Words,
		def.LogLevel,
		def.LogFile,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func writeLine(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
