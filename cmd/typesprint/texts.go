package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/store"
	"github.com/verte-zerg/typesprint/internal/textpack"
)

const previewLen = 48

var (
	addText string
	addFile string
)

func newTextsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "Manage the sample-text library",
	}

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a named text",
		Args:  cobra.ExactArgs(1),
		RunE:  runTextsAddCmd,
	}
	addCmd.Flags().StringVar(&addText, "text", "", "text body")
	addCmd.Flags().StringVar(&addFile, "file", "", "read the text body from a file")
	addCmd.MarkFlagsMutuallyExclusive("text", "file")
	addCmd.MarkFlagsOneRequired("text", "file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List library texts",
			Args:  cobra.NoArgs,
			RunE:  runTextsListCmd,
		},
		&cobra.Command{
			Use:   "show NAME",
			Short: "Print a library text",
			Args:  cobra.ExactArgs(1),
			RunE:  runTextsShowCmd,
		},
		addCmd,
		&cobra.Command{
			Use:   "rm NAME",
			Short: "Delete a library text",
			Args:  cobra.ExactArgs(1),
			RunE:  runTextsRemoveCmd,
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Import texts from a YAML pack",
			Args:  cobra.ExactArgs(1),
			RunE:  runTextsImportCmd,
		},
	)
	return cmd
}

// withStore opens the text library for the duration of fn.
func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return errors.Wrap(err, "failed to open text library")
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(st)
}

func runTextsListCmd(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store) error {
		texts, err := st.ListTexts(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(texts) == 0 {
			return writeLine(out, "No texts yet. Add one with: typesprint texts add NAME --text ...")
		}
		for _, t := range texts {
			words := len(strings.Fields(t.Body))
			if err := writeLine(out, "%s\t%d words\t%s", t.Name, words, preview(t.Body)); err != nil {
				return err
			}
		}
		return nil
	})
}

func runTextsShowCmd(cmd *cobra.Command, args []string) error {
	return withStore(func(st *store.Store) error {
		text, err := st.GetText(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrapf(err, "text %q", args[0])
		}
		return writeLine(cmd.OutOrStdout(), "%s", text.Body)
	})
}

func runTextsAddCmd(cmd *cobra.Command, args []string) error {
	body := addText
	if addFile != "" {
		loaded, err := textpack.LoadPlain(addFile)
		if err != nil {
			return err
		}
		body = loaded
	}
	return withStore(func(st *store.Store) error {
		text := model.SampleText{Name: args[0], Body: body}
		if err := st.SaveText(cmd.Context(), text); err != nil {
			return err
		}
		return writeLine(cmd.OutOrStdout(), "Saved %s", text.Name)
	})
}

func runTextsRemoveCmd(cmd *cobra.Command, args []string) error {
	return withStore(func(st *store.Store) error {
		if err := st.DeleteText(cmd.Context(), args[0]); err != nil {
			return errors.Wrapf(err, "text %q", args[0])
		}
		return writeLine(cmd.OutOrStdout(), "Removed %s", args[0])
	})
}

func runTextsImportCmd(cmd *cobra.Command, args []string) error {
	texts, err := textpack.LoadPack(args[0])
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		if err := st.SaveTexts(cmd.Context(), texts); err != nil {
			return err
		}
		return writeLine(cmd.OutOrStdout(), "Imported %d texts from %s", len(texts), args[0])
	})
}

func preview(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	runes := []rune(flat)
	if len(runes) <= previewLen {
		return flat
	}
	return string(runes[:previewLen]) + "..."
}
