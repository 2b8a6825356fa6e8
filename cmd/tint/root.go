package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/germtb/tint"
	"github.com/germtb/tint/internal/logger"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
	color    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tint",
		Short:         "Render styled lists, trees and layouts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "auto", "Emit escape sequences: auto, always or never")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newTreeCmd(flags))
	cmd.AddCommand(newJoinCmd(flags))
	cmd.AddCommand(newPlaceCmd(flags))
	cmd.AddCommand(newEnumeratorsCmd())

	return cmd
}

func (f *rootFlags) setup(cmd *cobra.Command) error {
	switch f.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", f.color)
	}

	log, err := logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: !f.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	tint.SetLogger(log)
	return nil
}

// stripAnsi reports whether output to w should be plain text.
func (f *rootFlags) stripAnsi(w io.Writer) bool {
	switch f.color {
	case "always":
		return false
	case "never":
		return true
	}
	return !isTerminal(w)
}

// write prints s to the command's output, stripping escape sequences when
// colour is off.
func (f *rootFlags) write(cmd *cobra.Command, s string) error {
	out := cmd.OutOrStdout()
	if f.stripAnsi(out) {
		s = tint.StripAnsi(s)
	}
	return tint.Fprint(out, tint.Block(s))
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// terminalWidth returns the width of w when it is a terminal, or fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
