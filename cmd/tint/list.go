package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germtb/tint"
	"github.com/germtb/tint/list"
)

type listOptions struct {
	format   string
	border   string
	padding  int
	maxDepth int
	indent   int
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Render a YAML list document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, html, markdown, bordered or numbered")
	cmd.Flags().StringVar(&opts.border, "border", string(tint.BorderRounded), "Border style for the bordered format")
	cmd.Flags().IntVar(&opts.padding, "padding", 1, "Horizontal padding for the bordered format")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Render at most this many levels (0 for all)")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "Shift every line right by this many spaces")

	return cmd
}

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions, path string) error {
	l, err := list.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	tint.Logger().Debug().Str("file", path).Int("items", l.Count()).Int("depth", l.Depth()).Msg("loaded list")

	var out string
	switch opts.format {
	case "text":
		out = l.RenderWith(list.RenderOptions{
			MaxDepth:   opts.maxDepth,
			BaseIndent: opts.indent,
			StripAnsi:  root.stripAnsi(cmd.OutOrStdout()),
		})
	case "html":
		if out, err = l.RenderHTML(); err != nil {
			return err
		}
	case "markdown":
		out = l.RenderMarkdown()
	case "bordered":
		if out, err = l.RenderBordered(tint.BorderStyle(opts.border), tint.NewDimensions(0, opts.padding)); err != nil {
			return err
		}
	case "numbered":
		out = l.RenderNumbered()
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	return root.write(cmd, out)
}
