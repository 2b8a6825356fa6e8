package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/germtb/tint"
	"github.com/germtb/tint/tree"
)

type treeOptions struct {
	metrics    bool
	validate   bool
	expandAll  bool
	maxDepth   int
	enumerator string
}

func newTreeCmd(root *rootFlags) *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Render a YAML tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print node count, depth and size after the tree")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate the tree instead of rendering it")
	cmd.Flags().BoolVar(&opts.expandAll, "expand-all", false, "Render collapsed nodes expanded")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Render at most this many levels (0 for all)")
	cmd.Flags().StringVar(&opts.enumerator, "enumerator", "", "Override the document's enumerator")

	return cmd
}

func runTree(cmd *cobra.Command, root *rootFlags, opts *treeOptions, path string) error {
	t, err := tree.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if opts.expandAll {
		t = t.WithExpandAll(true)
	}
	if opts.enumerator != "" {
		fn, ok := tree.LookupEnumerator(opts.enumerator)
		if !ok {
			return fmt.Errorf("unknown enumerator %q, want one of %s", opts.enumerator, strings.Join(tree.EnumeratorNames(), ", "))
		}
		t = t.WithEnumerator(fn)
	}

	if opts.validate {
		return reportValidation(cmd, root, t.Validate())
	}

	out := t.RenderWith(tree.RenderOptions{
		MaxDepth:  opts.maxDepth,
		StripAnsi: root.stripAnsi(cmd.OutOrStdout()),
	})
	if opts.metrics {
		m := t.Metrics()
		out += fmt.Sprintf("\n\nnodes: %d  depth: %d  size: %dx%d", m.TotalNodes, m.MaxDepth, m.Width, m.Height)
	}
	return root.write(cmd, out)
}

func reportValidation(cmd *cobra.Command, root *rootFlags, r tree.ValidationResult) error {
	var lines []string
	for _, e := range r.Errors {
		lines = append(lines, "error: "+e)
	}
	for _, w := range r.Warnings {
		lines = append(lines, "warning: "+w)
	}
	if r.Valid {
		lines = append(lines, "valid")
	}
	if err := root.write(cmd, strings.Join(lines, "\n")); err != nil {
		return err
	}
	if !r.Valid {
		tint.Logger().Debug().Int("errors", len(r.Errors)).Msg("tree validation failed")
		return fmt.Errorf("tree is invalid: %d error(s)", len(r.Errors))
	}
	return nil
}
