package main

import (
	"github.com/spf13/cobra"

	"github.com/germtb/tint"
	"github.com/germtb/tint/enumerator"
	"github.com/germtb/tint/list"
	"github.com/germtb/tint/tree"
)

func newEnumeratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerators",
		Short: "Show the named list and tree enumerators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var listItems []list.Item
			for _, name := range enumerator.Names() {
				fn, _ := enumerator.Lookup(name)
				listItems = append(listItems, list.Text(name+"  "+fn(0, 0)+" "+fn(1, 0)+" "+fn(2, 0)))
			}

			root := tree.Leaf("tree")
			for _, name := range tree.EnumeratorNames() {
				root.Children = append(root.Children, tree.Leaf(name))
			}

			out := tint.JoinHorizontal(tint.Top,
				list.Of(listItems...).WithEnumerator(enumerator.None).Render(),
				"    ",
				tree.New(root).Render(),
			)
			return tint.Fprint(cmd.OutOrStdout(), tint.Block(out))
		},
	}
}
