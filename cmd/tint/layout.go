package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/germtb/tint"
)

type joinOptions struct {
	vertical bool
	align    string
}

func newJoinCmd(root *rootFlags) *cobra.Command {
	opts := &joinOptions{}

	cmd := &cobra.Command{
		Use:   "join FILE...",
		Short: "Join text blocks side by side or stacked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := tint.ParsePosition(opts.align)
			if err != nil {
				return err
			}
			blocks, err := readBlocks(args)
			if err != nil {
				return err
			}
			if opts.vertical {
				return root.write(cmd, tint.JoinVertical(pos, blocks...))
			}
			return root.write(cmd, tint.JoinHorizontal(pos, blocks...))
		},
	}

	cmd.Flags().BoolVar(&opts.vertical, "vertical", false, "Stack blocks instead of placing them side by side")
	cmd.Flags().StringVar(&opts.align, "align", "top", "Alignment: top, center, bottom, left, right or 0..1")

	return cmd
}

type placeOptions struct {
	width  int
	height int
	x      string
	y      string
	fill   string
}

func newPlaceCmd(root *rootFlags) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place FILE",
		Short: "Position a text block inside a larger area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := tint.ParsePosition(opts.x)
			if err != nil {
				return err
			}
			y, err := tint.ParsePosition(opts.y)
			if err != nil {
				return err
			}
			blocks, err := readBlocks(args)
			if err != nil {
				return err
			}
			width := opts.width
			if width <= 0 {
				width = terminalWidth(cmd.OutOrStdout(), tint.Width(blocks[0]))
			}
			height := max(opts.height, tint.Height(blocks[0]))

			var placeOpts []tint.PlaceOption
			if opts.fill != "" {
				placeOpts = append(placeOpts, tint.WithWhitespaceChars(opts.fill))
			}
			return root.write(cmd, tint.Place(width, height, x, y, blocks[0], placeOpts...))
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Area width (0 for the terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Area height (at least the block height)")
	cmd.Flags().StringVar(&opts.x, "x", "center", "Horizontal position")
	cmd.Flags().StringVar(&opts.y, "y", "middle", "Vertical position")
	cmd.Flags().StringVar(&opts.fill, "fill", "", "Characters used for the surrounding whitespace")

	return cmd
}

func readBlocks(paths []string) ([]string, error) {
	blocks := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read block: %w", err)
		}
		blocks[i] = strings.TrimSuffix(string(data), "\n")
	}
	return blocks, nil
}
