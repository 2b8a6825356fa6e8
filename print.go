package tint

import (
	"io"
	"os"
	"strings"
)

// Renderer is implemented by anything that renders to a block, such as
// lists, trees and canvases.
type Renderer interface {
	Render() string
}

// Block adapts a plain string to Renderer.
type Block string

// Render returns the block itself.
func (b Block) Render() string { return string(b) }

// Render returns the canvas as a block.
func (c *Canvas) Render() string { return c.String() }

// Print writes the renderers to stdout, each followed by a newline.
func Print(renderers ...Renderer) error {
	return Fprint(os.Stdout, renderers...)
}

// Sprint renders renderers joined by newlines.
func Sprint(renderers ...Renderer) string {
	parts := make([]string, len(renderers))
	for i, r := range renderers {
		parts[i] = r.Render()
	}
	return strings.Join(parts, "\n")
}

// Fprint writes the renderers to w, each followed by a newline.
func Fprint(w io.Writer, renderers ...Renderer) error {
	for _, r := range renderers {
		if _, err := io.WriteString(w, r.Render()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
