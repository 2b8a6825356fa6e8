package enumerator

import "sort"

// registry maps enumerator names to functions. It is built once and never
// modified, so lookups need no locking.
var registry = map[string]Func{
	"bullet":        Bullet,
	"dash":          Dash,
	"asterisk":      Asterisk,
	"plus":          Plus,
	"arrow":         Arrow,
	"triangle":      Triangle,
	"diamond":       Diamond,
	"square":        Square,
	"circle":        Circle,
	"none":          None,
	"arabic":        Arabic,
	"arabic-paren":  ArabicParen,
	"arabic-parens": ArabicParens,
	"alpha-lower":   AlphaLower,
	"alpha-upper":   AlphaUpper,
	"roman-lower":   RomanLower,
	"roman-upper":   RomanUpper,
}

// Lookup returns the enumerator registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns the registered enumerator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
