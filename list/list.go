// Package list renders nested ordered and unordered lists.
//
// A List is an immutable value. Every With* setter and every mutator returns
// a new List and leaves the receiver untouched, so lists can be shared
// freely and used as templates:
//
//	base := list.New("apples", "pears").WithEnumerator(enumerator.Arabic)
//	more := base.Append(list.Text("plums"))
//	fmt.Println(more.Render())
//
// Range-checked setters and index-addressed mutators return an error instead
// of clamping.
package list

import (
	"slices"

	"github.com/germtb/tint"
	"github.com/germtb/tint/enumerator"
)

// Limits for numeric settings.
const (
	MaxIndentLevel       = 20
	MaxEnumeratorSpacing = 10
)

// Defaults applied by New and Of.
const (
	DefaultIndentLevel       = 2
	DefaultIndentString      = " "
	DefaultEnumeratorSpacing = 1
)

// Kind discriminates the two variants of Item.
type Kind int

const (
	TextKind Kind = iota
	ListKind
)

// Item is either a line of text or a nested list.
type Item struct {
	kind Kind
	text string
	list *List
}

// Text returns a text item.
func Text(s string) Item {
	return Item{kind: TextKind, text: s}
}

// Sublist returns an item holding a nested list.
func Sublist(l List) Item {
	return Item{kind: ListKind, list: &l}
}

// Kind returns the item's variant.
func (i Item) Kind() Kind { return i.kind }

// Text returns the text of a text item, or "" for a nested list.
func (i Item) Text() string { return i.text }

// List returns the nested list and true for a ListKind item.
func (i Item) List() (List, bool) {
	if i.kind != ListKind || i.list == nil {
		return List{}, false
	}
	return *i.list, true
}

// List is an immutable list configuration.
type List struct {
	items             []Item
	enumerator        enumerator.Func
	itemStyle         tint.StyleFunc
	enumeratorStyle   tint.StyleFunc
	hidden            bool
	indentLevel       int
	indentString      string
	showEnumerators   bool
	enumeratorSpacing int
	maxWidth          int
	spacing           int
}

// New creates a bulleted list of text items.
func New(texts ...string) List {
	items := make([]Item, len(texts))
	for i, t := range texts {
		items[i] = Text(t)
	}
	return Of(items...)
}

// Of creates a bulleted list from items.
func Of(items ...Item) List {
	return List{
		items:             slices.Clone(items),
		enumerator:        enumerator.Bullet,
		indentLevel:       DefaultIndentLevel,
		indentString:      DefaultIndentString,
		showEnumerators:   true,
		enumeratorSpacing: DefaultEnumeratorSpacing,
	}
}

// Items returns a copy of the list's items.
func (l List) Items() []Item { return slices.Clone(l.items) }

// Len returns the number of direct items, nested lists included.
func (l List) Len() int { return len(l.items) }

// Enumerator returns the marker function.
func (l List) Enumerator() enumerator.Func { return l.enumerator }

// Hidden reports whether the list is skipped when rendering.
func (l List) Hidden() bool { return l.hidden }

// IndentLevel returns how many times the indent string is repeated per level.
func (l List) IndentLevel() int { return l.indentLevel }

// IndentString returns the unit of nested indentation.
func (l List) IndentString() string { return l.indentString }

// ShowEnumerators reports whether markers are drawn.
func (l List) ShowEnumerators() bool { return l.showEnumerators }

// EnumeratorSpacing returns the number of spaces after a marker.
func (l List) EnumeratorSpacing() int { return l.enumeratorSpacing }

// MaxWidth returns the wrap width of item text, 0 when wrapping is off.
func (l List) MaxWidth() int { return l.maxWidth }

// Spacing returns the number of blank lines between items.
func (l List) Spacing() int { return l.spacing }

// WithEnumerator sets the marker function. A nil fn hides markers.
func (l List) WithEnumerator(fn enumerator.Func) List {
	if fn == nil {
		fn = enumerator.None
	}
	l.enumerator = fn
	return l
}

// WithItemStyle sets the style applied to item text.
func (l List) WithItemStyle(fn tint.StyleFunc) List {
	l.itemStyle = fn
	return l
}

// WithEnumeratorStyle sets the style applied to markers.
func (l List) WithEnumeratorStyle(fn tint.StyleFunc) List {
	l.enumeratorStyle = fn
	return l
}

// WithHidden hides or shows the list.
func (l List) WithHidden(hidden bool) List {
	l.hidden = hidden
	return l
}

// WithIndentString sets the unit of nested indentation.
func (l List) WithIndentString(s string) List {
	l.indentString = s
	return l
}

// WithEnumerators shows or hides markers.
func (l List) WithEnumerators(show bool) List {
	l.showEnumerators = show
	return l
}

// WithIndentLevel sets how many indent strings a nested list is shifted by.
// The level must be within [0, MaxIndentLevel].
func (l List) WithIndentLevel(level int) (List, error) {
	if err := tint.CheckRange("indent level", level, 0, MaxIndentLevel); err != nil {
		return l, err
	}
	l.indentLevel = level
	return l, nil
}

// WithEnumeratorSpacing sets the spaces between marker and text.
// The spacing must be within [0, MaxEnumeratorSpacing].
func (l List) WithEnumeratorSpacing(spacing int) (List, error) {
	if err := tint.CheckRange("enumerator spacing", spacing, 0, MaxEnumeratorSpacing); err != nil {
		return l, err
	}
	l.enumeratorSpacing = spacing
	return l, nil
}

// WithMaxWidth sets the wrap width for item text; 0 disables wrapping.
func (l List) WithMaxWidth(width int) (List, error) {
	if err := tint.CheckRange("max width", width, 0, -1); err != nil {
		return l, err
	}
	l.maxWidth = width
	return l, nil
}

// WithSpacing sets the number of blank lines between items.
func (l List) WithSpacing(lines int) (List, error) {
	if err := tint.CheckRange("spacing", lines, 0, -1); err != nil {
		return l, err
	}
	l.spacing = lines
	return l, nil
}

// Append returns a list with items added at the end.
func (l List) Append(items ...Item) List {
	l.items = slices.Concat(l.items, items)
	return l
}

// Prepend returns a list with items added at the front.
func (l List) Prepend(items ...Item) List {
	l.items = slices.Concat(items, l.items)
	return l
}

// Insert returns a list with item inserted before index. Index may equal
// Len to append.
func (l List) Insert(index int, item Item) (List, error) {
	if index < 0 || index > len(l.items) {
		return l, tint.NewIndexError("insert", index, 0, len(l.items))
	}
	l.items = slices.Insert(slices.Clone(l.items), index, item)
	return l, nil
}

// Remove returns a list without the item at index.
func (l List) Remove(index int) (List, error) {
	if err := l.checkIndex("remove", index); err != nil {
		return l, err
	}
	l.items = slices.Delete(slices.Clone(l.items), index, index+1)
	return l, nil
}

// Replace returns a list with the item at index replaced.
func (l List) Replace(index int, item Item) (List, error) {
	if err := l.checkIndex("replace", index); err != nil {
		return l, err
	}
	items := slices.Clone(l.items)
	items[index] = item
	l.items = items
	return l, nil
}

// Get returns the item at index.
func (l List) Get(index int) (Item, error) {
	if err := l.checkIndex("get", index); err != nil {
		return Item{}, err
	}
	return l.items[index], nil
}

func (l List) checkIndex(op string, index int) error {
	if index < 0 || index >= len(l.items) {
		return tint.NewIndexError(op, index, 0, len(l.items)-1)
	}
	return nil
}

// Flatten returns every text item, depth first.
func (l List) Flatten() []string {
	var out []string
	for _, item := range l.items {
		switch item.kind {
		case TextKind:
			out = append(out, item.text)
		case ListKind:
			out = append(out, item.list.Flatten()...)
		}
	}
	return out
}

// Count returns the number of text items at every depth.
func (l List) Count() int {
	n := 0
	for _, item := range l.items {
		switch item.kind {
		case TextKind:
			n++
		case ListKind:
			n += item.list.Count()
		}
	}
	return n
}

// Depth returns the deepest nesting level; a flat list has depth 0.
func (l List) Depth() int {
	d := 0
	for _, item := range l.items {
		if item.kind == ListKind {
			d = max(d, item.list.Depth()+1)
		}
	}
	return d
}
