package list

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/germtb/tint"
	"github.com/germtb/tint/enumerator"
)

// Document is the YAML form of a List:
//
//	enumerator: arabic
//	spacing: 1
//	maxWidth: 40
//	itemStyle: {bold: true}
//	items:
//	  - first
//	  - enumerator: alpha-lower
//	    items: [nested, items]
//	  - second
//
// A scalar item is text; a mapping item is a nested Document.
type Document struct {
	Enumerator        string          `yaml:"enumerator" validate:"omitempty,enumerator"`
	Symbols           []string        `yaml:"symbols"`
	DepthEnumerators  []string        `yaml:"depthEnumerators" validate:"omitempty,dive,enumerator"`
	IndentLevel       *int            `yaml:"indent" validate:"omitempty,min=0,max=20"`
	IndentString      *string         `yaml:"indentString"`
	EnumeratorSpacing *int            `yaml:"enumeratorSpacing" validate:"omitempty,min=0,max=10"`
	MaxWidth          int             `yaml:"maxWidth" validate:"min=0"`
	Spacing           int             `yaml:"spacing" validate:"min=0"`
	Hidden            bool            `yaml:"hidden"`
	HideEnumerators   bool            `yaml:"hideEnumerators"`
	ItemStyle         *tint.StyleSpec `yaml:"itemStyle"`
	EnumeratorStyle   *tint.StyleSpec `yaml:"enumeratorStyle"`
	Items             []DocumentItem  `yaml:"items" validate:"dive"`
}

// DocumentItem is a text item or a nested list document.
type DocumentItem struct {
	Text string
	List *Document `validate:"omitempty"`
}

// UnmarshalYAML decodes scalars as text and mappings as nested documents.
func (i *DocumentItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&i.Text)
	case yaml.MappingNode:
		i.List = &Document{}
		return node.Decode(i.List)
	}
	return fmt.Errorf("line %d: list item must be a string or a mapping", node.Line)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("enumerator", func(fl validator.FieldLevel) bool {
			_, ok := enumerator.Lookup(fl.Field().String())
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Load decodes and validates a YAML list document.
func Load(r io.Reader) (List, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return List{}, fmt.Errorf("decode list document: %w", err)
	}
	return doc.List()
}

// LoadFile loads a YAML list document from path.
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, err
	}
	defer f.Close()
	return Load(f)
}

// List validates the document and converts it to a List.
func (d *Document) List() (List, error) {
	if err := validatorInstance().Struct(d); err != nil {
		return List{}, fmt.Errorf("invalid list document: %w", err)
	}
	return d.build()
}

func (d *Document) build() (List, error) {
	items := make([]Item, 0, len(d.Items))
	for _, item := range d.Items {
		if item.List == nil {
			items = append(items, Text(item.Text))
			continue
		}
		sub, err := item.List.build()
		if err != nil {
			return List{}, err
		}
		items = append(items, Sublist(sub))
	}

	l := Of(items...).WithHidden(d.Hidden).WithEnumerators(!d.HideEnumerators)

	switch {
	case len(d.Symbols) > 0:
		fn, err := enumerator.Cycle(d.Symbols...)
		if err != nil {
			return List{}, err
		}
		l = l.WithEnumerator(fn)
	case len(d.DepthEnumerators) > 0:
		fns := make([]enumerator.Func, len(d.DepthEnumerators))
		for i, name := range d.DepthEnumerators {
			fn, err := lookupEnumerator(name)
			if err != nil {
				return List{}, err
			}
			fns[i] = fn
		}
		fn, err := enumerator.DepthAware(fns...)
		if err != nil {
			return List{}, err
		}
		l = l.WithEnumerator(fn)
	case d.Enumerator != "":
		fn, err := lookupEnumerator(d.Enumerator)
		if err != nil {
			return List{}, err
		}
		l = l.WithEnumerator(fn)
	}

	if d.IndentString != nil {
		l = l.WithIndentString(*d.IndentString)
	}

	var err error
	if d.IndentLevel != nil {
		if l, err = l.WithIndentLevel(*d.IndentLevel); err != nil {
			return List{}, err
		}
	}
	if d.EnumeratorSpacing != nil {
		if l, err = l.WithEnumeratorSpacing(*d.EnumeratorSpacing); err != nil {
			return List{}, err
		}
	}
	if l, err = l.WithMaxWidth(d.MaxWidth); err != nil {
		return List{}, err
	}
	if l, err = l.WithSpacing(d.Spacing); err != nil {
		return List{}, err
	}

	if d.ItemStyle != nil {
		style, err := d.ItemStyle.Style()
		if err != nil {
			return List{}, fmt.Errorf("itemStyle: %w", err)
		}
		l = l.WithItemStyle(style.Func())
	}
	if d.EnumeratorStyle != nil {
		style, err := d.EnumeratorStyle.Style()
		if err != nil {
			return List{}, fmt.Errorf("enumeratorStyle: %w", err)
		}
		l = l.WithEnumeratorStyle(style.Func())
	}
	return l, nil
}

func lookupEnumerator(name string) (enumerator.Func, error) {
	fn, ok := enumerator.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown enumerator %q", name)
	}
	return fn, nil
}
