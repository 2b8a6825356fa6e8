package tree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/germtb/tint"
)

// Document is the YAML form of a Tree:
//
//	enumerator: rounded
//	indentSize: 4
//	root:
//	  value: project
//	  children:
//	    - src
//	    - value: docs
//	      expanded: false
//	      children: [intro.md]
//
// A scalar node is a leaf with that value.
type Document struct {
	Enumerator      string          `yaml:"enumerator" validate:"omitempty,tree_enumerator"`
	IndentSize      *int            `yaml:"indentSize" validate:"omitempty,min=0,max=20"`
	Lines           *bool           `yaml:"lines"`
	ExpandAll       bool            `yaml:"expandAll"`
	ItemStyle       *tint.StyleSpec `yaml:"itemStyle"`
	EnumeratorStyle *tint.StyleSpec `yaml:"enumeratorStyle"`
	Root            *NodeDocument   `yaml:"root"`
}

// NodeDocument is the YAML form of a Node.
type NodeDocument struct {
	Value    string          `yaml:"value"`
	Expanded *bool           `yaml:"expanded"`
	Style    *tint.StyleSpec `yaml:"style"`
	Children []NodeDocument  `yaml:"children" validate:"dive"`
}

// UnmarshalYAML decodes a scalar as a leaf and a mapping field by field.
func (d *NodeDocument) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Value)
	case yaml.MappingNode:
		type plain NodeDocument
		return node.Decode((*plain)(d))
	}
	return fmt.Errorf("line %d: tree node must be a string or a mapping", node.Line)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("tree_enumerator", func(fl validator.FieldLevel) bool {
			_, ok := LookupEnumerator(fl.Field().String())
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Load decodes and validates a YAML tree document. Structural problems such
// as empty values are left to Validate.
func Load(r io.Reader) (Tree, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Empty(), nil
		}
		return Tree{}, fmt.Errorf("decode tree document: %w", err)
	}
	return doc.Tree()
}

// LoadFile loads a YAML tree document from path.
func LoadFile(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tree{}, err
	}
	defer f.Close()
	return Load(f)
}

// Tree validates the document and converts it to a Tree.
func (d *Document) Tree() (Tree, error) {
	if err := validatorInstance().Struct(d); err != nil {
		return Tree{}, fmt.Errorf("invalid tree document: %w", err)
	}

	t := Empty()
	if d.Root != nil {
		root, err := d.Root.node()
		if err != nil {
			return Tree{}, err
		}
		t = t.WithRoot(root)
	}

	if d.Enumerator != "" {
		fn, _ := LookupEnumerator(d.Enumerator)
		t = t.WithEnumerator(fn)
	}
	if d.IndentSize != nil {
		var err error
		if t, err = t.WithIndentSize(*d.IndentSize); err != nil {
			return Tree{}, err
		}
	}
	if d.Lines != nil {
		t = t.WithLines(*d.Lines)
	}
	t = t.WithExpandAll(d.ExpandAll)

	if d.ItemStyle != nil {
		style, err := d.ItemStyle.Style()
		if err != nil {
			return Tree{}, fmt.Errorf("itemStyle: %w", err)
		}
		t = t.WithItemStyle(style.Func())
	}
	if d.EnumeratorStyle != nil {
		style, err := d.EnumeratorStyle.Style()
		if err != nil {
			return Tree{}, fmt.Errorf("enumeratorStyle: %w", err)
		}
		t = t.WithEnumeratorStyle(style.Func())
	}
	return t, nil
}

func (d *NodeDocument) node() (*Node, error) {
	n := Leaf(d.Value)
	if d.Expanded != nil {
		n.Expanded = *d.Expanded
	}
	if d.Style != nil {
		style, err := d.Style.Style()
		if err != nil {
			return nil, fmt.Errorf("node %q style: %w", d.Value, err)
		}
		n.Style = style.Func()
	}
	for i := range d.Children {
		child, err := d.Children[i].node()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}
