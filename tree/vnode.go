package tree

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/germtb/gox"
)

// FromVNode converts an element tree into nodes, one per element. Function
// components are expanded first. Text nodes become their quoted content;
// elements become their type followed by their props in key order, e.g.
// `box height=1 width=10`.
func FromVNode(v gox.VNode) *Node {
	if comp, ok := v.Type.(gox.Component); ok {
		props := gox.Props{}
		maps.Copy(props, v.Props)
		props["children"] = v.Children
		return FromVNode(comp(props))
	}

	n := Leaf(describeVNode(v))
	for _, c := range v.Children {
		n.Children = append(n.Children, FromVNode(c))
	}
	return n
}

func describeVNode(v gox.VNode) string {
	typ, ok := v.Type.(string)
	if !ok {
		return fmt.Sprintf("<%T>", v.Type)
	}
	if typ == gox.TextNodeType {
		return strconv.Quote(textContent(v))
	}
	if typ == gox.FragmentNodeType {
		typ = "fragment"
	}

	var sb strings.Builder
	sb.WriteString(typ)
	for _, k := range slices.Sorted(maps.Keys(v.Props)) {
		if k == "children" {
			continue
		}
		fmt.Fprintf(&sb, " %s=%v", k, v.Props[k])
	}
	return sb.String()
}

func textContent(v gox.VNode) string {
	if content, ok := v.Props["content"].(string); ok {
		return content
	}
	text, _ := v.Props["text"].(string)
	return text
}
