package exporter

import (
	"strings"

	"github.com/sleroq/zoho-to-joplin/internal/infra/zohohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	uncheckedTaskPrefix = "- [ ] "
	checkedTaskPrefix   = "- [x] "
)

// filterTodos rewrites checkbox inputs under root into task list prefixes and
// unwraps the span holding each item's text. It reports whether any checkbox
// was found. With lineBreaks set, a <br/> is placed between directly adjacent
// divs so they stay on separate lines after conversion.
func filterTodos(root *html.Node, lineBreaks bool) bool {
	var checkboxes []*html.Node
	zohohtml.Walk(root, func(n *html.Node) bool {
		if isCheckbox(n) {
			checkboxes = append(checkboxes, n)
		}
		return true
	})
	for _, input := range checkboxes {
		replaceCheckbox(input)
	}

	if lineBreaks {
		insertDivBreaks(root)
	}
	return len(checkboxes) > 0
}

// filterContent is filterTodos over an HTML string.
func filterContent(content string, lineBreaks bool) (bool, string, error) {
	body, err := zohohtml.ParseBody(content)
	if err != nil {
		return false, "", err
	}
	isTodo := filterTodos(body, lineBreaks)
	out, err := zohohtml.RenderChildren(body)
	if err != nil {
		return false, "", err
	}
	return isTodo, out, nil
}

func isCheckbox(n *html.Node) bool {
	return zohohtml.IsElement(n, atom.Input) &&
		strings.EqualFold(strings.TrimSpace(zohohtml.Attr(n, "type")), "checkbox")
}

func isChecked(n *html.Node) bool {
	v, ok := zohohtml.LookupAttr(n, "checked")
	return ok && !strings.EqualFold(strings.TrimSpace(v), "false")
}

func replaceCheckbox(input *html.Node) {
	parent := input.Parent
	if parent == nil {
		return
	}
	prefix := uncheckedTaskPrefix
	if isChecked(input) {
		prefix = checkedTaskPrefix
	}
	label := nextNonBlankSibling(input)

	parent.InsertBefore(&html.Node{Type: html.TextNode, Data: prefix}, input)
	parent.RemoveChild(input)
	if zohohtml.IsElement(label, atom.Span) {
		unwrap(label)
	}
}

func nextNonBlankSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.TextNode && strings.TrimSpace(s.Data) == "" {
			continue
		}
		return s
	}
	return nil
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

func insertDivBreaks(root *html.Node) {
	var divs []*html.Node
	zohohtml.Walk(root, func(n *html.Node) bool {
		if zohohtml.IsElement(n, atom.Div) && zohohtml.IsElement(n.NextSibling, atom.Div) {
			divs = append(divs, n)
		}
		return true
	})
	for _, div := range divs {
		div.Parent.InsertBefore(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br}, div.NextSibling)
	}
}
