package zohohtml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const IndexFileName = "index.html"

// Document is one parsed note file.
type Document struct {
	Title    string
	Notebook string
	Reminder string
	Body     *html.Node
}

// ReadIndex lists the note files referenced by index.html, one entry per
// list item, in document order. Items without a link get an empty Href.
func ReadIndex(inputDir string) ([]zohodomain.IndexEntry, error) {
	root, err := parseFile(filepath.Join(inputDir, IndexFileName))
	if err != nil {
		return nil, err
	}

	var out []zohodomain.IndexEntry
	Walk(root, func(n *html.Node) bool {
		if !IsElement(n, atom.Li) {
			return true
		}
		href := ""
		if a := FindElement(n, atom.A); a != nil {
			href = strings.TrimSpace(Attr(a, "href"))
		}
		out = append(out, zohodomain.IndexEntry{Position: len(out), Href: href})
		return false
	})
	return out, nil
}

func ReadNote(path string) (Document, error) {
	root, err := parseFile(path)
	if err != nil {
		return Document{}, err
	}

	doc := Document{}
	if title := FindElement(root, atom.Title); title != nil {
		doc.Title = strings.TrimSpace(TextContent(title))
	}
	doc.Body = FindElement(root, atom.Body)
	if doc.Body == nil {
		return Document{}, fmt.Errorf("parse %s: no body element", path)
	}
	doc.Notebook = Attr(doc.Body, "data-notebook")
	doc.Reminder = Attr(doc.Body, "data-remainder")
	return doc, nil
}

func parseFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}
