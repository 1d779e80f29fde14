package exporter

import (
	"strings"

	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
	"github.com/sleroq/zoho-to-joplin/internal/infra/zohohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const webclipStyle = "-evernote-webclip:true"

// findAttachments lists image sources and link targets under root in document
// order. A note clipped from a web page gets the webclip marker appended.
func findAttachments(root *html.Node) []string {
	var out []string
	webclip := false
	zohohtml.Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		var ref string
		switch n.DataAtom {
		case atom.Img:
			ref = zohohtml.Attr(n, "src")
		case atom.A:
			ref = zohohtml.Attr(n, "href")
		}
		if ref = strings.TrimSpace(ref); ref != "" {
			out = append(out, ref)
		}
		if isWebclipStyle(zohohtml.Attr(n, "style")) {
			webclip = true
		}
		return true
	})
	if webclip {
		out = append(out, zohodomain.WebclipAttachment)
	}
	return out
}

func isWebclipStyle(style string) bool {
	if style == "" {
		return false
	}
	compact := strings.ToLower(strings.Join(strings.Fields(style), ""))
	return strings.Contains(compact, webclipStyle)
}

// attachmentLinks renders the trailing block of URL and webclip attachments.
// Local files are left out, they are copied next to the note instead.
func attachmentLinks(attachments []string) string {
	var b strings.Builder
	for _, attachment := range attachments {
		if !zohodomain.IsLinkedAttachment(attachment) {
			continue
		}
		b.WriteString(attachment)
		b.WriteString("  \n")
	}
	if b.Len() == 0 {
		return ""
	}
	return "  \n" + b.String()
}
