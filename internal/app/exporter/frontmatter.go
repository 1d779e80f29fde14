package exporter

import (
	"bytes"
	"strings"

	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
)

// renderNote writes the front matter block followed by the Markdown body.
// Keys come in a fixed order: title, created, updated, then completed? and
// due for todos.
func renderNote(n note) string {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	writeFrontmatterLine(&buf, "title", zohodomain.SanitizeName(n.Title, zohodomain.SanitizeDisplay))
	writeFrontmatterLine(&buf, "created", n.Created)
	writeFrontmatterLine(&buf, "updated", n.Updated)
	if n.IsTodo {
		completed := n.Completed
		if completed == "" {
			completed = "no"
		}
		writeFrontmatterLine(&buf, "completed?", completed)
		if n.Due != "" {
			writeFrontmatterLine(&buf, "due", n.Due)
		}
	}
	buf.WriteString("---\n\n")
	buf.WriteString(n.Content)
	buf.WriteString("\n")
	return buf.String()
}

// Values are written as-is, only line breaks are folded so a value cannot
// spill into the next key.
func writeFrontmatterLine(buf *bytes.Buffer, key string, value string) {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(value)
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\n")
}
