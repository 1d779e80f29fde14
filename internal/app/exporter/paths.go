package exporter

import (
	"strconv"
	"strings"

	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
)

const untitledName = "Untitled"

// pathSegment guards an already sanitized name against resolving to the
// parent or current directory.
func pathSegment(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return untitledName
	}
	return name
}

// noteFileName is "<title> <position>.md"; the position keeps notes with the
// same title apart.
func noteFileName(n note) string {
	title := pathSegment(zohodomain.SanitizeName(n.Title, zohodomain.SanitizeFull))
	return title + " " + strconv.Itoa(n.Position) + ".md"
}
