package exporter

import (
	"fmt"
	"path/filepath"

	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
	"github.com/sleroq/zoho-to-joplin/internal/infra/zohohtml"
)

// buildNote parses one note file into a complete note. Nothing is written.
func (r *run) buildNote(entry zohodomain.IndexEntry) (note, error) {
	doc, err := zohohtml.ReadNote(filepath.Join(r.InputDir, filepath.FromSlash(entry.Href)))
	if err != nil {
		return note{}, err
	}

	notebook, err := zohodomain.DecodeNotebookPayload(doc.Notebook)
	if err != nil {
		return note{}, err
	}
	createdAt, err := zohodomain.ParseTimestamp(notebook.CreatedDate)
	if err != nil {
		return note{}, fmt.Errorf("created date: %w", err)
	}
	updatedAt, err := zohodomain.ParseTimestamp(notebook.ModifiedDate)
	if err != nil {
		return note{}, fmt.Errorf("modified date: %w", err)
	}

	n := note{
		Position:   entry.Position,
		SourceFile: entry.Href,
		Title:      doc.Title,
		FolderName: notebook.Name,
		Created:    zohodomain.FormatTime(createdAt),
		Updated:    zohodomain.FormatTime(updatedAt),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	n.IsTodo = filterTodos(doc.Body, !r.DisableLineBreaks)
	if n.IsTodo {
		n.Completed = "no"
	}
	if err := r.applyReminder(&n, doc.Reminder); err != nil {
		return note{}, err
	}

	n.Attachments = findAttachments(doc.Body)
	content, err := convertBody(r.markdown, doc.Body)
	if err != nil {
		return note{}, err
	}
	n.Content = content + attachmentLinks(n.Attachments)
	return n, nil
}

// applyReminder turns a note with a reminder payload into a todo. A payload
// that cannot be decoded is reported and ignored. A reminder without a time
// has no due date.
func (r *run) applyReminder(n *note, raw string) error {
	reminder, ok, err := zohodomain.DecodeReminderPayload(raw)
	if err != nil {
		r.warnf("Ignoring reminder of %s: %v", n.SourceFile, err)
		return nil
	}
	if !ok || !reminder.IsReminder() {
		return nil
	}

	n.IsTodo = true
	n.Completed = reminder.Completed()
	if due := reminder.DueTime(); due != "" {
		formatted, err := zohodomain.FormatTimestamp(due)
		if err != nil {
			return fmt.Errorf("reminder time: %w", err)
		}
		n.Due = formatted
	}
	return nil
}
