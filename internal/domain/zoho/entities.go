package zoho

import "time"

// WebclipAttachment stands in for the full-page attachment of a note clipped
// from a web page. It never matches a file in the export.
const WebclipAttachment = "**evernote-webclip**"

// NotebookPayload is the JSON carried by the data-notebook body attribute.
type NotebookPayload struct {
	Name         string `json:"name"`
	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`
}

// ReminderPayload is the JSON carried by the data-remainder body attribute.
type ReminderPayload struct {
	Type         string `json:"type"`
	IsCompleted  any    `json:"is-completed"`
	ReminderTime any    `json:"ZReminderTime"`
}

type IndexEntry struct {
	Position int
	Href     string
}

// Note is one converted note, ready to be written.
type Note struct {
	Position    int
	SourceFile  string
	Title       string
	FolderName  string
	Created     string
	Updated     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsTodo      bool
	Completed   string
	Due         string
	Attachments []string
	Content     string
}
