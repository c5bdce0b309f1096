package store

import "time"

// Document is one loaded revision of the node configuration. A new
// *Document is allocated only when the persisted text changes, so pointer
// identity tells consumers whether the configuration moved.
type Document struct {
	Text     string
	LoadedAt time.Time
}

// Snapshot is an immutable view of the store state handed to subscribers.
type Snapshot struct {
	Document        *Document
	Blocked         bool
	Loading         bool
	LastError       error
	Saving          bool
	SaveLastSuccess time.Time
	SaveLastError   time.Time
}

// Text returns the document text, or "" when no document is loaded.
func (s Snapshot) Text() string {
	if s.Document == nil {
		return ""
	}
	return s.Document.Text
}

// HasDocument reports whether a document has been loaded.
func (s Snapshot) HasDocument() bool {
	return s.Document != nil
}
