// Package contentful is a read-only client for the Contentful Content
// Delivery and Content Preview APIs.
package contentful

import "time"

// Sys is the system metadata attached to every Contentful resource.
type Sys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	LinkType    string    `json:"linkType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Locale      string    `json:"locale,omitempty"`
	Revision    int       `json:"revision,omitempty"`
	ContentType *sysRef   `json:"contentType,omitempty"`
}

type sysRef struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

// Entry is a structured content record. Field values are decoded JSON
// values where links have been replaced by *Entry, *Asset or, when the
// target was not included in the response, a Link stub.
type Entry struct {
	Sys    Sys
	Fields map[string]any
}

// ContentTypeID returns the id of the content type the entry conforms to.
func (e *Entry) ContentTypeID() string {
	if e == nil || e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// Asset is a binary file (usually an image) with its metadata fields
// (title, description, file).
type Asset struct {
	Sys    Sys
	Fields map[string]any
}

// Link is an unresolved reference to an entry or asset.
type Link struct {
	LinkType string // "Entry" or "Asset"
	ID       string
}

// EntryCollection is one page of entries. Total is the server-side match
// count, not len(Items).
type EntryCollection struct {
	Total int
	Skip  int
	Limit int
	Items []*Entry
}

type rawItem struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type entriesResponse struct {
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
	Items    []rawItem `json:"items"`
	Includes struct {
		Entry []rawItem `json:"Entry"`
		Asset []rawItem `json:"Asset"`
	} `json:"includes"`
}
