package gmail

import "time"

// SendRequest is the input for sending an HTML email.
type SendRequest struct {
	To       string
	Subject  string
	HTMLBody string
}

// SearchRequest is the input for searching the inbox.
type SearchRequest struct {
	// Query uses Gmail search syntax, e.g. "subject:(passagem)".
	Query      string
	UnreadOnly bool
	Limit      int64
}

// Message is a simplified inbox entry.
type Message struct {
	ID      string
	From    string
	Subject string
	Snippet string
	Date    time.Time
	Unread  bool
}
