package domain

import (
	"strings"
	"time"
)

// AttachmentType is the media kind of a message attachment.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
)

// AttachmentTypeForMIME derives the attachment kind from a content type.
func AttachmentTypeForMIME(mimeType string) (AttachmentType, bool) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return AttachmentImage, true
	case strings.HasPrefix(mimeType, "video/"):
		return AttachmentVideo, true
	default:
		return "", false
	}
}

// Attachment references an already uploaded file.
type Attachment struct {
	Type AttachmentType
	URL  string
}

// Message is one entry in a ticket conversation. Messages are append-only.
type Message struct {
	ID          string
	UserID      string
	UserName    string
	Content     string
	Timestamp   time.Time
	Attachments []Attachment
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	out := m
	if m.Attachments != nil {
		out.Attachments = append([]Attachment(nil), m.Attachments...)
	}
	return out
}

// IsEmpty reports whether the message has neither text nor attachments.
func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Content) == "" && len(m.Attachments) == 0
}
