package domain

import "io"

// Attachment is the stored reference to an uploaded file. Binary content is
// never kept with the comment.
type Attachment struct {
	URL      string `json:"url" yaml:"url"`
	Type     string `json:"type" yaml:"type"`
	Filename string `json:"filename" yaml:"filename"`
	Size     int64  `json:"size" yaml:"size"`
}

type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
