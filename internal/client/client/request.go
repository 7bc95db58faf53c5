package client

import (
	"io"
	"net/url"
)

// Request describes one backend call.
type Request struct {
	Method string
	// Path is appended to the base URL as is, e.g. "/products/42".
	Path  string
	Query url.Values
	// Body is encoded as JSON. Ignored when File is set.
	Body any
	// File turns the request into multipart/form-data with one file part.
	File *FilePart
	// SkipAuth suppresses the Authorization header. Used by login and
	// registration.
	SkipAuth bool
}

// FilePart is a file field of a multipart request.
type FilePart struct {
	FieldName string
	FileName  string
	Content   io.Reader
}
