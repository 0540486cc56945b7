package ports

import "context"

// TextLoader reads a file as text. It never fails: unreadable or
// undecodable files come back as an empty string.
type TextLoader interface {
	Load(ctx context.Context, path string) string
}

// ResultSink appends a single line of output to a named location.
type ResultSink interface {
	AppendLine(path, line string) error
}
