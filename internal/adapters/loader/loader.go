// Package loader reads comparison inputs from disk as text.
package loader

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

var errInvalidUTF8 = errors.New("invalid utf-8")

// Attempt is one step of the decoding chain.
type Attempt struct {
	Encoding string
	Decode   func(raw []byte) (string, error)
}

// DefaultAttempts is strict UTF-8 followed by GBK with undecodable bytes dropped.
func DefaultAttempts() []Attempt {
	return []Attempt{
		{Encoding: "utf-8", Decode: decodeUTF8},
		{Encoding: "gbk", Decode: decodeGBKLenient},
	}
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errInvalidUTF8
	}
	return string(raw), nil
}

// decodeGBKLenient decodes GBK and drops whatever could not be decoded. GBK
// has no mapping to U+FFFD, so every replacement character in the output
// stands for an invalid input byte.
func decodeGBKLenient(raw []byte) (string, error) {
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(out), string(utf8.RuneError), ""), nil
}

// FileLoader implements ports.TextLoader over the local filesystem.
type FileLoader struct {
	attempts []Attempt
	logger   ports.Logger
	buffers  *pool.BufferPool
}

// New creates a FileLoader. With no attempts, DefaultAttempts is used.
func New(logger ports.Logger, attempts ...Attempt) *FileLoader {
	if len(attempts) == 0 {
		attempts = DefaultAttempts()
	}
	return &FileLoader{
		attempts: attempts,
		logger:   logger,
		buffers:  pool.NewBufferPool(32 * 1024),
	}
}

// Load returns the text of path, or "" when it cannot be read or decoded.
func (f *FileLoader) Load(ctx context.Context, path string) string {
	text, _ := f.LoadWithEncoding(ctx, path)
	return text
}

// LoadWithEncoding is Load that also reports which encoding succeeded. The
// encoding is empty when the result is the empty fallback.
func (f *FileLoader) LoadWithEncoding(ctx context.Context, path string) (string, string) {
	if err := ctx.Err(); err != nil {
		f.logger.Warn("Load cancelled", "path", path, "error", err)
		return "", ""
	}

	buf := f.buffers.Get()
	defer f.buffers.Put(buf)

	file, err := os.Open(path)
	if err != nil {
		f.logger.Warn("Cannot open input file", "path", path, "error", err)
		return "", ""
	}
	defer file.Close()

	if _, err := buf.ReadFrom(file); err != nil {
		f.logger.Warn("Cannot read input file", "path", path, "error", err)
		return "", ""
	}

	for _, attempt := range f.attempts {
		text, err := attempt.Decode(buf.Bytes())
		if err != nil {
			f.logger.Debug("Decoding attempt failed",
				"path", path,
				"encoding", attempt.Encoding,
				"error", err,
			)
			continue
		}
		f.logger.Debug("Loaded input file",
			"path", path,
			"encoding", attempt.Encoding,
			"bytes", buf.Len(),
		)
		return normalizeNewlines(text), attempt.Encoding
	}

	f.logger.Warn("No decoding succeeded", "path", path)
	return "", ""
}

// normalizeNewlines turns CRLF and lone CR into LF.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
