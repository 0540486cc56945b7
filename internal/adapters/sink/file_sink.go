// Package sink writes comparison results.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// FileSink implements ports.ResultSink by appending to UTF-8 text files.
type FileSink struct {
	logger ports.Logger
}

// NewFileSink creates a new file sink.
func NewFileSink(logger ports.Logger) *FileSink {
	return &FileSink{logger: logger}
}

// AppendLine appends line to path, creating parent directories as needed and
// adding a trailing newline unless line already ends with one.
func (s *FileSink) AppendLine(path, line string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	s.logger.Debug("Appended result line", "path", path, "bytes", len(line))
	return nil
}
