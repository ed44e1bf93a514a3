// Package source resolves text sources (files, stdin) to UTF-8 strings.
// It separates a missing source from every other read failure.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// ErrNotFound reports a source that does not exist. It matches
// fs.ErrNotExist with errors.Is.
var ErrNotFound = fmt.Errorf("file not found: %w", fs.ErrNotExist)

// IOError is any read failure other than a missing source.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Reader resolves an identifier to the full text it names.
type Reader interface {
	ReadText(ctx context.Context, identifier string) (string, error)
}

// FileReader reads files from the local filesystem.
type FileReader struct {
	// Encoding of the files, see Encodings. Empty means "utf8".
	Encoding string
	Logger   *zap.Logger
}

// NewFileReader returns a FileReader for the given encoding.
func NewFileReader(encoding string, logger *zap.Logger) *FileReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileReader{Encoding: encoding, Logger: logger}
}

// ReadText returns the decoded contents of path. A missing path yields an
// error wrapping ErrNotFound; anything else yields an *IOError.
func (r *FileReader) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", &IOError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &IOError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", &IOError{Op: "read", Path: path, Err: err}
	}

	r.logger().Debug("source read",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.String("encoding", r.encoding()),
	)

	text, err := ConvertToUTF8(data, r.Encoding)
	if err != nil {
		return "", &IOError{Op: "decode", Path: path, Err: err}
	}

	return string(text), nil
}

// ReadAll decodes everything from rd, typically stdin. name is used in
// error messages only.
func ReadAll(rd io.Reader, name, encoding string) (string, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return "", &IOError{Op: "read", Path: name, Err: err}
	}

	text, err := ConvertToUTF8(data, encoding)
	if err != nil {
		return "", &IOError{Op: "decode", Path: name, Err: err}
	}

	return string(text), nil
}

func (r *FileReader) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *FileReader) encoding() string {
	if r.Encoding == "" {
		return "utf8"
	}
	return r.Encoding
}

var _ Reader = (*FileReader)(nil)
