package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// StdioPath selects standard input or output.
const StdioPath = "-"

// IsStdio reports whether path refers to a standard stream.
func IsStdio(path string) bool {
	return path == "" || path == StdioPath
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}

// OpenInput opens path for reading. Standard input is returned, wrapped so
// that Close leaves it open, when path selects stdio.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if IsStdio(path) {
		return readCloser{Reader: stdin, close: func() error { return nil }}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".xz") {
		return f, nil
	}

	xr, err := xz.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xz error: %w", err)
	}
	return readCloser{Reader: xr, close: f.Close}, nil
}
