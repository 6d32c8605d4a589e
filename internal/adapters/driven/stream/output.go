package stream

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Output is a conversion destination. Writes go to a temporary file until
// Commit; standard output is written directly.
type Output struct {
	w    io.Writer
	tmp  *os.File
	path string
}

// CreateOutput prepares path for writing. When path selects stdio, writes
// go straight to stdout.
func CreateOutput(path string, stdout io.Writer) (*Output, error) {
	if IsStdio(path) {
		return &Output{w: stdout}, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return &Output{w: tmp, tmp: tmp, path: path}, nil
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Path returns the final output path, or "-" for stdout.
func (o *Output) Path() string {
	if o.tmp == nil {
		return StdioPath
	}
	return o.path
}

// Commit closes the temporary file and moves it over the target path.
func (o *Output) Commit() error {
	if o.tmp == nil {
		return nil
	}
	tmp := o.tmp
	o.tmp = nil

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), o.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace output: %w", err)
	}
	return nil
}

// Discard drops everything written so far. It is a no-op after Commit.
func (o *Output) Discard() {
	if o.tmp == nil {
		return
	}
	_ = o.tmp.Close()
	_ = os.Remove(o.tmp.Name())
	o.tmp = nil
}
