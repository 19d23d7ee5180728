package format

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Sink receives one rendered declaration per class.
type Sink interface {
	Write(path string, text []byte) error
}

// DirSink writes units below Root, creating directories as needed.
type DirSink struct {
	Root string
}

func (s DirSink) Write(path string, text []byte) error {
	target := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %s", target)
	}
	if err := os.WriteFile(target, text, 0644); err != nil {
		return errors.Wrapf(err, "write %s", target)
	}
	return nil
}

type Output struct {
	Path string
	Text string
}

// MemorySink keeps written units in order.
type MemorySink struct {
	Outputs []Output
}

func (s *MemorySink) Write(path string, text []byte) error {
	s.Outputs = append(s.Outputs, Output{Path: path, Text: string(text)})
	return nil
}

// Get returns the text written for path.
func (s *MemorySink) Get(path string) (string, bool) {
	for _, o := range s.Outputs {
		if o.Path == path {
			return o.Text, true
		}
	}
	return "", false
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(path string, text []byte) error

func (f SinkFunc) Write(path string, text []byte) error { return f(path, text) }
