package chunk

import (
	"os"
)

// File is a Scanner over an open file. The file is closed as soon as the
// tokens are exhausted; Close releases it early when iteration is abandoned.
type File struct {
	*Scanner
	path string
	f    *os.File
}

func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Wrapped: err}
	}
	return &File{Scanner: NewScanner(f), path: path, f: f}, nil
}

func (f *File) Scan() bool {
	if f.Scanner.Scan() {
		return true
	}
	_ = f.Close()
	return false
}

// Err reports a read failure as a SourceError.
func (f *File) Err() error {
	if err := f.Scanner.Err(); err != nil {
		return &SourceError{Path: f.path, Wrapped: err}
	}
	return nil
}

// Close is safe to call more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

func (f *File) Path() string { return f.path }
