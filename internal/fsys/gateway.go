package fsys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Gateway is the only path by which the browser touches the filesystem.
type Gateway struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) *Gateway {
	return &Gateway{fs: fs}
}

// NewOS returns a gateway over the real filesystem.
func NewOS() *Gateway {
	return New(afero.NewOsFs())
}

// Fs exposes the underlying filesystem.
func (g *Gateway) Fs() afero.Fs {
	return g.fs
}

// ListChildren returns the full paths of the immediate children of dir, in
// the order the filesystem reports them.
func (g *Gateway) ListChildren(dir string) ([]string, error) {
	return g.ListChildrenN(dir, -1)
}

// ListChildrenN is ListChildren reading at most n names. n <= 0 reads them all.
func (g *Gateway) ListChildrenN(dir string, n int) ([]string, error) {
	f, err := g.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(n)
	if err != nil && !(n > 0 && errors.Is(err, io.EOF)) {
		return nil, err
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// IsDir reports whether path currently names a directory. Errors read as false.
func (g *Gateway) IsDir(path string) bool {
	ok, err := afero.IsDir(g.fs, path)
	return err == nil && ok
}

// Stat returns file info for path.
func (g *Gateway) Stat(path string) (os.FileInfo, error) {
	return g.fs.Stat(path)
}

// Exists reports whether path exists.
func (g *Gateway) Exists(path string) bool {
	ok, err := afero.Exists(g.fs, path)
	return err == nil && ok
}

// ReadPrefix reads at most n bytes from the start of a file.
func (g *Gateway) ReadPrefix(path string, n int) ([]byte, error) {
	f, err := g.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:read], nil
}

// CreateFile creates an empty file, failing if something already exists there.
func (g *Gateway) CreateFile(path string) error {
	f, err := g.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		logrus.Debugf("Gateway: create file %s failed: %v", path, err)
		return err
	}
	return f.Close()
}

// CreateDirectory creates a single directory. The parent must already exist.
func (g *Gateway) CreateDirectory(path string) error {
	if err := g.fs.Mkdir(path, 0755); err != nil {
		logrus.Debugf("Gateway: create directory %s failed: %v", path, err)
		return err
	}
	return nil
}

// DeleteFile removes a single file or empty directory.
func (g *Gateway) DeleteFile(path string) error {
	if err := g.fs.Remove(path); err != nil {
		logrus.Debugf("Gateway: delete %s failed: %v", path, err)
		return err
	}
	return nil
}

// DeleteTree removes a directory and everything beneath it. RemoveAll reports
// success for a path that does not exist, so that case is checked first.
func (g *Gateway) DeleteTree(path string) error {
	if _, err := g.fs.Stat(path); err != nil {
		return err
	}
	if err := g.fs.RemoveAll(path); err != nil {
		logrus.Debugf("Gateway: delete tree %s failed: %v", path, err)
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
