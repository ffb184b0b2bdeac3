// Package assets maps symbolic asset names to files on disk.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// ErrUnknownAsset is returned when a name is not in the catalog
var ErrUnknownAsset = errors.New("unknown asset")

// Catalog resolves symbolic asset names against a data directory.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	dir   string
	files map[string]string
}

// NewCatalog creates a catalog of name -> file (relative to dir)
func NewCatalog(dir string, files map[string]string) *Catalog {
	c := &Catalog{dir: dir, files: make(map[string]string, len(files))}
	for name, file := range files {
		c.files[name] = file
	}
	return c
}

// Path returns the filesystem path of the named asset
func (c *Catalog) Path(name string) (string, error) {
	file, ok := c.files[name]
	if !ok || file == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownAsset, name)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(c.dir, file), nil
}

// MustPath is Path for names the program cannot run without.
// An unknown name is a programming error.
func (c *Catalog) MustPath(name string) string {
	path, err := c.Path(name)
	if err != nil {
		panic(err)
	}
	return path
}

// Has reports whether name is in the catalog
func (c *Catalog) Has(name string) bool {
	_, err := c.Path(name)
	return err == nil
}

// Names returns the catalog's names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.files))
	for name := range c.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir returns the data directory
func (c *Catalog) Dir() string {
	return c.dir
}
