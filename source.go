package json2yaml

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolve turns a path argument into the sources it stands for.
//
// A regular file is its own single source, whatever its extension.
// A directory stands for its immediate "*.json" regular files, sorted by name;
// sub-directories are not entered.
// Anything else is an *InvalidSourceError.
func (c *Converter) Resolve(arg string) ([]string, error) {
	stat, err := c.fs.Stat(arg)
	if err != nil {
		return nil, &InvalidSourceError{Path: arg, Err: err}
	}

	switch {
	case stat.Mode().IsRegular():
		return []string{arg}, nil
	case stat.IsDir():
		return c.scanDir(arg)
	}

	return nil, &InvalidSourceError{Path: arg}
}

func (c *Converter) scanDir(dir string) ([]string, error) {
	c.logger.Debug("searching for sources in directory", "dir", dir, "pattern", sourcePattern)

	// sorted by name
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, &InvalidSourceError{Path: dir, Err: err}
	}

	var sources []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(sourcePattern, entry.Name()); !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		ok, err := isRegularFile(c.fs, path)
		if err != nil {
			return nil, &InvalidSourceError{Path: path, Err: err}
		}
		if !ok {
			c.logger.Debug("ignoring entry that is not a regular file", "path", path)
			continue
		}

		sources = append(sources, path)
	}

	c.logger.Debug("found sources in directory", "dir", dir, "count", len(sources))

	return sources, nil
}

// isRegularFile follows symbolic links. A dangling link is not an error.
func isRegularFile(fs afero.Fs, path string) (bool, error) {
	stat, err := fs.Stat(path)
	if err == nil {
		return stat.Mode().IsRegular(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
