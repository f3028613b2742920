// Package fonts finds TTF/OTF files for the terminal and overlay text.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions considered fonts.
var Exts = []string{".ttf", ".otf"}

// Scan returns the font files under dir as slash-separated paths relative to dir.
// A missing dir yields no fonts and no error.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the full path of the font under dir whose relative path contains search,
// ignoring case, spaces, dashes and underscores. An empty search matches any font.
// When several match, a "Regular" face wins; otherwise the first in walk order.
func Find(dir, search string) (string, error) {
	list, err := Scan(dir)
	if err != nil {
		return "", err
	}
	norm := normalize(strings.TrimSuffix(search, filepath.Ext(search)))
	var match []string
	for _, rel := range list {
		if strings.Contains(normalize(rel), norm) {
			match = append(match, rel)
		}
	}
	if len(match) == 0 {
		return "", os.ErrNotExist
	}
	pick := match[0]
	for _, rel := range match {
		if strings.Contains(strings.ToLower(rel), "regular") {
			pick = rel
			break
		}
	}
	return filepath.Join(dir, filepath.FromSlash(pick)), nil
}
