package main

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

var errNotFound = errors.New("not found")

// DirListing is the per-request view of one directory under the root.
type DirListing struct {
	root      string
	dirPath   string
	isRoot    bool
	parentDir string // empty at the root
}

// NewDirListing resolves a URL path (leading/trailing slashes already
// stripped, "" meaning the root) to a directory under |root|.
//
// URL paths are untrusted, so after cleaning, a result that escapes
// the root is rejected as errNotFound rather than resolved. The same
// goes for paths that exist but are not directories.
func NewDirListing(root, urlPath string) (*DirListing, error) {
	dirPath := filepath.Join(root, filepath.FromSlash(urlPath))
	if dirPath != root && !strings.HasPrefix(dirPath, root+string(filepath.Separator)) {
		return nil, errNotFound
	}

	fi, err := os.Stat(dirPath)
	if err != nil || !fi.IsDir() {
		return nil, errNotFound
	}

	l := &DirListing{
		root:    root,
		dirPath: dirPath,
		isRoot:  urlPath == "",
	}
	if !l.isRoot {
		l.parentDir = filepath.Dir(dirPath)
	}
	return l, nil
}

// urlPathFor maps an absolute directory path back to a URL path by
// stripping the root prefix and rewriting the platform separator to
// "/". Paths outside the root, and the root itself, map to "/".
func urlPathFor(root, dirPath string) string {
	urlPath := ""
	if strings.HasPrefix(dirPath, root) {
		urlPath = strings.ReplaceAll(dirPath[len(root):], string(filepath.Separator), "/")
	}
	if urlPath == "" {
		urlPath = "/"
	}
	return urlPath
}

// HTML renders the listing: a parent link when not at the root, then
// one line per visible entry. Directories are hyperlinked with a
// trailing "/", plain files appear as text. Entries whose name starts
// with "." are skipped entirely.
//
// Entry names are HTML-escaped before rendering, and os.ReadDir gives
// lexical order, so the output is deterministic.
func (l *DirListing) HTML() (string, error) {
	entries, err := os.ReadDir(l.dirPath)
	if err != nil {
		return "", fmt.Errorf("Failed to read directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("<html><body>")

	if !l.isRoot {
		parentURL := urlPathFor(l.root, l.parentDir)
		fmt.Fprintf(&b, `<a href="%s">[parent directory]</a><br>`, parentURL)
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			subURL := urlPathFor(l.root, filepath.Join(l.dirPath, name))
			fmt.Fprintf(&b, `<a href="%s">%s/</a><br>`, subURL, html.EscapeString(name))
		} else {
			b.WriteString(html.EscapeString(name) + "<br>")
		}
	}

	b.WriteString("</body></html>")
	return b.String(), nil
}
