/*
Copyright © 2024 Alexandre Pires

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package m3uparser

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

var schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]+:`)

// LocationKind tells a filesystem path from a remote locator.
type LocationKind int

const (
	LocationPath LocationKind = iota
	LocationRemote
)

// Location is a normalized reference to playable content. The zero value is not a
// valid location; use Resolve.
type Location struct {
	kind  LocationKind
	value string
}

// Resolve validates raw and turns it into a Location. Relative paths are joined to
// baseDir when it is not empty. Nothing is read from disk.
func Resolve(raw, baseDir string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}

	// Single letter schemes are left to the path branch so "C:\..." stays a path.
	if schemeRegex.MatchString(raw) {
		u, err := url.Parse(raw)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocation, raw, err)
		}
		if strings.EqualFold(u.Scheme, "file") {
			if u.Path == "" {
				return Location{}, fmt.Errorf("%w: %q: empty file path", ErrInvalidLocation, raw)
			}
			return resolvePath(u.Path, baseDir)
		}
		return Location{kind: LocationRemote, value: u.String()}, nil
	}

	if strings.Contains(raw, "://") {
		return Location{}, fmt.Errorf("%w: %q: malformed url", ErrInvalidLocation, raw)
	}

	return resolvePath(raw, baseDir)
}

func resolvePath(p, baseDir string) (Location, error) {
	if strings.ContainsRune(p, 0) {
		return Location{}, fmt.Errorf("%w: %q: NUL in path", ErrInvalidLocation, p)
	}
	if !filepath.IsAbs(p) && baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	return Location{kind: LocationPath, value: filepath.Clean(p)}, nil
}

func (l Location) Kind() LocationKind {
	return l.kind
}

func (l Location) IsPath() bool {
	return l.kind == LocationPath && l.value != ""
}

func (l Location) IsRemote() bool {
	return l.kind == LocationRemote
}

// Path returns the filesystem path, or "" for remote locations.
func (l Location) Path() string {
	if !l.IsPath() {
		return ""
	}
	return l.value
}

// IsPlaylist reports whether the location is a local file that looks like another
// m3u playlist.
func (l Location) IsPlaylist() bool {
	if !l.IsPath() {
		return false
	}
	switch strings.ToLower(filepath.Ext(l.value)) {
	case ".m3u", ".m3u8":
		return true
	}
	return false
}

func (l Location) String() string {
	return l.value
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.value), nil
}
