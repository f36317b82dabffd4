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
	"path/filepath"

	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/sirupsen/logrus"
)

const DefaultMaxDepth = 16

// ExpandOptions bounds nested playlist expansion. Origin is the file the entries
// were read from; it counts as already visited.
type ExpandOptions struct {
	MaxDepth int
	Origin   string
}

// Expand replaces every entry that points to a local m3u file with the entries of
// that file, recursively and in place. Playlists that cannot be read, that loop
// back to a playlist being expanded or that nest deeper than MaxDepth are dropped
// with a warning.
func Expand(entries Entries, open Opener, opts ExpandOptions) Entries {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	visited := make(map[string]bool)
	if opts.Origin != "" {
		visited[filepath.Clean(opts.Origin)] = true
	}

	return expand(entries, open, 0, maxDepth, visited)
}

func expand(entries Entries, open Opener, depth, maxDepth int, visited map[string]bool) Entries {
	result := make(Entries, 0, len(entries))

	for _, entry := range entries {
		if !entry.Location().IsPlaylist() {
			result = append(result, entry)
			continue
		}

		path := entry.Location().Path()
		log := logger.WithFields(logrus.Fields{"playlist": path, "depth": depth + 1})

		if visited[path] {
			log.Warnf("Dropping entry: %v", ErrPlaylistCycle)
			continue
		}
		if depth+1 > maxDepth {
			log.Warnf("Dropping entry: %v (max %d)", ErrMaxDepth, maxDepth)
			continue
		}

		nested, err := readNested(path, open)
		if err != nil {
			log.Warnf("Dropping entry: %v", err)
			continue
		}

		visited[path] = true
		result = append(result, expand(nested, open, depth+1, maxDepth, visited)...)
		delete(visited, path)
	}

	return result
}

func readNested(path string, open Opener) (Entries, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNestedRead, err)
	}
	defer rc.Close()

	entries, err := ParseReader(rc, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNestedRead, err)
	}
	return entries, nil
}
