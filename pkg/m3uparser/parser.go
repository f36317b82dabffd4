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

// Package m3uparser reads extended M3U playlists into classified entries: live
// channels, movies and series episodes.
package m3uparser

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/sirupsen/logrus"
)

const maxLineSize = 1024 * 1024

// scanState is carried from one line to the next. pending is the directive
// waiting for its location line.
type scanState struct {
	pending *Directive
}

// step consumes one non-blank, right-trimmed line. It returns the next state and
// the entry produced by the line, if any.
func step(state scanState, line, baseDir string) (scanState, *Entry) {
	if strings.HasPrefix(line, commentMarker) {
		d, ok := MatchDirective(line)
		if !ok {
			logger.WithFields(logrus.Fields{"line": line}).Debugf("Ignoring comment: %v", ErrMalformedDirective)
			return state, nil
		}
		if state.pending != nil {
			logger.WithFields(logrus.Fields{
				"discarded": state.pending.Title,
				"line":      line,
			}).Warn("Directive without location replaced by a newer one")
		}
		return scanState{pending: &d}, nil
	}

	pending := state.pending
	loc, err := Resolve(line, baseDir)
	if err != nil {
		logger.WithFields(logrus.Fields{"line": line}).Warnf("Dropping location: %v", err)
		return scanState{}, nil
	}

	if pending == nil {
		entry := Classify(loc, nil, nil, Metadata{})
		return scanState{}, &entry
	}

	var duration *time.Duration
	if pending.HasDuration {
		duration = &pending.Duration
	}
	entry := Classify(loc, duration, &pending.Title, ParseMetadata(pending.Attributes))
	return scanState{}, &entry
}

// ParseLines builds the entries of a playlist from its lines. Relative paths are
// resolved against baseDir. Malformed lines are logged and skipped; a directive
// that is not followed by a location produces nothing.
func ParseLines(lines iter.Seq[string], baseDir string) Entries {
	entries := make(Entries, 0)
	state := scanState{}
	first := true

	for raw := range lines {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		if first {
			first = false
			if line == headerMarker {
				continue
			}
		}
		if line == "" {
			continue
		}

		var entry *Entry
		state, entry = step(state, line, baseDir)
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	if state.pending != nil {
		logger.WithFields(logrus.Fields{"title": state.pending.Title}).Debug("Directive at end of playlist has no location")
	}

	return entries
}

// ParseReader parses the playlist read from r. Only read errors are returned.
func ParseReader(r io.Reader, baseDir string) (Entries, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	entries := ParseLines(scannerLines(scanner), baseDir)
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}
	return entries, nil
}

// ParseString parses a playlist held in memory.
func ParseString(s, baseDir string) Entries {
	return ParseLines(slices.Values(strings.Split(s, "\n")), baseDir)
}

// ParseFile parses the playlist stored at path, decoding it with the named
// character encoding (UTF-8 when empty). Relative locations are resolved against
// the directory of the file.
func ParseFile(path, encoding string) (Entries, error) {
	open, err := NewFileOpener(encoding)
	if err != nil {
		return nil, err
	}
	return parseFile(path, open)
}

func parseFile(path string, open Opener) (Entries, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	rc, err := open(absPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ParseReader(rc, filepath.Dir(absPath))
}

// Options configures Load.
type Options struct {
	Encoding     string
	ExpandNested bool
	MaxDepth     int
}

// Load parses the playlist at path and, when requested, replaces entries that
// point to other local playlists with the entries of those playlists.
func Load(path string, opts Options) (Entries, error) {
	open, err := NewFileOpener(opts.Encoding)
	if err != nil {
		return nil, err
	}

	entries, err := parseFile(path, open)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Parsed %s: %d entries", path, len(entries))

	if !opts.ExpandNested {
		return entries, nil
	}

	origin, _ := filepath.Abs(path)
	return Expand(entries, open, ExpandOptions{MaxDepth: opts.MaxDepth, Origin: origin}), nil
}

func scannerLines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}
