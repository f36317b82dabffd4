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
	"regexp"
	"strconv"
	"time"

	"github.com/a13labs/m3ucatalog/pkg/logger"
)

const (
	headerMarker    = "#EXTM3U"
	commentMarker   = "#"
	directivePrefix = "#EXTINF:"
)

// The attribute group is greedy, so the title is whatever follows the last comma.
var directiveRegex = regexp.MustCompile(`^` + regexp.QuoteMeta(directivePrefix) + `([-+]?\d+)(.*),(.+)$`)

// Directive is a parsed "#EXTINF:<seconds><attributes>,<title>" line.
type Directive struct {
	Duration    time.Duration
	HasDuration bool
	Attributes  string
	Title       string
}

// MatchDirective matches line against the EXTINF grammar. The whole line must
// match. A negative or out of range duration leaves HasDuration false.
func MatchDirective(line string) (Directive, bool) {
	m := directiveRegex.FindStringSubmatch(line)
	if m == nil {
		return Directive{}, false
	}

	d := Directive{
		Attributes: m[2],
		Title:      m[3],
	}

	seconds, err := strconv.ParseInt(m[1], 10, 64)
	switch {
	case err != nil:
		logger.Debugf("Ignoring unusable EXTINF duration %q: %v", m[1], err)
	case seconds >= 0 && seconds <= maxSeconds:
		d.Duration = time.Duration(seconds) * time.Second
		d.HasDuration = true
	case seconds > maxSeconds:
		logger.Debugf("Ignoring EXTINF duration %d, out of range", seconds)
	}

	return d, true
}

const maxSeconds = int64(1<<63-1) / int64(time.Second)
