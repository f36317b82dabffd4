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
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var vodExtensions = map[string]bool{
	"mkv":  true,
	"avi":  true,
	"mp4":  true,
	"mov":  true,
	"wmv":  true,
	"flv":  true,
	"webm": true,
}

const (
	seasonMarker  = `(?:s|season|sezona)`
	episodeMarker = `(?:e|episode|epizoda)`
)

var (
	seriesRegex  = regexp.MustCompile(seasonMarker + `.{0,2}\d{1,2}\D*?` + episodeMarker + `.{0,2}\d{1,2}`)
	seasonRegex  = regexp.MustCompile(seasonMarker + `.{0,2}\d{1,2}`)
	episodeRegex = regexp.MustCompile(episodeMarker + `.{0,2}\d{1,2}`)
	numberRegex  = regexp.MustCompile(`\d{1,2}`)
)

// Classification is the outcome of ClassifyTitle.
type Classification struct {
	Kind        Kind
	SeriesTitle string
	Season      int
	Episode     int
}

// Extension returns the text after the last '.' of the location's string form.
// Query strings are not stripped.
func Extension(loc Location) string {
	s := loc.String()
	return s[strings.LastIndex(s, ".")+1:]
}

// IsVOD reports whether ext is one of the video on demand container extensions.
// The comparison is case sensitive.
func IsVOD(ext string) bool {
	return vodExtensions[ext]
}

// ClassifyTitle decides the kind of an entry from its extension and title. Only
// VOD extensions can produce movies and series; a VOD title carrying a season and
// episode marker such as "S01E02" or "season 1 episode 2" becomes a series
// episode, everything else a movie.
func ClassifyTitle(ext, title string) Classification {
	if !IsVOD(ext) {
		return Classification{Kind: KindChannel}
	}

	folded := foldCase(title)
	span := seriesRegex.FindStringIndex(folded)
	if span == nil {
		return Classification{Kind: KindMovie}
	}

	matched := folded[span[0]:span[1]]
	season, ok := firstNumber(seasonRegex.FindString(matched))
	if !ok {
		return Classification{Kind: KindMovie}
	}
	episode, ok := firstNumber(episodeRegex.FindString(matched))
	if !ok {
		return Classification{Kind: KindMovie}
	}

	return Classification{
		Kind:        KindSeries,
		SeriesTitle: title[:span[0]] + title[span[1]:],
		Season:      season,
		Episode:     episode,
	}
}

func firstNumber(s string) (int, bool) {
	digits := numberRegex.FindString(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// foldCase lower-cases s without changing its byte length: runes whose lower case
// form encodes to a different number of bytes are left alone. Offsets found in the
// result are therefore valid in s.
func foldCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		lower := unicode.ToLower(r)
		if r == utf8.RuneError || utf8.RuneLen(lower) != size {
			b.WriteString(s[i : i+size])
		} else {
			b.WriteRune(lower)
		}
		i += size
	}
	return b.String()
}

// Classify builds the Entry for loc. duration and title may be nil when the
// location had no EXTINF directive.
func Classify(loc Location, duration *time.Duration, title *string, md Metadata) Entry {
	e := Entry{
		location: loc,
		metadata: md,
	}
	if duration != nil {
		e.duration = *duration
		e.hasDuration = true
	}
	var t string
	if title != nil {
		t = *title
		e.title = t
		e.hasTitle = true
	}

	c := ClassifyTitle(Extension(loc), t)
	e.kind = c.Kind
	e.seriesTitle = c.SeriesTitle
	e.season = c.Season
	e.episode = c.Episode
	return e
}
