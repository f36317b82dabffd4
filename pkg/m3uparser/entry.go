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
	"encoding/json"
	"fmt"
	"time"
)

// Kind is the content kind of an entry.
type Kind int

const (
	KindChannel Kind = iota
	KindMovie
	KindSeries
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSeries:
		return "series"
	default:
		return "channel"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry represents a single item of a playlist. Entries are built by the parser
// and never change afterwards.
type Entry struct {
	location    Location
	duration    time.Duration
	hasDuration bool
	title       string
	hasTitle    bool
	metadata    Metadata
	kind        Kind

	// Only set for KindSeries.
	seriesTitle string
	season      int
	episode     int
}

type Entries []Entry

func (e Entry) Location() Location {
	return e.location
}

// Duration returns the EXTINF duration. ok is false when the playlist did not give
// one or gave a negative value.
func (e Entry) Duration() (d time.Duration, ok bool) {
	return e.duration, e.hasDuration
}

// Title returns the EXTINF title. An empty title is distinct from a missing one.
func (e Entry) Title() (title string, ok bool) {
	return e.title, e.hasTitle
}

func (e Entry) Metadata() Metadata {
	return e.metadata
}

func (e Entry) Kind() Kind {
	return e.kind
}

func (e Entry) SeriesTitle() string {
	return e.seriesTitle
}

func (e Entry) Season() int {
	return e.season
}

func (e Entry) Episode() int {
	return e.episode
}

func (e Entry) String() string {
	s := e.kind.String() + " " + e.location.String()
	if e.hasTitle {
		s += fmt.Sprintf(" %q", e.title)
	}
	if e.hasDuration {
		s += " " + e.duration.String()
	}
	if e.kind == KindSeries {
		s += fmt.Sprintf(" S%02dE%02d", e.season, e.episode)
	}
	return s
}

type entryJSON struct {
	Kind        Kind     `json:"kind"`
	Location    Location `json:"location"`
	Duration    *int64   `json:"duration,omitempty"` // seconds
	Title       *string  `json:"title,omitempty"`
	Metadata    Metadata `json:"metadata"`
	SeriesTitle string   `json:"series_title,omitempty"`
	Season      *int     `json:"season,omitempty"`
	Episode     *int     `json:"episode,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Kind:     e.kind,
		Location: e.location,
		Metadata: e.metadata,
	}
	if e.hasDuration {
		seconds := int64(e.duration / time.Second)
		out.Duration = &seconds
	}
	if e.hasTitle {
		title := e.title
		out.Title = &title
	}
	if e.kind == KindSeries {
		season, episode := e.season, e.episode
		out.SeriesTitle = e.seriesTitle
		out.Season = &season
		out.Episode = &episode
	}
	return json.Marshal(out)
}

// Filter returns the entries of the given kind, in order.
func (entries Entries) Filter(kind Kind) Entries {
	result := make(Entries, 0)
	for _, entry := range entries {
		if entry.kind == kind {
			result = append(result, entry)
		}
	}
	return result
}

func (entries Entries) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, entry := range entries {
		counts[entry.kind]++
	}
	return counts
}

func (entries Entries) GetByTitle(title string) *Entry {
	for i := range entries {
		if entries[i].hasTitle && entries[i].title == title {
			return &entries[i]
		}
	}
	return nil
}

func (entries Entries) GetByLocation(location string) *Entry {
	for i := range entries {
		if entries[i].location.String() == location {
			return &entries[i]
		}
	}
	return nil
}
