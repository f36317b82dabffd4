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

package catalog

import (
	"strings"
	"time"

	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/a13labs/m3ucatalog/pkg/m3uparser"
	"github.com/sirupsen/logrus"
)

const (
	groupKey        = "group-title"
	titleSeparators = " -._:"
)

type Item struct {
	Title    string            `json:"title"`
	Location string            `json:"location"`
	Duration int64             `json:"duration,omitempty"` // seconds
	Group    string            `json:"group,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Movie struct {
	Item
}

type LiveStream struct {
	Item
}

type Episode struct {
	Number int `json:"number"`
	Item
}

// Season holds its episodes at the index of their episode number. Unused indexes
// are nil.
type Season struct {
	Number   int        `json:"number"`
	Episodes []*Episode `json:"episodes"`
}

// Series holds its seasons at the index of their season number. Unused indexes
// are nil; index 0 is never filled.
type Series struct {
	Title   string    `json:"title"`
	Seasons []*Season `json:"seasons"`
}

type Catalog struct {
	Movies      []Movie      `json:"movies"`
	LiveStreams []LiveStream `json:"live_streams"`
	Series      []*Series    `json:"series"`
}

type Stats struct {
	LiveStreams int `json:"live_streams"`
	Movies      int `json:"movies"`
	Series      int `json:"series"`
	Episodes    int `json:"episodes"`
	Rejected    int `json:"rejected"`
}

// Builder aggregates classified entries into a Catalog. A Builder belongs to a
// single run and must not be shared between goroutines.
type Builder struct {
	catalog Catalog
	series  map[string]*Series
	stats   Stats
}

func NewBuilder() *Builder {
	return &Builder{
		catalog: Catalog{
			Movies:      make([]Movie, 0),
			LiveStreams: make([]LiveStream, 0),
			Series:      make([]*Series, 0),
		},
		series: make(map[string]*Series),
	}
}

func (b *Builder) AddAll(entries m3uparser.Entries) {
	for _, entry := range entries {
		b.Add(entry)
	}
}

// Add places entry in the catalog according to its kind.
func (b *Builder) Add(entry m3uparser.Entry) {
	switch entry.Kind() {
	case m3uparser.KindMovie:
		b.catalog.Movies = append(b.catalog.Movies, Movie{Item: newItem(entry)})
		b.stats.Movies++
	case m3uparser.KindSeries:
		b.addEpisode(entry)
	default:
		b.catalog.LiveStreams = append(b.catalog.LiveStreams, LiveStream{Item: newItem(entry)})
		b.stats.LiveStreams++
	}
}

func (b *Builder) addEpisode(entry m3uparser.Entry) {
	log := logger.WithFields(logrus.Fields{
		"series":   entry.SeriesTitle(),
		"season":   entry.Season(),
		"episode":  entry.Episode(),
		"location": entry.Location().String(),
	})

	if entry.Season() < 1 {
		log.Warn("Rejecting episode with invalid season number")
		b.stats.Rejected++
		return
	}

	key := seriesKey(entry.SeriesTitle())
	series, ok := b.series[key]
	if !ok {
		series = &Series{
			Title:   strings.Trim(entry.SeriesTitle(), titleSeparators),
			Seasons: make([]*Season, 0),
		}
		b.series[key] = series
		b.catalog.Series = append(b.catalog.Series, series)
		b.stats.Series++
	}

	for len(series.Seasons) <= entry.Season() {
		series.Seasons = append(series.Seasons, nil)
	}
	season := series.Seasons[entry.Season()]
	if season == nil {
		season = &Season{Number: entry.Season(), Episodes: make([]*Episode, 0)}
		series.Seasons[entry.Season()] = season
	}

	for len(season.Episodes) <= entry.Episode() {
		season.Episodes = append(season.Episodes, nil)
	}
	if season.Episodes[entry.Episode()] != nil {
		log.Warn("Duplicate episode, keeping the first one")
		b.stats.Rejected++
		return
	}
	season.Episodes[entry.Episode()] = &Episode{Number: entry.Episode(), Item: newItem(entry)}
	b.stats.Episodes++
}

func (b *Builder) Catalog() *Catalog {
	return &b.catalog
}

func (b *Builder) Stats() Stats {
	return b.stats
}

// Build is a shortcut for a Builder fed with entries.
func Build(entries m3uparser.Entries) *Catalog {
	b := NewBuilder()
	b.AddAll(entries)
	return b.Catalog()
}

// seriesKey groups titles that only differ by case or by the separators left
// around a removed season marker, e.g. "Show - " and "show".
func seriesKey(title string) string {
	return strings.ToLower(strings.Trim(title, titleSeparators))
}

func newItem(entry m3uparser.Entry) Item {
	title, _ := entry.Title()
	item := Item{
		Title:    title,
		Location: entry.Location().String(),
		Group:    entry.Metadata().Get(groupKey),
	}
	if d, ok := entry.Duration(); ok {
		item.Duration = int64(d / time.Second)
	}
	if entry.Metadata().Len() > 0 {
		item.Metadata = entry.Metadata().Map()
	}
	return item
}
