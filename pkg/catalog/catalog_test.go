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
	"encoding/json"
	"testing"

	"github.com/a13labs/m3ucatalog/pkg/m3uparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playlist = `#EXTM3U
#EXTINF:-1 tvg-id="news" group-title="News",News 24
http://live.example.com/news
#EXTINF:7200 group-title="Movies",The Matrix (1999)
http://vod.example.com/matrix.mkv
#EXTINF:2700 group-title="Series",Breaking Bad S01E03
http://vod.example.com/bb103.mp4
#EXTINF:2700,breaking bad - S01E01
http://vod.example.com/bb101.mp4
#EXTINF:2700,Breaking Bad S02E01
http://vod.example.com/bb201.mp4
#EXTINF:2700,Breaking Bad - S01E03
http://vod.example.com/bb103-dup.mp4
#EXTINF:1800,Pilot S00E01
http://vod.example.com/pilot.mp4
`

func TestBuild(t *testing.T) {
	b := NewBuilder()
	b.AddAll(m3uparser.ParseString(playlist, ""))
	c := b.Catalog()

	require.Len(t, c.LiveStreams, 1)
	assert.Equal(t, "News 24", c.LiveStreams[0].Title)
	assert.Equal(t, "News", c.LiveStreams[0].Group)
	assert.Zero(t, c.LiveStreams[0].Duration)

	require.Len(t, c.Movies, 1)
	assert.Equal(t, "The Matrix (1999)", c.Movies[0].Title)
	assert.Equal(t, int64(7200), c.Movies[0].Duration)
	assert.Equal(t, "http://vod.example.com/matrix.mkv", c.Movies[0].Location)

	require.Len(t, c.Series, 1)
	series := c.Series[0]
	assert.Equal(t, "Breaking Bad", series.Title)

	// Index 0 is a placeholder, seasons 1 and 2 are present.
	require.Len(t, series.Seasons, 3)
	assert.Nil(t, series.Seasons[0])

	s1 := series.Seasons[1]
	require.NotNil(t, s1)
	assert.Equal(t, 1, s1.Number)
	require.Len(t, s1.Episodes, 4)
	assert.Nil(t, s1.Episodes[0])
	assert.Nil(t, s1.Episodes[2])
	require.NotNil(t, s1.Episodes[1])
	assert.Equal(t, "http://vod.example.com/bb101.mp4", s1.Episodes[1].Location)
	require.NotNil(t, s1.Episodes[3])
	assert.Equal(t, "http://vod.example.com/bb103.mp4", s1.Episodes[3].Location)
	assert.Equal(t, "Series", s1.Episodes[3].Group)

	s2 := series.Seasons[2]
	require.NotNil(t, s2)
	require.Len(t, s2.Episodes, 2)
	assert.Equal(t, 1, s2.Episodes[1].Number)

	assert.Equal(t, Stats{LiveStreams: 1, Movies: 1, Series: 1, Episodes: 3, Rejected: 2}, b.Stats())
}

func TestSeasonZeroCreatesNothing(t *testing.T) {
	c := Build(m3uparser.ParseString("#EXTINF:10,Pilot S00E01\nhttp://x/p.mp4\n", ""))
	assert.Empty(t, c.Series)
}

func TestCatalogJSON(t *testing.T) {
	c := Build(m3uparser.ParseString("#EXTINF:60,Show S01E02\nhttp://x/s.mp4\n", ""))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"movies": [],
		"live_streams": [],
		"series": [{
			"title": "Show",
			"seasons": [null, {
				"number": 1,
				"episodes": [null, null, {"number": 2, "title": "Show S01E02", "location": "http://x/s.mp4", "duration": 60}]
			}]
		}]
	}`, string(data))
}
