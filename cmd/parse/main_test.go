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

package parse

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/a13labs/m3ucatalog/pkg/m3uparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "#EXTM3U\n#EXTINF:120,tvg-logo=\"x.png\",Show S02E05\nhttp://x/show.mp4\n#EXTINF:-1,News\nhttp://x/news\n"

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, "sample.m3u", m3uparser.ParseString(sample, "")))

	out := buf.String()
	assert.Contains(t, out, "# sample.m3u (2 entries)")
	assert.Contains(t, out, "series")
	assert.Contains(t, out, "S02E05")
	assert.Contains(t, out, "2m0s")
	assert.Contains(t, out, "http://x/news")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, "sample.m3u", m3uparser.ParseString(sample, "")))

	var out struct {
		Playlist string                   `json:"playlist"`
		Entries  []map[string]interface{} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "sample.m3u", out.Playlist)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "series", out.Entries[0]["kind"])
	assert.Equal(t, "channel", out.Entries[1]["kind"])
}

func TestParseKind(t *testing.T) {
	kind, err := parseKind("movie")
	require.NoError(t, err)
	assert.Equal(t, m3uparser.KindMovie, kind)

	_, err = parseKind("podcast")
	assert.Error(t, err)
}
