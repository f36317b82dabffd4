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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchDirective(t *testing.T) {
	tests := []struct {
		line        string
		ok          bool
		duration    time.Duration
		hasDuration bool
		attributes  string
		title       string
	}{
		{"#EXTINF:123,Sample Title", true, 123 * time.Second, true, "", "Sample Title"},
		{"#EXTINF:-1 tvg-id=\"a\",Channel", true, 0, false, " tvg-id=\"a\"", "Channel"},
		{"#EXTINF:+5,Clip", true, 5 * time.Second, true, "", "Clip"},
		{"#EXTINF:0,Zero", true, 0, true, "", "Zero"},
		{"#EXTINF:10 a=\"1,2\",Title, with comma", true, 10 * time.Second, true, " a=\"1,2\",Title", " with comma"},
		{"#EXTINF:99999999999999999999,Huge", true, 0, false, "", "Huge"},
		{"#EXTINF:abc,Title", false, 0, false, "", ""},
		{"#EXTINF:10", false, 0, false, "", ""},
		{"#EXTINF:10,", false, 0, false, "", ""},
		{" #EXTINF:10,Indented", false, 0, false, "", ""},
		{"#EXTVLCOPT:http-user-agent=Firefox", false, 0, false, "", ""},
		{"#EXTM3U", false, 0, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d, ok := MatchDirective(tt.line)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.hasDuration, d.HasDuration)
			assert.Equal(t, tt.duration, d.Duration)
			assert.Equal(t, tt.attributes, d.Attributes)
			assert.Equal(t, tt.title, d.Title)
		})
	}
}
