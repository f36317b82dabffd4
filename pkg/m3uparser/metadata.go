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
	"regexp"
	"sort"
	"strings"

	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/sirupsen/logrus"
)

var metadataRegex = regexp.MustCompile(`([\w\-_.]+)="([^"]*)" ?`)

// Metadata holds the key="value" attributes of an EXTINF directive, such as
// tvg-id, tvg-logo or group-title. It is never modified after parsing.
type Metadata struct {
	values map[string]string
}

// ParseMetadata extracts key="value" pairs from the raw attribute text. Text that
// does not look like a pair is skipped. Blank values are not stored and a repeated
// key keeps its last value.
func ParseMetadata(raw string) Metadata {
	md := Metadata{values: make(map[string]string)}
	if raw == "" {
		return md
	}

	for _, match := range metadataRegex.FindAllStringSubmatch(raw, -1) {
		key, value := match[1], match[2]
		if strings.TrimSpace(value) == "" {
			logger.WithFields(logrus.Fields{"key": key}).Debug("Skipping blank metadata value")
			continue
		}
		if old, ok := md.values[key]; ok {
			logger.WithFields(logrus.Fields{
				"key": key,
				"old": old,
				"new": value,
			}).Warn("Duplicate metadata key, overwriting previous value")
		}
		md.values[key] = value
	}

	return md
}

// Get returns the value for key, or "" when it is absent.
func (md Metadata) Get(key string) string {
	return md.values[key]
}

func (md Metadata) Lookup(key string) (string, bool) {
	v, ok := md.values[key]
	return v, ok
}

func (md Metadata) Len() int {
	return len(md.values)
}

// Keys returns the keys in sorted order.
func (md Metadata) Keys() []string {
	keys := make([]string, 0, len(md.values))
	for k := range md.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying values.
func (md Metadata) Map() map[string]string {
	m := make(map[string]string, len(md.values))
	for k, v := range md.values {
		m[k] = v
	}
	return m
}

func (md Metadata) String() string {
	var b strings.Builder
	for i, k := range md.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k + "=\"" + md.values[k] + "\"")
	}
	return b.String()
}

func (md Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(md.Map())
}
