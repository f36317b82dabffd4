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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c.Get())

	c, err = NewConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c.Get())
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m3ucatalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"encoding": "latin1", "expand_nested": true, "workers": 8}`), 0644))

	c, err := NewConfig(path)
	require.NoError(t, err)

	data := c.Get()
	assert.Equal(t, "latin1", data.Encoding)
	assert.True(t, data.ExpandNested)
	assert.Equal(t, 8, data.Workers)
	assert.Equal(t, 16, data.MaxDepth)
	assert.Equal(t, "warning", data.LogLevel)
	assert.Equal(t, path, c.GetPath())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m3ucatalog.toml")
	content := "log_level = \"debug\"\nlog_file = \"parse.log\"\nmax_depth = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := NewConfig(path)
	require.NoError(t, err)

	data := c.Get()
	assert.Equal(t, "debug", data.LogLevel)
	assert.Equal(t, "parse.log", data.LogFile)
	assert.Equal(t, 3, data.MaxDepth)
	assert.Equal(t, "utf-8", data.Encoding)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workers": "many"}`), 0644))

	_, err := NewConfig(path)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	data := Defaults()
	data.Merge(ConfigData{Workers: 2, LogFile: "out.log"})

	assert.Equal(t, 2, data.Workers)
	assert.Equal(t, "out.log", data.LogFile)
	assert.Equal(t, "utf-8", data.Encoding)
}
