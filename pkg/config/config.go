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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type ConfigData struct {
	LogFile      string `json:"log_file,omitempty" toml:"log_file"`
	LogLevel     string `json:"log_level,omitempty" toml:"log_level"`
	Encoding     string `json:"encoding,omitempty" toml:"encoding"`
	ExpandNested bool   `json:"expand_nested,omitempty" toml:"expand_nested"`
	MaxDepth     int    `json:"max_depth,omitempty" toml:"max_depth"`
	Workers      int    `json:"workers,omitempty" toml:"workers"`
}

type Config struct {
	path string
	data ConfigData
}

func Defaults() ConfigData {
	return ConfigData{
		LogLevel:     "warning",
		Encoding:     "utf-8",
		ExpandNested: false,
		MaxDepth:     16,
		Workers:      4,
	}
}

// NewConfig loads path on top of the defaults. An empty path or a missing file
// gives the defaults.
func NewConfig(path string) (*Config, error) {
	c := &Config{
		path: path,
		data: Defaults(),
	}

	if path == "" {
		return c, nil
	}

	if err := c.Load(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return c, nil
}

// Merge copies the non-zero fields of other into c.
func (c *ConfigData) Merge(other ConfigData) {
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Encoding != "" {
		c.Encoding = other.Encoding
	}
	if other.ExpandNested {
		c.ExpandNested = other.ExpandNested
	}
	if other.MaxDepth != 0 {
		c.MaxDepth = other.MaxDepth
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
}

// Load reads a JSON file, or a TOML file when the name ends in ".toml", and
// merges it into the current values.
func (c *Config) Load(path string) error {

	_, err := os.Stat(path)

	if os.IsNotExist(err) {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	data := ConfigData{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.NewDecoder(file).Decode(&data)
	} else {
		err = json.NewDecoder(file).Decode(&data)
	}
	if err != nil {
		return err
	}

	c.data.Merge(data)
	c.path = path

	return nil
}

func (c *Config) Get() ConfigData {
	return c.data
}

func (c *Config) Set(data ConfigData) {
	c.data = data
}

func (c *Config) GetPath() string {
	return c.path
}
