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

package cmd

import (
	"context"
	"fmt"

	"github.com/a13labs/m3ucatalog/pkg/config"
	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/a13labs/m3ucatalog/pkg/m3uparser"
	"golang.org/x/sync/errgroup"
)

// LoadPlaylists parses every path with its own pipeline, up to data.Workers at a
// time. Results are returned in the order of paths. The first failure stops new
// playlists from being started and is returned.
func LoadPlaylists(paths []string, data config.ConfigData) ([]m3uparser.Entries, error) {
	opts := m3uparser.Options{
		Encoding:     data.Encoding,
		ExpandNested: data.ExpandNested,
		MaxDepth:     data.MaxDepth,
	}

	results := make([]m3uparser.Entries, len(paths))

	g, ctx := errgroup.WithContext(context.Background())
	if data.Workers > 0 {
		g.SetLimit(data.Workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := m3uparser.Load(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Infof("Parsed %s: %d entries", path, len(entries))
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
