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

	rootCmd "github.com/a13labs/m3ucatalog/cmd"
	"github.com/a13labs/m3ucatalog/pkg/catalog"
	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/spf13/cobra"
)

var showStats bool

var catalogCmd = &cobra.Command{
	Use:   "catalog <playlist>...",
	Short: "Aggregate M3U playlists into a catalog of movies, live streams and series",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		results, err := rootCmd.LoadPlaylists(args, rootCmd.Settings())
		if err != nil {
			return err
		}

		builder := catalog.NewBuilder()
		for _, entries := range results {
			builder.AddAll(entries)
		}

		stats := builder.Stats()
		logger.Infof("Catalog: %d live streams, %d movies, %d series with %d episodes, %d rejected",
			stats.LiveStreams, stats.Movies, stats.Series, stats.Episodes, stats.Rejected)

		e := json.NewEncoder(cmd.OutOrStdout())
		e.SetIndent("", "  ")
		if showStats {
			return e.Encode(stats)
		}
		return e.Encode(builder.Catalog())
	},
}

func init() {
	rootCmd.RootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "print only the catalog counters")
}
