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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	rootCmd "github.com/a13labs/m3ucatalog/cmd"
	"github.com/a13labs/m3ucatalog/pkg/m3uparser"
	"github.com/spf13/cobra"
)

var (
	asJSON   bool
	kindName string
)

var parseCmd = &cobra.Command{
	Use:   "parse <playlist>...",
	Short: "List the classified entries of M3U playlists",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		results, err := rootCmd.LoadPlaylists(args, rootCmd.Settings())
		if err != nil {
			return err
		}

		for i, entries := range results {
			if kindName != "" {
				kind, err := parseKind(kindName)
				if err != nil {
					return err
				}
				entries = entries.Filter(kind)
			}

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), args[i], entries)
			} else {
				err = writeTable(cmd.OutOrStdout(), args[i], entries)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func parseKind(name string) (m3uparser.Kind, error) {
	for _, kind := range []m3uparser.Kind{m3uparser.KindChannel, m3uparser.KindMovie, m3uparser.KindSeries} {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q, expected channel, movie or series", name)
}

func writeJSON(w io.Writer, path string, entries m3uparser.Entries) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(struct {
		Playlist string            `json:"playlist"`
		Entries  m3uparser.Entries `json:"entries"`
	}{path, entries})
}

func writeTable(w io.Writer, path string, entries m3uparser.Entries) error {
	fmt.Fprintf(w, "# %s (%d entries)\n", path, len(entries))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tDURATION\tEPISODE\tTITLE\tLOCATION")
	for _, entry := range entries {
		duration := "-"
		if d, ok := entry.Duration(); ok {
			duration = d.Round(time.Second).String()
		}
		episode := "-"
		if entry.Kind() == m3uparser.KindSeries {
			episode = fmt.Sprintf("S%02dE%02d", entry.Season(), entry.Episode())
		}
		title, _ := entry.Title()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", entry.Kind(), duration, episode, title, entry.Location())
	}
	return tw.Flush()
}

func init() {
	rootCmd.RootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print entries as JSON")
	parseCmd.Flags().StringVarP(&kindName, "kind", "k", "", "only print entries of this kind (channel, movie, series)")
}
