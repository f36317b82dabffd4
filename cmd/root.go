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
	"os"

	"github.com/a13labs/m3ucatalog/pkg/config"
	"github.com/a13labs/m3ucatalog/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	ConfigFile string
	flags      config.ConfigData
	settings   = config.Defaults()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "m3ucatalog",
	Short: "Parse and classify M3U playlists",
	Long: `m3ucatalog reads extended M3U playlists, classifies every entry as a live
channel, a movie or a series episode and can aggregate them into a catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig(ConfigFile)
		if err != nil {
			return err
		}

		data := c.Get()
		data.Merge(flags)

		logger.Init(data.LogFile)
		if err := logger.SetLevel(data.LogLevel); err != nil {
			return err
		}

		settings = data
		return nil
	},
}

// Settings returns the configuration after the config file and the command line
// flags have been applied.
func Settings() config.ConfigData {
	return settings
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {

	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "config file, JSON or TOML")
	RootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warning, error)")
	RootCmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "write logs to this file instead of stderr")
	RootCmd.PersistentFlags().StringVarP(&flags.Encoding, "encoding", "e", "", "playlist character encoding (default utf-8)")
	RootCmd.PersistentFlags().BoolVarP(&flags.ExpandNested, "expand", "x", false, "replace entries pointing to local playlists with their entries")
	RootCmd.PersistentFlags().IntVar(&flags.MaxDepth, "max-depth", 0, "maximum nested playlist depth (default 16)")
	RootCmd.PersistentFlags().IntVarP(&flags.Workers, "workers", "w", 0, "number of playlists parsed in parallel (default 4)")
}
