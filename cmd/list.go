package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/dirnav/internal/browser"
	"github.com/HaiFongPan/dirnav/internal/config"
	"github.com/HaiFongPan/dirnav/internal/fsys"
	"github.com/HaiFongPan/dirnav/internal/utils"
)

var (
	listFilter string
	listFuzzy  bool
	showSize   bool
	showDate   bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "Print a directory listing",
	Long: `Print the children of a directory in browser order: directories first, then
files, each group sorted by name. Hide patterns and the search mode come from
the configuration.

Examples:
  dirnav list                   # List the working directory
  dirnav list /var/log          # List a specific directory
  dirnav list --filter conf     # Only names containing "conf"
  dirnav list --filter cfg --fuzzy
  dirnav list --size=false      # Names and dates only`,
	Args: cobra.MaximumNArgs(1),
	RunE: listFiles,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "only show entries matching this query")
	listCmd.Flags().BoolVar(&listFuzzy, "fuzzy", false, "use fuzzy matching for --filter")
	listCmd.Flags().BoolVar(&showSize, "size", true, "show file sizes")
	listCmd.Flags().BoolVar(&showDate, "date", true, "show modification dates")
}

type listOptions struct {
	Filter   string
	Fuzzy    bool
	ShowSize bool
	ShowDate bool
}

func listFiles(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", dir, err)
	}

	opts := listOptions{
		Filter:   listFilter,
		Fuzzy:    listFuzzy,
		ShowSize: showSize,
		ShowDate: showDate,
	}
	return writeListing(os.Stdout, fsys.NewOS(), GetConfig(), dir, opts)
}

// writeListing prints dir as a table using the browser's listing rules
func writeListing(out io.Writer, gateway *fsys.Gateway, cfg *config.Config, dir string, opts listOptions) error {
	if !gateway.IsDir(dir) {
		return fmt.Errorf("%s is not a directory", dir)
	}

	searchMode := cfg.Browser.SearchMode
	if opts.Fuzzy {
		searchMode = config.SearchFuzzy
	}

	logrus.Debugf("Listing %s with filter %q (%s)", dir, opts.Filter, searchMode)

	d := browser.NewDirectory(gateway, dir, browser.Options{
		SearchMode: searchMode,
		Hide:       cfg.Browser.Hide,
	})
	d.SetQuery(opts.Filter)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	// Header
	header := "NAME\tTYPE"
	if opts.ShowSize {
		header += "\tSIZE"
	}
	if opts.ShowDate {
		header += "\tMODIFIED"
	}
	fmt.Fprintln(w, header)

	for _, entry := range d.Filtered() {
		info, err := d.Stat(entry)
		if err != nil {
			logrus.Debugf("Skipping %s: %v", entry.Path, err)
			continue
		}

		name := entry.Name()
		kind := "dir"
		if info.IsDir() {
			name += string(filepath.Separator)
		} else {
			kind = utils.GetFileCategory(utils.DetectContentType(entry.Name(), nil))
		}

		line := name + "\t" + kind
		if opts.ShowSize {
			if info.IsDir() {
				line += "\t-"
			} else {
				line += "\t" + humanize.Bytes(uint64(info.Size()))
			}
		}
		if opts.ShowDate {
			line += "\t" + info.ModTime().Format(time.RFC3339)
		}

		fmt.Fprintln(w, line)
	}

	return w.Flush()
}
