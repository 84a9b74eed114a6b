// Command journal prints the most recent entries of the playback journal.
//
//	journal            recent plays and failures
//	journal -failures  failures only
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/temptok/internal/config"
	"github.com/llehouerou/temptok/internal/errmsg"
	"github.com/llehouerou/temptok/internal/journal"
)

func main() {
	failuresOnly := flag.Bool("failures", false, "show failures only")
	limit := flag.Int("n", 20, "number of entries")
	prune := flag.Bool("prune", false, "drop all but the newest entries before listing")
	flag.Parse()

	if err := run(*failuresOnly, *limit, *prune); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(failuresOnly bool, limit int, prune bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path, err := cfg.GetJournalPath()
	if err != nil {
		return fmt.Errorf("journal path: %w", err)
	}

	j, err := journal.Open(path)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpJournalOpen, err))
	}
	defer j.Close()

	if prune {
		if err := j.Prune(journal.DefaultRetention); err != nil {
			return fmt.Errorf("prune journal: %w", err)
		}
	}

	var records []journal.Record
	if failuresOnly {
		records, err = j.RecentFailures(limit)
	} else {
		records, err = j.Recent(limit)
	}
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("journal is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	now := time.Now()
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			humanize.RelTime(r.At, now, "ago", "from now"),
			r.Kind, r.Label, r.Source, r.Detail)
	}
	return w.Flush()
}
