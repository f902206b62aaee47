package main

import (
	"flag"
	"log"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/apt-tools/distro-eol/eol"
	"github.com/apt-tools/distro-eol/utils"
)

var (
	target       = flag.String("target", "merged", "table to dump (live, known, merged)")
	dir          = flag.String("dir", eol.DistroInfoDir, "directory with distro-info CSV files")
	output       = flag.String("output", "eol-dates.json", "output file")
	format       = flag.String("format", "json", "output format (json, yaml)")
	distributors = flag.String("distributors", "", "comma-separated distributor allow-list (default all)")
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	var table eol.Table
	switch *target {
	case "known":
		table = eol.KnownEOLDates
	case "live", "merged":
		gatherer := eol.NewGatherer(eol.WithDir(*dir))
		live, err := gatherer.GatherEOLDates()
		if err != nil {
			return xerrors.Errorf("failed to gather EOL dates: %w", err)
		}
		if *target == "live" {
			table = live
			break
		}

		// Live data wins over the embedded snapshot per release.
		table = eol.Table{}
		for distributor, releases := range eol.KnownEOLDates {
			table[distributor] = releases
		}
		for distributor, releases := range live {
			table[distributor] = lo.Assign(table[distributor], releases)
		}
	default:
		return xerrors.Errorf("unknown target: %s", *target)
	}

	if *distributors != "" {
		allowed := strings.Split(*distributors, ",")
		filtered := eol.Table{}
		for distributor, releases := range table {
			if slices.Contains(allowed, distributor) {
				filtered[distributor] = releases
			}
		}
		table = filtered
	}

	log.Printf("Writing EOL dates for %d distributors to %s", len(table), *output)

	fs := utils.NewFs(afero.NewOsFs())
	switch *format {
	case "json":
		return fs.WriteJSON(*output, table)
	case "yaml":
		return fs.WriteYAML(*output, table)
	default:
		return xerrors.Errorf("unknown format: %s", *format)
	}
}
