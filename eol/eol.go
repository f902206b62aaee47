// Package eol extracts end-of-life dates of Debian and Ubuntu releases
// from the CSV files shipped by the distro-info-data package. Mirror
// selection tooling uses these dates to decide whether a release is still
// expected to be served by package mirrors. When the CSV files are not
// available, KnownEOLDates provides an embedded snapshot of the same shape.
package eol

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// DistroInfoDir is the directory where the distro-info-data package
// installs its per-distributor release CSV files.
const DistroInfoDir = "/usr/share/distro-info"

const csvExt = ".csv"

// Table maps a distributor id (e.g. "debian") to release codenames and
// their end-of-life dates as Unix timestamps.
type Table map[string]map[string]int64

type option func(g *Gatherer)

func WithDir(v string) option {
	return func(g *Gatherer) { g.dir = v }
}

func WithAppFs(v afero.Fs) option {
	return func(g *Gatherer) { g.appFs = v }
}

type Gatherer struct {
	dir   string
	appFs afero.Fs
}

func NewGatherer(options ...option) *Gatherer {
	gatherer := &Gatherer{
		dir:   DistroInfoDir,
		appFs: afero.NewOsFs(),
	}
	for _, option := range options {
		option(gatherer)
	}

	return gatherer
}

// GatherEOLDates builds a fresh Table from the release CSV files in the
// configured directory. A distributor is derived from each file's base name,
// lowercased. A missing directory is an expected condition and yields an
// empty table; read and date-parse failures are returned to the caller
// unrecovered.
func (gatherer *Gatherer) GatherEOLDates() (Table, error) {
	table := Table{}

	ok, err := afero.DirExists(gatherer.appFs, gatherer.dir)
	if err != nil {
		return nil, xerrors.Errorf("failed to stat %s: %w", gatherer.dir, err)
	}
	if !ok {
		return table, nil
	}

	entries, err := afero.ReadDir(gatherer.appFs, gatherer.dir)
	if err != nil {
		return nil, xerrors.Errorf("failed to list %s: %w", gatherer.dir, err)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || !strings.EqualFold(ext, csvExt) {
			continue
		}
		distributorID := strings.ToLower(strings.TrimSuffix(entry.Name(), ext))

		filePath := filepath.Join(gatherer.dir, entry.Name())
		contents, err := afero.ReadFile(gatherer.appFs, filePath)
		if err != nil {
			return nil, xerrors.Errorf("failed to read %s: %w", filePath, err)
		}
		if err = checkASCII(contents); err != nil {
			return nil, xerrors.Errorf("failed to decode %s: %w", filePath, err)
		}

		releases, err := parseReleases(bytes.NewReader(contents))
		if err != nil {
			return nil, xerrors.Errorf("failed to parse %s: %w", filePath, err)
		}
		table[distributorID] = releases
	}

	return table, nil
}

// parseReleases reads one distro-info CSV file. Each record names a release
// in its "series" column; the EOL date comes from "eol-server" when present,
// falling back to "eol". Records missing either value are skipped.
func parseReleases(r io.Reader) (map[string]int64, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	releases := map[string]int64{}

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return releases, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("failed to read CSV record: %w", err)
		}

		series := field(record, columns, "series")
		eolValue := field(record, columns, "eol-server")
		if eolValue == "" {
			eolValue = field(record, columns, "eol")
		}
		if series == "" || eolValue == "" {
			continue
		}

		t, err := dateparse.ParseAny(eolValue)
		if err != nil {
			return nil, xerrors.Errorf("failed to parse date %q: %w", eolValue, err)
		}

		// The EOL date is a calendar day; store midnight in the local zone.
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
		releases[series] = midnight.Unix()
	}

	return releases, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// distro-info files are plain ASCII; anything else is not one of them.
func checkASCII(contents []byte) error {
	for i, b := range contents {
		if b > unicode.MaxASCII {
			return xerrors.Errorf("non-ASCII byte 0x%02x at offset %d", b, i)
		}
	}
	return nil
}
