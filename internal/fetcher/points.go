// Package fetcher loads the volcano table and the country boundary file from
// local disk.
package fetcher

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

// PointRecord is one row of the volcano table.
type PointRecord struct {
	Lat       float64
	Lon       float64
	Label     string
	Elevation float64
}

// TableOptions names the columns to read and how the table is delimited.
type TableOptions struct {
	LatColumn       string
	LonColumn       string
	LabelColumn     string
	ElevationColumn string
	Delimiter       rune   // default ','
	Sheet           string // xlsx only; default first sheet
}

// Canonical csvutil tags. Configured header names are renamed to these
// before decoding; every other column gets a unique placeholder so it can
// never collide with them.
const (
	tagLat       = "__lat"
	tagLon       = "__lon"
	tagLabel     = "__label"
	tagElevation = "__elevation"
)

type pointRow struct {
	Lat       cellFloat `csv:"__lat"`
	Lon       cellFloat `csv:"__lon"`
	Label     string    `csv:"__label"`
	Elevation cellFloat `csv:"__elevation"`
}

// cellFloat parses a numeric cell, ignoring surrounding whitespace. An empty
// cell is an error.
type cellFloat float64

func (f *cellFloat) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil {
		return err
	}
	*f = cellFloat(v)
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadPoints reads every row of the table at path. Rows pair positionally:
// the i-th record takes the i-th value of each configured column.
//
// A header lacking any configured column yields *MissingColumnsError. An
// unreadable or non-UTF-8 file, an undecodable row, or a NaN or infinite
// coordinate yields *SourceError.
func LoadPoints(path string, opts TableOptions) ([]PointRecord, error) {
	reader, err := openTable(path, opts)
	if err != nil {
		return nil, &SourceError{Source: path, Err: err}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &SourceError{Source: path, Err: eris.New("table is empty")}
	}
	if err != nil {
		return nil, &SourceError{Source: path, Err: eris.Wrap(err, "read header")}
	}

	mapped, missing := mapHeader(header, opts)
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Source: path, Columns: missing}
	}

	dec, err := csvutil.NewDecoder(reader, mapped...)
	if err != nil {
		return nil, &SourceError{Source: path, Err: eris.Wrap(err, "init decoder")}
	}
	dec.DisallowMissingColumns = true

	var records []PointRecord
	for line := 2; ; line++ {
		var row pointRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, &SourceError{Source: path, Err: eris.Wrapf(err, "decode row %d", line)}
		}
		rec := PointRecord{
			Lat:       float64(row.Lat),
			Lon:       float64(row.Lon),
			Label:     row.Label,
			Elevation: float64(row.Elevation),
		}
		if !finite(rec.Lat) || !finite(rec.Lon) {
			return nil, &SourceError{Source: path, Err: eris.Errorf("row %d: coordinate is not finite", line)}
		}
		records = append(records, rec)
	}

	return records, nil
}

// mapHeader renames configured columns to their canonical tags and reports
// which configured columns the header lacks, in configuration order.
func mapHeader(header []string, opts TableOptions) ([]string, []string) {
	wanted := []struct {
		column string
		tag    string
	}{
		{opts.LatColumn, tagLat},
		{opts.LonColumn, tagLon},
		{opts.LabelColumn, tagLabel},
		{opts.ElevationColumn, tagElevation},
	}

	mapped := make([]string, len(header))
	for i := range header {
		mapped[i] = "__col" + strconv.Itoa(i)
	}

	var missing []string
	for _, w := range wanted {
		found := false
		for i, name := range header {
			if name == w.column && !isTag(mapped[i]) {
				mapped[i] = w.tag
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, w.column)
		}
	}
	return mapped, missing
}

func isTag(s string) bool {
	switch s {
	case tagLat, tagLon, tagLabel, tagElevation:
		return true
	}
	return false
}
