package thermal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"cooking_probe/internal/models"
)

const (
	// Sentinel is written by the recorder when the probe did not report a value.
	Sentinel = "N/A"

	DefaultHeaderLines = 3

	minColumns = 3
)

// ParseOptions controls how a log is read.
type ParseOptions struct {
	HeaderLines int // lines skipped before data; negative means DefaultHeaderLines
}

// DefaultParseOptions matches the layout written by the recorder.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{HeaderLines: DefaultHeaderLines}
}

// ParseReport counts what happened to each data line.
type ParseReport struct {
	Total     int `json:"total"`
	Kept      int `json:"kept"`
	Sentinel  int `json:"dropped_sentinel"`
	Malformed int `json:"dropped_malformed"`
	Stalls    int `json:"dropped_stalls"`
}

// ReadLog opens path and runs the full cleaning pipeline (ParseLog).
func ReadLog(path string, opts ParseOptions) (models.Series, ParseReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Series{}, ParseReport{}, fmt.Errorf("open log %q: %w", path, err)
	}
	defer f.Close()
	return ParseLog(f, opts)
}

// ParseLog parses rows from r and drops stall rows.
func ParseLog(r io.Reader, opts ParseOptions) (models.Series, ParseReport, error) {
	rows, rep, err := ParseRows(r, opts)
	if err != nil {
		return models.Series{}, rep, err
	}
	clean, dropped := FilterStalls(rows)
	rep.Stalls = dropped
	rep.Kept = clean.Len()
	return clean, rep, nil
}

// ParseRows skips the header and converts each remaining line into a row.
// Rows carrying the sentinel or a non-numeric field are dropped whole.
// An empty result is not an error; only read failures are.
func ParseRows(r io.Reader, opts ParseOptions) (models.Series, ParseReport, error) {
	header := opts.HeaderLines
	if header < 0 {
		header = DefaultHeaderLines
	}

	var (
		out models.Series
		rep ParseReport
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line <= header {
			continue
		}
		rep.Total++

		row, err := parseLine(sc.Text())
		switch err {
		case nil:
			out.Append(row)
			rep.Kept++
		case errSentinel:
			rep.Sentinel++
		default:
			rep.Malformed++
		}
	}
	if err := sc.Err(); err != nil {
		return models.Series{}, rep, fmt.Errorf("read log: %w", err)
	}
	return out, rep, nil
}

var (
	errSentinel  = errors.New("row contains the N/A marker")
	errMalformed = errors.New("row is not numeric")
	errTooNarrow = errors.New("row has too few columns")
)

// parseLine converts one data line. Extra columns must parse but are discarded.
func parseLine(text string) (models.Sample, error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] == Sentinel {
			return models.Sample{}, errSentinel
		}
	}
	if len(fields) < minColumns {
		return models.Sample{}, errTooNarrow
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Sample{}, errMalformed
		}
		vals[i] = v
	}
	return models.Sample{Time: vals[0], Internal: vals[1], External: vals[2]}, nil
}
