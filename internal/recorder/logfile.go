package recorder

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	filePrefix = "data"
	fileExt    = ".dat"
	na         = "N/A"

	columnsHeader = "Elapsed Time, Internal, External"
	isoLayout     = "2006-01-02T15:04:05.000Z"
)

// LogFile is one recording session on disk, in the layout the thermal parser reads.
type LogFile struct {
	f    *os.File
	w    *bufio.Writer
	path string
}

// CreateLogFile claims the first free data<N>.dat (N from 1) in dir and
// writes the three header lines.
func CreateLogFile(dir, deviceID string, started time.Time) (*LogFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %q: %w", dir, err)
	}

	var (
		f    *os.File
		path string
	)
	for i := 1; ; i++ {
		path = filepath.Join(dir, filePrefix+strconv.Itoa(i)+fileExt)
		var err error
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("create log file %q: %w", path, err)
		}
	}

	lf := &LogFile{f: f, w: bufio.NewWriter(f), path: path}
	header := started.UTC().Format(isoLayout) + "\n" +
		"Device: " + deviceID + "\n" +
		columnsHeader + "\n"
	if _, err := lf.w.WriteString(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := lf.w.Flush(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return lf, nil
}

func (l *LogFile) Path() string { return l.path }

// Append writes one "<elapsed>, <internal>, <external>" line and flushes it.
func (l *LogFile) Append(elapsed int64, internal, external *float64) error {
	line := strconv.FormatInt(elapsed, 10) + ", " + formatReading(internal) + ", " + formatReading(external) + "\n"
	if _, err := l.w.WriteString(line); err != nil {
		return fmt.Errorf("append to %s: %w", l.path, err)
	}
	if err := l.w.Flush(); err != nil {
		return fmt.Errorf("append to %s: %w", l.path, err)
	}
	return nil
}

func (l *LogFile) Close() error {
	if err := l.w.Flush(); err != nil {
		_ = l.f.Close()
		return err
	}
	return l.f.Close()
}

func formatReading(v *float64) string {
	if v == nil {
		return na
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
