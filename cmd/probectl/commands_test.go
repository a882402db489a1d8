package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writeLog(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("2025-08-01T10:00:00.000Z\nDevice: probe-a\nElapsed Time, Internal, External\n")
	for i := 0; i < n; i++ {
		tm := float64(i * 10)
		in := (20-110)*math.Exp(-0.0004*tm) + 110
		line := strconv.FormatFloat(tm, 'g', -1, 64) + ", " + strconv.FormatFloat(in, 'g', -1, 64) + ", 110\n"
		b.WriteString(line)
		if i == 2 {
			b.WriteString("25, N/A, 110\n")
			b.WriteString(line)
		}
	}
	path := filepath.Join(t.TempDir(), "data1.dat")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCleanCommand(t *testing.T) {
	out, err := run(t, "clean", writeLog(t, 10))
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(recs) != 11 {
		t.Fatalf("rows=%d, want header + 10", len(recs))
	}
	if strings.Join(recs[0], ",") != "time,internal,external" || recs[1][1] != "20" {
		t.Fatalf("unexpected output: %v", recs[:2])
	}
}

func TestFitCommand(t *testing.T) {
	out, err := run(t, "fit", writeLog(t, 150), "--until", "100", "--samples", "3")
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines=%d: %q", len(lines), out)
	}
	fields := strings.Fields(strings.TrimPrefix(lines[0], "# "))
	c, err := strconv.ParseFloat(strings.TrimPrefix(fields[0], "c="), 64)
	if err != nil || math.Abs(c-0.0004) > 1e-8 {
		t.Fatalf("c=%v err=%v (line %q)", c, err, lines[0])
	}
	if lines[1] != "time,temp" || !strings.HasPrefix(lines[2], "0,20") {
		t.Fatalf("unexpected curve: %v", lines[1:])
	}
}

func TestPredictCommand(t *testing.T) {
	out, err := run(t, "predict", writeLog(t, 5), "--meat", "1", "--weight", "4")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	recs, _ := csv.NewReader(strings.NewReader(out)).ReadAll()
	if len(recs) != 6 || recs[1][0] != "41" || recs[5][0] != "45" {
		t.Fatalf("unexpected output: %v", recs)
	}
}

func TestEtaCommand(t *testing.T) {
	out, err := run(t, "eta", writeLog(t, 20))
	if err != nil {
		t.Fatalf("eta: %v", err)
	}
	target := (145.0 - 32) * 5 / 9
	want := -math.Log((target-110)/(20-110))/0.0004 - 190
	fields := strings.Fields(out)
	got, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.Abs(got-want) > 1e-3 {
		t.Fatalf("remaining=%v want %v (out %q)", got, want, out)
	}

	if _, err := run(t, "eta", writeLog(t, 20), "--unit", "K"); err == nil {
		t.Fatal("expected error for unit K")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := run(t, "clean", filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
