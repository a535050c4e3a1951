package processor

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"codeberg.org/snonux/meixner/internal/anki"
	"codeberg.org/snonux/meixner/internal/cli"
	"codeberg.org/snonux/meixner/internal/curriculum"
	"codeberg.org/snonux/meixner/internal/hyphen"
	"codeberg.org/snonux/meixner/internal/testutil"
)

// newTestFlags points the processor at a temporary word list and pattern
// directory
func newTestFlags(t *testing.T, words ...string) *cli.Flags {
	t.Helper()

	dir := t.TempDir()
	hyphenDir := filepath.Join(dir, "hyphen")
	testutil.CreateTestPatterns(t, hyphenDir, "hu_HU", testutil.HungarianPatterns...)

	flags := cli.NewFlags()
	flags.Dictionary = testutil.CreateTestDictionary(t, dir, words...)
	flags.HyphenDir = hyphenDir
	return flags
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	var out bytes.Buffer
	p := NewProcessor(flags, &out, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.logger == nil {
		t.Error("Logger not initialized")
	}
	if p.source != nil {
		t.Error("Source should default to nil")
	}
}

func TestRun_Level1(t *testing.T) {
	flags := newTestFlags(t, "mama", "tata", "ima", "alma", "szem", "", "  sas  ", "mész")
	flags.Level = 1
	flags.Count = 10

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := testutil.Lines(out.String())
	sort.Strings(got)
	want := []string{"i-ma", "ma-ma", "sas", "ta-ta"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Run() printed %v, want %v", got, want)
	}
}

func TestRun_BundledPatterns(t *testing.T) {
	// no --hyphen-dir and no ./dictionaries directory
	chdir(t, t.TempDir())

	flags := cli.NewFlags()
	flags.Dictionary = testutil.CreateTestDictionary(t, t.TempDir(), "mama", "tata", "ima")
	flags.Level = 1
	flags.Count = 10

	var out, logs bytes.Buffer
	logger := cli.NewLogger(&logs, true, "text")
	if err := NewProcessor(flags, &out, logger).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := testutil.Lines(out.String())
	sort.Strings(got)
	want := []string{"i-ma", "ma-ma", "ta-ta"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Run() printed %v, want %v", got, want)
	}
	if !strings.Contains(logs.String(), "loading hyphenation patterns") {
		t.Errorf("Expected pattern path to be logged, got %q", logs.String())
	}
}

func TestRun_CountLimitsOutput(t *testing.T) {
	flags := newTestFlags(t, "mama", "tata", "ima", "sas", "mi")
	flags.Level = 1
	flags.Count = 2

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := testutil.Lines(out.String())
	if len(lines) != 2 {
		t.Fatalf("Expected 2 words, got %d: %v", len(lines), lines)
	}
	if lines[0] == lines[1] {
		t.Errorf("Word printed twice: %v", lines)
	}
}

func TestRun_DeterministicWithSource(t *testing.T) {
	words := []string{"mama", "tata", "ima", "sas", "mi", "ma", "tó"}

	run := func() string {
		flags := newTestFlags(t, words...)
		flags.Level = 1
		flags.Count = 4
		var out bytes.Buffer
		p := NewProcessor(flags, &out, nil).WithSource(rand.NewSource(42))
		if err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return out.String()
	}

	if first, second := run(), run(); first != second {
		t.Errorf("Same seed gave different output:\n%s\n%s", first, second)
	}
}

func TestRun_NoMatchingWords(t *testing.T) {
	flags := newTestFlags(t, "szem", "gyufa", "kör")
	flags.Level = 1

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRun_AllLevels(t *testing.T) {
	flags := newTestFlags(t, "asszony", "qwerty")
	flags.Level = 0

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := testutil.Lines(out.String())
	sort.Strings(got)
	if strings.Join(got, ",") != "asz-szony,qwerty" {
		t.Errorf("Run() printed %v", got)
	}
}

func TestRun_LevelNotImplemented(t *testing.T) {
	flags := newTestFlags(t, "mama")
	flags.Level = curriculum.MaxLevel() + 1
	flags.Dictionary = filepath.Join(t.TempDir(), "missing.txt")

	var out bytes.Buffer
	err := NewProcessor(flags, &out, nil).Run(context.Background())
	if !errors.Is(err, curriculum.ErrLevelNotImplemented) {
		t.Fatalf("Expected ErrLevelNotImplemented, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRun_LanguageUnavailable(t *testing.T) {
	flags := newTestFlags(t, "mama")
	flags.Lang = "xx_YY"
	flags.Dictionary = filepath.Join(t.TempDir(), "missing.txt")

	err := NewProcessor(flags, &bytes.Buffer{}, nil).Run(context.Background())
	if !errors.Is(err, hyphen.ErrLanguageUnavailable) {
		t.Fatalf("Expected ErrLanguageUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "xx_YY is not supported / not installed") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestRun_MissingDictionary(t *testing.T) {
	flags := newTestFlags(t, "mama")
	flags.Dictionary = filepath.Join(t.TempDir(), "missing.txt")

	err := NewProcessor(flags, &bytes.Buffer{}, nil).Run(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected fs.ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "open dictionary:") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	flags := newTestFlags(t, "mama", "tata")
	flags.Level = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewProcessor(flags, &out, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRun_ListLevels(t *testing.T) {
	flags := cli.NewFlags()
	flags.ListLevels = true
	flags.Dictionary = filepath.Join(t.TempDir(), "missing.txt")

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(testutil.Lines(out.String())) != curriculum.MaxLevel() {
		t.Errorf("Expected %d lines, got:\n%s", curriculum.MaxLevel(), out.String())
	}
}

func TestRun_AnkiCSVExport(t *testing.T) {
	flags := newTestFlags(t, "mama", "tata")
	flags.Level = 1
	flags.AnkiCSV = true
	flags.OutputPath = filepath.Join(t.TempDir(), "export.csv")

	var out bytes.Buffer
	if err := NewProcessor(flags, &out, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	file, err := os.Open(flags.OutputPath)
	if err != nil {
		t.Fatalf("Export not written: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d", len(records))
	}

	printed := testutil.Lines(out.String())
	for i, record := range records[1:] {
		if record[1] != printed[i] {
			t.Errorf("row %d: syllables %q, printed %q", i, record[1], printed[i])
		}
		if record[2] != "1" {
			t.Errorf("row %d: level %q, want 1", i, record[2])
		}
	}
}

func TestRun_AnkiPackageExport(t *testing.T) {
	flags := newTestFlags(t, "mama")
	flags.Level = 1
	flags.GenerateAnki = true
	flags.OutputPath = filepath.Join(t.TempDir(), "export.apkg")

	if err := NewProcessor(flags, &bytes.Buffer{}, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertFileExists(t, flags.OutputPath)
}

func TestExport_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	flags := cli.NewFlags()
	flags.AnkiCSV = true
	p := NewProcessor(flags, &bytes.Buffer{}, nil)

	path, err := p.export([]string{"mama"}, []string{"ma-ma"})
	if err != nil {
		t.Fatalf("export() error = %v", err)
	}
	if path != anki.DefaultOutputPath(anki.DefaultDeckName, true) {
		t.Errorf("Unexpected export path %q", path)
	}
	testutil.AssertFileContains(t, filepath.Join(dir, path), "mama,ma-ma,all")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore Chdir(%q): %v", prev, err)
		}
	})
}
