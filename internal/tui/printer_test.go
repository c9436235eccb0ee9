package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFilePrinter_PrunesOldReports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	p := &FilePrinter{
		Dir:      dir,
		KeepLast: 2,
		Render:   func() string { return "\x1b[1mreport\x1b[0m" },
		Now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	}

	for i := 0; i < 3; i++ {
		if err := p.Print(); err != nil {
			t.Fatalf("Print #%d: %v", i+1, err)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, reportPattern))
	if err != nil {
		t.Fatalf("glob reports: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("report files = %d, want 2", len(files))
	}

	last, err := p.Last()
	if err != nil || !strings.HasSuffix(last, "20261019-090003.000.txt") {
		t.Fatalf("last = %q, %v", last, err)
	}
	data, err := os.ReadFile(last)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "report" {
		t.Fatalf("report = %q, want stripped text", data)
	}
}

func TestFilePrinter_SameInstantDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	n := 0
	p := &FilePrinter{
		Dir:    dir,
		Render: func() string { n++; return fmt.Sprintf("report %d", n) },
		Now:    func() time.Time { return now },
	}

	var paths []string
	for i := 0; i < 3; i++ {
		if err := p.Print(); err != nil {
			t.Fatalf("Print #%d: %v", i+1, err)
		}
		last, _ := p.Last()
		paths = append(paths, last)
	}

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if want := fmt.Sprintf("report %d", i+1); string(data) != want {
			t.Errorf("%s = %q, want %q", filepath.Base(path), data, want)
		}
	}
	if !(paths[0] < paths[1] && paths[1] < paths[2]) {
		t.Errorf("report names not in print order: %v", paths)
	}
}

func TestFilePrinter_NothingToRender(t *testing.T) {
	t.Parallel()

	p := &FilePrinter{Dir: t.TempDir()}
	if err := p.Print(); err == nil {
		t.Fatal("expected error without a renderer")
	}
}
