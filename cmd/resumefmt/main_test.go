package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/resumefmt"
	"pkt.systems/resumefmt/pdf"
)

func TestReadInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("Jane Doe\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	ctx := context.Background()

	got, err := readInput(ctx, path)
	if err != nil {
		t.Fatalf("readInput file: %v", err)
	}
	if got != "Jane Doe\n" {
		t.Fatalf("unexpected file content: %q", got)
	}

	got, err = readInput(ctx, "file://"+path)
	if err != nil {
		t.Fatalf("readInput file URL: %v", err)
	}
	if got != "Jane Doe\n" {
		t.Fatalf("unexpected file URL content: %q", got)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Job Description:\nGo"))
	}))
	defer srv.Close()
	got, err = readInput(ctx, srv.URL)
	if err != nil {
		t.Fatalf("readInput http: %v", err)
	}
	if got != "Job Description:\nGo" {
		t.Fatalf("unexpected http content: %q", got)
	}
}

func TestReadInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "resume.txt")
	second := filepath.Join(dir, "job.txt")
	if err := os.WriteFile(first, []byte("Jane Doe\n"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("Job Description:\nGo\n"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	got, err := readInputs(context.Background(), []string{first, second})
	if err != nil {
		t.Fatalf("readInputs: %v", err)
	}
	if got != "Jane Doe\nJob Description:\nGo" {
		t.Fatalf("unexpected concatenated content: %q", got)
	}
	doc := resumefmt.Prepare(got)
	if len(doc.Trailing.Lines) != 2 {
		t.Fatalf("expected job description to land in trailing block, got %d lines", len(doc.Trailing.Lines))
	}
}

func TestReadInputRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF\x00\x01"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := readInput(context.Background(), path); err == nil {
		t.Fatalf("expected binary input to be rejected")
	}
}

func TestBuildConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.toml")
	if err := os.WriteFile(path, []byte("mode = \"declarative\"\npage_size = \"A4\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := buildConfig(options{configPath: path, pageSize: "Legal", trailingNewPage: true})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Mode != pdf.ModeDeclarative {
		t.Fatalf("expected mode from file, got %q", cfg.Mode)
	}
	if cfg.PageSize != "Legal" {
		t.Fatalf("expected flag page size, got %q", cfg.PageSize)
	}
	if !cfg.TrailingOnNewPage {
		t.Fatalf("expected trailing-new-page to be set")
	}
}

func TestBuildConfigRejectsBadInput(t *testing.T) {
	if _, err := buildConfig(options{mode: "fancy"}); err == nil {
		t.Fatalf("expected invalid mode error")
	}
	if _, err := buildConfig(options{regularFont: "/tmp/only-regular.ttf"}); err == nil {
		t.Fatalf("expected incomplete font set error")
	}
}

func TestPrintRoles(t *testing.T) {
	var buf bytes.Buffer
	if err := printRoles(&buf, "Jane Doe\nEXPERIENCE\nJob Description:"); err != nil {
		t.Fatalf("printRoles: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "resume") || !strings.Contains(lines[0], "name") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "section_header") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "trailing") {
		t.Fatalf("expected trailing section on last line: %q", lines[2])
	}
}

func TestBoringPreviewHasNoEscapes(t *testing.T) {
	theme, ok := resumefmt.ThemeByName("boring")
	if !ok {
		t.Fatalf("boring theme missing")
	}
	var buf bytes.Buffer
	if err := renderPreview(&buf, "Jane Doe\nEXPERIENCE\n• Built things", 60, theme); err != nil {
		t.Fatalf("renderPreview: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "• Built things") {
		t.Fatalf("expected bullet in preview, got %q", buf.String())
	}
}

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(72); got != 72 {
		t.Fatalf("expected explicit width, got %d", got)
	}
	if got := resolveWidth(0); got <= 0 {
		t.Fatalf("expected positive fallback width, got %d", got)
	}
}
