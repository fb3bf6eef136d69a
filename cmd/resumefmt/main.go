package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/resumefmt"
	"pkt.systems/resumefmt/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	fetchTimeout     = 30 * time.Second
)

func init() {
	version.SetDefaultModule("pkt.systems/resumefmt")
}

type options struct {
	outPath         string
	configPath      string
	mode            string
	htmlMode        bool
	preview         bool
	classify        bool
	themeName       string
	width           int
	listThemes      bool
	pageSize        string
	margin          float64
	fontFamily      string
	regularFont     string
	boldFont        string
	italicFont      string
	boldItalicFont  string
	trailingNewPage bool
	title           string
	author          string
	verbose         bool
}

func main() {
	var opts options
	pdfDefaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("resumefmt", pflag.ExitOnError)
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML config file")
	flags.StringVarP(&opts.mode, "mode", "m", "", "PDF backend: procedural|declarative")
	flags.BoolVar(&opts.htmlMode, "html", false, "Write HTML instead of PDF")
	flags.BoolVarP(&opts.preview, "preview", "p", false, "Print a styled terminal preview instead of PDF")
	flags.BoolVar(&opts.classify, "classify", false, "Print the role of every line and exit")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Preview theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available preview themes")
	flags.StringVar(&opts.pageSize, "page-size", "", fmt.Sprintf("PDF page size (default %s)", pdfDefaults.PageSize))
	flags.Float64Var(&opts.margin, "margin", 0, fmt.Sprintf("Page margin in points (default %g)", pdfDefaults.Margin))
	flags.StringVar(&opts.fontFamily, "font-family", "", fmt.Sprintf("Font family (default %s)", pdfDefaults.FontFamily))
	flags.StringVar(&opts.regularFont, "regular-font", "", "TTF path for regular font")
	flags.StringVar(&opts.boldFont, "bold-font", "", "TTF path for bold font")
	flags.StringVar(&opts.italicFont, "italic-font", "", "TTF path for italic font")
	flags.StringVar(&opts.boldItalicFont, "bold-italic-font", "", "TTF path for bold-italic font")
	flags.BoolVar(&opts.trailingNewPage, "trailing-new-page", false, "Start the appended job description on a new page")
	flags.StringVar(&opts.title, "title", "", "Document title metadata")
	flags.StringVar(&opts.author, "author", "", "Document author metadata")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: resumefmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are files, file:// or http(s):// URLs. If none is given, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if opts.listThemes {
		for _, name := range resumefmt.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	text, err := readInputs(ctx, flags.Args())
	cancel()
	if err != nil {
		log.Error("read input", zap.Error(err))
		os.Exit(1)
	}

	if opts.classify {
		if err := printRoles(os.Stdout, text); err != nil {
			log.Error("classify", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		log.Error("open output", zap.Error(err))
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if opts.preview {
		theme, ok := resumefmt.ThemeByName(opts.themeName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.themeName)
			for _, name := range resumefmt.AvailableThemes() {
				fmt.Fprintln(os.Stderr, name)
			}
			os.Exit(2)
		}
		if err := renderPreview(writer, text, resolveWidth(opts.width), theme); err != nil {
			log.Error("render preview", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		log.Error("config", zap.Error(err))
		os.Exit(2)
	}
	req := pdf.RenderRequest{Text: text, Writer: writer, Config: cfg, Logger: log}
	if opts.htmlMode {
		if err := pdf.RenderHTML(req); err != nil {
			log.Error("render html", zap.Error(err))
			os.Exit(1)
		}
		return
	}
	if isTerminal(writer) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output or --preview")
		os.Exit(2)
	}
	if err := pdf.Render(req); err != nil {
		log.Error("render pdf", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func buildConfig(opts options) (pdf.Config, error) {
	var cfg pdf.Config
	if opts.configPath != "" {
		loaded, err := pdf.LoadConfig(normalizePath(opts.configPath))
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.mode != "" {
		switch mode := pdf.Mode(strings.ToLower(opts.mode)); mode {
		case pdf.ModeProcedural, pdf.ModeDeclarative:
			cfg.Mode = mode
		default:
			return cfg, fmt.Errorf("invalid --mode %q: expected procedural|declarative", opts.mode)
		}
	}
	if opts.pageSize != "" {
		cfg.PageSize = opts.pageSize
	}
	if opts.margin > 0 {
		cfg.Margin = opts.margin
	}
	if opts.fontFamily != "" {
		cfg.FontFamily = opts.fontFamily
	}
	reg, bold, italic := strings.TrimSpace(opts.regularFont), strings.TrimSpace(opts.boldFont), strings.TrimSpace(opts.italicFont)
	if reg != "" || bold != "" || italic != "" {
		if reg == "" || bold == "" || italic == "" {
			return cfg, fmt.Errorf("fonts: regular, bold, and italic fonts must all be provided")
		}
		for _, path := range []string{reg, bold, italic} {
			if err := ensureFont(normalizePath(path)); err != nil {
				return cfg, fmt.Errorf("font %s: %w", path, err)
			}
		}
		cfg.RegularFont = normalizePath(reg)
		cfg.BoldFont = normalizePath(bold)
		cfg.ItalicFont = normalizePath(italic)
		if cfg.FontFamily == "" || cfg.FontFamily == pdf.DefaultConfig().FontFamily {
			cfg.FontFamily = "resumefmt"
		}
		if opts.boldItalicFont != "" {
			boldItalic := normalizePath(opts.boldItalicFont)
			if err := ensureFont(boldItalic); err != nil {
				return cfg, fmt.Errorf("bold-italic font: %w", err)
			}
			cfg.BoldItalicFont = boldItalic
		}
	}
	if opts.trailingNewPage {
		cfg.TrailingOnNewPage = true
	}
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.author != "" {
		cfg.Author = opts.author
	}
	return cfg, nil
}

func renderPreview(w io.Writer, text string, width int, theme resumefmt.Theme) error {
	doc := resumefmt.Prepare(text)
	blocks := resumefmt.Layout(resumefmt.LayoutRequest{
		Resume:   doc.Resume,
		Trailing: doc.Trailing,
		Styles:   resumefmt.DefaultStyleSheet(),
	})
	return resumefmt.Compose(resumefmt.ComposeRequest{
		Blocks: blocks,
		Sink:   resumefmt.NewPreviewSink(w, width, theme),
	})
}

func printRoles(w io.Writer, text string) error {
	doc := resumefmt.Prepare(text)
	trailingFrom := len(doc.Lines)
	if len(doc.Trailing.Lines) > 0 {
		trailingFrom = doc.Trailing.Lines[0].Index
	}
	for _, line := range doc.Lines {
		section := resumefmt.SectionResume
		if line.Index >= trailingFrom {
			section = resumefmt.SectionTrailing
		}
		if _, err := fmt.Fprintf(w, "%4d  %-8s  %-22s  %s\n", line.Index+1, section, line.Role, line.Text); err != nil {
			return err
		}
	}
	return nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func readInputs(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		if err := resumefmt.ValidateInput(data); err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return string(data), nil
	}
	parts := make([]string, 0, len(args))
	for _, raw := range args {
		text, err := readInput(ctx, raw)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimSuffix(text, "\n"))
	}
	return strings.Join(parts, "\n"), nil
}

func readInput(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return resumefmt.Fetch(ctx, resumefmt.FetchRequest{URL: raw})
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return readFile(path)
		}
	}
	return readFile(raw)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return "", err
	}
	if err := resumefmt.ValidateInput(data); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(data), nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
