package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"pkt.systems/resumefmt"
)

// ErrGeneration wraps every failure raised while writing the document.
// Output is never partially written when it is returned.
var ErrGeneration = errors.New("document generation failed")

// RenderRequest contains inputs for PDF rendering. Text takes precedence
// over Reader.
type RenderRequest struct {
	Text   string
	Reader io.Reader
	Writer io.Writer
	Config Config
	Logger *zap.Logger
}

// Render formats resume text into a paginated PDF.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	text, err := readText(req)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	log := req.Logger
	if log == nil {
		log = zap.NewNop()
	}

	doc := resumefmt.Prepare(text)
	log.Debug("classified resume text",
		zap.Int("lines", len(doc.Lines)),
		zap.Int("resume_lines", len(doc.Resume.Lines)),
		zap.Int("trailing_lines", len(doc.Trailing.Lines)),
		zap.Any("roles", resumefmt.Stats(doc.Lines)),
	)

	pdf, fonts, err := newDocument(cfg)
	if err != nil {
		return fmt.Errorf("pdf render: %w: %w", ErrGeneration, err)
	}
	pageW, pageH := pdf.GetPageSize()
	width := pageW - 2*cfg.Margin
	blocks := resumefmt.Layout(resumefmt.LayoutRequest{
		Resume:   doc.Resume,
		Trailing: doc.Trailing,
		Styles:   cfg.Styles,
		Width:    width,
		Measure:  measureFunc(pdf, fonts),
	})

	switch cfg.Mode {
	case ModeDeclarative:
		tree, err := BuildTree(blocks, cfg.TrailingOnNewPage)
		if err != nil {
			return fmt.Errorf("pdf render: %w: %w", ErrGeneration, err)
		}
		tree.Title = cfg.Title
		err = tree.draw(pdf, cfg, fonts)
		if err != nil {
			return fmt.Errorf("pdf render: %w: %w", ErrGeneration, err)
		}
	default:
		pages := resumefmt.NewPageState(pageH, cfg.Margin, cfg.Margin)
		sink := newProceduralSink(pdf, cfg, fonts, pages)
		err := resumefmt.Compose(resumefmt.ComposeRequest{
			Blocks:              blocks,
			Sink:                sink,
			Pages:               pages,
			BreakBeforeTrailing: cfg.TrailingOnNewPage,
		})
		if err != nil {
			return fmt.Errorf("pdf render: %w: %w", ErrGeneration, err)
		}
		log.Debug("paginated blocks", zap.Int("blocks", len(blocks)), zap.Int("last_page", pages.PageIndex))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("pdf render: %w: output: %w", ErrGeneration, err)
	}
	log.Debug("rendered pdf",
		zap.String("mode", string(cfg.Mode)),
		zap.Int("pages", pdf.PageCount()),
		zap.Int("bytes", buf.Len()),
	)
	if _, err := buf.WriteTo(req.Writer); err != nil {
		return fmt.Errorf("pdf render: write: %w", err)
	}
	return nil
}

func readText(req RenderRequest) (string, error) {
	if req.Text != "" || req.Reader == nil {
		return req.Text, nil
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return "", fmt.Errorf("pdf render: read: %w", err)
	}
	return string(data), nil
}

func newDocument(cfg Config) (*gofpdf.Fpdf, fontSet, error) {
	pdf := gofpdf.New("P", "pt", cfg.PageSize, "")
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetCellMargin(0)
	pdf.SetCompression(!cfg.DisableCompression)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}
	if cfg.Subject != "" {
		pdf.SetSubject(cfg.Subject, true)
	}
	if cfg.Creator != "" {
		pdf.SetCreator(cfg.Creator, true)
	}
	fonts, err := loadFonts(pdf, cfg)
	if err != nil {
		return nil, fonts, err
	}
	fonts.apply(pdf, cfg.Styles.Body)
	if err := pdf.Error(); err != nil {
		return nil, fonts, fmt.Errorf("font setup failed: %w", err)
	}
	return pdf, fonts, nil
}

// measureFunc counts lines with the same breaker MultiCell uses, so block
// estimates match what gets drawn. UTF-8 fonts are measured per rune.
func measureFunc(pdf *gofpdf.Fpdf, fonts fontSet) resumefmt.MeasureFunc {
	return func(text string, st resumefmt.RoleStyle, width float64) int {
		if text == "" {
			return 1
		}
		fonts.apply(pdf, st)
		var n int
		if fonts.utf8 {
			n = len(pdf.SplitText(text, width))
		} else {
			n = len(pdf.SplitLines([]byte(fonts.encode(text)), width))
		}
		if n < 1 {
			return 1
		}
		return n
	}
}
