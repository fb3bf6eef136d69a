// Package pdf renders resume text to PDF using the resumefmt pipeline.
//
// Two backends consume the same layout blocks. The procedural backend draws
// every block at an absolute position and applies the pagination rule itself;
// the declarative backend builds a Tree of styled nodes and lets the PDF
// writer wrap pages. The Tree can also be written out as HTML.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.PageSize = "A4"
//	cfg.Mode = pdf.ModeDeclarative
//
//	err := pdf.Render(pdf.RenderRequest{
//		Text:   resumeText,
//		Writer: outFile,
//		Config: cfg,
//	})
//	if errors.Is(err, pdf.ErrGeneration) {
//		// nothing was written to outFile
//	}
//
// Without font paths the core Helvetica family is used and text is encoded
// as Windows-1252. Set RegularFont/BoldFont/ItalicFont to TTF files for full
// Unicode coverage.
package pdf
