// Package resumefmt turns plain resume text into a styled, paginated document.
//
// The input carries no markup. Structure is recovered line by line: every line
// is normalized, classified into a LineRole by a priority-ordered rule chain,
// routed to either the resume or the appended job description, and laid out
// into LayoutBlocks with estimated heights. Renderers consume the blocks
// through the Sink interface, so the PDF writers in package pdf and the
// terminal preview in this package all see the same block stream.
//
// Core properties:
//   - Classification is total: every line ends up in some role
//   - One LayoutBlock per input line, blank lines included
//   - Resume content always precedes job description content
//   - No shared state between calls
//
// Example:
//
//	doc := resumefmt.Prepare(text)
//	blocks := resumefmt.Layout(resumefmt.LayoutRequest{
//		Resume:   doc.Resume,
//		Trailing: doc.Trailing,
//		Styles:   resumefmt.DefaultStyleSheet(),
//	})
//	err := resumefmt.Compose(resumefmt.ComposeRequest{
//		Blocks: blocks,
//		Sink:   resumefmt.NewPreviewSink(os.Stdout, 80, resumefmt.DefaultTheme()),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// PDF output lives in package pdf.
package resumefmt
