package resumefmt

import "fmt"

// Sink receives layout blocks from Compose. Each renderer is one Sink.
type Sink interface {
	EmitText(LayoutBlock) error
	EmitBullet(LayoutBlock) error
	EmitRule(LayoutBlock) error
	EmitSpace(LayoutBlock) error
	PageBreak() error
	Flush() error
}

// ComposeRequest configures Compose.
type ComposeRequest struct {
	Blocks []LayoutBlock
	Sink   Sink
	// Pages applies the pagination rule when set. Renderers whose host
	// library wraps pages on its own leave it nil.
	Pages *PageState
	// BreakBeforeTrailing starts the job description on a fresh page.
	BreakBeforeTrailing bool
}

// Compose drives a Sink over blocks in order. Rules are emitted right after
// the text of blocks whose style asks for one.
func Compose(req ComposeRequest) error {
	if req.Sink == nil {
		return fmt.Errorf("compose: sink is nil")
	}
	sink := req.Sink
	pages := req.Pages
	for i, b := range req.Blocks {
		if req.BreakBeforeTrailing && b.Section == SectionTrailing && i > 0 && req.Blocks[i-1].Section == SectionResume {
			if err := breakPage(sink, pages); err != nil {
				return err
			}
		}
		if pages != nil && pages.NeedsBreak(b.Height) {
			if err := breakPage(sink, pages); err != nil {
				return err
			}
		}
		if err := emitBlock(sink, b); err != nil {
			return fmt.Errorf("compose: line %d (%s): %w", b.Index+1, b.Role, err)
		}
		if pages != nil {
			pages.Advance(b.Height)
		}
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("compose: flush: %w", err)
	}
	return nil
}

func emitBlock(sink Sink, b LayoutBlock) error {
	switch b.Role.Kind {
	case RoleSpacer:
		return sink.EmitSpace(b)
	case RoleBullet:
		return sink.EmitBullet(b)
	}
	if err := sink.EmitText(b); err != nil {
		return err
	}
	if b.Style.Rule {
		return sink.EmitRule(b)
	}
	return nil
}

func breakPage(sink Sink, pages *PageState) error {
	if err := sink.PageBreak(); err != nil {
		return fmt.Errorf("compose: page break: %w", err)
	}
	if pages != nil {
		pages.Break()
	}
	return nil
}
