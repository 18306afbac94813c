package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// Pager renders the page position and row counters of a result.
type Pager struct {
	BaseComponent
	meta table.Meta
}

// NewPager creates a pager for the given meta.
func NewPager(meta table.Meta) *Pager {
	return &Pager{BaseComponent: NewBaseComponent(), meta: meta}
}

// View renders the pager.
func (p *Pager) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pager.
func (p *Pager) ViewWithContext(ctx RenderContext) string {
	muted := ctx.Theme.Typography.Muted
	body := ctx.Theme.Typography.Body

	parts := make([]string, 0, 5)
	if p.meta.HasPreviousPage {
		parts = append(parts, body.Render(ctx.glyph("‹ prev", "< prev")))
	}
	if p.meta.TotalPages > 0 {
		parts = append(parts, body.Render(fmt.Sprintf("Page %d of %d", p.meta.PageIndex+1, p.meta.TotalPages)))
	}
	parts = append(parts, muted.Render(pluralize(p.meta.TotalRows, "row", "rows")))
	if p.meta.SelectedCount > 0 {
		parts = append(parts, muted.Render(fmt.Sprintf("%d selected", p.meta.SelectedCount)))
	}
	if p.meta.HasNextPage {
		parts = append(parts, body.Render(ctx.glyph("next ›", "next >")))
	}

	return p.ComputeStyle(ctx.Theme).Render(strings.Join(parts, muted.Render(ctx.glyph(" · ", " | "))))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
