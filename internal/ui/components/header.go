package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders a title with an optional subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	if h.title == "" && h.subtitle == "" {
		return ""
	}
	title := ctx.Theme.Typography.Title.Inherit(h.ComputeStyle(ctx.Theme)).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, ctx.Theme.Typography.Subtitle.Render(h.subtitle))
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}
