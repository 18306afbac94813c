package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert displays a bordered notification such as a data source error.
type Alert struct {
	BaseComponent
	message string
	title   string
	variant AlertVariant
}

// NewAlert creates a new info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	line := a.icon(ctx) + " " + a.message
	content := line
	if a.title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, ctx.Theme.Typography.Emphasis.Render(a.title), line)
	}

	border := ctx.Theme.Borders.Rounded
	if ctx.ASCII {
		border = asciiBorder()
	}
	style := a.ComputeStyle(ctx.Theme).Border(border).Padding(0, 1)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(content)
}

func (a *Alert) icon(ctx RenderContext) string {
	switch a.variant {
	case AlertVariantSuccess:
		return ctx.glyph("✓", "ok")
	case AlertVariantWarning:
		return ctx.glyph("⚠", "!")
	case AlertVariantError:
		return ctx.glyph("✗", "x")
	default:
		return ctx.glyph("ℹ", "i")
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle adds a title line to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

func asciiBorder() lipgloss.Border {
	return lipgloss.Border{
		Top: "-", Bottom: "-", Left: "|", Right: "|",
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	}
}
