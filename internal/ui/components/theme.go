package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemePlain   = "plain"
)

// ColourSet represents a semantic colour set:
//
//   - Base: the background or brand colour
//   - OnBase: text colour that contrasts with Base
//   - Muted: a subdued variant of Base
//
// All colours are adaptive, providing both light and dark variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains the text presets used by components.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// TableStyles are the styles the data table renders with.
type TableStyles struct {
	Header        lipgloss.Style
	FocusedHeader lipgloss.Style
	Cell          lipgloss.Style
	StripedCell   lipgloss.Style
	SelectedCell  lipgloss.Style
	CursorCell    lipgloss.Style
	Separator     lipgloss.Style
	Detail        lipgloss.Style
	Empty         lipgloss.Style
}

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Table      TableStyles
	Variants   *VariantRegistry
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{ThemeDefault, ThemeDark, ThemePlain}
}

// ThemeByName returns a built-in theme. The lookup is case-insensitive.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDefault:
		return DefaultTheme(), true
	case ThemeDark:
		return DarkTheme(), true
	case ThemePlain:
		return PlainTheme(), true
	default:
		return Theme{}, false
	}
}

// IsKnownTheme reports whether name is a built-in theme.
func IsKnownTheme(name string) bool {
	return slices.Contains(ThemeNames(), strings.ToLower(strings.TrimSpace(name)))
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Surface: ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
		Success: ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning: ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207")},
		Danger:  ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Info:    ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490")},
		Neutral: ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155")},
	}
	return buildTheme(ThemeDefault, palette)
}

// DarkTheme returns a theme tuned for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()
	palette := theme.Palette
	palette.Surface = ColourSet{Base: ac("#111827", "#0b1120"), OnBase: ac("#f9fafb", "#e5e7eb"), Muted: ac("#1f2937", "#111827")}
	palette.Neutral = ColourSet{Base: ac("#475569", "#334155"), OnBase: ac("#e5e7eb", "#cbd5f5"), Muted: ac("#374151", "#1f2937")}
	return buildTheme(ThemeDark, palette)
}

// PlainTheme renders without colour. Layout and borders are kept.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	theme := Theme{
		Name:    ThemePlain,
		Borders: defaultBorders(),
		Typography: TypographyScale{
			Body:     plain,
			Title:    plain.Bold(true),
			Subtitle: plain,
			Emphasis: plain.Bold(true),
			Muted:    plain,
		},
		Table: TableStyles{
			Header:        plain.Bold(true),
			FocusedHeader: plain.Bold(true).Underline(true),
			Cell:          plain,
			StripedCell:   plain,
			SelectedCell:  plain.Bold(true),
			CursorCell:    plain.Reverse(true),
			Separator:     plain,
			Detail:        plain,
			Empty:         plain,
		},
		Variants: NewVariantRegistry(),
	}
	registerBadgeVariants(theme.Variants)
	registerAlertVariants(theme.Variants)
	return theme
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

func buildTheme(name string, palette Palette) Theme {
	variants := NewVariantRegistry()
	registerBadgeVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Name:       name,
		Palette:    palette,
		Borders:    defaultBorders(),
		Typography: defaultTypography(palette),
		Table:      defaultTableStyles(palette),
		Variants:   variants,
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base).Faint(true),
		Emphasis: body.Bold(true),
		Muted:    body.Foreground(p.Neutral.Base),
	}
}

func defaultTableStyles(p Palette) TableStyles {
	cell := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	header := lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base)
	return TableStyles{
		Header:        header,
		FocusedHeader: header.Underline(true).Foreground(p.Primary.Muted),
		Cell:          cell,
		StripedCell:   cell.Background(p.Surface.Muted),
		SelectedCell:  cell.Foreground(p.Success.Muted).Bold(true),
		CursorCell:    cell.Background(p.Primary.Base).Foreground(p.Primary.OnBase),
		Separator:     lipgloss.NewStyle().Foreground(p.Neutral.Muted),
		Detail:        lipgloss.NewStyle().Foreground(p.Neutral.Base),
		Empty:         lipgloss.NewStyle().Foreground(p.Neutral.Base).Italic(true),
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	for variant, slot := range map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantError:   PaletteDanger,
		BadgeVariantInfo:    PaletteInfo,
	} {
		registry.Register(variant, NewCompositeStrategy(Background(slot), PaddingX(1)))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(BorderColour(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(BorderColour(PaletteWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(BorderColour(PaletteDanger)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(BorderColour(PaletteInfo)))
}

// BorderForVariant returns the border for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantSubtitle:
		return theme.Typography.Subtitle
	case TypographyVariantEmphasis:
		return theme.Typography.Emphasis
	case TypographyVariantMuted:
		return theme.Typography.Muted
	default:
		return theme.Typography.Body
	}
}

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	badge := NewBadge("3 selected").WithAppliers(Background(PaletteSuccess))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		if cs == (ColourSet{}) {
			return base
		}
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		if cs == (ColourSet{}) {
			return base
		}
		return base.Foreground(cs.Base)
	}
}

// BorderColour colours an existing border with a palette slot.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		if cs == (ColourSet{}) {
			return base
		}
		return base.BorderForeground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads the left and right sides by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
