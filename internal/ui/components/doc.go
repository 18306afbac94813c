// Package components provides the theme-aware lipgloss components used to draw
// tables in the terminal.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme, _ := components.ThemeByName("dark")
//	ctx := components.DefaultContext().WithTheme(theme).WithASCII(!unicode)
//	output := component.ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// # Components
//
//   - Text, Header: styled text
//   - Badge: status indicators (loading, active filters, selection count)
//   - Alert: bordered notification for data source errors
//   - Stack: vertical or horizontal composition
//   - DataTable: one page of a table.Result with sort indicators, selection
//     checkboxes, a row cursor and expanded detail lines
//   - Pager: page position and counters
//
// TableView composes all of them for a single result.
//
// # Style Modifiers
//
// Components accept StyleFunc appliers through WithAppliers:
//
//	badge := NewBadge("beta").WithAppliers(Background(PaletteInfo), PaddingX(2))
package components
