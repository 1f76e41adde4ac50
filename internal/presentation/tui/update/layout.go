package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jestr/internal/presentation/tui/components/modal"
	"github.com/tesso57/jestr/internal/presentation/tui/metrics"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
)

// detailInnerWidth is the text width inside the detail dialog border and padding.
const detailInnerWidth = modal.DetailWidth - metrics.ModalFrameWidth

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainListHeight    int
	detailHeight      int
}

// UpdateListSizes fits lists and the detail viewport to the window.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.CategoryList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.JokeList.SetSize(layout.mainWidth, layout.mainListHeight)
	s.Viewport.Width = clampMin(min(detailInnerWidth, s.Width-metrics.ModalFrameWidth), 1)
	s.Viewport.Height = layout.detailHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	mainListHeight := clampMin(availableHeight-metrics.HeaderLines, 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleLines, 1)

	sidebarWidth := s.Width / 3
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)

	sidebarListHeight = reservePaginationSpace(s.CategoryList, sidebarListHeight)
	mainListHeight = reservePaginationSpace(s.JokeList, mainListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainListHeight:    mainListHeight,
		detailHeight:      clampMin(min(s.Height-metrics.ModalFrameHeight-metrics.ModalTitleLines, metrics.DetailMaxLines), 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys)
	return lipgloss.Height(state.FooterText(s.Loading(), s.StatusMessage, helpText))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height < 1 || !m.ShowPagination() {
		return height
	}
	if height <= 1 {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
