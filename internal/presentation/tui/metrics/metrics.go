// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 2
	SidebarTitleLines       = 2
	SidebarRightBorderWidth = 1
	HeaderWidthPadding      = 2

	// Rounded border plus Padding(1, 2) of the modal component.
	ModalFrameWidth  = 6
	ModalFrameHeight = 4
	ModalTitleLines  = 2
	DetailMaxLines   = 16

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
