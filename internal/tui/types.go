package tui

const defaultTitle = "IDM Clone TUI"

const (
	bodyPanelTitle   = "files list"
	dialogPanelTitle = "Enter download link"
	hintSeparator    = " / "
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	headerHeight = 3
	footerHeight = 3
	minBodyRows  = 3

	dialogWidthPercent  = 60
	dialogHeightPercent = 10
	minDialogHeight     = 3
	minDialogWidth      = 12
)
