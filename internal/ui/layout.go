package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the list drops the
	// cuisine and calories columns.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the rating column.
	LayoutWideWidth = 120
)

// Chrome heights, in lines.
const (
	headerHeight = 2 // status bar + search bar
	footerHeight = 2 // list footer + key hints
)

// Timing constants.
const (
	// DetailFetchTimeout bounds a single recipe lookup.
	DetailFetchTimeout = 10 * time.Second
)
