package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	channelBufferSize = 256

	// chartBarWidth is the width of the live per-algorithm bar chart.
	chartBarWidth    = 36
	rightViewportMax = 90
)
