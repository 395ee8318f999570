package ui

import "github.com/fatih/color"

// Report Channel Colors
var (
	InfoColor = color.New(color.FgGreen).SprintFunc()
	TipColor  = color.New(color.FgYellow).SprintFunc()
	WarnColor = color.New(color.FgRed).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.ReverseVideo).SprintFunc()
)

// Detail Colors
var (
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For less prominent details
)
