package cli

import "github.com/fatih/color"

var (
	statusColor  = color.New(color.FgCyan)
	stepColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)
