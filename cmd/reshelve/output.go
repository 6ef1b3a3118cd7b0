package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// statusCell renders an ok/failed cell, colorized when stdout is a terminal.
func statusCell(success bool, message string, colorize bool) string {
	label := "ok"
	color := ansiGreen
	if !success {
		label = "failed"
		color = ansiRed
		if message != "" {
			label += ": " + message
		}
	}
	if colorize {
		return color + label + ansiReset
	}
	return label
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
