package console

import (
	"io"

	"github.com/fatih/color"
)

//nolint:gochecknoglobals // shared palette
var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

type Console struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Console) Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(c.Stdout, format+"\n", a...)
}

func (c *Console) Success(format string, a ...any) {
	_, _ = successColor.Fprintf(c.Stdout, "✓ "+format+"\n", a...)
}

func (c *Console) Warning(format string, a ...any) {
	_, _ = warningColor.Fprintf(c.Stderr, "⚠ "+format+"\n", a...)
}
