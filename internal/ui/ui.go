package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	LinkColor   = "#87CEEB"
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorBlue   = "4"
	colorPurple = "5"
	colorCyan   = "6"
)

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	colorEnabled := shouldEnableColor(output, mode, disableColor)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: colorEnabled,
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) paint(output *termenv.Output, color string, msg string) string {
	if !u.ColorEnabled || output == nil {
		return msg
	}
	return output.String(msg).Foreground(output.Color(color)).String()
}

func (u *UI) println(w io.Writer, output *termenv.Output, color string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	fmt.Fprintln(w, u.paint(output, color, msg))
}

func (u *UI) Errorf(format string, args ...any) {
	u.println(u.Err, u.ErrOutput, colorRed, format, args...)
}

func (u *UI) Warnf(format string, args ...any) {
	u.println(u.Err, u.ErrOutput, colorYellow, format, args...)
}

func (u *UI) Infof(format string, args ...any) {
	u.println(u.Out, u.Output, colorBlue, format, args...)
}

func (u *UI) Successf(format string, args ...any) {
	u.println(u.Out, u.Output, colorGreen, format, args...)
}

// Alertf prints a red line on stdout, for operator-visible stops.
func (u *UI) Alertf(format string, args ...any) {
	u.println(u.Out, u.Output, colorRed, format, args...)
}

// Statusf prints a phase banner such as "Getting jobs...".
func (u *UI) Statusf(format string, args ...any) {
	u.println(u.Out, u.Output, colorCyan, format, args...)
}

// Notef prints an operator-facing acknowledgment in the prompt color.
func (u *UI) Notef(format string, args ...any) {
	u.println(u.Out, u.Output, colorPurple, format, args...)
}

// Promptf prints a question without a trailing newline.
func (u *UI) Promptf(format string, args ...any) {
	fmt.Fprint(u.Out, u.paint(u.Output, colorPurple, fmt.Sprintf(format, args...)))
}

// Field prints "label: value" with the value highlighted.
func (u *UI) Field(label string, value string) {
	fmt.Fprintf(u.Out, "%s: %s\n", label, u.paint(u.Output, colorGreen, value))
}

func (u *UI) Blank() {
	fmt.Fprintln(u.Out)
}

func ColorizeLink(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(LinkColor)).String()
}

func (u *UI) LinkText(text string) string {
	return ColorizeLink(u.Output, u.ColorEnabled, text)
}

func NormalizeColorMode(value string) ColorMode {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
