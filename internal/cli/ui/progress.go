package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ProgressBar draws a determinate progress bar on one terminal line
type ProgressBar struct {
	writer  io.Writer
	total   int
	current int
	width   int
	message string
	noColor bool
}

// ProgressBarOptions configures progress bar behavior
type ProgressBarOptions struct {
	Total   int
	Width   int // default 40
	Message string
	NoColor bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(w io.Writer, opts ProgressBarOptions) *ProgressBar {
	width := opts.Width
	if width <= 0 {
		width = 40
	}
	return &ProgressBar{
		writer:  w,
		total:   opts.Total,
		width:   width,
		message: opts.Message,
		noColor: opts.NoColor,
	}
}

// Add advances the bar by n, clamped to the total
func (p *ProgressBar) Add(n int) {
	p.current = min(p.current+n, p.total)
	p.render()
}

// Current returns the progress so far
func (p *ProgressBar) Current() int {
	return p.current
}

// Finish fills the bar and ends the line
func (p *ProgressBar) Finish() {
	p.current = p.total
	p.render()
	fmt.Fprintln(p.writer)
}

func (p *ProgressBar) render() {
	if p.total == 0 {
		return
	}

	filled := p.width * p.current / p.total

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	if p.noColor {
		cyan.DisableColor()
		gray.DisableColor()
	}

	var bar strings.Builder
	bar.WriteString("[")
	cyan.Fprint(&bar, strings.Repeat("█", filled))
	gray.Fprint(&bar, strings.Repeat("░", p.width-filled))
	bar.WriteString("]")

	fmt.Fprintf(p.writer, "\r%s %3d%% %d/%d", bar.String(), 100*p.current/p.total, p.current, p.total)
	if p.message != "" {
		fmt.Fprintf(p.writer, " %s", p.message)
	}
}

// WithProgress runs fn with a progress bar over total steps and prints a
// success line when fn returns nil
func WithProgress(w io.Writer, message string, total int, noColor bool, fn func(*ProgressBar) error) error {
	bar := NewProgressBar(w, ProgressBarOptions{
		Total:   total,
		Message: message,
		NoColor: noColor,
	})

	if err := fn(bar); err != nil {
		fmt.Fprintln(w)
		return err
	}

	bar.Finish()
	WriteSuccess(w, message, noColor)
	return nil
}
