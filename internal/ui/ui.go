// Package ui renders prism's console output. Match lines are plain text on
// the output writer so they can be piped; everything else is styled with
// lipgloss and goes to the diagnostic writer.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/papapumpkin/prism/internal/filter"
	"github.com/papapumpkin/prism/internal/product"
)

type styles struct {
	heading lipgloss.Style
	info    lipgloss.Style
	errTag  lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		info:    r.NewStyle().Faint(true),
		errTag:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
	}
}

// Printer writes results to out and diagnostics to errOut.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	outStyles styles
	errStyles styles
}

// New returns a Printer. Info messages are suppressed unless verbose is set.
func New(out, errOut io.Writer, verbose bool) *Printer {
	return &Printer{
		out:       out,
		errOut:    errOut,
		verbose:   verbose,
		outStyles: newStyles(lipgloss.NewRenderer(out)),
		errStyles: newStyles(lipgloss.NewRenderer(errOut)),
	}
}

// Matches writes one "<name> is <descriptor>" line per product.
func (p *Printer) Matches(products []product.Product, descriptor string) {
	for _, item := range products {
		fmt.Fprintf(p.out, "%s is %s\n", item.Name, descriptor)
	}
}

// Pass announces a filter pass. Shown only in verbose mode.
func (p *Printer) Pass(descriptor string, matched, total int) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.errOut, p.errStyles.heading.Render(fmt.Sprintf("── %s ──", descriptor))+
		p.errStyles.info.Render(fmt.Sprintf(" %d of %d", matched, total)))
}

// Info prints a diagnostic line in verbose mode.
func (p *Printer) Info(msg string) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.errOut, p.errStyles.info.Render(msg))
}

// Error prints msg as an error.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.errOut, p.errStyles.errTag.Render("error:")+" "+msg)
}

// Explain reports why item was accepted or which check rejected it.
func (p *Printer) Explain(item product.Product, r *filter.Result) {
	if r.Passed {
		fmt.Fprintln(p.errOut, p.errStyles.pass.Render("✓ "+item.Name))
		return
	}
	failed := r.FirstFailure()
	fmt.Fprintln(p.errOut, p.errStyles.fail.Render("✗ "+item.Name)+
		p.errStyles.info.Render(fmt.Sprintf(" rejected by %q", failed.Name)))
}

// Items renders products as a table on the output writer.
func (p *Printer) Items(products []product.Product) {
	rows := make([][]string, 0, len(products))
	for _, item := range products {
		rows = append(rows, []string{item.Name, item.Color.String(), item.Size.String()})
	}

	s := p.outStyles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "COLOR", "SIZE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})
	fmt.Fprintln(p.out, t.Render())
}
