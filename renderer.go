package goargs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/goargs/util"
)

// FormatUsage composes the usage line: options first, then positionals, in
// registration order, folded to the terminal width.
func (p *Parser) FormatUsage() string {
	parts := []string{"usage:", p.prog}
	for _, a := range p.arguments {
		if !a.isPositional() {
			parts = append(parts, p.formatOptional(a))
		}
	}
	for _, a := range p.arguments {
		if a.isPositional() {
			parts = append(parts, a.effectiveArity().Format(a.metavarName()))
		}
	}
	return foldLine(parts, util.TerminalWidth())
}

func (p *Parser) formatOptional(a *Argument) string {
	s := a.OptionStrings[0]
	if a.TypeOf.TakesValue() {
		s += " " + a.effectiveArity().Format(a.metavarName())
	}
	if !a.Required {
		s = "[" + s + "]"
	}
	return s
}

func foldLine(parts []string, width int) string {
	indent := strings.Repeat(" ", len("usage: "))
	var sb strings.Builder
	col := 0
	for i, part := range parts {
		if i == 0 {
			sb.WriteString(part)
			col = len(part)
			continue
		}
		if col+1+len(part) > width && col > len(indent) {
			sb.WriteString("\n")
			sb.WriteString(indent)
			sb.WriteString(part)
			col = len(indent) + len(part)
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(part)
		col += 1 + len(part)
	}
	return sb.String()
}

// FormatHelp renders the usage line, the description and one section per
// argument category: positionals, ungrouped options, then cosmetic groups.
func (p *Parser) FormatHelp() string {
	var sb strings.Builder
	sb.WriteString(p.FormatUsage())
	sb.WriteString("\n")
	if p.description != "" {
		sb.WriteString("\n")
		sb.WriteString(p.description)
		sb.WriteString("\n")
	}

	var positionals, options []*Argument
	for _, a := range p.arguments {
		if p.cosmeticGroup(a) != nil {
			continue
		}
		if a.isPositional() {
			positionals = append(positionals, a)
		} else {
			options = append(options, a)
		}
	}
	writeSection(&sb, "positional arguments", positionals, p)
	writeSection(&sb, "options", options, p)
	for _, g := range p.groups {
		writeSection(&sb, g.title, g.arguments, p)
		if g.description != "" {
			sb.WriteString("  ")
			sb.WriteString(g.description)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func writeSection(sb *strings.Builder, title string, args []*Argument, p *Parser) {
	if len(args) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString(":\n")
	for _, a := range args {
		var invocation string
		if a.isPositional() {
			invocation = a.metavarName()
		} else {
			spellings := make([]string, len(a.OptionStrings))
			for i, os := range a.OptionStrings {
				spellings[i] = os
				if a.TypeOf.TakesValue() {
					spellings[i] += " " + a.effectiveArity().Format(a.metavarName())
				}
			}
			invocation = strings.Join(spellings, ", ")
		}
		fmt.Fprintf(sb, "  %-24s %s\n", invocation, a.Help)
	}
}

func (p *Parser) cosmeticGroup(a *Argument) *Group {
	for _, o := range a.owners {
		if o.parser == p && o.group != nil {
			return o.group
		}
	}
	return nil
}

// PrintUsage writes the usage line to w.
func (p *Parser) PrintUsage(w io.Writer) {
	fmt.Fprintln(w, p.FormatUsage())
}

// PrintHelp writes the full help text to w.
func (p *Parser) PrintHelp(w io.Writer) {
	fmt.Fprint(w, p.FormatHelp())
}

// Fail writes the conventional two-line failure output: the usage line, then
// "prog: error: message".
func (p *Parser) Fail(w io.Writer, err error) {
	p.PrintUsage(w)
	fmt.Fprintf(w, "%s: error: %v\n", p.prog, err)
}

// ParseOrExit parses args, printing the failure to stderr and exiting with
// status 2 on error.
func (p *Parser) ParseOrExit(args []string) *Result {
	res, err := p.Parse(args)
	if err != nil {
		p.Fail(os.Stderr, err)
		os.Exit(2)
	}
	return res
}
