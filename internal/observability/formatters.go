// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/deibuilders/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Contact.Email))
	}
	if profile.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Contact.Phone))
	}
	if profile.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Contact.Location))
	}
	sb.WriteString(fmt.Sprintf("Years:    %d\n", profile.YearsExperience))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), 3)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			line := entry.Title
			if entry.Company != "" {
				line += " — " + entry.Company
			}
			if entry.Date != "" {
				line += " (" + entry.Date + ")"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(profile.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-3))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendation list with scores.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", rec.Score))
		if rec.Company != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", rec.Company))
		}
		sb.WriteString("\n")
		if rec.Reason != "" {
			reason := rec.Reason
			if len(reason) > 40 {
				reason = reason[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}
