// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailoring/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// priorityLabel maps numeric priorities to display labels.
func priorityLabel(priority int) string {
	switch priority {
	case types.PriorityHigh:
		return "HIGH"
	case types.PriorityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// PrintGapAnalysis outputs a human-readable summary of the analysis result.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall match: %d%%\n", result.Summary.OverallMatch))
	sb.WriteString(fmt.Sprintf("Gaps found:    %d (high: %d, medium: %d, low: %d)\n",
		result.Summary.TotalGaps,
		result.Summary.PriorityBreakdown.High,
		result.Summary.PriorityBreakdown.Medium,
		result.Summary.PriorityBreakdown.Low,
	))
	sb.WriteString("\n")

	count := min(len(result.Gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := result.Gaps[i]
		sb.WriteString(fmt.Sprintf("#%d  [%s] %s\n", i+1, priorityLabel(gap.Priority), gap.Title))
		sb.WriteString(fmt.Sprintf("    Category: %s\n", gap.Category))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(result.Gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(result.Gaps)-maxItemsToShow))
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGap outputs a single gap with its suggested question.
func (p *Printer) PrintGap(index, total int, gap types.ResumeGap) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", priorityLabel(gap.Priority), gap.Title))
	sb.WriteString("\n")
	if gap.JobRequirement != "" {
		sb.WriteString(fmt.Sprintf("Job wants:  %s\n", gap.JobRequirement))
	}
	if gap.CurrentResumeState != "" {
		sb.WriteString(fmt.Sprintf("You have:   %s\n", gap.CurrentResumeState))
	}
	if gap.SuggestedQuestion != "" {
		sb.WriteString("\n")
		sb.WriteString(gap.SuggestedQuestion)
	}

	p.printBox(fmt.Sprintf("GAP %d OF %d", index+1, total), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProposal outputs a pending change proposal for review.
func (p *Printer) PrintProposal(proposal *types.ChangeProposal) {
	if proposal == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: %s\n\n", proposal.Path))
	sb.WriteString(fmt.Sprintf("Before: %s\n", formatValue(proposal.OldValue)))
	sb.WriteString(fmt.Sprintf("After:  %s", formatValue(proposal.NewValue)))

	p.printBox("PROPOSED CHANGE", sb.String())
}

// formatValue renders a proposal value compactly for display.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "(empty)"
	case string:
		return v
	case []string:
		return strings.Join(v, " | ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, " | ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
