package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/focal/internal/ui/output"
	"go.trai.ch/focal/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter as plain text tables.
type Reporter struct {
	w   io.Writer
	out *termenv.Output
}

// NewReporter creates a new Reporter writing to w, or stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{w: w, out: output.NewWithProfile(w, output.ColorProfileANSI)}
}

// BuildSummary prints one line per project, failures with their tool and cause,
// followed by the outcome counts.
func (r *Reporter) BuildSummary(projects []*domain.Project, op domain.Operation, elapsed time.Duration) {
	nameWidth, toolWidth := 0, 0
	for _, p := range projects {
		nameWidth = max(nameWidth, len(p.Name))
		toolWidth = max(toolWidth, len(p.Tool))
	}

	title := "Build summary"
	if op == domain.OpClean {
		title = "Clean summary"
	}

	r.printf("%s\n%s\n", style.Rule, title)
	if len(projects) > 0 {
		r.printf("%s\n", style.Rule)
	}

	succeeded, failed := 0, 0
	for _, p := range projects {
		line := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, p.Name, toolWidth, p.Tool, FormatDuration(p.Elapsed()))
		switch p.Outcome {
		case domain.OutcomeSucceeded:
			succeeded++
			r.printf("  %s %s\n", r.icon(style.Check, style.Green), strings.TrimRight(line, " "))
		case domain.OutcomeFailed:
			failed++
			if p.Err != nil {
				line += "  " + p.Err.Error()
			}
			r.printf("  %s %s\n", r.icon(style.Cross, style.Red), strings.TrimRight(line, " "))
		default:
			r.printf("  %s %s\n", style.Circle, p.Name)
		}
	}

	r.printf("%s\n%d project(s): %d succeeded, %d failed (%s)\n",
		style.Rule, len(projects), succeeded, failed, FormatDuration(elapsed))
}

// CleanAll prints the removed artifact directories.
func (r *Reporter) CleanAll(removed []string) {
	if len(removed) == 0 {
		r.printf("No build directories found.\n")
		return
	}
	for _, dir := range removed {
		r.printf("  Cleaned: %s\n", dir)
	}
	r.printf("Removed %d build director%s.\n", len(removed), plural(len(removed), "y", "ies"))
}

// Projects prints the discovered projects and their generators.
func (r *Reporter) Projects(root string, projects []*domain.Project) {
	r.printf("Found %d project(s) under %s:\n", len(projects), root)
	for _, p := range projects {
		r.printf("  - %s [%s] (%s)\n", p.Name, p.Kind, p.Path)
		r.printf("    Generator: %s\n", p.Tool)
		if p.Manifest.Name != "" {
			r.printf("    Package: %s %s\n", p.Manifest.Name, p.Manifest.Version)
		}
	}
}

// Inventory prints the tool availability check.
func (r *Reporter) Inventory(inv domain.ToolInventory) {
	r.printf("Build tools:\n")
	for _, s := range inv.Build {
		r.printf("  %s: %s\n", s.Label, okNo(s.Available))
	}

	r.printf("\nVisual Studio:\n")
	r.printf("  Installation: %s\n", okNo(inv.VisualStudioInstalled))
	for _, s := range inv.VisualStudio {
		r.printf("  %s: %s\n", s.Label, okNo(s.Available))
	}

	available := inv.AvailableCount()
	r.printf("\nSummary: %d/%d tools available\n", available, len(inv.Build))
	switch {
	case available == 0:
		r.printf("%s No build tools found. Install CMake, Make, Ninja or Cargo.\n", r.icon(style.Warning, style.Yellow))
	case available < len(inv.Build):
		r.printf("Some tools are missing, but you may still be able to build projects.\n")
	}
}

// Sources prints the outcome of standalone source builds.
func (r *Reporter) Sources(builds []domain.SourceBuild) {
	succeeded := 0
	for _, b := range builds {
		if b.Outcome == domain.OutcomeSucceeded {
			succeeded++
			r.printf("  %s %s %s %s (%s)\n", r.icon(style.Check, style.Green),
				b.Source.Path, style.Arrow, b.Output, FormatDuration(b.Duration))
			continue
		}
		cause := "failed"
		if b.Err != nil {
			cause = b.Err.Error()
		}
		r.printf("  %s %s: %s\n", r.icon(style.Cross, style.Red), b.Source.Path, cause)
	}
	r.printf("Built %d/%d source file(s).\n", succeeded, len(builds))
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) icon(icon string, color lipgloss.Color) string {
	return r.out.String(icon).Foreground(r.out.Color(string(color))).String()
}

func okNo(ok bool) string {
	if ok {
		return "OK"
	}
	return "No"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
