package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/ui/output"
	"go.trai.ch/recomp/internal/ui/style"
)

const labelWidth = 14

func printDependents(w io.Writer, report app.DependentsReport) error {
	r := output.NewRenderer(w)
	var b strings.Builder

	deps := report.Dependents
	switch {
	case deps.IsDependencyToAll():
		b.WriteString(style.Alert(r).Render(style.Cross+" Recompile everything: "+deps.Cause()) + "\n")
	case deps.IsEmpty():
		b.WriteString(style.Muted(r).Render(style.Circle+" Nothing to recompile") + "\n")
	default:
		writeSection(&b, r, "Accessible dependents", deps.AccessibleDependents().Strings())
		writeSection(&b, r, "Private dependents", deps.PrivateDependents().Strings())
		resources := deps.Resources().Sorted()
		names := make([]string, len(resources))
		for i, res := range resources {
			names[i] = res.String()
		}
		writeSection(&b, r, "Generated resources", names)
	}
	writeSection(&b, r, "Types to reprocess", report.TypesToReprocess.Strings())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, r *lipgloss.Renderer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(style.Heading(r).Render(fmt.Sprintf("%s (%d)", title, len(items))) + "\n")
	for _, item := range items {
		b.WriteString("  " + style.Muted(r).Render(style.Dot) + " " + item + "\n")
	}
}

func printSummary(w io.Writer, s app.Summary) error {
	r := output.NewRenderer(w)
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(style.Muted(r).Width(labelWidth).Render(label) + value + "\n")
	}

	line("Cache", fmt.Sprintf("%s (%s)", s.CacheDir, s.Compression))
	if !s.Recorded {
		line("Recorded", "no")
	} else {
		line("Recorded", "yes")
		line("Classes", fmt.Sprintf("%d (%d depending on all)", s.Classes, s.DependencyToAll))
	}
	line("Constants", fmt.Sprintf("%d classes inlining %d origins", s.IndexedClasses, s.IndexedHashes))
	line("Generated", fmt.Sprintf("%d origins", s.GeneratedOrigins))
	if s.ConstantTracking {
		line("Tracking", "enabled")
	} else {
		line("Tracking", "disabled")
	}
	if s.FullRebuildCause != "" {
		b.WriteString(style.Alert(r).Render(style.Warning+" Full rebuild pending: "+s.FullRebuildCause) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
