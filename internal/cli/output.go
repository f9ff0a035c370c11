package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/service"
)

var (
	safeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")).Bold(true)
	cautionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")).Bold(true)
	unsafeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

func severity(s catalog.Severity) string {
	switch s {
	case catalog.Unsafe:
		return unsafeStyle.Render(string(s))
	case catalog.Caution:
		return cautionStyle.Render(string(s))
	case catalog.Safe:
		return safeStyle.Render(string(s))
	default:
		return dimStyle.Render(string(s))
	}
}

func render[T any](w io.Writer, format string, v T, text func(io.Writer, T)) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w, v)
	return nil
}

func printResolution(w io.Writer, r service.Resolution) {
	fmt.Fprintf(w, "overall: %s\n", severity(r.OverallStatus))
	if len(r.Hits) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no ingredients matched the catalog"))
		return
	}
	for _, h := range r.Hits {
		line := fmt.Sprintf("  %-24s -> %s [%s] %.2f", h.Token, h.Name, severity(h.Status), h.Score)
		if h.MatchedFrom == catalog.FromSynonym {
			line += dimStyle.Render(fmt.Sprintf(" (via %q)", h.Matched))
		}
		fmt.Fprintln(w, line)
	}
}

func printSearch(w io.Writer, r service.SearchResult) {
	fmt.Fprintf(w, "%d result(s) for %q\n", r.Count, r.Query)
	for _, c := range r.Results {
		fmt.Fprintf(w, "  #%-5d %-24s [%s] %.2f %s\n",
			c.FoodID, c.CanonicalName, severity(c.Status), c.Score,
			dimStyle.Render(fmt.Sprintf("%s: %s", c.MatchedFrom, c.Matched)))
	}
}

func printFood(w io.Writer, f catalog.Food) {
	fmt.Fprintf(w, "#%d %s [%s]\n", f.ID, f.CanonicalName, severity(f.DefaultStatus))
	if f.GroupName != "" {
		fmt.Fprintf(w, "group:    %s\n", f.GroupName)
	}
	if len(f.Synonyms) > 0 {
		fmt.Fprintf(w, "synonyms: %s\n", strings.Join(f.Synonyms, ", "))
	}
	if f.Notes != nil {
		fmt.Fprintf(w, "notes:    %s\n", *f.Notes)
	}
	if f.Sources != nil {
		fmt.Fprintf(w, "sources:  %s\n", *f.Sources)
	}
	for _, r := range f.Rules {
		status := dimStyle.Render("-")
		if r.Status != "" {
			status = severity(catalog.Severity(r.Status))
		}
		fmt.Fprintf(w, "rule %d:   %s %s\n", r.ID, r.RuleType, status)
	}
}
