package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/obitwatch/obitwatch/internal/model"
)

// Renderer renders reports to their output forms
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderText writes one line per record, followed by the digest if present
func (r *Renderer) RenderText(w io.Writer, report *model.Report) error {
	for _, entry := range report.Entries {
		if _, err := fmt.Fprintln(w, entry.String()); err != nil {
			return err
		}
	}

	if report.LLM != nil && report.LLM.Enabled {
		if _, err := fmt.Fprintf(w, "\n%s\n", report.LLM.Text); err != nil {
			return err
		}
	}

	return nil
}

// RenderJSON writes the full report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderSummary writes a short human summary of the run
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "Pages: %d\n", len(report.Pages))
	for _, page := range report.Pages {
		origin := "fetched"
		if page.FromCache {
			origin = "cached"
		}
		fmt.Fprintf(w, "  %s: %d records (%s)\n", page.Title, page.Extracted, origin)
	}
	fmt.Fprintf(w, "Records after merge: %d\n", len(report.Entries))
}
