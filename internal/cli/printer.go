package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/api"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Printer renders command results as text tables or JSON
type Printer struct {
	w      io.Writer
	format string
}

// NewPrinter creates a printer writing to w in the given format
func NewPrinter(w io.Writer, format string) *Printer {
	return &Printer{w: w, format: format}
}

// Task prints a single task after a verb such as "Added".
func (p *Printer) Task(verb string, task *api.TaskResponse) error {
	if p.format == FormatJSON {
		return p.json(task)
	}
	_, err := fmt.Fprintf(p.w, "%s task %d: %s\n", verb, task.ID, task.Title)
	return err
}

// Tasks prints tasks in creation order.
func (p *Printer) Tasks(tasks []api.TaskResponse) error {
	if p.format == FormatJSON {
		return p.json(tasks)
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.w, "No tasks found")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	for _, task := range tasks {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			task.ID, task.Status, task.Priority, formatDue(task.DueDate), oneLine(task.Title))
	}
	return w.Flush()
}

// Recommendations prints the ranked work order.
func (p *Printer) Recommendations(resp *api.RecommendationsResponse) error {
	if p.format == FormatJSON {
		return p.json(resp)
	}

	_, _ = fmt.Fprintf(p.w, "Recommendations for %s (%d pending)\n", resp.Date, resp.PendingCount)
	if len(resp.Recommendations) == 0 {
		_, err := fmt.Fprintln(p.w, "No pending tasks")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tID\tPRIORITY\tDUE\tURGENCY\tTITLE\tREASON")
	for _, rec := range resp.Recommendations {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			rec.Rank, rec.TaskID, rec.Priority, formatDue(rec.DueDate), rec.Urgency, oneLine(rec.Title), rec.Reason)
	}
	return w.Flush()
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func formatDue(d *civil.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

// oneLine keeps multi-line titles from breaking table rows.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
