// Package export renders the task list to interchange formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"taskmaster/internal/task"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{"json", "csv", "pdf"}
}

// Exporter renders a store's tasks to a byte form.
type Exporter struct {
	store *task.Store
}

// NewExporter returns an exporter over the given store.
func NewExporter(store *task.Store) *Exporter {
	return &Exporter{store: store}
}

// Export renders the tasks in store order to the given format.
func (e *Exporter) Export(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return e.exportJSON()
	case "csv":
		return e.exportCSV()
	case "pdf":
		return e.exportPDF()
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of: %s", format, strings.Join(Formats(), ", "))
	}
}

func (e *Exporter) exportJSON() ([]byte, error) {
	tasks := e.store.Tasks()
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (e *Exporter) exportCSV() ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"id", "description", "completed", "priority"}); err != nil {
		return nil, err
	}
	for _, t := range e.store.Tasks() {
		record := []string{
			strconv.FormatUint(t.ID, 10),
			t.Description,
			strconv.FormatBool(t.Completed),
			string(t.Priority),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func (e *Exporter) exportPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	for _, t := range e.store.Tasks() {
		status := "open"
		if t.Completed {
			status = "done"
		}
		line := fmt.Sprintf("#%d [%s] (%s) %s", t.ID, status, t.Priority, t.Description)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
