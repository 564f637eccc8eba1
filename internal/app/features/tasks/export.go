// internal/app/features/tasks/export.go
package tasks

import (
	"net/http"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// ExportFilename is the download name of the task export.
const ExportFilename = "tasks_export.csv"

var csvHeader = []string{
	"Task ID", "Student Name", "Register Number", "Caption",
	"Location", "Status", "Assigned To", "Created At",
}

// ToCSV renders tasks as comma-separated rows under a fixed header. The
// Caption column is the AI caption only. Fields are joined as-is; values
// containing commas or quotes are not escaped.
func ToCSV(tasks []models.Task) string {
	rows := make([]string, 0, len(tasks)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, t := range tasks {
		rows = append(rows, strings.Join([]string{
			t.TaskID,
			t.StudentName,
			t.RegisterNumber,
			t.AICaption,
			t.Location,
			t.Status,
			t.AssignedTo,
			format.DateTime(models.ParseTime(t.CreatedAt), ""),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// ServeExport downloads the current tasks snapshot as CSV. It does not
// refetch; the last successful load is exported even if a later one failed.
// GET /tasks/export.csv
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	items := h.Board.Tasks().Items

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	_, _ = w.Write([]byte(ToCSV(items)))
}
