package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// reportFileLayout timestamps exported report files.
const reportFileLayout = "20060102_150405"

// ReportWriter writes generated reports next to the day files.
type ReportWriter struct {
	dir string
}

// NewReportWriter creates a ReportWriter rooted at dir.
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// Write saves the report verbatim under a timestamped name and returns the
// file name.
func (w *ReportWriter) Write(ctx context.Context, content string, at time.Time) (string, error) {
	name := fmt.Sprintf("relatorio_%s.txt", at.Format(reportFileLayout))

	if err := os.WriteFile(filepath.Join(w.dir, name), []byte(content), 0o644); err != nil {
		return "", err
	}

	return name, nil
}
