// Package exporter persists completed (or exited) screening sessions: one
// JSON file with the full candidate record and one paginated PDF report.
//
// Known limitation: file names combine the candidate name with a
// second-granularity timestamp, so two sessions finishing within the same
// second for the same name overwrite each other's files.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"talentscout/internal/logging"
	"talentscout/pkg/models"
	"talentscout/pkg/utils"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrRender = errors.New("render_error")
	ErrWrite  = errors.New("write_failed")
)

// Paths holds the locations of the two exported report files.
type Paths struct {
	JSON string `json:"json"`
	PDF  string `json:"pdf"`
}

// FileExporter writes candidate reports under a single output directory.
type FileExporter struct {
	outputDir string
	logger    logging.Logger
}

// New creates a FileExporter rooted at outputDir.
func New(outputDir string) *FileExporter {
	return &FileExporter{
		outputDir: outputDir,
		logger:    logging.GetGlobalLogger(),
	}
}

// Export writes the JSON record and the PDF report for one candidate and
// returns both paths. Export is called exactly once per session, at
// completion or on explicit exit.
func (e *FileExporter) Export(candidate *models.CandidateRecord) (Paths, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return Paths{}, fmt.Errorf("%w: creating output dir: %v", ErrWrite, err)
	}

	base := fmt.Sprintf("%s_%s",
		utils.SanitizeFileName(candidate.Name),
		time.Now().Format("20060102_150405"))

	paths := Paths{
		JSON: filepath.Join(e.outputDir, base+".json"),
		PDF:  filepath.Join(e.outputDir, base+".pdf"),
	}

	if err := e.writeJSON(candidate, paths.JSON); err != nil {
		return Paths{}, err
	}
	if err := renderPDF(candidate, paths.PDF); err != nil {
		return Paths{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	e.logger.Info("Candidate report exported", map[string]interface{}{
		"candidate": candidate.Name,
		"json_path": paths.JSON,
		"pdf_path":  paths.PDF,
	})
	return paths, nil
}

func (e *FileExporter) writeJSON(candidate *models.CandidateRecord, path string) error {
	data, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling candidate record: %v", ErrRender, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, path, err)
	}
	return nil
}
