package services

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// timestampLayout is appended to every exported file name.
const timestampLayout = "20060102_150405"

// File name prefixes per operation.
const (
	prefixCaseSearch  = "case_search"
	prefixCaseDetails = "case_details"
	prefixCauseList   = "cause_list"
)

// ExportService names and writes result files under the output directory.
type ExportService struct {
	exporter driven.Exporter
	now      func() time.Time

	mu  sync.RWMutex
	dir string
}

// NewExportService creates an export service writing under dir.
func NewExportService(exporter driven.Exporter, dir string) *ExportService {
	return &ExportService{exporter: exporter, dir: dir, now: time.Now}
}

// SetDir changes the output directory for subsequent saves.
func (s *ExportService) SetDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

// Save writes result as {dir}/{prefix}_{params}_{timestamp}.
func (s *ExportService) Save(result any, op domain.OperationKind, params domain.TaskParams) (string, bool) {
	s.mu.RLock()
	dir := s.dir
	s.mu.RUnlock()

	base := filepath.Join(dir, FileBase(op, params, s.now()))
	return base, s.exporter.Export(result, base)
}

// Files lists the files Save writes for result at base.
func (s *ExportService) Files(result any, base string) []string {
	files := []string{base + ".json"}
	if t, ok := result.(domain.Tabular); ok && len(t.Rows()) > 0 {
		files = append(files, base+".csv")
	}
	return files
}

// FileBase builds the file name, without extension, for an operation.
func FileBase(op domain.OperationKind, params domain.TaskParams, at time.Time) string {
	var parts []string
	switch op {
	case domain.OpSearchCNR:
		parts = []string{prefixCaseSearch, params.CNR}
	case domain.OpSearchCase:
		d := params.Details
		parts = []string{prefixCaseDetails, d.CaseType, d.CaseNumber, d.CaseYear}
	case domain.OpFetchCauseList:
		parts = []string{prefixCauseList, params.Selector.Complex, params.Date}
	default:
		parts = []string{string(op)}
	}

	var b strings.Builder
	for _, p := range parts {
		if p = sanitise(p); p == "" {
			continue
		}
		b.WriteString(p)
		b.WriteByte('_')
	}
	b.WriteString(at.Format(timestampLayout))
	return b.String()
}

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")

func sanitise(s string) string {
	return nameReplacer.Replace(strings.TrimSpace(s))
}
