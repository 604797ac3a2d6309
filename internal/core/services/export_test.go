package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

var exportTime = time.Date(2025, 10, 17, 14, 5, 9, 0, time.UTC)

func TestFileBase(t *testing.T) {
	tests := []struct {
		name   string
		op     domain.OperationKind
		params domain.TaskParams
		want   string
	}{
		{
			name:   "cnr",
			op:     domain.OpSearchCNR,
			params: domain.TaskParams{CNR: "DLHC010123456789"},
			want:   "case_search_DLHC010123456789_20251017_140509",
		},
		{
			name: "details",
			op:   domain.OpSearchCase,
			params: domain.TaskParams{Details: domain.DetailsQuery{
				CaseType: "CRL.M.C.", CaseNumber: "12/A", CaseYear: "2025",
			}},
			want: "case_details_CRL.M.C._12_A_2025_20251017_140509",
		},
		{
			name: "cause list",
			op:   domain.OpFetchCauseList,
			params: domain.TaskParams{
				Selector: domain.SelectorKey{Complex: "Patiala House Court Comp"},
				Date:     "17/10/2025",
			},
			want: "cause_list_Patiala_House_Court_Comp_17_10_2025_20251017_140509",
		},
		{
			name:   "cause list without date",
			op:     domain.OpFetchCauseList,
			params: domain.TaskParams{Selector: domain.SelectorKey{Complex: "Saket"}},
			want:   "cause_list_Saket_20251017_140509",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileBase(tt.op, tt.params, exportTime))
		})
	}
}

func TestExportService_Save(t *testing.T) {
	exporter := &mockExporter{ok: true}
	svc := NewExportService(exporter, "downloads")
	svc.now = func() time.Time { return exportTime }

	base, ok := svc.Save(&domain.CaseResult{}, domain.OpSearchCNR, domain.TaskParams{CNR: "DLHC010123456789"})

	assert.True(t, ok)
	assert.Equal(t, filepath.Join("downloads", "case_search_DLHC010123456789_20251017_140509"), base)
	assert.Equal(t, []string{base}, exporter.bases)
}

func TestExportService_SaveReportsFailure(t *testing.T) {
	exporter := &mockExporter{ok: false}
	svc := NewExportService(exporter, "downloads")
	svc.SetDir("/readonly")

	base, ok := svc.Save(&domain.CauseList{}, domain.OpFetchCauseList, domain.TaskParams{})

	assert.False(t, ok)
	assert.Equal(t, "/readonly", filepath.Dir(base))
}

func TestExportService_Files(t *testing.T) {
	svc := NewExportService(&mockExporter{}, "out")

	withRows := &domain.CauseList{Cases: []domain.CauseListEntry{{"sr_no": "1"}}}
	assert.Equal(t, []string{"out/x.json", "out/x.csv"}, svc.Files(withRows, "out/x"))
	assert.Equal(t, []string{"out/x.json"}, svc.Files(&domain.CauseList{}, "out/x"))
	assert.Equal(t, []string{"out/x.json"}, svc.Files(&domain.CaseResult{}, "out/x"))
}
