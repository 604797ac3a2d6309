package driving

import "github.com/custodia-labs/ecourts-cli/internal/core/domain"

// ExportService saves task results under the output directory.
type ExportService interface {
	// Save writes result using a name derived from op and params.
	// It returns the destination base path and whether writing succeeded.
	Save(result any, op domain.OperationKind, params domain.TaskParams) (string, bool)

	// Files lists the files Save writes for result at base.
	Files(result any, base string) []string
}
