package mcp

import (
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// Tasks runs retrievals in the background.
	Tasks driving.TaskExecutor

	// CauseLists provides the jurisdiction catalogue.
	CauseLists driving.CauseListService

	// Settings returns the bounded waits per operation. Defaults apply when nil.
	Settings func() domain.APISettings
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tasks == nil {
		return ErrMissingTaskExecutor
	}
	if p.CauseLists == nil {
		return ErrMissingCauseListService
	}
	return nil
}

func (p *Ports) settings() domain.APISettings {
	if p.Settings == nil {
		return domain.DefaultSettings().API
	}
	return p.Settings()
}
