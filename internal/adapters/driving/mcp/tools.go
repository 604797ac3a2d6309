package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// SearchCNRInput is the input schema for the search_cnr tool.
type SearchCNRInput struct {
	CNR           string `json:"cnr" jsonschema:"the 16 character Case Number Record"`
	CheckToday    bool   `json:"check_today,omitempty" jsonschema:"report whether the case is listed today"`
	CheckTomorrow bool   `json:"check_tomorrow,omitempty" jsonschema:"report whether the case is listed tomorrow"`
}

// SearchCaseInput is the input schema for the search_case tool.
type SearchCaseInput struct {
	CaseType   string `json:"case_type" jsonschema:"case type code, for example CS or CRL"`
	CaseNumber string `json:"case_number" jsonschema:"case registration number"`
	CaseYear   string `json:"case_year" jsonschema:"four digit registration year"`
	PartyName  string `json:"party_name,omitempty" jsonschema:"optional party name to narrow the search"`
}

// CauseListInput is the input schema for the cause_list tool.
type CauseListInput struct {
	State    string `json:"state,omitempty" jsonschema:"state name (default Delhi)"`
	District string `json:"district,omitempty" jsonschema:"district name (default New Delhi)"`
	Complex  string `json:"complex,omitempty" jsonschema:"court complex name (default Patiala House Court Comp)"`
	Date     string `json:"date,omitempty" jsonschema:"list date as DD/MM/YYYY (default today)"`
}

// CaseOutput is the output schema for the case tools.
type CaseOutput struct {
	TaskID   string            `json:"task_id"`
	CaseInfo map[string]string `json:"case_info"`
	Listings []domain.Listing  `json:"listings,omitempty"`
}

// CauseListOutput is the output schema for the cause_list tool.
type CauseListOutput struct {
	TaskID     string                   `json:"task_id"`
	Metadata   domain.CauseListMetadata `json:"metadata"`
	Cases      []map[string]string      `json:"cases"`
	TotalCases int                      `json:"total_cases"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_cnr",
		Description: "Look up an Indian district court case by its CNR, optionally checking today's and tomorrow's listings",
	}, s.handleSearchCNR)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_case",
		Description: "Look up a case by case type, number and year",
	}, s.handleSearchCase)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cause_list",
		Description: "Fetch the daily cause list of a court complex",
	}, s.handleCauseList)
}

// await submits op and waits up to timeout for it to complete.
func (s *Server) await(ctx context.Context, op domain.OperationKind, params domain.TaskParams, timeout time.Duration) (domain.Task, error) {
	h, err := s.ports.Tasks.Submit(op, params)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := s.ports.Tasks.Await(ctx, h, timeout)
	if err != nil {
		return domain.Task{}, err
	}
	switch task.Status {
	case domain.TaskCompleted:
		return task, nil
	case domain.TaskFailed:
		return task, errors.New(task.Error)
	default:
		return task, fmt.Errorf("%w: read %s for the result", ErrTaskPending, taskURI(task.ID))
	}
}

func (s *Server) handleSearchCNR(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCNRInput,
) (*mcp.CallToolResult, CaseOutput, error) {
	id, err := domain.ParseCaseIdentifier(input.CNR)
	if err != nil {
		return nil, CaseOutput{}, err
	}

	params := domain.TaskParams{CNR: id.String(), CheckToday: input.CheckToday, CheckTomorrow: input.CheckTomorrow}
	task, err := s.await(ctx, domain.OpSearchCNR, params, s.ports.settings().CNRTimeout)
	if err != nil {
		return nil, CaseOutput{}, err
	}

	res := task.Result.Case
	return nil, CaseOutput{TaskID: task.ID, CaseInfo: res.Details, Listings: res.Listings}, nil
}

func (s *Server) handleSearchCase(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCaseInput,
) (*mcp.CallToolResult, CaseOutput, error) {
	q := domain.DetailsQuery{
		CaseType:   input.CaseType,
		CaseNumber: input.CaseNumber,
		CaseYear:   input.CaseYear,
		PartyName:  input.PartyName,
	}.Normalize()
	if err := q.Validate(); err != nil {
		return nil, CaseOutput{}, err
	}

	task, err := s.await(ctx, domain.OpSearchCase, domain.TaskParams{Details: q}, s.ports.settings().CaseTimeout)
	if err != nil {
		return nil, CaseOutput{}, err
	}
	return nil, CaseOutput{TaskID: task.ID, CaseInfo: task.Result.Case.Details}, nil
}

func (s *Server) handleCauseList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CauseListInput,
) (*mcp.CallToolResult, CauseListOutput, error) {
	date, err := domain.ParseListDate(input.Date, time.Now())
	if err != nil {
		return nil, CauseListOutput{}, err
	}
	params := domain.TaskParams{
		Selector: domain.SelectorKey{State: input.State, District: input.District, Complex: input.Complex}.WithDefaults(),
		Date:     date,
	}

	task, err := s.await(ctx, domain.OpFetchCauseList, params, s.ports.settings().CauseListTimeout)
	if err != nil {
		return nil, CauseListOutput{}, err
	}

	list := task.Result.CauseList
	cases := make([]map[string]string, len(list.Cases))
	for i, c := range list.Cases {
		cases[i] = c
	}
	return nil, CauseListOutput{
		TaskID:     task.ID,
		Metadata:   list.Metadata,
		Cases:      cases,
		TotalCases: list.Metadata.TotalCases,
	}, nil
}
