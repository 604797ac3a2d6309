package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// invalidCNRMessage is returned for identifiers that fail validation.
const invalidCNRMessage = "Invalid CNR number. Must be exactly 16 characters."

type cnrRequest struct {
	CNR           string `json:"cnr"`
	CheckToday    bool   `json:"check_today"`
	CheckTomorrow bool   `json:"check_tomorrow"`
}

type caseRequest struct {
	CaseType   string `json:"case_type"`
	CaseNumber string `json:"case_number"`
	CaseYear   string `json:"case_year"`
	PartyName  string `json:"party_name"`
}

type causeListRequest struct {
	State    string `json:"state"`
	District string `json:"district"`
	Complex  string `json:"complex"`
	Date     string `json:"date"`
}

type cnrResponse struct {
	Success  bool              `json:"success"`
	CaseInfo domain.CaseRecord `json:"case_info"`
	Listings []domain.Listing  `json:"listings"`
	TaskID   string            `json:"task_id"`
}

type caseResponse struct {
	Success  bool              `json:"success"`
	CaseInfo domain.CaseRecord `json:"case_info"`
	TaskID   string            `json:"task_id"`
}

type causeListResponse struct {
	Success   bool              `json:"success"`
	CauseList *domain.CauseList `json:"cause_list"`
	Files     []string          `json:"files"`
	TaskID    string            `json:"task_id"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

// run submits op and waits up to timeout. It writes the failure response
// itself and reports false unless the task completed.
func (s *Server) run(w http.ResponseWriter, r *http.Request, op domain.OperationKind, params domain.TaskParams, timeout time.Duration) (domain.Task, bool) {
	h, err := s.ports.Tasks.Submit(op, params)
	if err != nil {
		respondFailure(w, err.Error(), "")
		return domain.Task{}, false
	}

	task, err := s.ports.Tasks.Await(r.Context(), h, timeout)
	if err != nil {
		respondFailure(w, err.Error(), h.ID)
		return domain.Task{}, false
	}

	switch task.Status {
	case domain.TaskCompleted:
		return task, true
	case domain.TaskFailed:
		respondFailure(w, task.Error, h.ID)
	default:
		respondFailure(w, fmt.Sprintf("task still %s after %s", task.Status, timeout), h.ID)
	}
	return task, false
}

func (s *Server) handleSearchCNR(w http.ResponseWriter, r *http.Request) {
	var req cnrRequest
	if !decode(w, r, &req) {
		return
	}

	id, err := domain.ParseCaseIdentifier(req.CNR)
	if err != nil {
		respondFailure(w, invalidCNRMessage, "")
		return
	}

	params := domain.TaskParams{
		CNR:           id.String(),
		CheckToday:    req.CheckToday,
		CheckTomorrow: req.CheckTomorrow,
	}
	task, ok := s.run(w, r, domain.OpSearchCNR, params, s.ports.Settings().CNRTimeout)
	if !ok {
		return
	}

	res := task.Result.Case
	listings := res.Listings
	if listings == nil {
		listings = []domain.Listing{}
	}
	respondJSON(w, cnrResponse{Success: true, CaseInfo: res.Details, Listings: listings, TaskID: task.ID})
}

func (s *Server) handleSearchCase(w http.ResponseWriter, r *http.Request) {
	var req caseRequest
	if !decode(w, r, &req) {
		return
	}

	q := domain.DetailsQuery{
		CaseType:   req.CaseType,
		CaseNumber: req.CaseNumber,
		CaseYear:   req.CaseYear,
		PartyName:  req.PartyName,
	}.Normalize()
	if err := q.Validate(); err != nil {
		respondFailure(w, err.Error(), "")
		return
	}

	task, ok := s.run(w, r, domain.OpSearchCase, domain.TaskParams{Details: q}, s.ports.Settings().CaseTimeout)
	if !ok {
		return
	}
	respondJSON(w, caseResponse{Success: true, CaseInfo: task.Result.Case.Details, TaskID: task.ID})
}

func (s *Server) handleCauseList(w http.ResponseWriter, r *http.Request) {
	var req causeListRequest
	if !decode(w, r, &req) {
		return
	}

	date, err := domain.ParseListDate(req.Date, time.Now())
	if err != nil {
		respondFailure(w, err.Error(), "")
		return
	}
	params := domain.TaskParams{
		Selector: domain.SelectorKey{State: req.State, District: req.District, Complex: req.Complex}.WithDefaults(),
		Date:     date,
	}

	task, ok := s.run(w, r, domain.OpFetchCauseList, params, s.ports.Settings().CauseListTimeout)
	if !ok {
		return
	}

	list := task.Result.CauseList
	files := []string{}
	if base, saved := s.ports.Export.Save(list, domain.OpFetchCauseList, params); saved {
		files = s.ports.Export.Files(list, base)
	} else {
		logger.Warn("cause list %s was not saved", base)
	}
	respondJSON(w, causeListResponse{Success: true, CauseList: list, Files: files, TaskID: task.ID})
}

func (s *Server) handleJurisdictions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, struct {
		Success       bool                  `json:"success"`
		Jurisdictions []domain.Jurisdiction `json:"jurisdictions"`
	}{Success: true, Jurisdictions: s.ports.CauseLists.Jurisdictions()})
}

func (s *Server) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	tasks := s.ports.Tasks.List()
	if tasks == nil {
		tasks = []domain.Task{}
	}
	respondJSON(w, struct {
		Tasks []domain.Task `json:"tasks"`
	}{Tasks: tasks})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.ports.Tasks.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err)
			return
		}
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, task)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.setTaskCounts(s.ports.Tasks.Counts())
	s.metrics.handler().ServeHTTP(w, r)
}
