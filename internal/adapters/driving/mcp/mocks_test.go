package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// mockTasks completes every submitted task immediately with result.
type mockTasks struct {
	status    domain.TaskStatus
	result    *domain.TaskResult
	errText   string
	submitErr error
	submitted []domain.TaskParams
	ops       []domain.OperationKind
	tasks     map[string]domain.Task
}

func (m *mockTasks) Submit(op domain.OperationKind, p domain.TaskParams) (domain.TaskHandle, error) {
	if m.submitErr != nil {
		return domain.TaskHandle{}, m.submitErr
	}
	m.ops = append(m.ops, op)
	m.submitted = append(m.submitted, p)
	return domain.TaskHandle{ID: "task-1"}, nil
}

func (m *mockTasks) Await(_ context.Context, h domain.TaskHandle, _ time.Duration) (domain.Task, error) {
	status := m.status
	if status == "" {
		status = domain.TaskCompleted
	}
	return domain.Task{ID: h.ID, Status: status, Result: m.result, Error: m.errText}, nil
}

func (m *mockTasks) Get(id string) (domain.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockTasks) List() []domain.Task {
	return nil
}

func (m *mockTasks) Counts() map[domain.TaskStatus]int {
	return nil
}

func (m *mockTasks) Prune(int) int {
	return 0
}

func (m *mockTasks) Shutdown(context.Context) error {
	return nil
}

// mockCauseLists implements driving.CauseListService.
type mockCauseLists struct {
	jurisdictions []domain.Jurisdiction
}

func (m *mockCauseLists) CauseList(context.Context, domain.SelectorKey, string) (*domain.CauseList, error) {
	return nil, nil
}

func (m *mockCauseLists) Jurisdictions() []domain.Jurisdiction {
	return m.jurisdictions
}

func newTestServer(t interface{ Fatalf(string, ...any) }, tasks *mockTasks) *Server {
	s, err := NewServer(&Ports{Tasks: tasks, CauseLists: &mockCauseLists{
		jurisdictions: []domain.Jurisdiction{{
			State:     "Delhi",
			Districts: []domain.District{{Name: "New Delhi", Complexes: []string{"Patiala House Court Comp"}}},
		}},
	}})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}
