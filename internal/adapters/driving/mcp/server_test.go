package mcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing task executor", func(t *testing.T) {
		server, err := NewServer(&Ports{CauseLists: &mockCauseLists{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTaskExecutor)
	})

	t.Run("missing cause list service", func(t *testing.T) {
		_, err := NewServer(&Ports{Tasks: &mockTasks{}})
		assert.ErrorIs(t, err, ErrMissingCauseListService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Tasks: &mockTasks{}, CauseLists: &mockCauseLists{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_SettingsDefault(t *testing.T) {
	p := &Ports{}
	assert.Equal(t, "10s", p.settings().CNRTimeout.String())
	assert.Equal(t, "15s", p.settings().CauseListTimeout.String())
}

func connectInMemory(t *testing.T, ctx context.Context, s *Server) *mcp.ClientSession {
	t.Helper()
	t1, t2 := mcp.NewInMemoryTransports()
	serverSession, err := s.server.Connect(ctx, t1, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServer_ListsToolsAndResources(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectInMemory(t, ctx, newTestServer(t, &mockTasks{}))

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"search_cnr", "search_case", "cause_list"}, names)

	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	assert.Equal(t, "ecourts://jurisdictions", resources.Resources[0].URI)
}

func TestServer_Serve(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	tasks := &mockTasks{}
	server := newTestServer(t, tasks)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
