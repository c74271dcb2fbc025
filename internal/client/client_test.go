package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeru-oka/kanban-board/internal/models"
)

func TestFetchBoards_DecodesNestedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/boards", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"boards": []models.Board{
				{ID: "b1", Title: "Product", Columns: []models.Column{
					{ID: "todo", BoardID: "b1", Title: "To do", Tasks: []models.Task{
						{ID: "t1", Title: "First", ColumnID: "todo", BoardID: "b1", Effort: 2},
					}},
				}},
			},
		})
	}))
	defer server.Close()

	boards, err := New(server.URL).FetchBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Len(t, boards[0].Columns, 1)
	assert.Equal(t, "t1", boards[0].Columns[0].Tasks[0].ID)
}

func TestUpdateTask_SendsPutToTaskPath(t *testing.T) {
	var gotMethod, gotPath string
	var gotTask models.Task
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotTask))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	task := models.Task{ID: "t1", Title: "Moved", ColumnID: "doing", BoardID: "b1", Effort: 2}
	require.NoError(t, New(server.URL).UpdateTask(context.Background(), task))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/tasks/t1", gotPath)
	assert.Equal(t, "doing", gotTask.ColumnID)
}

func TestDo_SurfacesAPIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"code": "NOT_FOUND", "message": "board not found"})
	}))
	defer server.Close()

	err := New(server.URL).DeleteBoard(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "board not found")
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	err := New(server.URL).DeleteBoard(context.Background(), "b1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
