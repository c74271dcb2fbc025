package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/takeru-oka/kanban-board/internal/models"
)

// APIClient talks to the kanban persistence API. It implements both
// board.Persistence and board.DebugLog.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends one request and decodes the response into out when non-nil.
// Non-2xx responses are turned into errors carrying the server's error code.
func (c *APIClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
		}
		var apiErr apiError
		if err := json.Unmarshal(errorBody, &apiErr); err != nil || apiErr.Code == "" {
			return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %s: %s", method, path, apiErr.Code, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response (%s %s): %w", method, path, err)
	}
	return nil
}

// FetchMembers retrieves all members.
func (c *APIClient) FetchMembers(ctx context.Context) ([]models.Member, error) {
	var envelope struct {
		Members []models.Member `json:"members"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/members", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Members, nil
}

// FetchBoards retrieves all boards with nested columns and tasks.
func (c *APIClient) FetchBoards(ctx context.Context) ([]models.Board, error) {
	var envelope struct {
		Boards []models.Board `json:"boards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/boards", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Boards, nil
}

// CreateMember persists a new member.
func (c *APIClient) CreateMember(ctx context.Context, member models.Member) error {
	return c.do(ctx, http.MethodPost, "/api/members", member, nil)
}

// DeleteMember removes a member; the server cascades to referencing tasks.
func (c *APIClient) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/members/"+id, nil, nil)
}

// CreateBoard persists a new board.
func (c *APIClient) CreateBoard(ctx context.Context, b models.Board) error {
	return c.do(ctx, http.MethodPost, "/api/boards", b, nil)
}

// UpdateBoardTitle renames a board.
func (c *APIClient) UpdateBoardTitle(ctx context.Context, id, title string) error {
	return c.do(ctx, http.MethodPatch, "/api/boards/"+id, map[string]string{"title": title}, nil)
}

// DeleteBoard removes a board; the server cascades to columns, tasks,
// comments and attachments.
func (c *APIClient) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/boards/"+id, nil, nil)
}

// CreateColumn persists a new column.
func (c *APIClient) CreateColumn(ctx context.Context, column models.Column) error {
	return c.do(ctx, http.MethodPost, "/api/columns", column, nil)
}

// UpdateColumnTitle renames a column.
func (c *APIClient) UpdateColumnTitle(ctx context.Context, id, title string) error {
	return c.do(ctx, http.MethodPatch, "/api/columns/"+id, map[string]string{"title": title}, nil)
}

// DeleteColumn removes a column and its tasks.
func (c *APIClient) DeleteColumn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/columns/"+id, nil, nil)
}

// CreateTask persists a new task.
func (c *APIClient) CreateTask(ctx context.Context, task models.Task) error {
	return c.do(ctx, http.MethodPost, "/api/tasks", task, nil)
}

// UpdateTask replaces all assignable fields of a task.
func (c *APIClient) UpdateTask(ctx context.Context, task models.Task) error {
	return c.do(ctx, http.MethodPut, "/api/tasks/"+task.ID, task, nil)
}

// DeleteTask removes a task and its comments.
func (c *APIClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

// CreateComment persists a comment, optionally with attachments.
func (c *APIClient) CreateComment(ctx context.Context, comment models.Comment) error {
	return c.do(ctx, http.MethodPost, "/api/comments", comment, nil)
}

// Operations retrieves the recorded persistence operations.
func (c *APIClient) Operations(ctx context.Context) ([]models.OperationRecord, error) {
	var envelope struct {
		Operations []models.OperationRecord `json:"operations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/debug/operations", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Operations, nil
}

// ClearOperations empties the server-side operation log.
func (c *APIClient) ClearOperations(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/debug/operations", nil, nil)
}
