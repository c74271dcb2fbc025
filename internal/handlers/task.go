package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeru-oka/kanban-board/internal/dto"
	apierrors "github.com/takeru-oka/kanban-board/internal/errors"
	"github.com/takeru-oka/kanban-board/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func taskInputFromRequest(id string, req dto.TaskRequest) services.TaskInput {
	return services.TaskInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		MemberID:    req.MemberID,
		RequesterID: req.RequesterID,
		StartDate:   req.StartDate,
		Effort:      req.Effort,
		Priority:    req.Priority,
		ColumnID:    req.ColumnID,
		BoardID:     req.BoardID,
		Position:    req.Position,
	}
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	task, err := h.taskService.CreateTask(taskInputFromRequest(req.ID, req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask replaces all assignable fields of a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), taskInputFromRequest(c.Param("id"), req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task and its comments
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ListComments returns a task's comments newest-first
func (h *TaskHandler) ListComments(c *gin.Context) {
	comments, err := h.taskService.ListComments(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment creates a comment, optionally carrying attachments
func (h *TaskHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	input := services.CreateCommentInput{
		ID:       req.ID,
		TaskID:   req.TaskID,
		Text:     req.Text,
		AuthorID: req.AuthorID,
	}
	for _, a := range req.Attachments {
		input.Attachments = append(input.Attachments, services.AttachmentInput{
			ID:   a.ID,
			Name: a.Name,
			URL:  a.URL,
			Type: a.Type,
			Size: a.Size,
		})
	}

	comment, err := h.taskService.CreateComment(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
