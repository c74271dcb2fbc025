package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeru-oka/kanban-board/internal/dto"
	apierrors "github.com/takeru-oka/kanban-board/internal/errors"
	"github.com/takeru-oka/kanban-board/internal/services"
)

type ColumnHandler struct {
	boardService *services.BoardService
}

func NewColumnHandler(boardService *services.BoardService) *ColumnHandler {
	return &ColumnHandler{boardService: boardService}
}

// CreateColumn creates a new column at the end of its board
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	column, err := h.boardService.CreateColumn(services.CreateColumnInput{
		ID:      req.ID,
		BoardID: req.BoardID,
		Title:   req.Title,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// UpdateColumn renames a column
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	column, err := h.boardService.RenameColumn(c.Param("id"), req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// DeleteColumn removes a column and its tasks
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	if err := h.boardService.DeleteColumn(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted"})
}
