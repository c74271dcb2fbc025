package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/takeru-oka/kanban-board/internal/errors"
	"github.com/takeru-oka/kanban-board/internal/repository"
)

// DebugHandler exposes the recorded persistence operations for the
// observability panel. Nothing in the board core depends on it.
type DebugHandler struct {
	opRepo repository.OperationRepository
}

func NewDebugHandler(opRepo repository.OperationRepository) *DebugHandler {
	return &DebugHandler{opRepo: opRepo}
}

// ListOperations returns every recorded operation in insertion order
func (h *DebugHandler) ListOperations(c *gin.Context) {
	records, err := h.opRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"operations": records})
}

// ClearOperations empties the operation log
func (h *DebugHandler) ClearOperations(c *gin.Context) {
	if err := h.opRepo.Clear(); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Operation log cleared"})
}
