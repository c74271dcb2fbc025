package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/takeru-oka/kanban-board/internal/errors"
	"github.com/takeru-oka/kanban-board/internal/services"
)

// respondServiceError maps service sentinel errors onto HTTP responses.
// Anything unmapped is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoardNotFound),
		errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrTextRequired),
		errors.Is(err, services.ErrBoardIDRequired),
		errors.Is(err, services.ErrColumnIDRequired),
		errors.Is(err, services.ErrTaskIDRequired),
		errors.Is(err, services.ErrMemberIDRequired),
		errors.Is(err, services.ErrCommentIDRequired),
		errors.Is(err, services.ErrInvalidEffort),
		errors.Is(err, services.ErrColumnBoardMismatch),
		errors.Is(err, services.ErrUnknownMember):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
