package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
)

// RecordOperations appends every mutating request to the debug operation
// log after the handler has run. Reads and the debug endpoints themselves
// are not recorded. Recording failures are logged and never affect the
// response already written.
func RecordOperations(opRepo repository.OperationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/debug") {
			return
		}

		record := &models.OperationRecord{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			RecordedAt: time.Now(),
		}

		if err := opRepo.Append(record); err != nil {
			log.Printf("failed to record operation %s %s: %v", record.Method, record.Path, err)
		}
	}
}
