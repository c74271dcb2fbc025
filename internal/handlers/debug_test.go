package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/takeru-oka/kanban-board/internal/middleware"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"github.com/takeru-oka/kanban-board/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDebugTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Member{},
		&models.Board{},
		&models.Column{},
		&models.Task{},
		&models.Comment{},
		&models.Attachment{},
		&models.OperationRecord{},
	)
	require.NoError(t, err)

	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	opRepo := repository.NewOperationRepository(db)
	boardService := services.NewBoardService(boardRepo, columnRepo)
	boardHandler := NewBoardHandler(boardService)
	debugHandler := NewDebugHandler(opRepo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RecordOperations(opRepo))
	router.GET("/api/boards", boardHandler.ListBoards)
	router.POST("/api/boards", boardHandler.CreateBoard)
	router.GET("/api/debug/operations", debugHandler.ListOperations)
	router.DELETE("/api/debug/operations", debugHandler.ClearOperations)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, router
}

func listOperations(t *testing.T, router *gin.Engine) []models.OperationRecord {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/debug/operations", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Operations []models.OperationRecord `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Operations
}

func TestOperationLog_RecordsMutationsOnly(t *testing.T) {
	_, router := setupDebugTestEnv(t)

	payload, _ := json.Marshal(gin.H{"id": "b1", "title": "Product"})
	req := httptest.NewRequest("POST", "/api/boards", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// A read must not be recorded.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/boards", nil))
	require.Equal(t, http.StatusOK, w.Code)

	ops := listOperations(t, router)
	require.Len(t, ops, 1)
	require.Equal(t, "POST", ops[0].Method)
	require.Equal(t, "/api/boards", ops[0].Path)
	require.Equal(t, http.StatusCreated, ops[0].StatusCode)
}

func TestOperationLog_Clear(t *testing.T) {
	_, router := setupDebugTestEnv(t)

	payload, _ := json.Marshal(gin.H{"id": "b1", "title": "Product"})
	req := httptest.NewRequest("POST", "/api/boards", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/debug/operations", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.Empty(t, listOperations(t, router))
}

// The clear itself targets the debug endpoints and must never show up in
// the log it just emptied.
func TestOperationLog_ClearIsNotRecorded(t *testing.T) {
	_, router := setupDebugTestEnv(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/debug/operations", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.Empty(t, listOperations(t, router))
}
