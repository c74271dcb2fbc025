package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"github.com/takeru-oka/kanban-board/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type memberTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupMemberTestEnv(t *testing.T) memberTestEnv {
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
	)
	require.NoError(t, err)

	memberRepo := repository.NewMemberRepository(db)
	memberService := services.NewMemberService(memberRepo)
	handler := NewMemberHandler(memberService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/members", handler.ListMembers)
	router.POST("/api/members", handler.CreateMember)
	router.DELETE("/api/members/:id", handler.DeleteMember)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return memberTestEnv{db: db, router: router}
}

func (env memberTestEnv) request(t *testing.T, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestCreateMember_Success(t *testing.T) {
	env := setupMemberTestEnv(t)

	w := env.request(t, "POST", "/api/members", gin.H{"id": "m1", "name": "Aiko", "color": "#e74c3c"})
	require.Equal(t, http.StatusCreated, w.Code)

	var member models.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	require.Equal(t, "m1", member.ID)
	require.Equal(t, "Aiko", member.Name)
}

func TestCreateMember_MissingName(t *testing.T) {
	env := setupMemberTestEnv(t)

	w := env.request(t, "POST", "/api/members", gin.H{"id": "m1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMembers_ReturnsPagination(t *testing.T) {
	env := setupMemberTestEnv(t)
	env.db.Create(&models.Member{ID: "m1", Name: "Aiko", Color: "#e74c3c"})
	env.db.Create(&models.Member{ID: "m2", Name: "Ben", Color: "#3498db"})

	w := env.request(t, "GET", "/api/members", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Members    []models.Member `json:"members"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Members, 2)
	require.Equal(t, int64(2), response.Pagination.Total)
}

// Deleting a member takes the tasks it is assigned to or requested with it.
// The schema inherited this cascade; the test pins it down.
func TestDeleteMember_CascadesReferencingTasks(t *testing.T) {
	env := setupMemberTestEnv(t)
	env.db.Create(&models.Member{ID: "m1", Name: "Aiko", Color: "#e74c3c"})
	env.db.Create(&models.Member{ID: "m2", Name: "Ben", Color: "#3498db"})
	env.db.Create(&models.Board{ID: "b1", Title: "Product"})
	env.db.Create(&models.Column{ID: "todo", BoardID: "b1", Title: "To do", Position: 0})
	env.db.Create(&models.Task{ID: "t1", Title: "Assigned", MemberID: "m1", RequesterID: "m2", Effort: 1, ColumnID: "todo", BoardID: "b1"})
	env.db.Create(&models.Task{ID: "t2", Title: "Requested", MemberID: "m2", RequesterID: "m1", Effort: 1, ColumnID: "todo", BoardID: "b1"})
	env.db.Create(&models.Task{ID: "t3", Title: "Unrelated", MemberID: "m2", RequesterID: "m2", Effort: 1, ColumnID: "todo", BoardID: "b1"})
	env.db.Create(&models.Comment{ID: "c1", TaskID: "t1", Text: "gone with the task", AuthorID: "m2"})

	w := env.request(t, "DELETE", "/api/members/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var taskIDs []string
	env.db.Model(&models.Task{}).Pluck("id", &taskIDs)
	require.Equal(t, []string{"t3"}, taskIDs)

	var commentCount int64
	env.db.Model(&models.Comment{}).Count(&commentCount)
	require.Equal(t, int64(0), commentCount)
}

func TestDeleteMember_NotFound(t *testing.T) {
	env := setupMemberTestEnv(t)

	w := env.request(t, "DELETE", "/api/members/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
