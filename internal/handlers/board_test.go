package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"github.com/takeru-oka/kanban-board/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// BoardHandlerTestSuite defines the test suite for board and column handlers
type BoardHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *BoardHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Member{},
		&models.Board{},
		&models.Column{},
		&models.Task{},
		&models.Comment{},
		&models.Attachment{},
	)
	suite.Require().NoError(err)

	boardRepo := repository.NewBoardRepository(suite.db)
	columnRepo := repository.NewColumnRepository(suite.db)
	boardService := services.NewBoardService(boardRepo, columnRepo)

	boardHandler := NewBoardHandler(boardService)
	columnHandler := NewColumnHandler(boardService)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	api.GET("/boards", boardHandler.ListBoards)
	api.POST("/boards", boardHandler.CreateBoard)
	api.PATCH("/boards/:id", boardHandler.UpdateBoard)
	api.DELETE("/boards/:id", boardHandler.DeleteBoard)
	api.POST("/columns", columnHandler.CreateColumn)
	api.PATCH("/columns/:id", columnHandler.UpdateColumn)
	api.DELETE("/columns/:id", columnHandler.DeleteColumn)
}

// TearDownTest runs after each test
func (suite *BoardHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *BoardHandlerTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BoardHandlerTestSuite) createTestBoard(id, title string) *models.Board {
	board := &models.Board{ID: id, Title: title}
	suite.db.Create(board)
	return board
}

func (suite *BoardHandlerTestSuite) createTestColumn(id, boardID, title string, position int) *models.Column {
	column := &models.Column{ID: id, BoardID: boardID, Title: title, Position: position}
	suite.db.Create(column)
	return column
}

func (suite *BoardHandlerTestSuite) createTestTask(id, columnID, boardID string, position int) *models.Task {
	task := &models.Task{
		ID:       id,
		Title:    "Task " + id,
		Effort:   2,
		Priority: "medium",
		ColumnID: columnID,
		BoardID:  boardID,
		Position: position,
	}
	suite.db.Create(task)
	return task
}

func (suite *BoardHandlerTestSuite) TestCreateBoard_Success() {
	w := suite.request("POST", "/api/boards", gin.H{"id": "b1", "title": "Product"})

	suite.Equal(http.StatusCreated, w.Code)

	var board models.Board
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &board))
	suite.Equal("b1", board.ID)
	suite.Equal("Product", board.Title)
}

func (suite *BoardHandlerTestSuite) TestCreateBoard_MissingID() {
	w := suite.request("POST", "/api/boards", gin.H{"title": "Product"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BoardHandlerTestSuite) TestListBoards_NestedAndOrdered() {
	suite.createTestBoard("b1", "Product")
	// Insert out of positional order; the read must come back sorted.
	suite.createTestColumn("doing", "b1", "Doing", 1)
	suite.createTestColumn("todo", "b1", "To do", 0)
	suite.createTestTask("t2", "todo", "b1", 1)
	suite.createTestTask("t1", "todo", "b1", 0)

	w := suite.request("GET", "/api/boards", nil)
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Boards []models.Board `json:"boards"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Boards, 1)

	columns := response.Boards[0].Columns
	suite.Require().Len(columns, 2)
	suite.Equal("todo", columns[0].ID)
	suite.Equal("doing", columns[1].ID)

	suite.Require().Len(columns[0].Tasks, 2)
	suite.Equal("t1", columns[0].Tasks[0].ID)
	suite.Equal("t2", columns[0].Tasks[1].ID)
}

func (suite *BoardHandlerTestSuite) TestUpdateBoard_Success() {
	suite.createTestBoard("b1", "Product")

	w := suite.request("PATCH", "/api/boards/b1", gin.H{"title": "Renamed"})
	suite.Equal(http.StatusOK, w.Code)

	var board models.Board
	suite.db.First(&board, "id = ?", "b1")
	suite.Equal("Renamed", board.Title)
}

func (suite *BoardHandlerTestSuite) TestUpdateBoard_NotFound() {
	w := suite.request("PATCH", "/api/boards/ghost", gin.H{"title": "Renamed"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BoardHandlerTestSuite) TestDeleteBoard_Cascades() {
	suite.createTestBoard("b1", "Product")
	suite.createTestColumn("todo", "b1", "To do", 0)
	suite.createTestTask("t1", "todo", "b1", 0)
	suite.db.Create(&models.Comment{ID: "c1", TaskID: "t1", Text: "note", AuthorID: "m1"})
	suite.db.Create(&models.Attachment{ID: "a1", CommentID: "c1", Name: "notes.pdf", URL: "https://example.com/notes.pdf"})

	w := suite.request("DELETE", "/api/boards/b1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Column{}).Count(&count)
	suite.Equal(int64(0), count)
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
	suite.db.Model(&models.Comment{}).Count(&count)
	suite.Equal(int64(0), count)
	suite.db.Model(&models.Attachment{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *BoardHandlerTestSuite) TestCreateColumn_AppendsAtEnd() {
	suite.createTestBoard("b1", "Product")
	suite.createTestColumn("todo", "b1", "To do", 0)

	w := suite.request("POST", "/api/columns", gin.H{"id": "doing", "board_id": "b1", "title": "Doing"})
	suite.Equal(http.StatusCreated, w.Code)

	var column models.Column
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &column))
	suite.Equal(1, column.Position)
}

func (suite *BoardHandlerTestSuite) TestCreateColumn_UnknownBoard() {
	w := suite.request("POST", "/api/columns", gin.H{"id": "doing", "board_id": "ghost", "title": "Doing"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BoardHandlerTestSuite) TestDeleteColumn_CascadesTasks() {
	suite.createTestBoard("b1", "Product")
	suite.createTestColumn("todo", "b1", "To do", 0)
	suite.createTestTask("t1", "todo", "b1", 0)

	w := suite.request("DELETE", "/api/columns/todo", nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
}

func TestBoardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BoardHandlerTestSuite))
}
