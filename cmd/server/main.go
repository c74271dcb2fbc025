package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/takeru-oka/kanban-board/internal/config"
	"github.com/takeru-oka/kanban-board/internal/database"
	"github.com/takeru-oka/kanban-board/internal/handlers"
	"github.com/takeru-oka/kanban-board/internal/middleware"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"github.com/takeru-oka/kanban-board/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	opRepo := repository.NewOperationRepository(db)

	// Initialize services
	memberService := services.NewMemberService(memberRepo)
	boardService := services.NewBoardService(boardRepo, columnRepo)
	taskService := services.NewTaskService(taskRepo, columnRepo, memberRepo, commentRepo)

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(memberService)
	boardHandler := handlers.NewBoardHandler(boardService)
	columnHandler := handlers.NewColumnHandler(boardService)
	taskHandler := handlers.NewTaskHandler(taskService)
	debugHandler := handlers.NewDebugHandler(opRepo)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RecordOperations(opRepo))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Kanban board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		members := api.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		boards := api.Group("/boards")
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.PATCH("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
		}

		columns := api.Group("/columns")
		{
			columns.POST("", columnHandler.CreateColumn)
			columns.PATCH("/:id", columnHandler.UpdateColumn)
			columns.DELETE("/:id", columnHandler.DeleteColumn)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.GET("/:id/comments", taskHandler.ListComments)
		}

		api.POST("/comments", taskHandler.CreateComment)

		debug := api.Group("/debug")
		{
			debug.GET("/operations", debugHandler.ListOperations)
			debug.DELETE("/operations", debugHandler.ClearOperations)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
