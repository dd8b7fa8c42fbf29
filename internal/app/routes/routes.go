package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studymind/studymind/internal/app/controllers"
	"github.com/studymind/studymind/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	noteController *controllers.NoteController,
	quizController *controllers.QuizController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Quizzes are generated from content the client sends, not from stored
	// notes, so the endpoint takes no bearer token.
	api.POST("/generate-quiz", quizController.GenerateQuiz)

	notes := api.Group("/notes")
	notes.Use(authMiddleware.JWTAuth())
	{
		notes.POST("/upload", noteController.UploadNote)
		notes.GET("", noteController.GetNotes)
		notes.GET("/:id", noteController.GetNoteByID)
		notes.PUT("/:id", noteController.UpdateNote)
		notes.DELETE("/:id", noteController.DeleteNote)
		notes.POST("/:id/collaborators", noteController.AddCollaborator)
		notes.DELETE("/:id/collaborators/:collaboratorId", noteController.RemoveCollaborator)
	}
}
