package tutor_module

import "github.com/gin-gonic/gin"

// Register routes for the tutor module
func RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/process-youtube", ProcessVideo) // Summarize a video from its transcript
	g.POST("/chat", Chat)                    // Answer a chat message, optionally with video context
}
