package tutor_module

import (
	"errors"
	"log"
	"net/http"

	"github.com/ethanbaker/sparky/internal/tutor"
	"github.com/ethanbaker/sparky/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// ProcessVideo handles POST requests to summarize a video
func ProcessVideo(c *gin.Context) {
	var req sdk.ProcessVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "Could not parse request body"})
		return
	}

	summary, err := GetService().Summarize(c.Request.Context(), req.URL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sdk.ProcessVideoResponse{
		Status:  sdk.StatusSuccess,
		Summary: summary.Text,
		VideoID: summary.VideoID,
	})
}

// Chat handles POST requests to answer a chat message
func Chat(c *gin.Context) {
	var req sdk.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "Could not parse request body"})
		return
	}

	reply, err := GetService().Chat(c.Request.Context(), tutor.ChatInput{
		Message: req.Message,
		ChatID:  req.ChatID,
		Context: req.Context,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sdk.ChatResponse{
		Response: reply.Response,
		ChatID:   reply.ChatID,
	})
}

// respondWithError reports recoverable errors as a JSON 400 and everything
// else as a bare 500
func respondWithError(c *gin.Context, err error) {
	var tutorErr *tutor.Error
	if errors.As(err, &tutorErr) && tutorErr.Recoverable() {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: tutorErr.Message})
		return
	}

	log.Printf("[TUTOR]: Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
