package handlers

import (
	"Alkhabir/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTranscribeRoutes(router *gin.RouterGroup, transcribeController *controllers.TranscribeController, limit gin.HandlerFunc) {
	router.POST("/transcribe", limit, transcribeController.Transcribe)
}
