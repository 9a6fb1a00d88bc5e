package controllers

import (
	"Alkhabir/models"
	"Alkhabir/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// whisper rejects files above 25MB
const maxAudioUpload = 25 << 20

type TranscribeController struct {
	TranscriptionService *services.TranscriptionService
}

func NewTranscribeController(svc *services.TranscriptionService) *TranscribeController {
	return &TranscribeController{TranscriptionService: svc}
}

func (tc *TranscribeController) Transcribe(ctx *gin.Context) {
	file, err := ctx.FormFile("audio")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.DispatchFailure{Error: "الملف الصوتي مطلوب.", Kind: models.KindInsufficientInput})
		return
	}
	if file.Size > maxAudioUpload {
		ctx.JSON(http.StatusRequestEntityTooLarge, models.DispatchFailure{Error: "الملف الصوتي كبير جداً.", Kind: models.KindInvalidInput})
		return
	}

	audio, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.DispatchFailure{Error: "تعذرت قراءة الملف الصوتي.", Kind: models.KindInvalidInput})
		return
	}
	defer audio.Close()

	text, err := tc.TranscriptionService.Transcribe(ctx.Request.Context(), file.Filename, audio)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.DispatchFailure{Error: err.Error(), Kind: models.KindUpstreamFailure})
		return
	}

	ctx.JSON(http.StatusOK, models.Transcription{Success: true, Transcription: text})
}
