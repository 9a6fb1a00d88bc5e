package controllers

import (
	"Alkhabir/models"
	"Alkhabir/services"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// dispatch bodies carry base64 images for ocr
	maxDispatchBody = 20 << 20
	maxImageUpload  = 10 << 20
)

type DispatchController struct {
	Dispatcher *services.DispatchService
	log        *zap.Logger
}

func NewDispatchController(dispatcher *services.DispatchService, log *zap.Logger) *DispatchController {
	if log == nil {
		log = zap.NewNop()
	}
	return &DispatchController{Dispatcher: dispatcher, log: log}
}

// Health answers GET / without calling the completion API.
func (dc *DispatchController) Health(ctx *gin.Context) {
	ctx.String(http.StatusOK, services.ReadyMessage)
}

// Dispatch handles POST / with a raw JSON (or JSON string) body.
func (dc *DispatchController) Dispatch(ctx *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxDispatchBody))
	if err != nil {
		dc.fail(ctx, &services.DispatchError{
			Kind:       models.KindInvalidInput,
			StatusCode: http.StatusBadRequest,
			Message:    "تعذرت قراءة الطلب.",
			Err:        err,
		})
		return
	}

	req, err := services.ParseRequest(body)
	if err != nil {
		dc.fail(ctx, err)
		return
	}

	dc.run(ctx, req)
}

// UploadOCR accepts a multipart image upload and dispatches it as an ocr
// request.
func (dc *DispatchController) UploadOCR(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		dc.fail(ctx, &services.DispatchError{Kind: models.KindInsufficientInput, StatusCode: http.StatusBadRequest, Message: "الصورة مطلوبة.", Err: err})
		return
	}

	src, err := file.Open()
	if err != nil {
		dc.fail(ctx, &services.DispatchError{Kind: models.KindInvalidInput, StatusCode: http.StatusBadRequest, Message: "تعذرت قراءة الصورة.", Err: err})
		return
	}
	defer src.Close()

	image, err := services.ReadImage(src, maxImageUpload)
	if err != nil {
		dc.fail(ctx, &services.DispatchError{Kind: models.KindInvalidInput, StatusCode: http.StatusBadRequest, Message: "صيغة الصورة غير مدعومة.", Err: err})
		return
	}

	query := ctx.PostForm("query")
	if query == "" {
		query = services.OCRFallbackInstruction
	}

	dc.run(ctx, &models.DispatchRequest{Type: models.RequestOCR, Query: query, Image: image})
}

func (dc *DispatchController) run(ctx *gin.Context, req *models.DispatchRequest) {
	resp, err := dc.Dispatcher.Dispatch(ctx.Request.Context(), req)
	if err != nil {
		dc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (dc *DispatchController) fail(ctx *gin.Context, err error) {
	var de *services.DispatchError
	if !errors.As(err, &de) {
		de = &services.DispatchError{Kind: models.KindUpstreamFailure, StatusCode: http.StatusInternalServerError, Message: err.Error(), Err: err}
	}
	if de.StatusCode < http.StatusInternalServerError && de.Err != nil {
		dc.log.Debug("Rejected dispatch request", zap.String("kind", string(de.Kind)), zap.Error(de.Err))
	}
	ctx.JSON(de.StatusCode, de.Failure())
}
