package handlers

import (
	"Alkhabir/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterDispatchRoutes mounts the dispatcher at the root, where the
// front-end function client posts to, and the upload variant under /v1.
func RegisterDispatchRoutes(router *gin.Engine, v1 *gin.RouterGroup, dispatchController *controllers.DispatchController, limit gin.HandlerFunc) {
	router.GET("/", dispatchController.Health)
	router.POST("/", limit, dispatchController.Dispatch)

	v1.POST("/dispatch", limit, dispatchController.Dispatch)
	v1.POST("/ocr", limit, dispatchController.UploadOCR)
}
