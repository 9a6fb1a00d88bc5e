package handlers

import (
	"Alkhabir/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCaseRoutes(router *gin.RouterGroup, caseController *controllers.CaseController, auth, limit gin.HandlerFunc) {
	caseGroup := router.Group("/cases", auth)
	{
		caseGroup.POST("/analyze", limit, caseController.Analyze)
		caseGroup.GET("", caseController.GetAllCases)
		caseGroup.GET("/:caseId", caseController.GetCase)
		caseGroup.DELETE("/:caseId", caseController.DeleteCase)
	}
}
