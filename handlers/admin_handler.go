package handlers

import (
	"Alkhabir/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes mounts the admin console. Login needs the console
// credentials and the case listing needs Firestore backed case history.
func RegisterAdminRoutes(router *gin.RouterGroup, adminController *controllers.AdminController, adminAuth gin.HandlerFunc) {
	adminGroup := router.Group("/admin")
	{
		if adminController.AdminService != nil {
			adminGroup.POST("/login", adminController.Login)
		}
		if adminController.CaseService != nil {
			adminGroup.GET("/cases", adminAuth, adminController.GetAllCases)
		}
	}
}
