package controllers

import (
	"Alkhabir/models"
	"Alkhabir/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// controller profile

func (h *UserController) GetUserProfile(ctx *gin.Context) {
	profile, exists := ctx.Get("profile")
	if !exists {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "UserId is required")
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "success fetch User profile", profile.(models.Profile))
}
