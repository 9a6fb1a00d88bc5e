package controllers

import (
	"Alkhabir/models"
	"Alkhabir/services"
	"Alkhabir/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *services.AdminService
	CaseService  *services.CaseService
}

// CaseService may be nil when Firebase is not configured.
func NewAdminController(admins *services.AdminService, cases *services.CaseService) *AdminController {
	return &AdminController{AdminService: admins, CaseService: cases}
}

func (a *AdminController) Login(ctx *gin.Context) {
	var req models.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.AdminService.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to create session", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Login successful", session)
}

// GetAllCases lists every user's cases, newest first.
func (a *AdminController) GetAllCases(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	cases, err := a.CaseService.ListAllCases(ctx.Request.Context(), limit)
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to get cases", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Cases fetched successfully", cases)
}
