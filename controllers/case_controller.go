package controllers

import (
	"Alkhabir/models"
	"Alkhabir/services"
	"Alkhabir/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CaseController struct {
	CaseService *services.CaseService
}

func NewCaseController(svc *services.CaseService) *CaseController {
	return &CaseController{CaseService: svc}
}

// Analyze runs the analyze dispatch and saves the result in the caller's
// history.
func (c *CaseController) Analyze(ctx *gin.Context) {
	var req models.CaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := ctx.GetString("userId")
	saved, err := c.CaseService.AnalyzeAndSave(ctx.Request.Context(), userId, req)
	if err != nil {
		var de *services.DispatchError
		if errors.As(err, &de) {
			utils.ErrorResponse(ctx, de.StatusCode, de.Message)
			return
		}
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to save case", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Case analyzed", saved)
}

//get all cases of the caller

func (c *CaseController) GetAllCases(ctx *gin.Context) {
	cases, err := c.CaseService.ListCases(ctx.Request.Context(), ctx.GetString("userId"))
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to get cases", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Cases fetched successfully", cases)
}

func (c *CaseController) GetCase(ctx *gin.Context) {
	caseId := ctx.Param("caseId")

	found, err := c.CaseService.GetCase(ctx.Request.Context(), ctx.GetString("userId"), caseId)
	if errors.Is(err, services.ErrCaseNotFound) {
		ctx.Error(utils.NewCustomError(http.StatusNotFound, "Case not found", err))
		return
	}
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to get case", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Case fetched successfully", found)
}

func (c *CaseController) DeleteCase(ctx *gin.Context) {
	caseId := ctx.Param("caseId")

	err := c.CaseService.DeleteCase(ctx.Request.Context(), ctx.GetString("userId"), caseId)
	if errors.Is(err, services.ErrCaseNotFound) {
		ctx.Error(utils.NewCustomError(http.StatusNotFound, "Case not found", err))
		return
	}
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to delete case", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Case deleted successfully", nil)
}
