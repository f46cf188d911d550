package controllers

import (
	"github.com/gin-gonic/gin"

	"yultimate/dto"
	"yultimate/middleware"
	"yultimate/response"
	"yultimate/services"
	"yultimate/validator"
)

type AssessmentController struct {
	assessments *services.AssessmentService
}

func NewAssessmentController(assessments *services.AssessmentService) AssessmentController {
	return AssessmentController{assessments: assessments}
}

// GetAssessments godoc
// @Summary   List LSAS assessments, newest first
// @Tags      assessments
// @Produce   json
// @Security  BearerAuth
// @Param     childId         query  int     false  "child id"
// @Param     assessmentType  query  string  false  "baseline, mid_term, follow_up or endline"
// @Param     page            query  int     false  "page"
// @Param     limit           query  int     false  "page size"
// @Success   200  {object}  response.Paginated
// @Router    /api/assessments [get]
func (ctrl AssessmentController) GetAssessments(c *gin.Context) {
	var filter dto.AssessmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter")
		return
	}
	list, total, err := ctrl.assessments.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err, "Failed to fetch assessments")
		return
	}
	filter.Normalize()
	response.SuccessWithPagination(c, list, filter.Page, filter.Limit, total)
}

// GetAssessment godoc
// @Summary   One assessment
// @Tags      assessments
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "assessment id"
// @Success   200  {object}  models.Assessment
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/assessments/{id} [get]
func (ctrl AssessmentController) GetAssessment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to fetch assessment")
		return
	}
	a, err := ctrl.assessments.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Failed to fetch assessment")
		return
	}
	response.Success(c, a)
}

// CreateAssessment godoc
// @Summary   Record an assessment
// @Tags      assessments
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      dto.CreateAssessmentRequest  true  "assessment"
// @Success   201   {object}  models.Assessment
// @Failure   400   {object}  response.ErrorBody
// @Router    /api/assessments [post]
func (ctrl AssessmentController) CreateAssessment(c *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to create assessment")
		return
	}
	identity, _ := middleware.CurrentIdentity(c)

	a, err := ctrl.assessments.Create(c.Request.Context(), identity, req)
	if err != nil {
		response.FromError(c, err, "Failed to create assessment")
		return
	}
	response.Created(c, a)
}

// UpdateAssessment godoc
// @Summary   Change an assessment
// @Tags      assessments
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                          true  "assessment id"
// @Param     body  body      dto.UpdateAssessmentRequest  true  "fields to change"
// @Success   200   {object}  models.Assessment
// @Failure   404   {object}  response.ErrorBody
// @Router    /api/assessments/{id} [put]
func (ctrl AssessmentController) UpdateAssessment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to update assessment")
		return
	}
	var req dto.UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to update assessment")
		return
	}
	a, err := ctrl.assessments.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err, "Failed to update assessment")
		return
	}
	response.Success(c, a)
}

// DeleteAssessment godoc
// @Summary   Delete an assessment
// @Tags      assessments
// @Security  BearerAuth
// @Param     id  path  int  true  "assessment id"
// @Success   204
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/assessments/{id} [delete]
func (ctrl AssessmentController) DeleteAssessment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to delete assessment")
		return
	}
	if err := ctrl.assessments.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete assessment")
		return
	}
	response.NoContent(c)
}

// GetChildProgress godoc
// @Summary   Assessment progress of one child
// @Tags      assessments
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "child id"
// @Success   200  {object}  dto.AssessmentProgress
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/children/{id}/progress [get]
func (ctrl AssessmentController) GetChildProgress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to fetch progress")
		return
	}
	progress, err := ctrl.assessments.Progress(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Failed to fetch progress")
		return
	}
	response.Success(c, progress)
}
