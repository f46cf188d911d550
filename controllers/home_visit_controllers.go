package controllers

import (
	"github.com/gin-gonic/gin"

	"yultimate/dto"
	"yultimate/middleware"
	"yultimate/response"
	"yultimate/services"
	"yultimate/validator"
)

type HomeVisitController struct {
	visits *services.HomeVisitService
}

func NewHomeVisitController(visits *services.HomeVisitService) HomeVisitController {
	return HomeVisitController{visits: visits}
}

// GetHomeVisits godoc
// @Summary   List home visits, newest first
// @Tags      home-visits
// @Produce   json
// @Security  BearerAuth
// @Param     childId    query  int     false  "child id"
// @Param     coachId    query  int     false  "coach user id"
// @Param     visitType  query  string  false  "baseline, follow_up or emergency"
// @Param     page       query  int     false  "page"
// @Param     limit      query  int     false  "page size"
// @Success   200  {object}  response.Paginated
// @Router    /api/home-visits [get]
func (ctrl HomeVisitController) GetHomeVisits(c *gin.Context) {
	var filter dto.HomeVisitFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter")
		return
	}
	visits, total, err := ctrl.visits.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err, "Failed to fetch home visits")
		return
	}
	filter.Normalize()
	response.SuccessWithPagination(c, visits, filter.Page, filter.Limit, total)
}

// GetHomeVisit godoc
// @Summary   One home visit
// @Tags      home-visits
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "visit id"
// @Success   200  {object}  models.HomeVisit
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/home-visits/{id} [get]
func (ctrl HomeVisitController) GetHomeVisit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to fetch home visit")
		return
	}
	visit, err := ctrl.visits.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Failed to fetch home visit")
		return
	}
	response.Success(c, visit)
}

// CreateHomeVisit godoc
// @Summary   Record a home visit
// @Tags      home-visits
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      dto.CreateHomeVisitRequest  true  "visit"
// @Success   201   {object}  models.HomeVisit
// @Failure   400   {object}  response.ErrorBody
// @Failure   403   {object}  response.ErrorBody
// @Router    /api/home-visits [post]
func (ctrl HomeVisitController) CreateHomeVisit(c *gin.Context) {
	var req dto.CreateHomeVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to create home visit")
		return
	}
	identity, _ := middleware.CurrentIdentity(c)

	visit, err := ctrl.visits.Create(c.Request.Context(), identity, req)
	if err != nil {
		response.FromError(c, err, "Failed to create home visit")
		return
	}
	response.Created(c, visit)
}

// UpdateHomeVisit godoc
// @Summary   Change a home visit
// @Tags      home-visits
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                         true  "visit id"
// @Param     body  body      dto.UpdateHomeVisitRequest  true  "fields to change"
// @Success   200   {object}  models.HomeVisit
// @Failure   403   {object}  response.ErrorBody
// @Failure   404   {object}  response.ErrorBody
// @Router    /api/home-visits/{id} [put]
func (ctrl HomeVisitController) UpdateHomeVisit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to update home visit")
		return
	}
	var req dto.UpdateHomeVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to update home visit")
		return
	}
	identity, _ := middleware.CurrentIdentity(c)

	visit, err := ctrl.visits.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		response.FromError(c, err, "Failed to update home visit")
		return
	}
	response.Success(c, visit)
}

// DeleteHomeVisit godoc
// @Summary   Delete a home visit
// @Tags      home-visits
// @Security  BearerAuth
// @Param     id  path  int  true  "visit id"
// @Success   204
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/home-visits/{id} [delete]
func (ctrl HomeVisitController) DeleteHomeVisit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to delete home visit")
		return
	}
	if err := ctrl.visits.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete home visit")
		return
	}
	response.NoContent(c)
}
