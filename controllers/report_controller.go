package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"yultimate/errors"
	"yultimate/response"
	"yultimate/services"
	"yultimate/utils"
	"yultimate/validator"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) ReportController {
	return ReportController{reports: reports}
}

// AttendanceReport godoc
// @Summary   Attendance CSV for a date range
// @Tags      reports
// @Produce   text/csv
// @Security  BearerAuth
// @Param     from  query  string  true   "YYYY-MM-DD"
// @Param     to    query  string  true   "YYYY-MM-DD, inclusive"
// @Param     site  query  int     false  "site id"
// @Success   200  {file}    file
// @Failure   400  {object}  response.ErrorBody
// @Router    /api/reports/attendance [get]
func (ctrl ReportController) AttendanceReport(c *gin.Context) {
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" || toRaw == "" {
		response.FromError(c, errors.Required("from and to dates are required"), "Failed to build report")
		return
	}

	from, err := utils.ParseDate(fromRaw)
	if err != nil {
		response.FromError(c, errors.InvalidFormat("Invalid 'from' date", err), "Failed to build report")
		return
	}
	to, err := utils.ParseDate(toRaw)
	if err != nil {
		response.FromError(c, errors.InvalidFormat("Invalid 'to' date", err), "Failed to build report")
		return
	}
	if err := validator.ValidateDateRange(utils.StartOfDay(from), utils.StartOfDay(to)); err != nil {
		response.FromError(c, err, "Failed to build report")
		return
	}

	var siteID *uint
	if raw := c.Query("site"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			response.FromError(c, errors.Validation("Invalid site"), "Failed to build report")
			return
		}
		site := uint(id)
		siteID = &site
	}

	body, err := ctrl.reports.AttendanceCSV(c.Request.Context(), from, to, siteID)
	if err != nil {
		response.FromError(c, err, "Failed to build report")
		return
	}
	response.CSV(c, services.AttendanceReportFilename(from, to), body)
}

