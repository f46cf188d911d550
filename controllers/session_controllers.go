package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"yultimate/dto"
	"yultimate/errors"
	"yultimate/response"
	"yultimate/services"
	"yultimate/utils"
	"yultimate/validator"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) SessionController {
	return SessionController{sessions: sessions}
}

// GetSessions godoc
// @Summary   List sessions, newest first
// @Tags      sessions
// @Produce   json
// @Security  BearerAuth
// @Param     date  query  string  false  "YYYY-MM-DD"
// @Success   200  {array}  models.Session
// @Router    /api/sessions [get]
func (ctrl SessionController) GetSessions(c *gin.Context) {
	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			response.FromError(c, errors.InvalidFormat("Invalid date", err), "Failed to fetch sessions")
			return
		}
		day = &d
	}

	sessions, err := ctrl.sessions.List(c.Request.Context(), day)
	if err != nil {
		response.FromError(c, err, "Failed to fetch sessions")
		return
	}
	response.Success(c, sessions)
}

// GetSession godoc
// @Summary   One session with attendance and summary
// @Tags      sessions
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "session id"
// @Success   200  {object}  dto.SessionDetail
// @Failure   404  {object}  response.ErrorBody
// @Router    /api/sessions/{id} [get]
func (ctrl SessionController) GetSession(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to fetch session")
		return
	}
	detail, err := ctrl.sessions.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Failed to fetch session")
		return
	}
	response.Success(c, detail)
}

// CreateSession godoc
// @Summary   Create a session
// @Tags      sessions
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      dto.CreateSessionRequest  true  "session"
// @Success   201   {object}  models.Session
// @Failure   400   {object}  response.ErrorBody
// @Router    /api/sessions [post]
func (ctrl SessionController) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to create session")
		return
	}

	session, err := ctrl.sessions.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "Failed to create session")
		return
	}
	response.Created(c, session)
}

// SaveAttendance godoc
// @Summary   Replace the attendance of a session
// @Tags      sessions
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                        true  "session id"
// @Param     body  body      dto.SaveAttendanceRequest  true  "attendance list"
// @Success   200   {object}  dto.SaveAttendanceResponse
// @Failure   400   {object}  response.ErrorBody
// @Failure   404   {object}  response.ErrorBody
// @Router    /api/sessions/{id}/attendance [post]
func (ctrl SessionController) SaveAttendance(c *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, errors.InvalidFormat("Invalid request body", err), "Failed to save attendance")
		return
	}
	entries, err := req.Entries()
	if err != nil {
		response.FromError(c, err, "Failed to save attendance")
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.FromError(c, err, "Failed to save attendance")
		return
	}

	saved, err := ctrl.sessions.ReplaceAttendance(c.Request.Context(), id, entries)
	if err != nil {
		response.FromError(c, err, "Failed to save attendance")
		return
	}
	response.Success(c, dto.SaveAttendanceResponse{
		Message:    "Attendance saved successfully",
		Count:      len(saved),
		Attendance: saved,
	})
}
