package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"yultimate/commands"
	"yultimate/constants"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
	"yultimate/services/notification"
	"yultimate/utils"
	"yultimate/validator"
)

type SessionService struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
}

type SessionServiceOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewSessionService(opts SessionServiceOptions) *SessionService {
	return &SessionService{db: opts.DB, notifier: opts.Notifier, logger: opts.Logger}
}

// List returns sessions newest first. A non-nil day restricts the result to that UTC calendar day.
func (s *SessionService) List(ctx context.Context, day *time.Time) ([]models.Session, error) {
	q := s.db.WithContext(ctx).
		Preload("Site").
		Preload("Attendance", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Attendance.Child")
	if day != nil {
		start, end := utils.DayRange(*day)
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	sessions := []models.Session{}
	if err := q.Order("date DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, errors.Database("failed to list sessions", err)
	}
	return sessions, nil
}

func (s *SessionService) Get(ctx context.Context, id uint) (*dto.SessionDetail, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("Site").
		Preload("Attendance", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Attendance.Child").
		First(&session, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Database("failed to load session", err)
	}

	detail := &dto.SessionDetail{Session: session}
	detail.Summary.AttendanceCount = len(session.Attendance)
	for _, a := range session.Attendance {
		if a.Present {
			detail.Summary.ChildrenPresent++
		}
	}
	return detail, nil
}

func (s *SessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*models.Session, error) {
	if req.Date == "" || req.SiteID == 0 {
		return nil, errors.Required("date and siteId are required")
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, errors.InvalidFormat("Invalid date", err)
	}

	ok, err := siteExists(s.db.WithContext(ctx), req.SiteID.Uint())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Validation(fmt.Sprintf("Site %d does not exist", req.SiteID.Uint()))
	}

	session := models.Session{Date: date, SiteID: req.SiteID.Uint(), Notes: req.Notes}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, errors.Database("failed to create session", err)
	}
	if err := s.db.WithContext(ctx).Preload("Site").First(&session, session.ID).Error; err != nil {
		return nil, errors.Database("failed to reload session", err)
	}
	return &session, nil
}

// ReplaceAttendance makes the stored attendance of a session equal to entries.
func (s *SessionService) ReplaceAttendance(ctx context.Context, sessionID uint, entries []dto.AttendanceEntry) ([]models.Attendance, error) {
	if sessionID == 0 {
		return nil, errors.Validation("Invalid session id")
	}
	if err := validator.ValidateAttendanceEntries(entries); err != nil {
		return nil, err
	}

	cmd := commands.NewReplaceAttendanceCommand(s.db, sessionID, entries)
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}

	present := 0
	for _, a := range cmd.Result {
		if a.Present {
			present++
		}
	}
	event := notification.NewEvent(constants.EventAttendanceSaved, map[string]interface{}{
		"sessionId": sessionID,
		"count":     len(cmd.Result),
		"present":   present,
	})
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("attendance broadcast for session %d failed: %v", sessionID, err)
	}
	return cmd.Result, nil
}
