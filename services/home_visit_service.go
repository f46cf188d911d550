package services

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"

	"yultimate/commands"
	"yultimate/constants"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
	"yultimate/services/notification"
	"yultimate/types"
	"yultimate/utils"
	"yultimate/validator"
)

type HomeVisitService struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
}

type HomeVisitServiceOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewHomeVisitService(opts HomeVisitServiceOptions) *HomeVisitService {
	return &HomeVisitService{db: opts.DB, notifier: opts.Notifier, logger: opts.Logger}
}

// List returns visits newest first, filtered by child, coach and visit type.
func (s *HomeVisitService) List(ctx context.Context, filter dto.HomeVisitFilter) ([]models.HomeVisit, int, error) {
	filter.Normalize()

	filtered := func(db *gorm.DB) *gorm.DB {
		if filter.ChildID != 0 {
			db = db.Where("child_id = ?", filter.ChildID)
		}
		if filter.CoachID != 0 {
			db = db.Where("coach_id = ?", filter.CoachID)
		}
		if vt := strings.TrimSpace(filter.VisitType); vt != "" {
			db = db.Where("visit_type = ?", vt)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.HomeVisit{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Database("failed to count home visits", err)
	}

	visits := []models.HomeVisit{}
	if err := s.db.WithContext(ctx).Scopes(filtered).Preload("Child").Preload("Coach").
		Order("visit_date DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&visits).Error; err != nil {
		return nil, 0, errors.Database("failed to list home visits", err)
	}
	return visits, int(total), nil
}

func (s *HomeVisitService) Get(ctx context.Context, id uint) (*models.HomeVisit, error) {
	var visit models.HomeVisit
	err := s.db.WithContext(ctx).Preload("Child").Preload("Coach").First(&visit, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrHomeVisitNotFound
	}
	if err != nil {
		return nil, errors.Database("failed to load home visit", err)
	}
	return &visit, nil
}

// Create records a visit. Coaches may only record their own visits; coachId defaults to the caller.
func (s *HomeVisitService) Create(ctx context.Context, caller types.Identity, req dto.CreateHomeVisitRequest) (*models.HomeVisit, error) {
	if req.ChildID == 0 || strings.TrimSpace(req.VisitDate) == "" {
		return nil, errors.Required("childId and visitDate are required")
	}
	req.VisitType = utils.TrimToNil(req.VisitType)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	date, err := utils.ParseDate(req.VisitDate)
	if err != nil {
		return nil, errors.InvalidFormat("Invalid visitDate", err)
	}

	coachID := req.CoachID.Uint()
	if coachID == 0 {
		coachID = caller.UserID
	}
	if caller.Role == constants.RoleCoach && coachID != caller.UserID {
		return nil, errors.ErrForbidden
	}

	visit := &models.HomeVisit{
		ChildID:      req.ChildID.Uint(),
		CoachID:      coachID,
		VisitDate:    utils.StartOfDay(date),
		VisitType:    req.VisitType,
		Purpose:      utils.TrimToNil(req.Purpose),
		Observations: utils.TrimToNil(req.Observations),
		ActionItems:  utils.TrimToNil(req.ActionItems),
	}
	if err := commands.NewCreateHomeVisitCommand(s.db, visit).Execute(ctx); err != nil {
		return nil, err
	}
	s.publish(visit)
	return visit, nil
}

// Update applies the present fields of req. Coaches may only change their own visits.
func (s *HomeVisitService) Update(ctx context.Context, caller types.Identity, id uint, req dto.UpdateHomeVisitRequest) (*models.HomeVisit, error) {
	if req.VisitType != nil {
		vt := strings.TrimSpace(*req.VisitType)
		req.VisitType = &vt
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if req.VisitDate != nil {
		date, err := utils.ParseDate(*req.VisitDate)
		if err != nil {
			return nil, errors.InvalidFormat("Invalid visitDate", err)
		}
		changes["visit_date"] = utils.StartOfDay(date)
	}
	setText(changes, "visit_type", req.VisitType)
	setText(changes, "purpose", req.Purpose)
	setText(changes, "observations", req.Observations)
	setText(changes, "action_items", req.ActionItems)

	authorize := func(v *models.HomeVisit) error {
		if caller.Role == constants.RoleCoach && v.CoachID != caller.UserID {
			return errors.ErrForbidden
		}
		return nil
	}
	cmd := commands.NewUpdateHomeVisitCommand(s.db, id, changes, authorize)
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}
	s.publish(&cmd.Result)
	return &cmd.Result, nil
}

func (s *HomeVisitService) Delete(ctx context.Context, id uint) error {
	return commands.NewDeleteCommand(s.db, &models.HomeVisit{}, id, errors.ErrHomeVisitNotFound).Execute(ctx)
}

func (s *HomeVisitService) publish(v *models.HomeVisit) {
	event := notification.NewEvent(constants.EventHomeVisitSaved, map[string]interface{}{
		"visitId": v.ID,
		"childId": v.ChildID,
		"coachId": v.CoachID,
	})
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("home visit broadcast for %d failed: %v", v.ID, err)
	}
}

// setText records a text column change when value is present. Blank clears the column.
func setText(changes map[string]interface{}, column string, value *string) {
	if value != nil {
		changes[column] = utils.TrimToNil(value)
	}
}
