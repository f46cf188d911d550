package services

import (
	"context"
	stderrors "errors"
	"math"
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

const noAssessmentsTrend = "No assessments available"

type AssessmentService struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
}

type AssessmentServiceOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewAssessmentService(opts AssessmentServiceOptions) *AssessmentService {
	return &AssessmentService{db: opts.DB, notifier: opts.Notifier, logger: opts.Logger}
}

func (s *AssessmentService) List(ctx context.Context, filter dto.AssessmentFilter) ([]models.Assessment, int, error) {
	filter.Normalize()

	filtered := func(db *gorm.DB) *gorm.DB {
		if filter.ChildID != 0 {
			db = db.Where("child_id = ?", filter.ChildID)
		}
		if t := strings.TrimSpace(filter.AssessmentType); t != "" {
			db = db.Where("assessment_type = ?", t)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Assessment{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Database("failed to count assessments", err)
	}

	assessments := []models.Assessment{}
	if err := s.db.WithContext(ctx).Scopes(filtered).
		Order("assessment_date DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&assessments).Error; err != nil {
		return nil, 0, errors.Database("failed to list assessments", err)
	}
	return assessments, int(total), nil
}

func (s *AssessmentService) Get(ctx context.Context, id uint) (*models.Assessment, error) {
	var a models.Assessment
	err := s.db.WithContext(ctx).First(&a, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, errors.Database("failed to load assessment", err)
	}
	return &a, nil
}

func (s *AssessmentService) Create(ctx context.Context, caller types.Identity, req dto.CreateAssessmentRequest) (*models.Assessment, error) {
	req.AssessmentType = strings.TrimSpace(req.AssessmentType)
	if req.ChildID == 0 || req.AssessmentType == "" || strings.TrimSpace(req.AssessmentDate) == "" {
		return nil, errors.Required("childId, assessmentType and assessmentDate are required")
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	date, err := utils.ParseDate(req.AssessmentDate)
	if err != nil {
		return nil, errors.InvalidFormat("Invalid assessmentDate", err)
	}

	a := &models.Assessment{
		ChildID:             req.ChildID.Uint(),
		AssessmentType:      req.AssessmentType,
		AssessmentDate:      utils.StartOfDay(date),
		OverallScore:        req.OverallScore,
		LeadershipScore:     req.LeadershipScore,
		TeamworkScore:       req.TeamworkScore,
		CommunicationScore:  req.CommunicationScore,
		ConfidenceScore:     req.ConfidenceScore,
		ResilienceScore:     req.ResilienceScore,
		AssessorNotes:       utils.TrimToNil(req.AssessorNotes),
		Strengths:           utils.TrimToNil(req.Strengths),
		AreasForImprovement: utils.TrimToNil(req.AreasForImprovement),
		AssessedBy:          utils.TrimToNil(req.AssessedBy),
		RecordedByID:        caller.UserID,
	}
	if err := commands.NewCreateAssessmentCommand(s.db, a).Execute(ctx); err != nil {
		return nil, err
	}
	s.publish(a)
	return a, nil
}

// Update applies the present fields of req. Scores can be changed but not cleared.
func (s *AssessmentService) Update(ctx context.Context, id uint, req dto.UpdateAssessmentRequest) (*models.Assessment, error) {
	changes := map[string]interface{}{}
	if req.AssessmentType != nil {
		t := strings.TrimSpace(*req.AssessmentType)
		if t == "" {
			return nil, errors.Validation("assessmentType cannot be empty")
		}
		req.AssessmentType = &t
		changes["assessment_type"] = t
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if req.AssessmentDate != nil {
		date, err := utils.ParseDate(*req.AssessmentDate)
		if err != nil {
			return nil, errors.InvalidFormat("Invalid assessmentDate", err)
		}
		changes["assessment_date"] = utils.StartOfDay(date)
	}

	for column, score := range map[string]*float64{
		"overall_score":       req.OverallScore,
		"leadership_score":    req.LeadershipScore,
		"teamwork_score":      req.TeamworkScore,
		"communication_score": req.CommunicationScore,
		"confidence_score":    req.ConfidenceScore,
		"resilience_score":    req.ResilienceScore,
	} {
		if score != nil {
			changes[column] = *score
		}
	}
	setText(changes, "assessor_notes", req.AssessorNotes)
	setText(changes, "strengths", req.Strengths)
	setText(changes, "areas_for_improvement", req.AreasForImprovement)
	setText(changes, "assessed_by", req.AssessedBy)

	cmd := commands.NewUpdateAssessmentCommand(s.db, id, changes)
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}
	s.publish(&cmd.Result)
	return &cmd.Result, nil
}

func (s *AssessmentService) Delete(ctx context.Context, id uint) error {
	return commands.NewDeleteCommand(s.db, &models.Assessment{}, id, errors.ErrAssessmentNotFound).Execute(ctx)
}

// Progress lists a child's assessments oldest first and the score change from baseline to latest.
func (s *AssessmentService) Progress(ctx context.Context, childID uint) (*dto.AssessmentProgress, error) {
	var child models.Child
	err := s.db.WithContext(ctx).Select("id").First(&child, childID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrChildNotFound
	}
	if err != nil {
		return nil, errors.Database("failed to load child", err)
	}

	assessments := []models.Assessment{}
	if err := s.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("assessment_date, id").
		Find(&assessments).Error; err != nil {
		return nil, errors.Database("failed to load assessments", err)
	}
	return assessmentProgress(childID, assessments), nil
}

var progressScores = []struct {
	key   string
	score func(*models.Assessment) *float64
}{
	{"overallImprovement", func(a *models.Assessment) *float64 { return a.OverallScore }},
	{"leadershipImprovement", func(a *models.Assessment) *float64 { return a.LeadershipScore }},
	{"teamworkImprovement", func(a *models.Assessment) *float64 { return a.TeamworkScore }},
	{"communicationImprovement", func(a *models.Assessment) *float64 { return a.CommunicationScore }},
	{"confidenceImprovement", func(a *models.Assessment) *float64 { return a.ConfidenceScore }},
	{"resilienceImprovement", func(a *models.Assessment) *float64 { return a.ResilienceScore }},
}

// assessmentProgress expects assessments ordered oldest first. The baseline is the first
// assessment of type baseline; scores missing on either side are skipped.
func assessmentProgress(childID uint, assessments []models.Assessment) *dto.AssessmentProgress {
	out := &dto.AssessmentProgress{
		ChildID:          childID,
		TotalAssessments: len(assessments),
		Assessments:      assessments,
		Progress:         map[string]float64{},
	}
	if len(assessments) == 0 {
		out.Trend = noAssessmentsTrend
		return out
	}

	var baseline *models.Assessment
	for i := range assessments {
		if assessments[i].AssessmentType == constants.AssessmentBaseline {
			baseline = &assessments[i]
			break
		}
	}
	latest := &assessments[len(assessments)-1]

	latestDate := utils.FormatDate(latest.AssessmentDate)
	out.LatestDate = &latestDate
	if baseline == nil {
		return out
	}
	baselineDate := utils.FormatDate(baseline.AssessmentDate)
	out.BaselineDate = &baselineDate

	if baseline.ID == latest.ID {
		return out
	}
	for _, p := range progressScores {
		from, to := p.score(baseline), p.score(latest)
		if from == nil || to == nil {
			continue
		}
		out.Progress[p.key] = math.Round((*to-*from)*100) / 100
	}
	return out
}

func (s *AssessmentService) publish(a *models.Assessment) {
	event := notification.NewEvent(constants.EventAssessmentSaved, map[string]interface{}{
		"assessmentId":   a.ID,
		"childId":        a.ChildID,
		"assessmentType": a.AssessmentType,
	})
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("assessment broadcast for %d failed: %v", a.ID, err)
	}
}
