package services

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"yultimate/commands"
	"yultimate/constants"
	"yultimate/dto"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
	"yultimate/utils"
	"yultimate/validator"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportService loads children from CSV files.
type ImportService struct {
	db       *gorm.DB
	cache    Cache
	archiver Archiver
	logger   logger.Logger
	workers  int
}

type ImportServiceOptions struct {
	DB       *gorm.DB
	Cache    Cache
	Archiver Archiver
	Logger   logger.Logger
	Workers  int
}

func NewImportService(opts ImportServiceOptions) *ImportService {
	workers := opts.Workers
	if workers < 1 {
		workers = 4
	}
	return &ImportService{
		db:       opts.DB,
		cache:    opts.Cache,
		archiver: opts.Archiver,
		logger:   opts.Logger,
		workers:  workers,
	}
}

type csvRecord struct {
	line   int
	row    map[string]string
	values map[string]string
	err    error
}

type rowOutcome struct {
	child *models.Child
	err   *dto.ImportRowError
}

// Run imports data, archives the raw file and records an ImportLog for userID.
func (s *ImportService) Run(ctx context.Context, fileName string, data []byte, userID uint) (*dto.ImportResult, error) {
	result, err := s.Import(ctx, data)
	if err != nil {
		return nil, err
	}

	if url, err := s.archiver.Archive(ctx, fileName, data); err != nil {
		s.logger.Warn("archiving %s failed: %v", fileName, err)
	} else if url != "" {
		result.ArchiveURL = &url
	}

	entry := models.ImportLog{
		FileName:   fileName,
		Imported:   result.Imported,
		Failed:     result.Errors,
		ArchiveURL: result.ArchiveURL,
		UserID:     userID,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.logger.Error("recording import of %s failed: %v", fileName, err)
	} else {
		result.ImportID = entry.ID
	}

	if result.Imported > 0 {
		if err := s.cache.Delete(ctx, constants.CacheKeyChildren); err != nil {
			s.logger.Warn("children cache invalidation failed: %v", err)
		}
	}
	s.logger.Info("import %s: %d imported, %d errors", fileName, result.Imported, result.Errors)
	return result, nil
}

// Import parses data and inserts every valid row. Row failures are collected, not returned.
func (s *ImportService) Import(ctx context.Context, data []byte) (*dto.ImportResult, error) {
	records, err := readRecords(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, err
	}

	outcomes := make([]rowOutcome, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.importRecord(gctx, records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Internal("import aborted", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal("import aborted", err)
	}

	result := &dto.ImportResult{
		Message: "Import completed",
		Details: dto.ImportDetails{
			Imported: []models.Child{},
			Errors:   []dto.ImportRowError{},
		},
	}
	for _, o := range outcomes {
		if o.err != nil {
			result.Details.Errors = append(result.Details.Errors, *o.err)
			continue
		}
		result.Details.Imported = append(result.Details.Imported, *o.child)
	}
	result.Imported = len(result.Details.Imported)
	result.Errors = len(result.Details.Errors)
	return result, nil
}

func (s *ImportService) importRecord(ctx context.Context, rec csvRecord) rowOutcome {
	fail := func(msg string) rowOutcome {
		return rowOutcome{err: &dto.ImportRowError{Line: rec.line, Row: rec.row, Error: msg}}
	}
	if rec.err != nil {
		return fail(rec.err.Error())
	}

	row := dto.ImportRow{
		FirstName:   rec.values["firstname"],
		LastName:    rec.values["lastname"],
		DateOfBirth: rec.values["dateofbirth"],
		SiteID:      rec.values["siteid"],
	}
	if err := validator.ValidateImportRow(&row); err != nil {
		return fail(errors.GetAppError(err).Message)
	}

	siteID, err := strconv.ParseUint(row.SiteID, 10, 64)
	if err != nil || siteID == 0 {
		return fail(fmt.Sprintf("Invalid siteId %q", row.SiteID))
	}
	child := models.Child{
		FirstName: row.FirstName,
		LastName:  row.LastName,
		SiteID:    uint(siteID),
	}
	if row.DateOfBirth != "" {
		dob, err := utils.ParseDate(row.DateOfBirth)
		if err != nil {
			return fail(fmt.Sprintf("Invalid dateOfBirth %q", row.DateOfBirth))
		}
		child.DateOfBirth = &dob
	}

	if err := commands.NewCreateChildCommand(s.db, &child).Execute(ctx); err != nil {
		return fail(err.Error())
	}
	return rowOutcome{child: &child}
}

// readRecords decodes the header and every data line. Malformed lines become per-record errors.
func readRecords(data []byte) ([]csvRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.InvalidFormat("Invalid CSV header", err)
	}
	keys := make([]string, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		keys[i] = strings.ToLower(header[i])
	}

	var records []csvRecord
	for {
		fields, err := r.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if stderrors.As(err, &perr) {
				records = append(records, csvRecord{line: perr.StartLine, row: map[string]string{}, err: perr.Err})
				continue
			}
			return nil, errors.InvalidFormat("Unreadable CSV", err)
		}

		line, _ := r.FieldPos(0)
		rec := csvRecord{
			line:   line,
			row:    make(map[string]string, len(header)),
			values: make(map[string]string, len(header)),
		}
		for i := range header {
			if i < len(fields) {
				rec.row[header[i]] = fields[i]
				rec.values[keys[i]] = fields[i]
			}
		}
		if len(fields) != len(header) {
			rec.err = fmt.Errorf("expected %d columns, found %d", len(header), len(fields))
		}
		records = append(records, rec)
	}
	return records, nil
}

// History lists import logs newest first.
func (s *ImportService) History(ctx context.Context, page dto.PageQuery) ([]models.ImportLog, int, error) {
	page.Normalize()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.ImportLog{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Database("failed to count imports", err)
	}
	logs := []models.ImportLog{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, errors.Database("failed to list imports", err)
	}
	return logs, int(total), nil
}
