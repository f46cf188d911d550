package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"yultimate/dto"
	"yultimate/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Instance returns the shared validator, reporting fields by their JSON names.
func Instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Struct validates v and converts failures into an AppError naming the offending fields.
func Struct(v interface{}) error {
	err := Instance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidFormat("Invalid input", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return errors.Required("Missing required fields: " + strings.Join(missing, ", "))
	}
	return errors.Validation("Invalid fields: " + strings.Join(invalid, ", "))
}

// ValidateImportRow checks one trimmed CSV row.
func ValidateImportRow(row *dto.ImportRow) error {
	row.FirstName = strings.TrimSpace(row.FirstName)
	row.LastName = strings.TrimSpace(row.LastName)
	row.SiteID = strings.TrimSpace(row.SiteID)
	row.DateOfBirth = strings.TrimSpace(row.DateOfBirth)

	if err := Instance().Struct(row); err != nil {
		return errors.Required("Missing required fields")
	}
	return nil
}

// ValidateDateRange rejects ranges where to is before from.
func ValidateDateRange(from, to time.Time) error {
	if to.Before(from) {
		return errors.Validation("'to' must not be before 'from'")
	}
	return nil
}

// ValidateAttendanceEntries requires positive, distinct child ids.
func ValidateAttendanceEntries(entries []dto.AttendanceEntry) error {
	seen := make(map[uint]struct{}, len(entries))
	for i, e := range entries {
		id := e.ChildID.Uint()
		if id == 0 {
			return errors.Required(fmt.Sprintf("attendance[%d].childId is required", i))
		}
		if _, dup := seen[id]; dup {
			return errors.Validation(fmt.Sprintf("childId %d appears more than once", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// UseJSONNames makes gin's binding validator report fields by JSON name.
func UseJSONNames(v interface{}) {
	if engine, ok := v.(*validator.Validate); ok {
		engine.RegisterTagNameFunc(jsonTagName)
	}
}

// BindingError converts a gin binding failure into an AppError.
func BindingError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return errors.Required("Missing required fields: " + strings.Join(fields, ", "))
	}
	return errors.InvalidFormat("Invalid request body", err)
}
