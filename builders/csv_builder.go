package builders

import (
	"strings"

	"yultimate/dto"
	"yultimate/utils"
)

// CSVLineBuilder assembles one CSV line field by field.
type CSVLineBuilder struct {
	fields []string
}

func NewCSVLineBuilder() *CSVLineBuilder {
	return &CSVLineBuilder{}
}

// Field appends a value, quoting it only when it holds a comma, quote or line break.
func (b *CSVLineBuilder) Field(value string) *CSVLineBuilder {
	if strings.ContainsAny(value, ",\"\r\n") {
		return b.Quoted(value)
	}
	b.fields = append(b.fields, value)
	return b
}

// Quoted appends a value that is always wrapped in double quotes.
func (b *CSVLineBuilder) Quoted(value string) *CSVLineBuilder {
	b.fields = append(b.fields, `"`+strings.ReplaceAll(value, `"`, `""`)+`"`)
	return b
}

// Build joins the fields and terminates the line.
func (b *CSVLineBuilder) Build() string {
	return strings.Join(b.fields, ",") + "\n"
}

var attendanceReportHeader = []string{"Date", "Site", "Child First Name", "Child Last Name", "Present", "Notes"}

// AttendanceReportBuilder renders attendance rows as the report CSV.
type AttendanceReportBuilder struct {
	sb strings.Builder
}

func NewAttendanceReportBuilder() *AttendanceReportBuilder {
	b := &AttendanceReportBuilder{}
	line := NewCSVLineBuilder()
	for _, h := range attendanceReportHeader {
		line.Field(h)
	}
	b.sb.WriteString(line.Build())
	return b
}

func (b *AttendanceReportBuilder) WithRow(row dto.AttendanceReportRow) *AttendanceReportBuilder {
	present := "No"
	if row.Present {
		present = "Yes"
	}
	notes := ""
	if row.Notes != nil {
		notes = *row.Notes
	}

	b.sb.WriteString(NewCSVLineBuilder().
		Field(utils.FormatDate(row.Date)).
		Field(row.SiteName).
		Quoted(row.FirstName).
		Quoted(row.LastName).
		Field(present).
		Quoted(notes).
		Build())
	return b
}

func (b *AttendanceReportBuilder) WithRows(rows []dto.AttendanceReportRow) *AttendanceReportBuilder {
	for _, r := range rows {
		b.WithRow(r)
	}
	return b
}

func (b *AttendanceReportBuilder) Build() []byte {
	return []byte(b.sb.String())
}
