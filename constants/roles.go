package constants

// User roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCoach   = "coach"
)

// Roles lists every role a user can hold.
var Roles = []string{RoleAdmin, RoleManager, RoleCoach}

// Cache keys
const (
	CacheKeyChildren = "children:all"
	CacheKeySites    = "sites:all"
)

// Live feed event types
const (
	EventAttendanceSaved = "attendance.saved"
	EventDailyDigest     = "digest.daily"
	EventHomeVisitSaved  = "home_visit.saved"
	EventAssessmentSaved = "assessment.saved"
)

// Home visit types
const (
	VisitBaseline  = "baseline"
	VisitFollowUp  = "follow_up"
	VisitEmergency = "emergency"
)

var VisitTypes = []string{VisitBaseline, VisitFollowUp, VisitEmergency}

// LSAS assessment types, in programme order
const (
	AssessmentBaseline = "baseline"
	AssessmentMidTerm  = "mid_term"
	AssessmentFollowUp = "follow_up"
	AssessmentEndline  = "endline"
)

var AssessmentTypes = []string{AssessmentBaseline, AssessmentMidTerm, AssessmentFollowUp, AssessmentEndline}

const (
	MinLSASScore = 0
	MaxLSASScore = 10
)

const DateLayout = "2006-01-02"
