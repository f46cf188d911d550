package routes

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yultimate/config"
	"yultimate/models"
	"yultimate/services"
	"yultimate/services/logger"
	"yultimate/services/notification"
	"yultimate/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router  *gin.Engine
	db      *gorm.DB
	tokens  *services.TokenService
	site    *models.Site
	child   *models.Child
	session *models.Session
	admin   string
	manager string
	coach   string
}

func newAPI(t *testing.T) *apiFixture {
	db := testutil.NewDB(t)
	tokens := services.NewTokenService("test-secret", time.Hour)

	router := config.NewRouter(&config.Config{Env: "dev"}, zap.NewNop())
	SetupRoutes(router, Dependencies{
		DB:             db,
		Tokens:         tokens,
		Notifier:       &notification.Recorder{},
		Logger:         logger.NewNop(),
		ImportMaxBytes: 1 << 20,
		ImportWorkers:  2,
	})

	f := &apiFixture{router: router, db: db, tokens: tokens}
	f.site = testutil.CreateSite(t, db, "North Park")
	f.child = testutil.CreateChild(t, db, f.site.ID, "Ana", "Diaz")
	f.session = testutil.CreateSession(t, db, f.site.ID, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	for role, dst := range map[string]*string{"admin": &f.admin, "manager": &f.manager, "coach": &f.coach} {
		u := testutil.CreateUser(t, db, role+"@yultimate.com", "password123", role)
		token, err := tokens.Generate(u)
		require.NoError(t, err)
		*dst = token
	}
	return f
}

func (f *apiFixture) do(method, path, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	f := newAPI(t)
	w := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Y-Ultimate API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	f := newAPI(t)
	for _, path := range []string{"/api/children", "/api/sites", "/api/sessions", "/api/auth/me", "/api/reports/attendance?from=2024-01-01&to=2024-01-02"} {
		t.Run(path, func(t *testing.T) {
			w := f.do(http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestLogin(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodPost, "/api/auth/login", "", `{"email":"coach@yultimate.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "password")

	w = f.do(http.MethodPost, "/api/auth/login", "", `{"email":"coach@yultimate.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])

	w = f.do(http.MethodPost, "/api/auth/login", "", `{"email":"COACH@yultimate.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "coach", body["user"].(map[string]interface{})["role"])
	assert.NotContains(t, w.Body.String(), "password")

	me := f.do(http.MethodGet, "/api/auth/me", body["token"].(string), "")
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "coach@yultimate.com", decode(t, me)["email"])
}

func TestGoogleLoginDisabled(t *testing.T) {
	f := newAPI(t)
	w := f.do(http.MethodPost, "/api/auth/google", "", `{"idToken":"abc"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChildrenRoutes(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodPost, "/api/children", f.coach, `{"firstName":"Ben","lastName":"Okoro","siteId":1}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/api/children", f.manager, `{"firstName":"Ben","lastName":"Okoro"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "siteId")

	w = f.do(http.MethodPost, "/api/children", f.manager, `{"firstName":"Ben","lastName":"Okoro","siteId":999}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/children", f.manager, fmt.Sprintf(`{"firstName":"Ben","lastName":"Okoro","siteId":"%d","dateOfBirth":"2015-06-01"}`, f.site.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "Ben", created["firstName"])
	assert.Equal(t, "North Park", created["site"].(map[string]interface{})["name"])

	w = f.do(http.MethodGet, "/api/children", f.coach, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = f.do(http.MethodGet, "/api/children?q=okoro", f.coach, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ben", list[0]["firstName"])
}

func TestSessionRoutes(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodPost, "/api/sessions", f.admin, `{"date":"2024-06-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])

	w = f.do(http.MethodPost, "/api/sessions", f.coach, fmt.Sprintf(`{"date":"2024-06-01","siteId":%d}`, f.site.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/api/sessions", f.admin, fmt.Sprintf(`{"date":"2024-06-01","siteId":%d,"notes":"rain"}`, f.site.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodGet, "/api/sessions?date=2024-06-01", f.coach, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = f.do(http.MethodGet, "/api/sessions?date=yesterday", f.coach, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/sessions/9999", f.coach, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveAttendanceRoute(t *testing.T) {
	f := newAPI(t)
	path := fmt.Sprintf("/api/sessions/%d/attendance", f.session.ID)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing array", path, `{}`, http.StatusBadRequest},
		{"not an array", path, `{"attendance":{"childId":1}}`, http.StatusBadRequest},
		{"bad session id", "/api/sessions/abc/attendance", `{"attendance":[]}`, http.StatusBadRequest},
		{"unknown session", "/api/sessions/9999/attendance", `{"attendance":[]}`, http.StatusNotFound},
		{"unknown child", path, `{"attendance":[{"childId":777,"present":true}]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodPost, tt.path, f.coach, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}

	w := f.do(http.MethodPost, path, f.coach, fmt.Sprintf(`{"attendance":[{"childId":"%d","present":"yes","notes":"late"}]}`, f.child.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Attendance saved successfully", body["message"])
	assert.EqualValues(t, 1, body["count"])

	w = f.do(http.MethodGet, fmt.Sprintf("/api/sessions/%d", f.session.ID), f.coach, "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)["summary"].(map[string]interface{})
	assert.EqualValues(t, 1, summary["attendanceCount"])
	assert.EqualValues(t, 1, summary["childrenPresent"])
}

func TestAttendanceReportRoute(t *testing.T) {
	f := newAPI(t)
	testutil.CreateAttendance(t, f.db, f.session.ID, f.child.ID, true, nil)

	w := f.do(http.MethodGet, "/api/reports/attendance?from=2024-05-01&to=2024-05-02", f.coach, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodGet, "/api/reports/attendance?from=2024-05-01", f.manager, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/reports/attendance?from=2024-05-03&to=2024-05-01", f.manager, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/reports/attendance?from=2024-05-01&to=2024-05-02&site=x", f.manager, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/reports/attendance?from=2024-05-01&to=2024-05-02", f.manager, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=attendance-report-2024-05-01-to-2024-05-02.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"Date,Site,Child First Name,Child Last Name,Present,Notes\n"+
			`2024-05-02,North Park,"Ana","Diaz",Yes,""`+"\n",
		w.Body.String())
}

func multipartCSV(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImportRoute(t *testing.T) {
	f := newAPI(t)
	send := func(token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/children/import", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		return w
	}

	csv := fmt.Sprintf("firstName,lastName,dateOfBirth,siteId\nBen,Okoro,,%d\n,NoFirst,,%d\n", f.site.ID, f.site.ID)

	body, ct := multipartCSV(t, "file", "kids.csv", csv)
	assert.Equal(t, http.StatusForbidden, send(f.manager, body, ct).Code)

	body, ct = multipartCSV(t, "other", "kids.csv", csv)
	w := send(f.admin, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CSV file is required", decode(t, w)["error"])

	body, ct = multipartCSV(t, "file", "kids.csv", csv)
	w = send(f.admin, body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode(t, w)
	assert.Equal(t, "Import completed", result["message"])
	assert.EqualValues(t, 1, result["imported"])
	assert.EqualValues(t, 1, result["errors"])
	details := result["details"].(map[string]interface{})
	rowErr := details["errors"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Missing required fields", rowErr["error"])
	assert.EqualValues(t, 3, rowErr["line"])

	// 3 MiB against a 1 MiB limit trips the body reader before the form parses.
	body, ct = multipartCSV(t, "file", "huge.csv", strings.Repeat("a,b,,1\n", 3<<20/7))
	w = send(f.admin, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CSV file is too large", decode(t, w)["error"])

	w = f.do(http.MethodGet, "/api/children/imports", f.admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Len(t, page["data"], 1)
	assert.EqualValues(t, 1, page["pagination"].(map[string]interface{})["total"])
}

func TestHomeVisitRoutes(t *testing.T) {
	f := newAPI(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/home-visits", "", "").Code)

	w := f.do(http.MethodPost, "/api/home-visits", f.coach, `{"visitDate":"2024-05-02"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "childId")

	body := fmt.Sprintf(`{"childId":"%d","visitDate":"2024-05-02","visitType":"baseline","purpose":"intro"}`, f.child.ID)
	w = f.do(http.MethodPost, "/api/home-visits", f.coach, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := int(created["id"].(float64))
	assert.Equal(t, "intro", created["purpose"])
	assert.Equal(t, "coach@yultimate.com", created["coach"].(map[string]interface{})["email"])
	assert.NotContains(t, w.Body.String(), "password")

	w = f.do(http.MethodPut, fmt.Sprintf("/api/home-visits/%d", id), f.coach, `{"actionItems":"call school"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "call school", decode(t, w)["actionItems"])

	w = f.do(http.MethodGet, fmt.Sprintf("/api/home-visits?childId=%d", f.child.ID), f.manager, "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Len(t, page["data"], 1)
	assert.EqualValues(t, 1, page["pagination"].(map[string]interface{})["total"])

	path := fmt.Sprintf("/api/home-visits/%d", id)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, path, f.coach, "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, path, f.manager, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, path, f.coach, "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/home-visits/abc", f.coach, "").Code)
}

func TestAssessmentRoutes(t *testing.T) {
	f := newAPI(t)

	for _, body := range []string{
		fmt.Sprintf(`{"childId":%d,"assessmentType":"baseline","assessmentDate":"2024-01-15","overallScore":5,"teamworkScore":6}`, f.child.ID),
		fmt.Sprintf(`{"childId":%d,"assessmentType":"endline","assessmentDate":"2024-06-15","overallScore":8,"teamworkScore":5.5}`, f.child.ID),
	} {
		w := f.do(http.MethodPost, "/api/assessments", f.coach, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := f.do(http.MethodPost, "/api/assessments", f.coach, fmt.Sprintf(`{"childId":%d,"assessmentType":"baseline","assessmentDate":"2024-01-15","overallScore":12}`, f.child.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "overallScore")

	w = f.do(http.MethodGet, fmt.Sprintf("/api/children/%d/progress", f.child.ID), f.coach, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	progress := decode(t, w)
	assert.EqualValues(t, 2, progress["totalAssessments"])
	assert.Equal(t, "2024-01-15", progress["baselineDate"])
	assert.Equal(t, "2024-06-15", progress["latestDate"])
	assert.Equal(t, map[string]interface{}{"overallImprovement": 3.0, "teamworkImprovement": -0.5}, progress["progress"])

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/children/9999/progress", f.coach, "").Code)

	w = f.do(http.MethodGet, "/api/assessments?assessmentType=endline", f.manager, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["data"].([]interface{})
	require.Len(t, list, 1)
	id := int(list[0].(map[string]interface{})["id"].(float64))
	path := fmt.Sprintf("/api/assessments/%d", id)

	w = f.do(http.MethodPut, path, f.coach, `{"overallScore":8.5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 8.5, decode(t, w)["overallScore"])

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, path, f.coach, "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, path, f.admin, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, path, f.admin, "").Code)
}
