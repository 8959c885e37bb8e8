package routes_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	authModel "schoolsite_backend/internals/features/admin/auth/model"
	authService "schoolsite_backend/internals/features/admin/auth/service"
	alumniModel "schoolsite_backend/internals/features/website/alumni/model"
	contactModel "schoolsite_backend/internals/features/website/contact/model"
	eventModel "schoolsite_backend/internals/features/website/events/model"
	galleryModel "schoolsite_backend/internals/features/website/gallery/model"
	kcseModel "schoolsite_backend/internals/features/website/kcse/model"
	newsModel "schoolsite_backend/internals/features/website/news/model"
	staffModel "schoolsite_backend/internals/features/website/staff/model"
	statsModel "schoolsite_backend/internals/features/website/stats/model"
	testimonialModel "schoolsite_backend/internals/features/website/testimonials/model"
	routes "schoolsite_backend/internals/route"
)

const (
	testAdminEmail    = "admin@school.test"
	testAdminPassword = "correct"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&authModel.AdminUserModel{},
		&staffModel.StaffModel{},
		&newsModel.NewsModel{},
		&eventModel.EventModel{},
		&galleryModel.GalleryModel{},
		&alumniModel.AlumniModel{},
		&kcseModel.KcseResultModel{},
		&testimonialModel.TestimonialModel{},
		&contactModel.ContactSubmissionModel{},
		&statsModel.SchoolStatModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := authService.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(&authModel.AdminUserModel{Email: testAdminEmail, PasswordHash: hash}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, raw := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, testAdminEmail, testAdminPassword))
	if status != http.StatusOK {
		t.Fatalf("login status = %d, body %s", status, raw)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("login returned empty access_token")
	}
	return out.AccessToken
}

// staleToken signs a token that expired an hour ago, as if issued 25 hours back.
func staleToken(t *testing.T) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": "1",
		"iat": now.Add(-25 * time.Hour).Unix(),
		"exp": now.Add(-1 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign stale token: %v", err)
	}
	return signed
}

func TestLoginSuccessAndFailure(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, testAdminEmail, testAdminPassword))
	if status != http.StatusOK {
		t.Fatalf("login status = %d, body %s", status, raw)
	}
	var out struct {
		AccessToken string `json:"access_token"`
		Admin       struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.AccessToken == "" {
		t.Error("access_token is empty")
	}
	if out.Admin.Email != testAdminEmail {
		t.Errorf("admin email = %q, want %q", out.Admin.Email, testAdminEmail)
	}

	status, raw = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":"wrong"}`, testAdminEmail))
	if status != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d", status)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Error != "Invalid email or password" {
		t.Errorf("error = %q, want %q", errBody.Error, "Invalid email or password")
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		`{"email":"nobody@school.test","password":"correct"}`)
	if status != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", status)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", `{"email":""}`)
	if status != http.StatusBadRequest {
		t.Errorf("missing fields status = %d, want 400", status)
	}
}

func TestAuthGateOnMutations(t *testing.T) {
	app, _ := newTestApp(t)
	body := `{"title":"Open Day"}`

	status, _ := doJSON(t, app, http.MethodPost, "/api/news/", "", body)
	if status != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", status)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/news/", "not.a.token", body)
	if status != http.StatusUnauthorized {
		t.Errorf("malformed token status = %d, want 401", status)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/news/", staleToken(t), body)
	if status != http.StatusUnauthorized {
		t.Errorf("expired token status = %d, want 401", status)
	}

	status, raw := doJSON(t, app, http.MethodPost, "/api/news/", loginToken(t, app), body)
	if status != http.StatusCreated {
		t.Fatalf("valid token status = %d, body %s", status, raw)
	}
}

func TestNewsCreateFetchAndOrder(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	status, raw := doJSON(t, app, http.MethodPost, "/api/news/", token, `{"title":"Open Day"}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, raw)
	}
	if !strings.Contains(string(raw), `"excerpt":null`) {
		t.Errorf("create body should externalize absent excerpt as null, got %s", raw)
	}
	var first struct {
		ID        uint      `json:"id"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(raw, &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.ID == 0 || first.Title != "Open Day" || first.CreatedAt.IsZero() {
		t.Errorf("unexpected created entity: %+v", first)
	}

	status, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/news/%d", first.ID), "", "")
	if status != http.StatusOK {
		t.Fatalf("get one status = %d", status)
	}
	var fetched struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.ID != first.ID || fetched.Title != first.Title {
		t.Errorf("fetched %+v, want %+v", fetched, first)
	}

	// a later article lists first
	if status, _ := doJSON(t, app, http.MethodPost, "/api/news/", token, `{"title":"Sports Gala","excerpt":"A big day"}`); status != http.StatusCreated {
		t.Fatalf("second create status = %d", status)
	}
	status, raw = doJSON(t, app, http.MethodGet, "/api/news/", "", "")
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	var list []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list len = %d, want 2", len(list))
	}
	if list[0].Title != "Sports Gala" {
		t.Errorf("newest-first order broken: first is %q", list[0].Title)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/news/", token, `{"excerpt":"no title"}`)
	if status != http.StatusBadRequest {
		t.Errorf("missing title status = %d, want 400", status)
	}
}

func TestUpdatePartialAndIdempotent(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	status, raw := doJSON(t, app, http.MethodPost, "/api/staff/", token,
		`{"name":"Jane Achieng","subject":"Mathematics","role":"HOD Sciences","is_leadership":true}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, raw)
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	patch := `{"subject":"Physics"}`
	path := fmt.Sprintf("/api/staff/%d", created.ID)

	type staffBody struct {
		Name         string `json:"name"`
		Subject      string `json:"subject"`
		Role         string `json:"role"`
		IsLeadership bool   `json:"is_leadership"`
	}
	var afterFirst, afterSecond staffBody

	status, raw = doJSON(t, app, http.MethodPut, path, token, patch)
	if status != http.StatusOK {
		t.Fatalf("update status = %d, body %s", status, raw)
	}
	if err := json.Unmarshal(raw, &afterFirst); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if afterFirst.Subject != "Physics" {
		t.Errorf("subject not updated: %+v", afterFirst)
	}
	if afterFirst.Name != "Jane Achieng" || afterFirst.Role != "HOD Sciences" || !afterFirst.IsLeadership {
		t.Errorf("untouched fields changed: %+v", afterFirst)
	}

	// same payload again → same final state
	status, raw = doJSON(t, app, http.MethodPut, path, token, patch)
	if status != http.StatusOK {
		t.Fatalf("second update status = %d", status)
	}
	if err := json.Unmarshal(raw, &afterSecond); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if afterFirst != afterSecond {
		t.Errorf("update not idempotent: %+v vs %+v", afterFirst, afterSecond)
	}

	status, _ = doJSON(t, app, http.MethodPut, "/api/staff/9999", token, patch)
	if status != http.StatusNotFound {
		t.Errorf("update missing id status = %d, want 404", status)
	}
}

func TestDeleteLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	status, _ := doJSON(t, app, http.MethodDelete, "/api/events/42", token, "")
	if status != http.StatusNotFound {
		t.Errorf("delete never-created id status = %d, want 404", status)
	}

	status, raw := doJSON(t, app, http.MethodPost, "/api/events/", token, `{"title":"Prize Giving","date":"March 15, 2026"}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, raw)
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	path := fmt.Sprintf("/api/events/%d", created.ID)

	status, raw = doJSON(t, app, http.MethodDelete, path, token, "")
	if status != http.StatusOK {
		t.Fatalf("delete status = %d", status)
	}
	if !strings.Contains(string(raw), "deleted successfully") {
		t.Errorf("delete ack missing, got %s", raw)
	}

	if status, _ := doJSON(t, app, http.MethodGet, path, "", ""); status != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", status)
	}
	if status, _ := doJSON(t, app, http.MethodDelete, path, token, ""); status != http.StatusNotFound {
		t.Errorf("double delete status = %d, want 404", status)
	}
}

func TestStatKeyConflict(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	status, raw := doJSON(t, app, http.MethodPost, "/api/stats/", token,
		`{"stat_key":"students_count","stat_value":"1200","stat_label":"Students Enrolled"}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, raw)
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, raw = doJSON(t, app, http.MethodPost, "/api/stats/", token,
		`{"stat_key":"students_count","stat_value":"9999"}`)
	if status != http.StatusConflict {
		t.Fatalf("duplicate key status = %d, body %s", status, raw)
	}
	if !strings.Contains(string(raw), "Stat key already exists") {
		t.Errorf("conflict message missing, got %s", raw)
	}

	// original row must be untouched
	status, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stats/%d", created.ID), "", "")
	if status != http.StatusOK {
		t.Fatalf("get stat status = %d", status)
	}
	var stat struct {
		StatValue string `json:"stat_value"`
	}
	if err := json.Unmarshal(raw, &stat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stat.StatValue != "1200" {
		t.Errorf("original stat mutated: %q", stat.StatValue)
	}

	status, raw = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/stats/%d", created.ID), token,
		`{"stat_value":"1300"}`)
	if status != http.StatusOK {
		t.Fatalf("update stat status = %d, body %s", status, raw)
	}
	if err := json.Unmarshal(raw, &stat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stat.StatValue != "1300" {
		t.Errorf("stat_value = %q, want 1300", stat.StatValue)
	}
}

func TestContactFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// the contact form is public
	status, raw := doJSON(t, app, http.MethodPost, "/api/contact/", "",
		`{"name":"A Parent","email":"parent@example.com","message":"When is the open day?"}`)
	if status != http.StatusCreated {
		t.Fatalf("public create status = %d, body %s", status, raw)
	}
	var created struct {
		ID     uint `json:"id"`
		IsRead bool `json:"is_read"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.IsRead {
		t.Error("new submission should start unread")
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/contact/", "", `{"name":"No Message","email":"x@example.com"}`)
	if status != http.StatusBadRequest {
		t.Errorf("missing message status = %d, want 400", status)
	}

	// the inbox is not
	if status, _ := doJSON(t, app, http.MethodGet, "/api/contact/", "", ""); status != http.StatusUnauthorized {
		t.Errorf("list without token status = %d, want 401", status)
	}

	token := loginToken(t, app)
	readPath := fmt.Sprintf("/api/contact/%d/read", created.ID)

	for i := 0; i < 2; i++ { // mark-read is idempotent
		status, raw = doJSON(t, app, http.MethodPut, readPath, token, "")
		if status != http.StatusOK {
			t.Fatalf("mark read (call %d) status = %d, body %s", i+1, status, raw)
		}
		var marked struct {
			IsRead bool `json:"is_read"`
		}
		if err := json.Unmarshal(raw, &marked); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !marked.IsRead {
			t.Errorf("call %d: is_read = false, want true", i+1)
		}
	}

	if status, _ := doJSON(t, app, http.MethodPut, "/api/contact/999/read", token, ""); status != http.StatusNotFound {
		t.Errorf("mark read missing id status = %d, want 404", status)
	}
}

func TestKcseOrderByYear(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	for _, year := range []string{"2023", "2025", "2024"} {
		body := fmt.Sprintf(`{"year":%q,"mean_grade":"B+"}`, year)
		if status, raw := doJSON(t, app, http.MethodPost, "/api/kcse/", token, body); status != http.StatusCreated {
			t.Fatalf("create %s status = %d, body %s", year, status, raw)
		}
	}

	status, raw := doJSON(t, app, http.MethodGet, "/api/kcse/", "", "")
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	var list []struct {
		Year string `json:"year"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := make([]string, 0, len(list))
	for _, r := range list {
		got = append(got, r.Year)
	}
	want := []string{"2025", "2024", "2023"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("year order = %v, want %v", got, want)
		}
	}
}

func TestMeAndLogout(t *testing.T) {
	app, db := newTestApp(t)
	token := loginToken(t, app)

	status, raw := doJSON(t, app, http.MethodGet, "/api/auth/me", token, "")
	if status != http.StatusOK {
		t.Fatalf("me status = %d, body %s", status, raw)
	}
	var me struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.Email != testAdminEmail {
		t.Errorf("me email = %q, want %q", me.Email, testAdminEmail)
	}
	if strings.Contains(string(raw), "password") {
		t.Errorf("me body leaks password material: %s", raw)
	}

	status, raw = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, "")
	if status != http.StatusOK {
		t.Fatalf("logout status = %d", status)
	}
	if !strings.Contains(string(raw), "Logged out successfully") {
		t.Errorf("logout ack missing, got %s", raw)
	}

	// token for an admin row that no longer exists
	if err := db.Where("email = ?", testAdminEmail).Delete(&authModel.AdminUserModel{}).Error; err != nil {
		t.Fatalf("delete admin: %v", err)
	}
	if status, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", token, ""); status != http.StatusNotFound {
		t.Errorf("me for deleted admin status = %d, want 404", status)
	}
}

func TestCreateRejectsBlankRequiredFields(t *testing.T) {
	app, db := newTestApp(t)
	token := loginToken(t, app)

	cases := []struct {
		name string
		path string
		body string
	}{
		{"news blank title", "/api/news/", `{"title":"   "}`},
		{"staff blank name", "/api/staff/", `{"name":"  ","role":"Teacher"}`},
		{"gallery blank image url", "/api/gallery/", `{"image_url":" "}`},
		{"testimonial blank quote", "/api/testimonials/", `{"student_name":"Jane","quote":"\t "}`},
		{"stat blank key", "/api/stats/", `{"stat_key":"   ","stat_value":"1200"}`},
		{"contact blank message", "/api/contact/", `{"name":"Jane","email":"jane@example.com","message":"   "}`},
		{"contact malformed email", "/api/contact/", `{"name":"Jane","email":"not-an-address","message":"Hello"}`},
	}
	for _, tc := range cases {
		status, raw := doJSON(t, app, http.MethodPost, tc.path, token, tc.body)
		if status != http.StatusBadRequest {
			t.Errorf("%s: status = %d, body %s, want 400", tc.name, status, raw)
		}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &errBody); err != nil || errBody.Error == "" {
			t.Errorf("%s: body %s is not the standard error shape", tc.name, raw)
		}
	}

	// nothing from the rejected payloads may have been persisted
	var n int64
	db.Table("school_stats").Count(&n)
	if n != 0 {
		t.Errorf("stats rows = %d, want 0", n)
	}
	db.Table("contact_submissions").Count(&n)
	if n != 0 {
		t.Errorf("contact rows = %d, want 0", n)
	}
}

func TestCreateTrimsSurroundingWhitespace(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	status, raw := doJSON(t, app, http.MethodPost, "/api/news/", token,
		`{"title":"  Term Dates  ","excerpt":"  "}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, raw)
	}
	var created struct {
		Title   string  `json:"title"`
		Excerpt *string `json:"excerpt"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Title != "Term Dates" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if created.Excerpt != nil {
		t.Errorf("excerpt = %v, want null for blank input", *created.Excerpt)
	}
}
