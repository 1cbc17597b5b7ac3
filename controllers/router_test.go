package controllers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/middleware"
	"github.com/vnkhanh/roommate-finder/models"
	"github.com/vnkhanh/roommate-finder/routes"
	"github.com/vnkhanh/roommate-finder/services"
	"github.com/vnkhanh/roommate-finder/utils"
)

// Hai câu hỏi seed cho mọi test handler
var testQuestions = []models.Question{
	{ID: "q-color", Question: "What is your favorite color?", PossibleAnswers: []string{"red", "blue"}},
	{ID: "q-pets", Question: "Do you like pets?", PossibleAnswers: []string{"yes", "no"}},
}

// newTestServer dựng cả app (DB sqlite in-memory, question bank tạm, session
// cookie, template thật) và trả về một httptest server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	utils.SeedAdminAccounts()
	// Nới limiter đăng nhập để các test không giẫm lên nhau
	middleware.LoginLimiter = middleware.NewIPRateLimiter(6000, 6000, time.Minute)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Answer{}))
	config.DB = db

	path := filepath.Join(t.TempDir(), "questions.json")
	data, err := json.MarshalIndent(testQuestions, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	config.Questions = services.NewQuestionStore(path)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{Path: "/", MaxAge: 300, HttpOnly: true})
	r.Use(sessions.Sessions("roommate_finder", store))
	r.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// browser giữ cookie như trình duyệt; raw giống browser nhưng dừng lại ở
// response redirect để test Location. Cả hai dùng chung cookie jar.
func newClients(t *testing.T) (browser *http.Client, raw *http.Client) {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	browser = &http.Client{Jar: jar}
	raw = &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return browser, raw
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// startSurveyAs gửi username lên /questions để gắn identity vào session.
func startSurveyAs(t *testing.T, client *http.Client, baseURL, username string) {
	t.Helper()
	resp := postForm(t, client, baseURL+"/questions", url.Values{"username": {username}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// loginAsAdmin đăng nhập admin hợp lệ, cookie token nằm lại trong jar.
func loginAsAdmin(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	resp := postForm(t, client, baseURL+"/admin/login", url.Values{
		"username": {"test"},
		"password": {"test"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
