package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/models"
)

func TestShowQuestionRendersRequestedPosition(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)
	startSurveyAs(t, browser, srv.URL, "alice")

	status, body := get(t, browser, srv.URL+"/questions/1")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "What is your favorite color?")
	assert.Contains(t, body, "Question 1 of 2")

	status, body = get(t, browser, srv.URL+"/questions/2")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Do you like pets?")
	assert.Contains(t, body, "Question 2 of 2")
}

func TestShowQuestionInvalidPositions(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)

	for _, position := range []string{"0", "-1", "4", "abc"} {
		status, _ := get(t, browser, srv.URL+"/questions/"+position)
		assert.Equal(t, http.StatusBadRequest, status, "position %s", position)
	}
}

func TestShowQuestionPastLastRedirectsToResults(t *testing.T) {
	srv := newTestServer(t)
	_, raw := newClients(t)

	// 2 câu hỏi, vị trí 3 = đã hoàn thành khảo sát
	resp, err := raw.Get(srv.URL + "/questions/3")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/results", resp.Header.Get("Location"))
}

func TestSubmitWithoutIdentityIsSessionTimeout(t *testing.T) {
	srv := newTestServer(t)
	_, raw := newClients(t)

	resp := postForm(t, raw, srv.URL+"/questions", url.Values{"next": {"1"}})
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Session timeout")
}

func TestSubmitMovementResolution(t *testing.T) {
	srv := newTestServer(t)
	browser, raw := newClients(t)

	// Chưa có vị trí: vào thẳng câu 1
	resp := postForm(t, raw, srv.URL+"/questions", url.Values{"username": {"alice"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questions/1", resp.Header.Get("Location"))

	// next từ câu 1 -> câu 2
	get(t, browser, srv.URL+"/questions/1")
	resp = postForm(t, raw, srv.URL+"/questions", url.Values{"next": {"1"}})
	assert.Equal(t, "/questions/2", resp.Header.Get("Location"))

	// prev từ câu 2 -> câu 1
	get(t, browser, srv.URL+"/questions/2")
	resp = postForm(t, raw, srv.URL+"/questions", url.Values{"prev": {"1"}})
	assert.Equal(t, "/questions/1", resp.Header.Get("Location"))

	// prev ở câu 1 -> về trang chủ
	get(t, browser, srv.URL+"/questions/1")
	resp = postForm(t, raw, srv.URL+"/questions", url.Values{"prev": {"1"}})
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Không có cờ điều hướng -> giữ nguyên vị trí hiện tại
	get(t, browser, srv.URL+"/questions/2")
	resp = postForm(t, raw, srv.URL+"/questions", url.Values{})
	assert.Equal(t, "/questions/2", resp.Header.Get("Location"))
}

func TestSubmitThenShowPrefillsAnswer(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)
	startSurveyAs(t, browser, srv.URL, "alice")

	// Trang câu 1 đã set currentQuestionID; submit một câu trả lời
	get(t, browser, srv.URL+"/questions/1")
	resp := postForm(t, browser, srv.URL+"/questions", url.Values{"questionAnswer": {"red"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Quay lại cùng vị trí: lựa chọn cũ phải được tick sẵn
	_, body := get(t, browser, srv.URL+"/questions/1")
	assert.Contains(t, body, `value="red"`)
	assert.Contains(t, body, "checked")
}

func TestSubmitUpsertLastWriteWins(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)
	startSurveyAs(t, browser, srv.URL, "alice")

	get(t, browser, srv.URL+"/questions/1")
	postForm(t, browser, srv.URL+"/questions", url.Values{"questionAnswer": {"red"}})
	get(t, browser, srv.URL+"/questions/1")
	postForm(t, browser, srv.URL+"/questions", url.Values{"questionAnswer": {"blue"}})

	var rows []models.Answer
	require.NoError(t, config.DB.Where("username = ?", "alice").Find(&rows).Error)
	require.Len(t, rows, 1, "mỗi cặp (username, question) chỉ giữ một dòng")
	assert.Equal(t, "q-color", rows[0].QuestionID)
	assert.Equal(t, "blue", rows[0].Answer)
}

func TestSubmitAcceptsFreeTextAnswer(t *testing.T) {
	// Nội dung trả lời không bị đối chiếu với danh sách lựa chọn
	srv := newTestServer(t)
	browser, _ := newClients(t)
	startSurveyAs(t, browser, srv.URL, "alice")

	get(t, browser, srv.URL+"/questions/1")
	postForm(t, browser, srv.URL+"/questions", url.Values{"questionAnswer": {"chartreuse"}})

	var row models.Answer
	require.NoError(t, config.DB.Where("username = ?", "alice").First(&row).Error)
	assert.Equal(t, "chartreuse", row.Answer)
}

func TestUsernameIsSticky(t *testing.T) {
	srv := newTestServer(t)
	browser, raw := newClients(t)
	startSurveyAs(t, browser, srv.URL, "alice")

	// Submit sau đó không gửi username: session vẫn còn identity, không 408
	resp := postForm(t, raw, srv.URL+"/questions", url.Values{"next": {"1"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRenderingPreferenceIsSticky(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)

	postForm(t, browser, srv.URL+"/questions", url.Values{
		"username":            {"alice"},
		"renderingPreference": {"high-contrast"},
	})

	_, body := get(t, browser, srv.URL+"/questions/1")
	assert.Contains(t, body, `class="high-contrast"`)

	status, body := get(t, browser, srv.URL+"/renderingPreference")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "checked")
}

func TestSurveyMethodGating(t *testing.T) {
	srv := newTestServer(t)
	browser, _ := newClients(t)

	status, _ := get(t, browser, srv.URL+"/questions")
	assert.Equal(t, http.StatusMethodNotAllowed, status)

	resp := postForm(t, browser, srv.URL+"/questions/1", url.Values{})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp = postForm(t, browser, srv.URL+"/results", url.Values{})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp = postForm(t, browser, srv.URL+"/", url.Values{})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
