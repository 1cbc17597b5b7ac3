package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/models"
)

// Các key trong session khảo sát. currentQuestionID luôn là ID của câu hỏi
// vừa render cho currentQuestionNum - đây là khoá để upsert câu trả lời ở
// lần submit kế tiếp, nên phải set lại trên mọi lần render câu hỏi.
const (
	sessKeyUsername    = "username"
	sessKeyQuestionNum = "currentQuestionNum"
	sessKeyQuestionID  = "currentQuestionID"
	sessKeyPreference  = "renderingPreference"
)

func sessionString(sess sessions.Session, key string) string {
	if v, ok := sess.Get(key).(string); ok {
		return v
	}
	return ""
}

func sessionInt(sess sessions.Session, key string) int {
	if v, ok := sess.Get(key).(int); ok {
		return v
	}
	return 0
}

/* ========== POST /questions: lưu câu trả lời rồi điều hướng ========== */

// SubmitAnswer nhận form từ trang khảo sát: ghi nhận username/preference vào
// session, upsert câu trả lời cho câu hỏi hiện tại (nếu có) và redirect sang
// vị trí kế tiếp. Không render gì trực tiếp.
func SubmitAnswer(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		renderError(c, http.StatusMethodNotAllowed, "Method not allowed for /questions page. Please use POST", false)
		return
	}

	sess := sessions.Default(c)

	// Không có username trong form lẫn session nghĩa là session đã hết hạn
	username := sessionString(sess, sessKeyUsername)
	if formUsername := c.PostForm("username"); formUsername != "" {
		// Sticky: chỉ ghi đè khi form có gửi username, bỏ trống thì giữ nguyên
		username = formUsername
		sess.Set(sessKeyUsername, formUsername)
	} else if username == "" {
		renderError(c, http.StatusRequestTimeout, "Session timeout! Please login again.", false)
		return
	}

	if pref := c.PostForm("renderingPreference"); pref != "" {
		sess.Set(sessKeyPreference, pref)
	}

	// Có câu trả lời và đang biết câu hỏi hiện tại thì upsert theo khoá
	// (username, question_id); mỗi cặp chỉ giữ đúng một dòng, ghi sau thắng.
	// Nội dung trả lời lưu nguyên văn, không đối chiếu với danh sách lựa chọn.
	answer := c.PostForm("questionAnswer")
	questionID := sessionString(sess, sessKeyQuestionID)
	if answer != "" && questionID != "" {
		row := models.Answer{
			Username:   username,
			QuestionID: questionID,
			Answer:     answer,
		}
		err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			renderError(c, http.StatusInternalServerError, "Unable to store the answer", false)
			return
		}
	}

	// Thứ tự ưu tiên điều hướng: next > prev (ở câu 1 thì về trang chủ) >
	// giữ nguyên vị trí > vào câu 1
	currentNum := sessionInt(sess, sessKeyQuestionNum)
	var target string
	switch {
	case c.PostForm("next") != "":
		// Trang /questions/<n> tự lo chuyện chuyển sang trang kết quả khi
		// vượt quá câu cuối, vì ở đó mới đọc danh sách câu hỏi
		target = fmt.Sprintf("/questions/%d", currentNum+1)
	case c.PostForm("prev") != "" && currentNum == 1:
		target = "/"
	case c.PostForm("prev") != "":
		target = fmt.Sprintf("/questions/%d", currentNum-1)
	case currentNum != 0:
		target = fmt.Sprintf("/questions/%d", currentNum)
	default:
		target = "/questions/1"
	}

	if err := sess.Save(); err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to save session", false)
		return
	}
	c.Redirect(http.StatusFound, target)
}

/* ========== GET /questions/<questionNum>: render một câu hỏi ========== */

// ShowQuestion render câu hỏi tại vị trí questionNum (1-based). Vị trí lấy
// thẳng từ URL chứ không đối chiếu với session - người dùng được phép nhảy
// tới bất kỳ câu nào trong phạm vi để hỗ trợ back/forward.
func ShowQuestion(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for /questions/<questionNumber> page. Please use GET", false)
		return
	}

	questions, err := config.Questions.All()
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to load the question bank", false)
		return
	}

	param := c.Param("questionNum")
	num, err := strconv.Atoi(param)
	if err != nil {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("Question number %s doesn't exist", param), false)
		return
	}
	index := num - 1

	sess := sessions.Default(c)

	// Đi quá câu cuối đúng 1 vị trí = đã hoàn thành khảo sát
	if index == len(questions) {
		sess.Delete(sessKeyQuestionNum)
		if err := sess.Save(); err != nil {
			renderError(c, http.StatusInternalServerError, "Unable to save session", false)
			return
		}
		c.Redirect(http.StatusFound, "/results")
		return
	}
	if index < 0 || index >= len(questions) {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("Question number %s doesn't exist", param), false)
		return
	}

	q := questions[index]
	sess.Set(sessKeyQuestionID, q.ID)
	sess.Set(sessKeyQuestionNum, num)

	// Lấy câu trả lời cũ (nếu có) để pre-fill lựa chọn trên trang
	username := sessionString(sess, sessKeyUsername)
	previousAnswer := ""
	var row models.Answer
	findErr := config.DB.
		Where("username = ? AND question_id = ?", username, q.ID).
		First(&row).Error
	switch {
	case findErr == nil:
		previousAnswer = row.Answer
	case !errors.Is(findErr, gorm.ErrRecordNotFound):
		renderError(c, http.StatusInternalServerError, "Unable to load the previous answer", false)
		return
	}

	if err := sess.Save(); err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to save session", false)
		return
	}

	c.HTML(http.StatusOK, "surveyPage.html", gin.H{
		"pageNum":             num,
		"pageCount":           len(questions),
		"username":            username,
		"question":            q.Question,
		"answers":             q.PossibleAnswers,
		"previousAnswer":      previousAnswer,
		"renderingPreference": sessionString(sess, sessKeyPreference),
	})
}
