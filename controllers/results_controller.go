package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/models"
	"github.com/vnkhanh/roommate-finder/services"
)

// ShowResults tính bảng xếp hạng bạn cùng phòng cho người dùng trong session:
// ai trùng nhiều câu trả lời nhất đứng đầu.
func ShowResults(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed, "Method not allowed for /results page. Please use GET", false)
		return
	}

	sess := sessions.Default(c)
	username := sessionString(sess, sessKeyUsername)
	if username == "" {
		renderError(c, http.StatusBadRequest,
			"No username found with session. Please try again with a username.", false)
		return
	}

	// Hai truy vấn: câu trả lời của chính mình và của tất cả người khác
	var own []models.Answer
	if err := config.DB.Where("username = ?", username).Find(&own).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to load answers", false)
		return
	}
	var others []models.Answer
	if err := config.DB.Where("username <> ?", username).Find(&others).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to load answers", false)
		return
	}

	roommates := services.ComputeMatches(own, others)

	c.HTML(http.StatusOK, "result.html", gin.H{
		"username":  username,
		"roommates": roommates,
	})
}
