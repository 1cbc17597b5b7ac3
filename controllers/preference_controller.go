package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RenderingPreference render trang chọn giao diện. Giá trị đã chọn trước đó
// (nếu có) lấy từ session để pre-select; bản thân lựa chọn được gửi kèm form
// /questions và chỉ đi qua session như một chuỗi mờ.
func RenderingPreference(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for rendering preference page. Please use GET.", false)
		return
	}

	sess := sessions.Default(c)
	c.HTML(http.StatusOK, "renderingPreference.html", gin.H{
		"previousPreference": sessionString(sess, sessKeyPreference),
	})
}
