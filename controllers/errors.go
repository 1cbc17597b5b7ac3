package controllers

import "github.com/gin-gonic/gin"

// renderError hiển thị trang lỗi với message và status tương ứng.
// adminPage chọn giao diện lỗi của khu admin thay vì trang lỗi thường.
func renderError(c *gin.Context, status int, message string, adminPage bool) {
	view := "error.html"
	if adminPage {
		view = "admin_error.html"
	}
	c.HTML(status, view, gin.H{
		"status":  status,
		"message": message,
	})
}
