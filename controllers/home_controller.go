package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home render trang chủ với form nhập username để bắt đầu khảo sát.
func Home(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed, "Method not allowed for home page. Please use GET", false)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Roommate Finder"})
}
