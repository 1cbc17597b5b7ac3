package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/roommate-finder/middleware"
	"github.com/vnkhanh/roommate-finder/utils"
)

/* ========== GET/POST /admin/login ========== */

// AdminLogin xử lý cả trang login (GET) lẫn lần thử đăng nhập (POST).
// Đăng nhập thành công phát token admin qua cookie HttpOnly, tách khỏi
// session khảo sát vốn có TTL rất ngắn.
func AdminLogin(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		if _, ok := middleware.AdminUsername(c); ok {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		c.HTML(http.StatusOK, "admin_login.html", nil)

	case http.MethodPost:
		username := c.PostForm("username")
		password := c.PostForm("password")
		if username == "" || password == "" {
			renderError(c, http.StatusBadRequest,
				"Username or password not sent in request. Please try again.", true)
			return
		}
		if !utils.AdminExists(username) {
			renderError(c, http.StatusUnauthorized, "Admin username does not exist. Please try again.", true)
			return
		}
		if !utils.CheckAdminPassword(username, password) {
			renderError(c, http.StatusUnauthorized, "Incorrect password. Please try again.", true)
			return
		}

		token, err := utils.GenerateAdminToken(username)
		if err != nil {
			renderError(c, http.StatusInternalServerError, "Unable to create admin session", true)
			return
		}
		c.SetCookie(middleware.AdminCookieName, token, int(utils.AdminTokenTTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin")

	default:
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for admin login page. Please use GET or POST", true)
	}
}

/* ========== GET /admin/logout ========== */

// AdminLogout xoá cookie admin và bỏ luôn username khảo sát trong session.
func AdminLogout(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for the admin logout page. Please use GET", true)
		return
	}
	if _, ok := middleware.AdminUsername(c); !ok {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", false, true)

	sess := sessions.Default(c)
	sess.Delete(sessKeyUsername)
	if err := sess.Save(); err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to save session", true)
		return
	}

	renderSuccess(c, "Successfully logged out!", "/", "Go back to home page")
}
