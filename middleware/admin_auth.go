package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/roommate-finder/utils"
)

// AdminCookieName là cookie chứa token admin, set khi đăng nhập thành công.
const AdminCookieName = "admin_token"

// CtxAdminUser là key trong gin context chứa username admin đã xác thực.
const CtxAdminUser = "adminUsername"

// AdminAuth đọc cookie admin, verify token và inject username vào context.
// Không abort ở đây: từng trang admin tự quyết định redirect về login hay
// trả lỗi 401, giống như hai hành vi khác nhau của /admin và /admin/edit.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookieName)
		if err == nil && token != "" {
			if claims, err := utils.VerifyAdminToken(token); err == nil {
				c.Set(CtxAdminUser, claims.Username)
			}
		}
		c.Next()
	}
}

// AdminUsername trả về username admin đã đăng nhập của request hiện tại.
func AdminUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxAdminUser)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok && username != ""
}
