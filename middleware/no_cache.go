package middleware

import "github.com/gin-gonic/gin"

// NoStore tắt cache phía client cho mọi response. Trang khảo sát đổi nội
// dung theo session nên không để browser giữ lại bản cũ khi bấm back.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
