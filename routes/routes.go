package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/roommate-finder/controllers"
	"github.com/vnkhanh/roommate-finder/middleware"
)

// SetupRoutes đăng ký route bằng Any: từng handler tự gate method để trả 405
// kèm trang lỗi, thay vì 404 mặc định của router khi lệch method.
func SetupRoutes(r *gin.Engine) {
	r.GET("/health", controllers.HealthCheck)

	r.Any("/", controllers.Home)

	questions := r.Group("/questions")
	{
		questions.Any("", controllers.SubmitAnswer)
		questions.Any("/:questionNum", controllers.ShowQuestion)
	}

	r.Any("/results", controllers.ShowResults)
	r.Any("/renderingPreference", controllers.RenderingPreference)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.Any("", controllers.AdminHome)
		admin.Any("/edit", controllers.AdminEdit)
		admin.Any("/delete", controllers.AdminDelete)
		admin.Any("/add", controllers.AdminAdd)
		admin.Any("/login", middleware.RateLimitAdminLogin(), controllers.AdminLogin)
		admin.Any("/logout", controllers.AdminLogout)
	}
}
