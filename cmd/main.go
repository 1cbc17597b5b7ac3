package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/middleware"
	"github.com/vnkhanh/roommate-finder/routes"
	"github.com/vnkhanh/roommate-finder/utils"
)

// Session khảo sát cố tình rất ngắn: hết hạn giữa chừng sẽ hiện lỗi
// "Session timeout" và người dùng nhập lại username.
const defaultSessionMaxAge = 30 // giây

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Kết nối DB + mở file câu hỏi + hash bảng tài khoản admin
	config.ConnectDB()
	config.InitQuestionStore()
	utils.SeedAdminAccounts()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "http://localhost:8080"
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	// Trang nào cũng phụ thuộc session nên cấm browser cache lại
	r.Use(middleware.NoStore())

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "keyboard cat"
	}
	maxAge := defaultSessionMaxAge
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxAge = parsed
		}
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("roommate_finder", store))

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/public", "./public")

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
