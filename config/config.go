package config

import (
	"fmt"
	"log"
	"os"

	"github.com/vnkhanh/roommate-finder/models"
	"github.com/vnkhanh/roommate-finder/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Questions là kho câu hỏi dùng chung (file JSON), khởi tạo qua InitQuestionStore
var Questions *services.QuestionStore

// ConnectDB khởi tạo kết nối PostgreSQL và migrate bảng answers
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Chỉ migrate bảng answers; câu hỏi nằm trong file JSON chứ không trong DB
	if err := db.AutoMigrate(&models.Answer{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// InitQuestionStore mở file câu hỏi, mặc định là questions.json ở thư mục chạy
func InitQuestionStore() {
	path := os.Getenv("QUESTIONS_FILE")
	if path == "" {
		path = "questions.json"
	}
	Questions = services.NewQuestionStore(path)
	log.Printf("Question bank file: %s\n", path)
}
