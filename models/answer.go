package models

import "time"

// Answer là một câu trả lời đã lưu, duy nhất theo cặp (username, question_id).
// Username do client tự khai, không có bảng user riêng.
type Answer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"size:100;not null;uniqueIndex:idx_answers_user_question" json:"username"`
	QuestionID string    `gorm:"size:64;not null;uniqueIndex:idx_answers_user_question" json:"question_id"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Answer) TableName() string {
	return "answers"
}
