package models

// Question là một bản ghi trong file questions.json. ID là chuỗi cố định,
// còn vị trí (1-based) của câu hỏi chỉ suy ra từ thứ tự trong file.
type Question struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	PossibleAnswers []string `json:"possibleAnswers"`
}
