package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/roommate-finder/models"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceIndex      = errors.New("answer index out of range")
)

// QuestionStore quản lý ngân hàng câu hỏi trong một file JSON duy nhất.
// Mọi thao tác ghi đều theo kiểu đọc cả file - sửa trong bộ nhớ - ghi đè cả
// file, nên cần mutex để hai request admin không ghi đè lẫn nhau.
type QuestionStore struct {
	mu   sync.Mutex
	path string
}

func NewQuestionStore(path string) *QuestionStore {
	return &QuestionStore{path: path}
}

// NewQuestionID sinh ID dạng <unix-millis><6 ký tự ngẫu nhiên>, không tái sử dụng.
func NewQuestionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}

func (s *QuestionStore) load() ([]models.Question, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionStore) save(questions []models.Question) error {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// All trả về toàn bộ câu hỏi theo đúng thứ tự trong file.
func (s *QuestionStore) All() ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID tìm câu hỏi theo ID, trả về ErrQuestionNotFound nếu không có.
func (s *QuestionStore) FindByID(id string) (models.Question, error) {
	questions, err := s.All()
	if err != nil {
		return models.Question{}, err
	}
	for _, q := range questions {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Question{}, ErrQuestionNotFound
}

// Insert thêm câu hỏi mới vào cuối danh sách với một lựa chọn rỗng.
func (s *QuestionStore) Insert(text string) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.load()
	if err != nil {
		return models.Question{}, err
	}
	q := models.Question{
		ID:              NewQuestionID(),
		Question:        text,
		PossibleAnswers: []string{""},
	}
	questions = append(questions, q)
	if err := s.save(questions); err != nil {
		return models.Question{}, err
	}
	return q, nil
}

// UpdateText thay nội dung câu hỏi.
func (s *QuestionStore) UpdateText(id, text string) error {
	return s.mutate(id, func(q *models.Question) error {
		q.Question = text
		return nil
	})
}

// AppendChoice thêm một lựa chọn rỗng vào cuối, để admin điền nội dung sau.
func (s *QuestionStore) AppendChoice(id string) error {
	return s.mutate(id, func(q *models.Question) error {
		q.PossibleAnswers = append(q.PossibleAnswers, "")
		return nil
	})
}

// UpdateChoice thay nội dung lựa chọn tại vị trí index.
func (s *QuestionStore) UpdateChoice(id string, index int, text string) error {
	return s.mutate(id, func(q *models.Question) error {
		if index < 0 || index >= len(q.PossibleAnswers) {
			return ErrChoiceIndex
		}
		q.PossibleAnswers[index] = text
		return nil
	})
}

// DeleteChoice xoá lựa chọn tại vị trí index. Nếu chỉ còn đúng một lựa chọn
// thì không xoá và trả về deleted=false (không phải lỗi).
func (s *QuestionStore) DeleteChoice(id string, index int) (deleted bool, err error) {
	err = s.mutate(id, func(q *models.Question) error {
		if len(q.PossibleAnswers) == 1 {
			return nil
		}
		if index < 0 || index >= len(q.PossibleAnswers) {
			return ErrChoiceIndex
		}
		q.PossibleAnswers = append(q.PossibleAnswers[:index], q.PossibleAnswers[index+1:]...)
		deleted = true
		return nil
	})
	return deleted, err
}

// Delete xoá hẳn câu hỏi khỏi file. Caller chịu trách nhiệm xoá các answer
// tham chiếu tới ID này trong DB.
func (s *QuestionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.load()
	if err != nil {
		return err
	}
	for i, q := range questions {
		if q.ID == id {
			questions = append(questions[:i], questions[i+1:]...)
			return s.save(questions)
		}
	}
	return ErrQuestionNotFound
}

// mutate gom phần khung đọc-sửa-ghi chung cho các thao tác trên một câu hỏi.
func (s *QuestionStore) mutate(id string, fn func(q *models.Question) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.load()
	if err != nil {
		return err
	}
	for i := range questions {
		if questions[i].ID == id {
			if err := fn(&questions[i]); err != nil {
				return err
			}
			return s.save(questions)
		}
	}
	return ErrQuestionNotFound
}
