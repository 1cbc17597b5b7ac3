package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/roommate-finder/config"
	"github.com/vnkhanh/roommate-finder/middleware"
	"github.com/vnkhanh/roommate-finder/models"
	"github.com/vnkhanh/roommate-finder/services"
)

// renderSuccess là trang xác nhận chung của khu admin, kèm link quay lại.
func renderSuccess(c *gin.Context, message, linkRoute, linkText string) {
	c.HTML(http.StatusOK, "success.html", gin.H{
		"message":   message,
		"linkRoute": linkRoute,
		"linkText":  linkText,
	})
}

// questionBankError đổi lỗi từ QuestionStore thành trang lỗi admin phù hợp.
func questionBankError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, services.ErrQuestionNotFound):
		renderError(c, http.StatusBadRequest, fmt.Sprintf("Question ID of %s not found.", id), true)
	case errors.Is(err, services.ErrChoiceIndex):
		renderError(c, http.StatusBadRequest, "Answer index out of range.", true)
	default:
		renderError(c, http.StatusInternalServerError, "Unable to update the question bank", true)
	}
}

/* ========== GET /admin: danh sách câu hỏi ========== */

func AdminHome(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		renderError(c, http.StatusMethodNotAllowed, "Method not allowed for the admin page. Please use GET", true)
		return
	}
	username, ok := middleware.AdminUsername(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	questions, err := config.Questions.All()
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to load the question bank", true)
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"questions": questions,
		"username":  username,
	})
}

/* ========== GET/POST /admin/edit?id=&answerIndex=: sửa một câu hỏi ========== */

// AdminEdit gom toàn bộ thao tác sửa trên một câu hỏi: đổi nội dung câu hỏi,
// thêm lựa chọn rỗng, sửa hoặc xoá một lựa chọn. Không có hành động nào thì
// render trang editor.
func AdminEdit(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for the admin/edit page. Please use GET or POST", true)
		return
	}
	username, ok := middleware.AdminUsername(c)
	if !ok {
		renderError(c, http.StatusUnauthorized, "Edit only accessible by logged-in administrators", true)
		return
	}
	id := c.Query("id")
	if id == "" {
		renderError(c, http.StatusBadRequest,
			"The edit page is only usable with an id specified in the query.", true)
		return
	}

	// Kiểm tra ID trước để mọi nhánh bên dưới báo not-found thống nhất
	question, err := config.Questions.FindByID(id)
	if err != nil {
		questionBankError(c, id, err)
		return
	}
	editLink := "/admin/edit?id=" + id

	if c.PostForm("updateQuestionText") != "" && c.PostForm("questionText") != "" {
		if err := config.Questions.UpdateText(id, c.PostForm("questionText")); err != nil {
			questionBankError(c, id, err)
			return
		}
		renderSuccess(c, "Successfully changed the question text!", editLink, "Go back to question editor")
		return
	}

	if c.PostForm("addAnswer") != "" {
		if err := config.Questions.AppendChoice(id); err != nil {
			questionBankError(c, id, err)
			return
		}
		// Lấy lại bản mới để editor hiển thị lựa chọn vừa thêm
		question, err = config.Questions.FindByID(id)
		if err != nil {
			questionBankError(c, id, err)
			return
		}
	} else if rawIndex := c.Query("answerIndex"); rawIndex != "" {
		answerIndex, convErr := strconv.Atoi(rawIndex)
		if convErr != nil {
			renderError(c, http.StatusBadRequest, "Answer index must be a number.", true)
			return
		}

		if c.PostForm("editText") != "" && c.PostForm("answerText") != "" {
			if err := config.Questions.UpdateChoice(id, answerIndex, c.PostForm("answerText")); err != nil {
				questionBankError(c, id, err)
				return
			}
			renderSuccess(c, "Successfully changed answer text!", editLink, "Go back to question editor")
			return
		}

		if c.PostForm("delete") != "" {
			deleted, err := config.Questions.DeleteChoice(id, answerIndex)
			if err != nil {
				questionBankError(c, id, err)
				return
			}
			// Còn đúng một lựa chọn thì từ chối xoá, nhưng vẫn là trang
			// success chứ không phải lỗi
			if !deleted {
				renderSuccess(c, "Cannot delete answer because there is only 1 answer left",
					editLink, "Go back to question editor")
				return
			}
			renderSuccess(c, "Successfully deleted answer!", editLink, "Go back to question editor")
			return
		}
	}

	c.HTML(http.StatusOK, "admin_edit.html", gin.H{
		"question": question,
		"username": username,
	})
}

/* ========== /admin/delete?id=: xoá câu hỏi + cascade answers ========== */

func AdminDelete(c *gin.Context) {
	if _, ok := middleware.AdminUsername(c); !ok {
		renderError(c, http.StatusUnauthorized, "Delete pages only accessible by logged-in administrators", true)
		return
	}
	id := c.Query("id")
	if id == "" {
		renderError(c, http.StatusBadRequest,
			"The delete page is only usable with an id specified in the query.", true)
		return
	}

	if err := config.Questions.Delete(id); err != nil {
		questionBankError(c, id, err)
		return
	}

	// Cascade: xoá mọi câu trả lời đang tham chiếu câu hỏi này, để trang kết
	// quả không còn tính điểm trên câu hỏi đã biến mất
	if err := config.DB.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to delete stored answers", true)
		return
	}

	renderSuccess(c, fmt.Sprintf("Successfully deleted question with id %s!", id),
		"/admin/edit", "Go back to question editor")
}

/* ========== GET/POST /admin/add: tạo câu hỏi mới ========== */

func AdminAdd(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		renderError(c, http.StatusMethodNotAllowed,
			"Method not allowed for the admin/add page. Please use GET or POST", true)
		return
	}
	username, ok := middleware.AdminUsername(c)
	if !ok {
		renderError(c, http.StatusUnauthorized, "Add page only accessible by logged-in administrators", true)
		return
	}

	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "admin_add.html", gin.H{"username": username})
		return
	}

	text := c.PostForm("questionText")
	if text == "" {
		renderError(c, http.StatusBadRequest, "Submission requires text for the new question", true)
		return
	}

	question, err := config.Questions.Insert(text)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Unable to update the question bank", true)
		return
	}
	c.Redirect(http.StatusFound, "/admin/edit?id="+question.ID)
}
