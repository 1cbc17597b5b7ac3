package services

import (
	"sort"

	"github.com/vnkhanh/roommate-finder/models"
)

// RoommateMatch là một dòng trên trang kết quả: người dùng khác và số câu
// trả lời trùng với người dùng hiện tại.
type RoommateMatch struct {
	Username string
	Matches  int
}

// ComputeMatches đếm số câu trả lời giống hệt nhau (so sánh chuỗi, phân biệt
// hoa thường) giữa người dùng hiện tại và từng người dùng khác, rồi sắp xếp
// giảm dần theo số lượng trùng. Ai đã trả lời ít nhất một câu đều xuất hiện,
// kể cả khi không trùng câu nào.
//
// Quét lồng O(U×Q) trên dữ liệu đã nạp hết vào bộ nhớ; với quy mô của app
// này thì chấp nhận được, không đánh index hay stream gì thêm.
func ComputeMatches(own []models.Answer, others []models.Answer) []RoommateMatch {
	counts := map[string]int{}
	order := []string{}

	for _, other := range others {
		if _, seen := counts[other.Username]; !seen {
			counts[other.Username] = 0
			order = append(order, other.Username)
		}
		for _, mine := range own {
			if mine.QuestionID == other.QuestionID {
				if mine.Answer == other.Answer {
					counts[other.Username]++
				}
				break
			}
		}
	}

	matches := make([]RoommateMatch, 0, len(order))
	for _, username := range order {
		matches = append(matches, RoommateMatch{Username: username, Matches: counts[username]})
	}
	// Sort ổn định: bằng điểm thì giữ thứ tự gặp trong dữ liệu
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Matches > matches[j].Matches
	})
	return matches
}
