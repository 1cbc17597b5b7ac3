package utils

import (
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Bảng tài khoản admin cố định. App này không có đăng ký admin, danh sách
// nằm thẳng trong code giống một bảng seed.
var defaultAdminAccounts = map[string]string{
	"test":       "test",
	"instructor": "pass",
	"Dr.M":       "pass",
	"anton":      "pass",
	"student":    "somePassword",
}

var (
	adminHashes   = map[string][]byte{}
	seedAdminOnce sync.Once
)

// SeedAdminAccounts hash sẵn mật khẩu của bảng tài khoản cố định một lần khi
// khởi động, để lúc so sánh chỉ làm việc với bcrypt hash.
func SeedAdminAccounts() {
	seedAdminOnce.Do(func() {
		for username, password := range defaultAdminAccounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password for %s: %v", username, err)
			}
			adminHashes[username] = hash
		}
	})
}

// AdminExists kiểm tra username có trong bảng tài khoản hay không.
func AdminExists(username string) bool {
	_, ok := adminHashes[username]
	return ok
}

// CheckAdminPassword so mật khẩu với hash của tài khoản tương ứng.
func CheckAdminPassword(username, password string) bool {
	hash, ok := adminHashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
