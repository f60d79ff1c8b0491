package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 默认成本；散列失败（极少见）返回空串，由上层校验兜底
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
