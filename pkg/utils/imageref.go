package utils

import "github.com/google/uuid"

// NewImageRef 上传不在本服务范围内，图片入参统一换成占位引用串
func NewImageRef() string {
	return "img://" + uuid.NewString()
}
