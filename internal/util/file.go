package util

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// ReadUpload 读取上传文件内容，超过 maxBytes 时返回错误
func ReadUpload(file *multipart.FileHeader, maxBytes int64) ([]byte, string, error) {
	if maxBytes > 0 && file.Size > maxBytes {
		return nil, "", fmt.Errorf("文件过大: %d > %d", file.Size, maxBytes)
	}
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	reader := io.Reader(src)
	if maxBytes > 0 {
		reader = io.LimitReader(src, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", err
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("文件过大: 超过 %d 字节", maxBytes)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// PreviewDataURL 生成图片预览用的 data URL，非图片内容返回空字符串
func PreviewDataURL(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return ""
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SafeFilename 去掉客户端传来的路径部分
func SafeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
