package api

import (
	"fmt"
	"net/http"
	"strconv"

	"community-frontend/internal/model"
	"community-frontend/internal/session"
	"community-frontend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentSession 返回会话中间件放入请求 context 的会话
func CurrentSession(c *gin.Context) model.Session {
	return session.FromContext(c.Request.Context())
}

// ParamID 解析路径中的数字 ID
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// FormFile 读取表单中的 file 字段；没有选择文件时返回 nil, nil
func FormFile(c *gin.Context, maxBytes int64) (*model.Upload, error) {
	header, err := c.FormFile("file")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size == 0 && header.Filename == "" {
		return nil, nil
	}

	data, contentType, err := util.ReadUpload(header, maxBytes)
	if err != nil {
		util.Logger.Warn("读取上传文件失败", zap.String("filename", header.Filename), zap.Error(err))
		return nil, err
	}
	return &model.Upload{
		Filename:    util.SafeFilename(header.Filename),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Redirect 表单提交后统一使用 303
func Redirect(c *gin.Context, format string, args ...any) {
	c.Redirect(http.StatusSeeOther, fmt.Sprintf(format, args...))
}
