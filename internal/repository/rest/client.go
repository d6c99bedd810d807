package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/session"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// HeaderUserID 是后端用来识别当前用户的请求头
const HeaderUserID = "X-User-Id"

// Result 是一次后端调用的统一结果
type Result struct {
	OK      bool
	Status  int
	Message string          // 响应体中的 message
	Data    json.RawMessage // 响应体中的 data
	Body    json.RawMessage // 原始响应体
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode 把 data 解析到 v；data 缺失或格式不符时返回 invalid_response
func (r *Result) Decode(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return apperrors.Wrap(apperrors.CodeInvalidResponse, "响应缺少data", nil)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidResponse, "解析响应失败", err)
	}
	return nil
}

// Err 把失败的结果转换为 AppError
func (r *Result) Err() error {
	return apperrors.FromResult(r.Status, r.Message)
}

func networkFailure() *Result {
	return &Result{
		OK:      false,
		Status:  0,
		Message: string(apperrors.CodeNetworkError),
	}
}

// Client 封装对后端 REST API 的调用：不重试、不缓存，每次调用只发一次
type Client struct {
	baseURL  string
	http     *http.Client
	skipUser bool // 为 true 时不附加 X-User-Id
}

// NewClient 创建 API 客户端；timeout 为 0 表示不设超时
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

// WithoutSession 返回不附加用户头的客户端副本，用于模型推理服务
func (c *Client) WithoutSession() *Client {
	cp := *c
	cp.skipUser = true
	return &cp
}

// Do 发送请求。body 为 *model.Upload 时以 multipart 发送，其他非 nil 值编码为 JSON。
// 网络失败不会返回错误，而是返回 Status 为 0 的失败结果
func (c *Client) Do(ctx context.Context, method, path string, body any) *Result {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		zap.L().Error("构造请求失败", zap.String("path", path), zap.Error(err))
		return networkFailure()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Error("API请求失败", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return networkFailure()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Error("读取响应失败", zap.String("path", path), zap.Error(err))
		return networkFailure()
	}

	result := &Result{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   raw,
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return result
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		zap.L().Warn("响应不是合法的JSON", zap.String("path", path), zap.Int("status", resp.StatusCode))
		result.OK = false
		result.Message = string(apperrors.CodeInvalidResponse)
		return result
	}
	result.Message = env.Message
	result.Data = env.Data
	return result
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType = "application/json"
	)

	switch b := body.(type) {
	case nil:
	case *model.Upload:
		buf, ct, err := encodeMultipart(b)
		if err != nil {
			return nil, err
		}
		reader, contentType = buf, ct
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if sess := session.FromContext(ctx); sess.UserID != "" && !c.skipUser {
		req.Header.Set(HeaderUserID, sess.UserID)
	}
	return req, nil
}

func encodeMultipart(file *model.Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
