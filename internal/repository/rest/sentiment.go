package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"community-frontend/config"
	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
	"community-frontend/internal/repository/interfaces"

	"go.uber.org/zap"
)

// SentimentRepository 调用模型服务的情感分析接口，响应体不使用 {message, data} 包装
type SentimentRepository struct {
	client *Client
	path   string
}

// NewSentimentRepository engine 为 legacy 时使用旧模型，其余情况使用 Gemini
func NewSentimentRepository(client *Client, engine string) *SentimentRepository {
	path := "/sentiment/gemini"
	if engine == config.SentimentEngineLegacy {
		path = "/sentiment"
	}
	return &SentimentRepository{client: client, path: path}
}

var _ interfaces.SentimentRepository = (*SentimentRepository)(nil)

type sentimentRequest struct {
	Text    string `json:"text"`
	Explain bool   `json:"explain"`
}

func (r *SentimentRepository) Analyze(ctx context.Context, text string) (*model.Sentiment, error) {
	res := r.client.Do(ctx, http.MethodPost, r.path, sentimentRequest{Text: text})
	if !res.OK {
		return nil, res.Err()
	}

	var out model.Sentiment
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidResponse, "解析情感分析结果失败", err)
	}
	if out.Failed() {
		zap.L().Warn("情感分析返回错误", zap.String("error", out.Error))
		return nil, apperrors.New(apperrors.CodeUnknown, out.Error)
	}
	return &out, nil
}
