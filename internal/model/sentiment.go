package model

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiment 是模型服务返回的情感分析结果
type Sentiment struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Failed 结果中带有 error 字段时视为分析失败
func (s Sentiment) Failed() bool {
	return s.Error != ""
}
