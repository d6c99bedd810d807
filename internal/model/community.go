package model

import (
	"fmt"
	"math"
	"strings"
)

type Post struct {
	ID           int        `json:"post_id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"image_url"`
	ImageClass   string     `json:"image_class"`
	LikeCount    int        `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	ViewCount    int        `json:"view_count"`
	AuthorID     int        `json:"user_id"`
	Nickname     string     `json:"nickname"`
	CreatedAt    string     `json:"created_at"`
	Comments     []*Comment `json:"comments"`
}

type Comment struct {
	ID        int    `json:"comment_id"`
	PostID    int    `json:"post_id"`
	AuthorID  int    `json:"user_id"`
	Nickname  string `json:"nickname"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// PostPage 是帖子列表的一页
type PostPage struct {
	Posts []*Post `json:"posts"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// CommentPage 是评论列表接口的 data
type CommentPage struct {
	Comments []*Comment `json:"comments"`
	Total    int        `json:"total"`
}

// PostInput 是创建/修改帖子的请求体；图片字段为空时发送 null
type PostInput struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url"`
	ImageClass *string `json:"image_class"`
}

// NewPostInput 根据表单内容构造请求体
func NewPostInput(title, content, imageURL, imageClass string) PostInput {
	in := PostInput{Title: title, Content: content}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}
	if imageClass != "" {
		in.ImageClass = &imageClass
	}
	return in
}

type PostRef struct {
	ID int `json:"post_id"`
}

type LikeResult struct {
	LikeCount int  `json:"like_count"`
	Liked     bool `json:"liked"`
}

// Prediction 是图片分类结果
type Prediction struct {
	ClassName       string  `json:"class_name"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// IsDog 分类只区分狗和猫，其它一律按猫显示
func (p Prediction) IsDog() bool {
	return IsDogClass(p.ClassName)
}

func IsDogClass(className string) bool {
	return strings.ToLower(className) == "dog"
}

// Label 返回分类的中文显示名（강아지 / 고양이）
func (p Prediction) Label() string {
	if p.IsDog() {
		return "강아지"
	}
	return "고양이"
}

// Percent 置信度百分比，保留一位小数
func (p Prediction) Percent() string {
	return FormatPercent(p.ConfidenceScore, 1)
}

// FormatPercent 把 0~1 的比例格式化为百分比，保留 decimals 位小数，.5 向上进位
func FormatPercent(ratio float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return fmt.Sprintf("%.*f", decimals, math.Round(ratio*100*scale)/scale)
}

type ImageUpload struct {
	ImageURL   string      `json:"image_url"`
	Prediction *Prediction `json:"prediction"`
}

type CommentMutation struct {
	CommentID int        `json:"comment_id"`
	Sentiment *Sentiment `json:"sentiment"`
}
