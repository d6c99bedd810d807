package view

import (
	"fmt"

	apperrors "community-frontend/internal/errors"
	"community-frontend/internal/model"
)

// Page 是所有页面共用的部分
type Page struct {
	Name   PageName
	Title  string
	Header Header
	Toast  *Toast
}

// NewPage 计算共用部分；Toast 由 Render 填充
func NewPage(name PageName, title string, sess model.Session) Page {
	return Page{
		Name:   name,
		Title:  title,
		Header: HeaderFor(name, sess),
	}
}

type LoginPage struct {
	Page
	Email  string
	Helper string
}

type SignupPage struct {
	Page
	Draft   model.SignupDraft
	Preview string
	Helpers map[apperrors.Field]string
}

func (p SignupPage) EmailHelper() string         { return p.Helpers[apperrors.FieldEmail] }
func (p SignupPage) PasswordHelper() string      { return p.Helpers[apperrors.FieldPassword] }
func (p SignupPage) PasswordCheckHelper() string { return p.Helpers[apperrors.FieldPasswordCheck] }
func (p SignupPage) NicknameHelper() string      { return p.Helpers[apperrors.FieldNickname] }
func (p SignupPage) ProfileHelper() string       { return p.Helpers[apperrors.FieldProfile] }

// PostCard 是列表中的一条帖子
type PostCard struct {
	ID           int
	Title        string
	LikeCount    int
	CommentCount int
	ViewCount    int
	Nickname     string
	Date         string
}

type PostListPage struct {
	Page
	Cards    []PostCard
	Failed   bool
	PageNo   int
	PrevURL  string
	NextURL  string
	LoggedIn bool
}

// NewPostListPage 由列表结果构造视图；pageSize 用于判断是否还有下一页
func NewPostListPage(base Page, result *model.PostPage, pageNo, pageSize int, loggedIn bool) PostListPage {
	p := PostListPage{Page: base, PageNo: pageNo, LoggedIn: loggedIn}
	if result == nil {
		p.Failed = true
		return p
	}

	for _, post := range result.Posts {
		p.Cards = append(p.Cards, PostCard{
			ID:           post.ID,
			Title:        post.Title,
			LikeCount:    post.LikeCount,
			CommentCount: post.CommentCount,
			ViewCount:    post.ViewCount,
			Nickname:     post.Nickname,
			Date:         FormatDate(post.CreatedAt),
		})
	}

	if pageNo > 1 {
		p.PrevURL = fmt.Sprintf("/posts?page=%d", pageNo-1)
	}
	hasNext := len(result.Posts) >= pageSize
	if result.Total > 0 {
		hasNext = pageNo*pageSize < result.Total
	}
	if hasNext && len(result.Posts) > 0 {
		p.NextURL = fmt.Sprintf("/posts?page=%d", pageNo+1)
	}
	return p
}

// Classification 是图片分类的显示内容
type Classification struct {
	Text  string
	Class string
}

// ClassificationOf 详情页：只有分类名，没有置信度
func ClassificationOf(imageClass string) Classification {
	switch {
	case imageClass == "":
		return Classification{Text: "분류 정보 없음", Class: "ai-neutral"}
	case model.IsDogClass(imageClass):
		return Classification{Text: "🐕 강아지", Class: "ai-dog"}
	default:
		return Classification{Text: "🐈 고양이", Class: "ai-cat"}
	}
}

// PredictionClassification 表单页：上传后带置信度显示
func PredictionClassification(p *model.Prediction) Classification {
	if p == nil {
		return Classification{Text: "분류 실패", Class: "ai-neutral"}
	}
	c := ClassificationOf(p.ClassName)
	c.Text = fmt.Sprintf("%s (%s%%)", c.Text, p.Percent())
	return c
}

type CommentView struct {
	ID       int
	Nickname string
	Content  string
	Date     string
	Owned    bool
}

type PostDetailPage struct {
	Page
	Post           *model.Post
	Date           string
	Owned          bool
	Classification Classification
	CommentCount   int
	Comments       []CommentView
	Draft          model.CommentDraft
	LoggedIn       bool
}

// SubmitLabel 修改评论时按钮文字随之变化
func (p PostDetailPage) SubmitLabel() string {
	if p.Draft.Editing() {
		return "댓글 수정"
	}
	return "댓글 등록"
}

// NewPostDetailPage 根据帖子和会话构造详情页
func NewPostDetailPage(base Page, post *model.Post, sess model.Session, draft model.CommentDraft) PostDetailPage {
	p := PostDetailPage{
		Page:           base,
		Post:           post,
		Date:           FormatDate(post.CreatedAt),
		Owned:          sess.LoggedIn() && sess.Owns(post.AuthorID),
		Classification: ClassificationOf(post.ImageClass),
		CommentCount:   len(post.Comments),
		Draft:          draft,
		LoggedIn:       sess.LoggedIn(),
	}
	for _, c := range post.Comments {
		owned := sess.LoggedIn() && sess.Owns(c.AuthorID)
		p.Comments = append(p.Comments, CommentView{
			ID:       c.ID,
			Nickname: c.Nickname,
			Content:  c.Content,
			Date:     FormatDate(c.CreatedAt),
			Owned:    owned,
		})
		if draft.Editing() && draft.CommentID == c.ID && draft.Content == "" {
			p.Draft.Content = c.Content
		}
	}
	return p
}

type PostFormPage struct {
	Page
	Draft          model.PostDraft
	Preview        string
	Classification *Classification
}

func (p PostFormPage) Heading() string {
	if p.Draft.Editing() {
		return "게시글 수정"
	}
	return "게시글 작성"
}

func (p PostFormPage) SubmitLabel() string {
	if p.Draft.Editing() {
		return "수정하기"
	}
	return "완료"
}

// SentimentFragment 是情感分析区域的内容
type SentimentFragment struct {
	Failed      bool
	Emoji       string
	Label       string
	Class       string
	Percent     string
	Description string
}

type sentimentDisplay struct {
	emoji, label, class string
}

// 未知标签按中性显示
var sentimentDisplays = map[string]sentimentDisplay{
	model.SentimentPositive: {"😊", "긍정적", "ai-positive"},
	model.SentimentNegative: {"😞", "부정적", "ai-negative"},
	model.SentimentNeutral:  {"😐", "중립적", "ai-neutral"},
}

// NewSentimentFragment s 为 nil 表示分析失败
func NewSentimentFragment(s *model.Sentiment) SentimentFragment {
	if s == nil || s.Failed() {
		return SentimentFragment{Failed: true}
	}
	d, ok := sentimentDisplays[s.Label]
	if !ok {
		d = sentimentDisplays[model.SentimentNeutral]
	}
	return SentimentFragment{
		Emoji:       d.emoji,
		Label:       d.label,
		Class:       d.class,
		Percent:     Percent(s.Confidence, 1),
		Description: s.Description,
	}
}

type ErrorPage struct {
	Page
	Status  int
	Message string
}
