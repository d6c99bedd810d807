package model

// PostDraft 是帖子表单的视图状态，通过隐藏字段在请求之间传递
type PostDraft struct {
	PostID     int    `form:"post_id"`
	Title      string `form:"title" validate:"notblank"`
	Content    string `form:"content" validate:"notblank"`
	ImageURL   string `form:"image_url"`
	ImageClass string `form:"image_class"`
}

// Editing PostID 非零表示修改已有帖子
func (d PostDraft) Editing() bool {
	return d.PostID != 0
}

// DraftFromPost 用已有帖子填充修改表单
func DraftFromPost(p *Post) PostDraft {
	return PostDraft{
		PostID:     p.ID,
		Title:      p.Title,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		ImageClass: p.ImageClass,
	}
}

// SignupDraft 是注册表单的视图状态；密码不会回填
type SignupDraft struct {
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	PasswordCheck   string `form:"password_check" validate:"required,eqfield=Password"`
	Nickname        string `form:"nickname" validate:"required"`
	ProfileImageURL string `form:"profile_image_url" validate:"required"`
}

// CommentDraft 是评论输入框的状态；CommentID 非零表示正在修改该评论
type CommentDraft struct {
	CommentID int    `form:"comment_id"`
	Content   string `form:"content" validate:"notblank"`
}

func (d CommentDraft) Editing() bool {
	return d.CommentID != 0
}
