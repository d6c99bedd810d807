package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"community-frontend/config"
	"community-frontend/internal/model"
	"community-frontend/internal/repository/rest"
	"community-frontend/internal/service"
	"community-frontend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend 是内存中的后端 API，只实现页面流程用到的接口
type fakeBackend struct {
	mu            sync.Mutex
	posts         map[int]*model.Post
	nextID        int
	views         int
	liked         map[int]bool
	comments      map[int][]*model.Comment
	nextCommentID int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		posts:         make(map[int]*model.Post),
		nextID:        1,
		liked:         make(map[int]bool),
		comments:      make(map[int][]*model.Comment),
		nextCommentID: 1,
	}
}

func (b *fakeBackend) handler() http.Handler {
	r := gin.New()

	r.POST("/auth/login", func(c *gin.Context) {
		var in model.LoginInput
		_ = c.ShouldBindJSON(&in)
		if in.Email != "kim@test.com" || in.Password != "Secret1!" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "login_success", "data": gin.H{"user_id": 5, "nickname": "kim"}})
	})

	r.GET("/posts", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]*model.Post, 0, len(b.posts))
		for id := 1; id < b.nextID; id++ {
			if p, ok := b.posts[id]; ok {
				list = append(list, p)
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok", "data": gin.H{"posts": list, "total": len(list)}})
	})

	r.POST("/posts", func(c *gin.Context) {
		if c.GetHeader(rest.HeaderUserID) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		var in model.PostInput
		_ = c.ShouldBindJSON(&in)
		if utf8.RuneCountInString(in.Title) > 26 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title_too_long"})
			return
		}
		userID, _ := strconv.Atoi(c.GetHeader(rest.HeaderUserID))

		b.mu.Lock()
		defer b.mu.Unlock()
		id := b.nextID
		b.nextID++
		b.posts[id] = &model.Post{
			ID:        id,
			Title:     in.Title,
			Content:   in.Content,
			AuthorID:  userID,
			Nickname:  "kim",
			CreatedAt: "2024-05-01T09:30:00",
		}
		c.JSON(http.StatusCreated, gin.H{"message": "post_created", "data": gin.H{"post_id": id}})
	})

	r.GET("/posts/:id", func(c *gin.Context) {
		p := b.find(c)
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "post_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok", "data": p})
	})

	r.PATCH("/posts/:id/view", func(c *gin.Context) {
		if p := b.find(c); p != nil {
			b.mu.Lock()
			p.ViewCount++
			b.views++
			b.mu.Unlock()
		}
		c.Status(http.StatusNoContent)
	})

	r.POST("/posts/:id/like", func(c *gin.Context) {
		p := b.find(c)
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "post_not_found"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.liked[p.ID] = !b.liked[p.ID]
		if b.liked[p.ID] {
			p.LikeCount++
		} else {
			p.LikeCount--
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok", "data": gin.H{"like_count": p.LikeCount, "liked": b.liked[p.ID]}})
	})

	// 详情不带评论，评论列表单独返回 {comments, total}
	r.GET("/posts/:id/comments", func(c *gin.Context) {
		p := b.find(c)
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "post_not_found"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		list := append([]*model.Comment{}, b.comments[p.ID]...)
		c.JSON(http.StatusOK, gin.H{"message": "get_comments_success", "data": gin.H{"comments": list, "total": len(list)}})
	})

	r.POST("/posts/:id/comments", func(c *gin.Context) {
		p := b.find(c)
		if p == nil || c.GetHeader(rest.HeaderUserID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid_request"})
			return
		}
		var in struct {
			Content string `json:"content"`
		}
		_ = c.ShouldBindJSON(&in)
		userID, _ := strconv.Atoi(c.GetHeader(rest.HeaderUserID))

		b.mu.Lock()
		defer b.mu.Unlock()
		id := b.nextCommentID
		b.nextCommentID++
		b.comments[p.ID] = append(b.comments[p.ID], &model.Comment{
			ID:        id,
			PostID:    p.ID,
			AuthorID:  userID,
			Nickname:  "kim",
			Content:   in.Content,
			CreatedAt: "2024-05-01T10:00:00",
		})
		c.JSON(http.StatusCreated, gin.H{"message": "comment_created", "data": gin.H{
			"comment_id": id,
			"sentiment":  gin.H{"label": "positive", "confidence": 0.87},
		}})
	})

	r.DELETE("/posts/:id/comments/:cid", func(c *gin.Context) {
		p := b.find(c)
		cid, _ := strconv.Atoi(c.Param("cid"))
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "post_not_found"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		kept := b.comments[p.ID][:0]
		for _, cm := range b.comments[p.ID] {
			if cm.ID != cid {
				kept = append(kept, cm)
			}
		}
		b.comments[p.ID] = kept
		c.JSON(http.StatusOK, gin.H{"message": "comment_deleted"})
	})

	return r
}

func (b *fakeBackend) find(c *gin.Context) *model.Post {
	id, _ := strconv.Atoi(c.Param("id"))
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posts[id]
}

// browser 在请求之间保存 cookie
type browser struct {
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (br *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range br.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	br.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(br.cookies, c.Name)
			continue
		}
		br.cookies[c.Name] = c
	}
	return w
}

func (br *browser) get(path string) *httptest.ResponseRecorder {
	return br.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (br *browser) post(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return br.do(req)
}

func setup(t *testing.T) (*browser, *fakeBackend) {
	gin.SetMode(gin.TestMode)

	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := rest.NewClient(srv.URL, 0)
	postRepo := rest.NewPostRepository(client)
	commentRepo := rest.NewCommentRepository(client)

	r := New(Deps{
		Config:         config.Config{PageSize: 20, MaxUploadBytes: 1 << 20, Debug: true},
		Store:          session.NewCookieStore(session.Options{MaxAge: 3600}),
		AuthService:    service.NewAuthService(rest.NewAuthRepository(client)),
		PostService:    service.NewPostService(postRepo, commentRepo, rest.NewSentimentRepository(client.WithoutSession(), config.SentimentEngineGemini), 20),
		CommentService: service.NewCommentService(commentRepo),
	})
	return &browser{handler: r, cookies: make(map[string]*http.Cookie)}, backend
}

func TestRootRedirects(t *testing.T) {
	br, _ := setup(t)

	w := br.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = br.get("/no/such/page")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	br.cookies[session.KeyUserID] = &http.Cookie{Name: session.KeyUserID, Value: "5"}
	w = br.get("/")
	assert.Equal(t, "/posts", w.Header().Get("Location"))
}

func TestLoginFailureStaysOnPage(t *testing.T) {
	br, _ := setup(t)

	w := br.post("/login", url.Values{"email": {"kim@test.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "아이디 또는 비밀번호를 확인해주세요")
	assert.NotContains(t, br.cookies, session.KeyUserID)
}

// TestPostFlow 登录、发帖、浏览、点赞的完整流程
func TestPostFlow(t *testing.T) {
	br, backend := setup(t)

	w := br.post("/login", url.Values{"email": {"kim@test.com"}, "password": {"Secret1!"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts", w.Header().Get("Location"))
	require.Contains(t, br.cookies, session.KeyUserID)

	// 登录成功提示只显示一次
	w = br.get("/posts")
	assert.Contains(t, w.Body.String(), "로그인 성공!")
	w = br.get("/posts")
	assert.NotContains(t, w.Body.String(), "로그인 성공!")

	// 26 字的标题可以保存
	title := strings.Repeat("가", 26)
	w = br.post("/posts/form", url.Values{"title": {title}, "content": {"본문"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts", w.Header().Get("Location"))

	w = br.get("/posts")
	assert.Contains(t, w.Body.String(), title)
	assert.Contains(t, w.Body.String(), `href="/posts/1"`)

	// 27 字的标题被拒绝，表单保留输入
	tooLong := strings.Repeat("나", 27)
	w = br.post("/posts/form", url.Values{"title": {tooLong}, "content": {"본문"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "제목은 최대 26자까지 작성 가능합니다")
	assert.Contains(t, w.Body.String(), tooLong)

	// 详情页增加一次浏览
	w = br.get("/posts/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), title)
	assert.Contains(t, w.Body.String(), `href="/posts/1/edit"`)
	assert.Equal(t, 1, backend.views)

	// 点赞后刷新不再计浏览
	w = br.post("/posts/1/like", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/1?refresh=1", w.Header().Get("Location"))

	w = br.get("/posts/1?refresh=1")
	assert.Contains(t, w.Body.String(), "좋아요!")
	assert.Contains(t, w.Body.String(), `<div class="stat-value" id="like-count">1</div>`)
	assert.Equal(t, 1, backend.views)

	// 再点一次恢复原来的计数
	w = br.post("/posts/1/like", url.Values{})
	assert.Equal(t, "/posts/1?refresh=1", w.Header().Get("Location"))
	w = br.get("/posts/1?refresh=1")
	assert.Contains(t, w.Body.String(), "좋아요 취소")
	assert.Contains(t, w.Body.String(), `<div class="stat-value" id="like-count">0</div>`)

	w = br.get("/debug/errors")
	assert.Contains(t, w.Body.String(), `"title_too_long":1`)
}

// TestCommentFlow 评论列表来自单独的评论接口
func TestCommentFlow(t *testing.T) {
	br, backend := setup(t)

	w := br.post("/login", url.Values{"email": {"kim@test.com"}, "password": {"Secret1!"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = br.post("/posts/form", url.Values{"title": {"제목"}, "content": {"본문"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = br.get("/posts/1?refresh=1")
	assert.Contains(t, w.Body.String(), "아직 댓글이 없습니다.")

	w = br.post("/posts/1/comments", url.Values{"content": {"정말 좋아요"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/1", w.Header().Get("Location"))

	w = br.get("/posts/1")
	body := w.Body.String()
	assert.Contains(t, body, "댓글 등록! (긍정적 87%)")
	assert.Contains(t, body, "정말 좋아요")
	assert.Contains(t, body, `<div class="stat-value" id="comment-count">1</div>`)
	assert.Contains(t, body, "/posts/1?refresh=1&edit_comment=1")
	assert.NotContains(t, body, "아직 댓글이 없습니다.")

	w = br.post("/posts/1/comments/1/delete", url.Values{"confirm": {"yes"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/1", w.Header().Get("Location"))

	w = br.get("/posts/1?refresh=1")
	body = w.Body.String()
	assert.Contains(t, body, "댓글이 삭제되었습니다")
	assert.Contains(t, body, `<div class="stat-value" id="comment-count">0</div>`)
	assert.Empty(t, backend.comments[1])
}

func TestLikeRequiresLogin(t *testing.T) {
	br, backend := setup(t)
	backend.posts[1] = &model.Post{ID: 1, Title: "t", Comments: []*model.Comment{}}
	backend.nextID = 2

	w := br.post("/posts/1/like", url.Values{})
	assert.Equal(t, "/posts/1?refresh=1", w.Header().Get("Location"))

	w = br.get("/posts/1?refresh=1")
	assert.Contains(t, w.Body.String(), "로그인이 필요합니다")
	assert.Equal(t, 0, backend.posts[1].LikeCount)
}

func TestStaticAssets(t *testing.T) {
	br, _ := setup(t)

	w := br.get("/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
}
