package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS 返回样式等静态文件
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Templates 解析内嵌模板，供 gin 的 SetHTMLTemplate 使用
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"safeURL": safeURL,
	}).ParseFS(templateFS, "templates/*.html"))
}

// safeURL 只放行 http(s) 和图片 data URL，其他返回空
func safeURL(raw string) template.URL {
	if isImageDataURL(raw) || isHTTPURL(raw) {
		return template.URL(raw)
	}
	return ""
}

func isHTTPURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "/")
}

func isImageDataURL(raw string) bool {
	return strings.HasPrefix(raw, "data:image/")
}

// pageData 由各页面视图实现，用于填充提示
type pageData interface {
	base() *Page
}

func (p *Page) base() *Page { return p }

// Render 填充提示后渲染页面
func Render(c *gin.Context, status int, name string, data pageData) {
	data.base().Toast = PopToast(c)
	c.HTML(status, name, data)
}

// RenderFragment 渲染不带布局的片段
func RenderFragment(c *gin.Context, name string, data any) {
	c.HTML(http.StatusOK, name, data)
}
