package util

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d}

func TestPreviewDataURL(t *testing.T) {
	assert.Equal(t, "", PreviewDataURL(nil))
	assert.Equal(t, "", PreviewDataURL([]byte("just some text")))
	assert.True(t, strings.HasPrefix(PreviewDataURL(pngHeader), "data:image/png;base64,"))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "cat.png", SafeFilename("cat.png"))
	assert.Equal(t, "cat.png", SafeFilename("../../etc/cat.png"))
	assert.Equal(t, "cat.png", SafeFilename(`C:\Users\kim\cat.png`))
	assert.Equal(t, "upload", SafeFilename(""))
}

// uploadHeader 通过真实的 multipart 请求构造 FileHeader
func uploadHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, _ = part.Write(data)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestReadUpload(t *testing.T) {
	header := uploadHeader(t, "dog.png", pngHeader)

	data, contentType, err := ReadUpload(header, 1<<10)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", contentType)

	_, _, err = ReadUpload(header, 4)
	assert.Error(t, err)

	data, _, err = ReadUpload(header, 0)
	require.NoError(t, err)
	assert.Len(t, data, len(pngHeader))
}

func TestValidateNotBlank(t *testing.T) {
	type form struct {
		Title string `validate:"notblank"`
	}

	assert.NoError(t, Validate.Struct(form{Title: "제목"}))
	assert.Error(t, Validate.Struct(form{Title: "   "}))
	assert.Error(t, Validate.Struct(form{}))
}
