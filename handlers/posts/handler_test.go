package posts

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AhadGhee/socialbook/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestUploadPage_RedirectsHome(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/upload", UploadPage)

	req, _ := http.NewRequest(http.MethodGet, "/upload", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))
}

func TestCreatePost_MissingImage(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/upload", func(c *gin.Context) {
		c.Set("username", "alice")
		CreatePost(c)
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("caption", "hello")
	writer.Close()

	req, _ := http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Image is required")
}

func TestCreatePost_Unauthenticated(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/upload", CreatePost)

	req, _ := http.NewRequest(http.MethodPost, "/upload", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
