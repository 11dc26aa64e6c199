package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estatehub/models"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.Code
}

func ok(c *gin.Context) { c.Status(http.StatusNoContent) }

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "10.0.0.9:1234", "203.0.113.5"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.7"}, "10.0.0.9:1234", "198.51.100.7"},
		{"remote addr", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"remote without port", nil, "192.0.2.1", "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, ClientIP(c))
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit("test", 2, time.Hour), ok)

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, do("1.1.1.1").Code)
	assert.Equal(t, http.StatusNoContent, do("1.1.1.1").Code)
	w := do("1.1.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, utils.CodeRateLimitExceeded, errorCode(t, w))

	// Budgets are per IP.
	assert.Equal(t, http.StatusNoContent, do("2.2.2.2").Code)
}

func TestRateLimiterStoreRefillsAndSweeps(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newRateLimiterStore(1, time.Minute)
	s.now = func() time.Time { return now }

	assert.True(t, s.allow("a"))
	assert.False(t, s.allow("a"))

	now = now.Add(2 * time.Minute)
	assert.True(t, s.allow("b"))
	_, kept := s.visitors["a"]
	assert.False(t, kept, "idle visitor should be swept")
	assert.True(t, s.allow("a"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		_, exists := c.Get("logger")
		assert.True(t, exists)
		c.String(http.StatusOK, c.GetString("requestId"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

type fakeAuth map[string]*user.Principal

func (f fakeAuth) Authenticate(_ context.Context, token string) (*user.Principal, error) {
	if p, ok := f[token]; ok {
		return p, nil
	}
	return nil, utils.Unauthorized("Invalid or expired token")
}

func principal(role models.Role) *user.Principal {
	return &user.Principal{User: &models.User{Name: string(role), Role: role}}
}

func TestAuthenticateAndRoles(t *testing.T) {
	auth := fakeAuth{"admin-token": principal(models.RoleAdmin), "user-token": principal(models.RoleUser)}
	r := gin.New()
	r.GET("/me", Authenticate(auth), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentPrincipal(c).User.Name)
	})
	r.GET("/admin", Authenticate(auth), RequireRoles(models.RoleAdmin), ok)

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.CodeUnauthorized, errorCode(t, w))

	assert.Equal(t, http.StatusUnauthorized, do("/me", "Token admin-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/me", "Bearer bogus").Code)

	w = do("/me", "Bearer user-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", w.Body.String())

	w = do("/admin", "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, utils.CodeForbidden, errorCode(t, w))

	assert.Equal(t, http.StatusNoContent, do("/admin", "Bearer admin-token").Code)
}

func TestOptionalAuth(t *testing.T) {
	auth := fakeAuth{"agent-token": principal(models.RoleAgent)}
	r := gin.New()
	r.GET("/", OptionalAuth(auth), func(c *gin.Context) {
		if IsStaff(c) {
			c.String(http.StatusOK, "staff")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	for header, want := range map[string]string{
		"":                   "anonymous",
		"Bearer bogus":       "anonymous",
		"Bearer agent-token": "staff",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String(), header)
	}
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImageUpload(t *testing.T) {
	r := gin.New()
	r.POST("/upload", ImageUpload("images", 16, 2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": len(UploadedFiles(c))})
	})

	post := func(body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("accepted", func(t *testing.T) {
		body, ct := multipartBody(t, "images", map[string][]byte{"a.jpg": []byte("small"), "b.png": []byte("tiny")})
		w := post(body, ct)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":2}`, w.Body.String())
	})

	t.Run("file too large", func(t *testing.T) {
		body, ct := multipartBody(t, "images", map[string][]byte{"a.jpg": bytes.Repeat([]byte("x"), 32)})
		w := post(body, ct)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, utils.CodeFileTooLarge, errorCode(t, w))
	})

	t.Run("too many files", func(t *testing.T) {
		body, ct := multipartBody(t, "images", map[string][]byte{"a.jpg": {1}, "b.jpg": {2}, "c.jpg": {3}})
		w := post(body, ct)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.CodeTooManyFiles, errorCode(t, w))
	})

	t.Run("wrong field", func(t *testing.T) {
		body, ct := multipartBody(t, "photos", map[string][]byte{"a.jpg": {1}})
		w := post(body, ct)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.CodeInvalidFileField, errorCode(t, w))
	})

	t.Run("unsupported type", func(t *testing.T) {
		body, ct := multipartBody(t, "images", map[string][]byte{"notes.txt": {1}})
		w := post(body, ct)
		assert.Equal(t, utils.CodeInvalidFileField, errorCode(t, w))
	})

	t.Run("not multipart", func(t *testing.T) {
		w := post(bytes.NewBufferString(`{}`), "application/json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.CodeInvalidFileField, errorCode(t, w))
	})
}
