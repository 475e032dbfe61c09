package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/go-while/go-foxstarter/internal/config"
	"github.com/go-while/go-foxstarter/internal/models"
)

func newTestServer(t *testing.T) *WebServer {
	return NewServer(zaptest.NewLogger(t), config.NewDefaultConfig().Web)
}

func do(t *testing.T, s *WebServer, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestCounterIncrementDecrement(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	for _, n := range []int64{-50, -1, 0, 1, 2, 999999} {
		for action, want := range map[string]int64{
			models.ActionIncrement: n + 1,
			models.ActionDecrement: n - 1,
		} {
			body, err := json.Marshal(map[string]any{"action": action, "currentCount": n})
			requireT.NoError(err)

			rr := do(t, s, http.MethodPost, "/counter", string(body))
			requireT.Equal(http.StatusOK, rr.Code)

			resp := decode[models.CounterResponse](t, rr)
			requireT.Equal(want, resp.Count)
			requireT.Equal(n, resp.PreviousCount)
			requireT.Equal(action, resp.Action)
		}
	}
}

func TestCounterUnknownActionKeepsCount(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodPost, "/counter", `{"action":"reset","currentCount":12}`)
	requireT.Equal(http.StatusOK, rr.Code)

	resp := decode[models.CounterResponse](t, rr)
	requireT.Equal(int64(12), resp.Count)
	requireT.Equal(int64(12), resp.PreviousCount)
	requireT.Equal("reset", resp.Action)
}

func TestCounterMalformed(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"action":"increment"`,
		`{"action":"increment"}`,
		`{"action":"increment","currentCount":null}`,
		`{"action":"increment","currentCount":"3"}`,
		`{"action":"increment","currentCount":1.5}`,
		`[]`,
	} {
		t.Run(body, func(t *testing.T) {
			requireT := require.New(t)

			rr := do(t, s, http.MethodPost, "/counter", body)
			requireT.Equal(http.StatusBadRequest, rr.Code)
			requireT.Equal(models.KindMalformedRequest, decode[models.ErrorResponse](t, rr).Kind)
		})
	}
}

func TestTheme(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	before := time.Now()
	rr := do(t, s, http.MethodPost, "/theme", `{"theme":"dark"}`)
	requireT.Equal(http.StatusOK, rr.Code)

	resp := decode[models.ThemeResponse](t, rr)
	requireT.Equal("dark", resp.Theme)
	requireT.Equal("Theme changed to Dark", resp.Message)
	requireT.False(resp.Timestamp.Before(before), "timestamp %s before request %s", resp.Timestamp, before)

	var raw map[string]string
	requireT.NoError(json.Unmarshal(rr.Body.Bytes(), &raw))
	_, err := time.Parse(time.RFC3339Nano, raw["timestamp"])
	requireT.NoError(err)
}

func TestThemeNotValidated(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodPost, "/theme", `{"theme":"neon"}`)
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Equal("neon", decode[models.ThemeResponse](t, rr).Theme)

	rr = do(t, s, http.MethodPost, "/theme", `{"theme":`)
	requireT.Equal(http.StatusBadRequest, rr.Code)
}

func TestDiagnosticEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/hello", "/test", "/" + RegionalWord} {
		for _, body := range []string{"", `{}`, `{"x":1}`, `not json at all`} {
			t.Run(path+" "+body, func(t *testing.T) {
				requireT := require.New(t)

				rr := do(t, s, http.MethodPost, path, body)
				requireT.Equal(http.StatusOK, rr.Code)
				requireT.NotEmpty(decode[models.MessageResponse](t, rr).Message)
			})
		}
	}
}

func TestDiagnosticTextVariants(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodGet, "/test", "")
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Equal("Test", rr.Body.String())

	rr = do(t, s, http.MethodGet, "/"+RegionalWord, "")
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Equal(RegionalMessage, rr.Body.String())
}

func TestHomePage(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodGet, "/", "")
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Contains(rr.Header().Get("Content-Type"), "text/html")
	requireT.Contains(rr.Body.String(), `id="count"`)
	requireT.Equal("nosniff", rr.Header().Get("X-Content-Type-Options"))
	requireT.Equal("DENY", rr.Header().Get("X-Frame-Options"))
}

func TestStaticETag(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodGet, "/static/app.js", "")
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Contains(rr.Header().Get("Content-Type"), "application/javascript")
	tag := rr.Header().Get("ETag")
	requireT.NotEmpty(tag)

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	req.Header.Set("If-None-Match", tag)
	rr = httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	requireT.Equal(http.StatusNotModified, rr.Code)
	requireT.Zero(rr.Body.Len())

	rr = do(t, s, http.MethodGet, "/static/missing.js", "")
	requireT.Equal(http.StatusNotFound, rr.Code)

	rr = do(t, s, http.MethodGet, "/static/", "")
	requireT.Equal(http.StatusNotFound, rr.Code)
}

func TestEmbeddedFiles(t *testing.T) {
	requireT := require.New(t)

	files, err := ListEmbeddedFiles()
	requireT.NoError(err)
	requireT.Subset(files, []string{"static/index.html", "static/app.js", "static/openapi.json"})
}

func TestSwagger(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodGet, "/swagger/json", "")
	requireT.Equal(http.StatusOK, rr.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	requireT.NoError(json.Unmarshal(rr.Body.Bytes(), &doc))
	for _, p := range []string{"/hello", "/test", "/hau", "/counter", "/theme"} {
		requireT.Contains(doc.Paths, p)
	}

	rr = do(t, s, http.MethodGet, "/swagger", "")
	requireT.Equal(http.StatusOK, rr.Code)
}

func TestErrorClassification(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)
	s.Router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rr := do(t, s, http.MethodGet, "/boom", "")
	requireT.Equal(http.StatusInternalServerError, rr.Code)
	requireT.Equal(models.KindServerFault, decode[models.ErrorResponse](t, rr).Kind)

	rr = do(t, s, http.MethodGet, "/nowhere", "")
	requireT.Equal(http.StatusNotFound, rr.Code)
	requireT.Equal(models.KindNotFound, decode[models.ErrorResponse](t, rr).Kind)

	rr = do(t, s, http.MethodGet, "/counter", "")
	requireT.Equal(http.StatusMethodNotAllowed, rr.Code)
	requireT.Equal(models.KindMethodNotAllowed, decode[models.ErrorResponse](t, rr).Kind)
}

func TestPing(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	rr := do(t, s, http.MethodGet, "/ping", "")
	requireT.Equal(http.StatusOK, rr.Code)
	requireT.Equal("pong", rr.Body.String())
}

func TestReverseProxyHost(t *testing.T) {
	requireT := require.New(t)
	s := newTestServer(t)

	var host string
	s.Router.GET("/host", func(c *gin.Context) {
		host = c.Request.Host
	})

	req := httptest.NewRequest(http.MethodGet, "/host", bytes.NewReader(nil))
	req.Header.Set("X-Forwarded-Host", "fox.example")
	s.Router.ServeHTTP(httptest.NewRecorder(), req)
	requireT.Equal("fox.example", host)
}
