package web

import (
	"embed"
	"encoding/hex"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/blake2b"

	"github.com/go-while/go-foxstarter/internal/models"
)

//go:embed static/*
var EmbeddedStaticFS embed.FS

// etags caches the strong ETag of every embedded file served so far
var etags sync.Map // map[string]string

// ListEmbeddedFiles returns a list of all embedded static files for debugging
func ListEmbeddedFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(EmbeddedStaticFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// EmbeddedStaticHandler returns a Gin handler for serving embedded static files
// below prefix. The route must carry a *filepath wildcard.
func EmbeddedStaticHandler(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimPrefix(c.Param("filepath"), "/")
		if name == "" {
			// Static directory has no index file
			abortJSON(c, http.StatusNotFound, models.KindNotFound, "no route for "+c.Request.URL.Path)
			return
		}
		if !serveEmbedded(c, path.Join("static", name), "public, max-age=3600") { // browser caches an hour
			abortJSON(c, http.StatusNotFound, models.KindNotFound, "no file "+prefix+"/"+name)
		}
	}
}

// EmbeddedFileHandler returns a Gin handler for serving a single embedded file
func EmbeddedFileHandler(filePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !serveEmbedded(c, filePath, "public, max-age=86400") {
			abortJSON(c, http.StatusNotFound, models.KindNotFound, "no file "+c.Request.URL.Path)
		}
	}
}

// serveEmbedded writes the embedded file at filePath, answering conditional
// requests with 304. It returns false when the file does not exist.
func serveEmbedded(c *gin.Context, filePath, cacheControl string) bool {
	content, err := fs.ReadFile(EmbeddedStaticFS, filePath)
	if err != nil {
		return false
	}

	tag := etagOf(filePath, content)
	c.Header("ETag", tag)
	c.Header("Cache-Control", cacheControl)
	if match := c.GetHeader("If-None-Match"); match != "" && match == tag {
		c.Status(http.StatusNotModified)
		return true
	}

	c.Data(http.StatusOK, getContentType(filePath), content)
	return true
}

// etagOf hashes content with BLAKE2b-256; embedded files never change at runtime
func etagOf(filePath string, content []byte) string {
	if tag, ok := etags.Load(filePath); ok {
		return tag.(string)
	}
	sum := blake2b.Sum256(content)
	tag := `"` + hex.EncodeToString(sum[:16]) + `"`
	etags.Store(filePath, tag)
	return tag
}

// getContentType returns the appropriate MIME type for common file extensions
func getContentType(filePath string) string {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".ico":
		return "image/x-icon"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".woff2":
		return "font/woff2"
	case ".html":
		return "text/html; charset=utf-8"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
