package handler

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/handler/shared"
	"github.com/park285/symptom-checker-go/internal/httperror"
	"github.com/park285/symptom-checker-go/internal/static"
)

const staticCacheControl = "public, max-age=3600"

// RegisterHomeRoutes 는 랜딩 페이지와 정적 자산 라우트를 등록한다.
func RegisterHomeRoutes(router *gin.Engine, assets fs.FS) {
	router.GET("/", func(c *gin.Context) {
		serveAsset(c, assets, static.IndexFile, "no-cache")
	})
	router.GET("/static/*filepath", func(c *gin.Context) {
		name := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
		serveAsset(c, assets, name, staticCacheControl)
	})
}

// 디렉터리 목록은 노출하지 않는다.
func serveAsset(c *gin.Context, assets fs.FS, name string, cacheControl string) {
	info, err := fs.Stat(assets, name)
	if err != nil || info.IsDir() {
		shared.WriteError(c, httperror.NewNotFound("Not found"))
		return
	}
	data, err := fs.ReadFile(assets, name)
	if err != nil {
		shared.WriteError(c, httperror.NewNotFound("Not found"))
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, contentType, data)
}
