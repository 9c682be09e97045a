package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	pathRoot   = "/"
	pathReview = "/review"
	pathRules  = "/rules"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(
		s.recovery(),
		requestID(),
		s.accessLog(),
		s.observe(),
		cors(s.cfg.Server.AllowedOrigins),
	)

	h := &handlers{svc: s.svc, logger: s.logger}
	r.GET(pathRoot, h.root)
	r.POST(pathReview, h.review)
	r.GET(pathRules, h.rules)

	if s.cfg.Metrics.Enabled && s.metricsHandler != nil {
		r.GET(s.cfg.Metrics.Path, gin.WrapH(s.metricsHandler))
	}

	index := s.mountFrontend(r)
	r.NoRoute(func(c *gin.Context) {
		if index != "" && c.Request.Method == http.MethodGet && !s.isAPIPath(c.Request.URL.Path) {
			c.File(index)
			return
		}
		writeError(c, http.StatusNotFound, "not found", codeNotFound)
	})
	return r
}

// mountFrontend serves a built single-page app when one is present and
// returns the path of its index.html, or "" when there is none.
func (s *Server) mountFrontend(r *gin.Engine) string {
	dir := s.cfg.Server.StaticDir
	if dir == "" {
		return ""
	}
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return ""
	}
	r.Static("/static", filepath.Join(dir, "static"))
	return index
}

func (s *Server) isAPIPath(path string) bool {
	prefixes := []string{pathReview, pathRules}
	if s.cfg.Metrics.Enabled {
		prefixes = append(prefixes, s.cfg.Metrics.Path)
	}
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
