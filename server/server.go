package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"transcript-server-go/config"
	"transcript-server-go/handlers"
	"transcript-server-go/transcript"
)

// Server 组装 gin 路由与 http.Server
type Server struct {
	router   *gin.Engine
	server   *http.Server
	logger   *slog.Logger
	ssl      bool
	certFile string
	keyFile  string
}

// New 初始化服务：gin 模式 → 中间件 → 安全头 → 成绩单路由 → http.Server
func New(cfg *config.Config, logger *slog.Logger) *Server {
	gin.SetMode(cfg.Web.Mode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.HandleMethodNotAllowed = true

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	// Run serves TLS itself when ssl is on, so plain requests can be redirected.
	if cfg.Web.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	handlers.NewTranscriptHandler(transcript.HTML()).Register(router)

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		logger:   logger,
		ssl:      cfg.Web.SSL,
		certFile: cfg.Web.CertFile,
		keyFile:  cfg.Web.KeyFile,
	}
}

// Handler returns the router, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Run 启动 HTTP 服务器，开启 ssl 时启动 HTTPS，监听失败时原样返回错误
func (s *Server) Run() error {
	if s.ssl {
		s.logger.Info("starting HTTPS server", "addr", s.server.Addr)
		return s.server.ListenAndServeTLS(s.certFile, s.keyFile)
	}
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}
