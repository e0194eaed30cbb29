package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// RequestID 为每个请求打上 uuid，便于日志关联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		log.Debugf("➡️ %s %s [%s]", c.Request.Method, c.Request.URL.Path, id)
		c.Next()
	}
}

func (s *Server) SetupRoutes(r *gin.Engine) {
	r.Use(RequestID())

	api := r.Group("/api")
	{
		// JSON 指令管道
		api.POST("/command", s.HandleCommand)

		// 旧版文本指令
		api.POST("/text", s.HandleText)

		// 手部状态快照（只读）
		api.GET("/state", s.HandleState)

		// WebSocket 指令流
		api.GET("/ws", s.HandleWS)

		// 服务状态 API
		api.GET("/status", s.HandleStatus)

		// 健康检查端点
		api.GET("/health", s.HandleHealth)
	}

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
