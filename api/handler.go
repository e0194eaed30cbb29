package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"allegro/config"
	"allegro/define"
	"allegro/dispatch"
	"allegro/legacy"
	"allegro/protocol"
)

// HandleCommand JSON 指令处理函数。
// 请求体就是线上协议的指令文档，应答恒为 HTTP 200，
// 错误通过应答记录本身表达（与请求/应答协议保持一致）。
func (s *Server) HandleCommand(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.writeResponse(c, dispatch.BuildError(fmt.Sprintf("JSON parsing error: %v", err)))
		return
	}

	s.mu.Lock()
	resp := s.pipeline.Execute(raw)
	s.mu.Unlock()

	s.writeResponse(c, resp)
}

// HandleText 旧版文本指令处理函数。
// 支持 JSON 包装（{"frame": "..."}）或 text/plain 直接提交帧内容。
func (s *Server) HandleText(c *gin.Context) {
	frameText, err := s.readFrameText(c)
	if err != nil {
		s.writeResponse(c, dispatch.BuildError(fmt.Sprintf("Text parsing error: %v", err)))
		return
	}

	frame, err := legacy.ParseFrame(frameText)
	if err != nil {
		s.writeResponse(c, dispatch.BuildError(fmt.Sprintf("Text parsing error: %v", err)))
		return
	}

	s.mu.Lock()
	applyErr := legacy.Apply(frame, s.pipeline.Backend())
	s.mu.Unlock()

	if applyErr != nil {
		s.writeResponse(c, dispatch.BuildError(fmt.Sprintf("Failed to execute text command: %v", applyErr)))
		return
	}

	s.writeResponse(c, dispatch.BuildSuccess("Text command executed successfully", nil, s.pipeline.Backend()))
}

// HandleState 手部状态快照处理函数，只读，不触发后端写操作
func (s *Server) HandleState(c *gin.Context) {
	s.mu.Lock()
	resp := s.pipeline.Snapshot()
	s.mu.Unlock()

	s.writeResponse(c, resp)
}

// HandleWS WebSocket 指令流：每条文本消息是一条线上协议指令，
// 逐条应答。同一连接内的指令天然串行，跨连接由 mu 串行化。
func (s *Server) HandleWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("⚠️ WebSocket 升级失败: %v", err)
		return
	}
	defer conn.Close()

	log.Infof("🔌 WebSocket 指令流已建立: %s", c.ClientIP())

	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			log.Infof("🔌 WebSocket 指令流已断开: %s", c.ClientIP())
			return
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}

		s.mu.Lock()
		resp := s.pipeline.Execute(raw)
		s.mu.Unlock()

		data, err := protocol.EncodeResponse(resp)
		if err != nil {
			log.Errorf("❌ 编码应答失败: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warnf("⚠️ WebSocket 写入失败: %v", err)
			return
		}
	}
}

// HandleStatus 服务状态处理函数
func (s *Server) HandleStatus(c *gin.Context) {
	b := s.pipeline.Backend()

	c.JSON(http.StatusOK, define.ApiResponse{
		Status: "success",
		Data: map[string]any{
			"uptime":       time.Since(s.startTime).String(),
			"backendMode":  config.Config.BackendMode,
			"handType":     b.HandType().String(),
			"motionType":   define.MotionType(b.MotionType()).String(),
			"timeInterval": b.TimeInterval(),
		},
	})
}

// HandleHealth 健康检查处理函数
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, define.ApiResponse{
		Status:  "success",
		Message: "Allegro Hand Control Service is running",
		Data: map[string]any{
			"timestamp":      time.Now(),
			"backendMode":    config.Config.BackendMode,
			"serviceVersion": "1.0.0",
		},
	})
}

// writeResponse 用协议编码器序列化应答，保证定长数组恒在
func (s *Server) writeResponse(c *gin.Context, resp *protocol.Response) {
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		log.Errorf("❌ 编码应答失败: %v", err)
		c.JSON(http.StatusInternalServerError, define.ApiResponse{
			Status: "error",
			Error:  "编码应答失败：" + err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// readFrameText 取出文本帧：JSON 包装体或原始请求体
func (s *Server) readFrameText(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req TextCommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", err
		}
		return req.Frame, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
