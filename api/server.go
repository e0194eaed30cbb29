package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"allegro/dispatch"
)

// Server 指令管道的 HTTP/WebSocket 外壳。
// 管道本身不加锁，mu 负责串行化来自 HTTP 与 WebSocket 的并发调用。
type Server struct {
	pipeline  *dispatch.Pipeline
	mu        sync.Mutex
	startTime time.Time
	upgrader  websocket.Upgrader
}

func NewServer(pipeline *dispatch.Pipeline) *Server {
	return &Server{
		pipeline:  pipeline,
		startTime: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// 控制面板可能跑在任意来源，与 CORS 策略保持一致
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
