package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"allegro/api"
	"allegro/backend"
	"allegro/backend/canbridge"
	"allegro/backend/sim"
	"allegro/cli"
	"allegro/config"
	"allegro/define"
	"allegro/dispatch"
)

// 初始化服务
func initService() {
	log.Infof("🔧 服务配置：")
	log.Infof("   - Web 端口: %s", config.Config.WebPort)
	log.Infof("   - 后端模式: %s", config.Config.BackendMode)
	if config.Config.BackendMode == define.BackendBridge {
		log.Infof("   - hand-bridge URL: %s", config.Config.BridgeURL)
	}
	log.Infof("   - 手型: %s", define.ParseHandType(config.Config.HandType))

	log.Info("✅ 控制服务初始化完成")
}

// 根据配置选择后端实现
func newBackend() backend.Backend {
	handType := define.ParseHandType(config.Config.HandType)

	if config.Config.BackendMode == define.BackendBridge {
		client := canbridge.NewClient(config.Config.BridgeURL, handType)
		if !client.IsConnected() {
			log.Warnf("⚠️ hand-bridge 服务暂不可达: %s，首次指令前请确认服务已启动", config.Config.BridgeURL)
		}
		return client
	}

	log.Info("🤖 使用内置仿真后端")
	return sim.NewHand(handType)
}

func main() {
	// 解析配置
	config.Config = cli.ParseConfig()

	// 验证配置
	if !config.IsValidBackendMode(config.Config.BackendMode) {
		log.Fatalf("❌ 无效的后端模式: %s", config.Config.BackendMode)
	}
	if !config.IsValidHandType(config.Config.HandType) {
		log.Fatalf("❌ 无效的手型: %s", config.Config.HandType)
	}

	// 设置日志级别
	if level, err := log.ParseLevel(config.Config.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("⚠️ 无效的日志级别 %s，使用 info", config.Config.LogLevel)
	}

	log.Info("🚀 启动 Allegro 手部控制服务")

	// 初始化服务
	initService()

	// 设置 Gin 模式
	gin.SetMode(gin.ReleaseMode)

	// 创建 Gin 引擎
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // 允许的域，*表示允许所有
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 组装指令管道并设置 API 路由
	pipeline := dispatch.NewPipeline(newBackend())
	api.NewServer(pipeline).SetupRoutes(r)

	// 启动服务器
	log.Infof("🌐 Allegro 手部控制服务运行在 http://localhost:%s", config.Config.WebPort)

	if err := r.Run(":" + config.Config.WebPort); err != nil {
		log.Fatalf("❌ 服务启动失败: %v", err)
	}
}
