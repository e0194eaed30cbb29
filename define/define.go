package define

// 手部自由度常量（BHand 协议固定值）
const (
	NumFingers = 4              // 手指数量
	NumJoints  = NumFingers * 4 // 总关节数（每指 4 关节）
	DefaultDT  = 0.003          // 默认控制周期（秒）
)

// 后端模式
const (
	BackendSim    = "sim"    // 内置仿真后端
	BackendBridge = "bridge" // 远程 hand-bridge 服务
)

// 配置结构体
type Config struct {
	WebPort     string
	BackendMode string
	BridgeURL   string
	HandType    string
	LogLevel    string
}

// API 响应结构体（服务管理接口使用，指令管道本身使用 protocol.Response）
type ApiResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
