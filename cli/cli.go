package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"allegro/define"
)

// 解析配置：命令行参数优先，环境变量（ALLEGRO_ 前缀）覆盖默认值
func ParseConfig() *define.Config {
	pflag.String("port", "9099", "Web 服务的端口")
	pflag.String("backend", define.BackendSim, "后端模式 (sim|bridge)")
	pflag.String("bridge-url", "http://127.0.0.1:5260", "hand-bridge 服务的 URL（backend=bridge 时使用）")
	pflag.String("hand", "right", "手型 (left|right)")
	pflag.String("log-level", "info", "日志级别 (debug|info|warn|error)")
	pflag.Parse()

	_ = viper.BindPFlags(pflag.CommandLine)

	viper.SetEnvPrefix("allegro")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return &define.Config{
		WebPort:     viper.GetString("port"),
		BackendMode: viper.GetString("backend"),
		BridgeURL:   viper.GetString("bridge-url"),
		HandType:    viper.GetString("hand"),
		LogLevel:    viper.GetString("log-level"),
	}
}
