package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 指令管道的运行指标，经 /metrics 暴露
var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "allegro_commands_total",
		Help: "已处理的指令总数，按结果分类",
	}, []string{"outcome"})

	DispatchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "allegro_dispatch_failures_total",
		Help: "指令管道各阶段的失败次数",
	}, []string{"stage"})

	DispatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "allegro_dispatch_duration_seconds",
		Help:    "单条指令完整管道耗时",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})
)
