// Package legacy 实现旧版纯文本指令协议。
// 帧格式为 "<机械臂 CSV>;<手部 CSV>:<指令码>"，与 JSON 管道共用同一个
// 后端实例，两边互不破坏对方的不变量。
package legacy

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"allegro/backend"
	"allegro/define"
	"allegro/protocol"
)

// Frame 一条解析后的文本指令
type Frame struct {
	Arm  []float64 // 机械臂关节段，本服务不消费
	Hand []float64 // 手部关节段（16），作为目标关节位置下发
	Code string    // 指令码，例如 "ee", "jp"
}

// ParseFrame 解析文本帧。手部段存在时必须恰好为 16 个逗号分隔的数值。
func ParseFrame(s string) (*Frame, error) {
	sep := strings.LastIndex(s, ":")
	if sep < 0 {
		return nil, fmt.Errorf("%w: 缺少指令码分隔符 ':'", protocol.ErrMalformedInput)
	}

	body, code := s[:sep], s[sep+1:]
	if code == "" {
		return nil, fmt.Errorf("%w: 指令码为空", protocol.ErrMalformedInput)
	}

	sections := strings.Split(body, ";")
	if len(sections) != 2 {
		return nil, fmt.Errorf("%w: 期望 2 个分号分隔的段，实际 %d", protocol.ErrMalformedInput, len(sections))
	}

	frame := &Frame{Code: code}

	var err error
	if frame.Arm, err = parseCSV(sections[0]); err != nil {
		return nil, fmt.Errorf("%w: 机械臂段: %v", protocol.ErrMalformedInput, err)
	}
	if frame.Hand, err = parseCSV(sections[1]); err != nil {
		return nil, fmt.Errorf("%w: 手部段: %v", protocol.ErrMalformedInput, err)
	}

	if len(frame.Hand) > 0 && len(frame.Hand) != define.NumJoints {
		return nil, fmt.Errorf("%w: 手部段长度必须为 %d，实际 %d", protocol.ErrMalformedInput, define.NumJoints, len(frame.Hand))
	}

	return frame, nil
}

// EncodeJoints 将 16 关节向量编码为旧协议的 CSV 文本
func EncodeJoints(q []float64) string {
	parts := make([]string, len(q))
	for i, v := range q {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Apply 将帧作用到后端：手部段经过与 JSON 管道相同的幅值检查后
// 作为目标关节位置下发，机械臂段忽略。空手部段不产生副作用。
func Apply(frame *Frame, b backend.Backend) error {
	if b == nil {
		return fmt.Errorf("后端未初始化")
	}
	if len(frame.Hand) == 0 {
		log.Debugf("文本指令 %q 不含手部段，忽略", frame.Code)
		return nil
	}

	if err := protocol.ValidateJointRange(frame.Hand); err != nil {
		return fmt.Errorf("手部关节校验失败：%w", err)
	}
	if err := b.SetDesiredJointPositions(frame.Hand); err != nil {
		return fmt.Errorf("下发目标关节位置失败：%w", err)
	}

	log.Infof("✅ 文本指令已执行: code=%s", frame.Code)
	return nil
}

func parseCSV(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("无法解析数值 %q", part)
		}
		values = append(values, v)
	}
	return values, nil
}
