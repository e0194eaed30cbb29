package protocol

import (
	"encoding/json"
	"fmt"

	"allegro/define"
)

// Command 一条经过解码的手部指令。校验通过后不再修改。
type Command struct {
	MotionType         int
	JointPositions     []float64   // 当前关节位置（16，弧度）
	DesiredPositions   []float64   // 目标关节位置（16，弧度）
	GraspingForces     []float64   // 抓取力（4，牛顿）
	FingertipPositions [][]float64 // 指尖坐标 4×3，仅作参考，不参与调度
	ObjectDisplacement []float64   // 物体位移，仅作参考，不参与调度
	TimeInterval       float64     // 控制周期（秒）
	KpGains            []float64   // 比例增益（16），空表示未提供
	KdGains            []float64   // 微分增益（16），空表示未提供
}

// NewCommand 返回带默认值的指令：定长数组全零，控制周期 0.003
func NewCommand() *Command {
	return &Command{
		MotionType:       int(define.MotionNone),
		JointPositions:   make([]float64, define.NumJoints),
		DesiredPositions: make([]float64, define.NumJoints),
		GraspingForces:   make([]float64, define.NumFingers),
		TimeInterval:     define.DefaultDT,
	}
}

// ParseCommand 将 JSON 负载解析为 Command。
// 缺失的字段保留默认值；增益字段缺失或为 null 时保持为空，
// 表示调用方未提供增益。
func ParseCommand(data []byte) (*Command, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	cmd := NewCommand()

	if raw, ok := doc["motion_type"]; ok {
		num, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: motion_type must be a number", ErrMalformedInput)
		}
		cmd.MotionType = int(num)
	}

	var err error
	if raw, ok := doc["joint_positions"]; ok {
		if cmd.JointPositions, err = DecodeVector(raw, define.NumJoints); err != nil {
			return nil, fmt.Errorf("joint_positions: %w", err)
		}
	}

	if raw, ok := doc["desired_positions"]; ok {
		if cmd.DesiredPositions, err = DecodeVector(raw, define.NumJoints); err != nil {
			return nil, fmt.Errorf("desired_positions: %w", err)
		}
	}

	if raw, ok := doc["grasping_forces"]; ok {
		if cmd.GraspingForces, err = DecodeVector(raw, define.NumFingers); err != nil {
			return nil, fmt.Errorf("grasping_forces: %w", err)
		}
	}

	if raw, ok := doc["fingertip_positions"]; ok {
		cmd.FingertipPositions = DecodeMatrix(raw)
	}

	if raw, ok := doc["object_displacement"]; ok {
		if cmd.ObjectDisplacement, err = DecodeVector(raw, -1); err != nil {
			return nil, fmt.Errorf("object_displacement: %w", err)
		}
	}

	if raw, ok := doc["time_interval"]; ok {
		num, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: time_interval must be a number", ErrMalformedInput)
		}
		cmd.TimeInterval = num
	}

	if raw, ok := doc["kp_gains"]; ok && raw != nil {
		if cmd.KpGains, err = DecodeVector(raw, define.NumJoints); err != nil {
			return nil, fmt.Errorf("kp_gains: %w", err)
		}
	}

	if raw, ok := doc["kd_gains"]; ok && raw != nil {
		if cmd.KdGains, err = DecodeVector(raw, define.NumJoints); err != nil {
			return nil, fmt.Errorf("kd_gains: %w", err)
		}
	}

	return cmd, nil
}
