package protocol

import (
	"fmt"
	"math"

	"allegro/define"
)

// 调度阶段的物理范围上限
const (
	MaxJointAngle = 6.28    // 关节角度上限（约 2π 弧度）
	MaxGraspForce = 100.0   // 单指抓取力上限（牛顿）
	MaxKpGain     = 10000.0 // 比例增益上限
	MaxKdGain     = 1000.0  // 微分增益上限
)

// ValidateCommand 结构校验：枚举范围、定长、数值有限性。
// 没有部分有效的概念，任意一项不通过即整体无效。
func ValidateCommand(cmd *Command) error {
	if !define.MotionType(cmd.MotionType).IsValid() {
		return fmt.Errorf("%w: 控制模式 %d 超出范围 [0, %d)", ErrStructuralInvalid, cmd.MotionType, define.NumberOfMotionTypes)
	}

	if len(cmd.JointPositions) != define.NumJoints {
		return fmt.Errorf("%w: joint_positions 长度 %d", ErrStructuralInvalid, len(cmd.JointPositions))
	}
	if len(cmd.DesiredPositions) != define.NumJoints {
		return fmt.Errorf("%w: desired_positions 长度 %d", ErrStructuralInvalid, len(cmd.DesiredPositions))
	}
	if len(cmd.GraspingForces) != define.NumFingers {
		return fmt.Errorf("%w: grasping_forces 长度 %d", ErrStructuralInvalid, len(cmd.GraspingForces))
	}

	// 增益为空表示未提供；提供时必须是完整的 16 元素
	if len(cmd.KpGains) != 0 && len(cmd.KpGains) != define.NumJoints {
		return fmt.Errorf("%w: kp_gains 长度 %d", ErrStructuralInvalid, len(cmd.KpGains))
	}
	if len(cmd.KdGains) != 0 && len(cmd.KdGains) != define.NumJoints {
		return fmt.Errorf("%w: kd_gains 长度 %d", ErrStructuralInvalid, len(cmd.KdGains))
	}

	if idx, bad := firstNonFinite(cmd.JointPositions); bad {
		return fmt.Errorf("%w: joint_positions[%d] 非有限数值", ErrStructuralInvalid, idx)
	}
	if idx, bad := firstNonFinite(cmd.DesiredPositions); bad {
		return fmt.Errorf("%w: desired_positions[%d] 非有限数值", ErrStructuralInvalid, idx)
	}
	if idx, bad := firstNonFinite(cmd.GraspingForces); bad {
		return fmt.Errorf("%w: grasping_forces[%d] 非有限数值", ErrStructuralInvalid, idx)
	}

	if cmd.TimeInterval < 0 || math.IsNaN(cmd.TimeInterval) || math.IsInf(cmd.TimeInterval, 0) {
		return fmt.Errorf("%w: time_interval %v", ErrStructuralInvalid, cmd.TimeInterval)
	}

	return nil
}

// ValidateJointRange 调度阶段检查：16 元素、有限、幅值 ≤ 2π
func ValidateJointRange(q []float64) error {
	if len(q) != define.NumJoints {
		return fmt.Errorf("关节数组长度必须为 %d，实际 %d", define.NumJoints, len(q))
	}
	for i, v := range q {
		if !finite(v) || math.Abs(v) > MaxJointAngle {
			return fmt.Errorf("关节角度 [%d]=%v 超出 ±%v", i, v, MaxJointAngle)
		}
	}
	return nil
}

// ValidateForceRange 调度阶段检查：4 元素、有限、幅值 ≤ 100N
func ValidateForceRange(forces []float64) error {
	if len(forces) != define.NumFingers {
		return fmt.Errorf("抓取力数组长度必须为 %d，实际 %d", define.NumFingers, len(forces))
	}
	for i, v := range forces {
		if !finite(v) || math.Abs(v) > MaxGraspForce {
			return fmt.Errorf("抓取力 [%d]=%v 超出 ±%v", i, v, MaxGraspForce)
		}
	}
	return nil
}

// ValidateGainRange 调度阶段检查：各 16 元素，kp ∈ [0, 10000]，kd ∈ [0, 1000]
func ValidateGainRange(kp, kd []float64) error {
	if len(kp) != define.NumJoints || len(kd) != define.NumJoints {
		return fmt.Errorf("增益数组长度必须为 %d，实际 kp=%d kd=%d", define.NumJoints, len(kp), len(kd))
	}
	for i, v := range kp {
		if !finite(v) || v < 0 || v > MaxKpGain {
			return fmt.Errorf("kp[%d]=%v 超出 [0, %v]", i, v, MaxKpGain)
		}
	}
	for i, v := range kd {
		if !finite(v) || v < 0 || v > MaxKdGain {
			return fmt.Errorf("kd[%d]=%v 超出 [0, %v]", i, v, MaxKdGain)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func firstNonFinite(values []float64) (int, bool) {
	for i, v := range values {
		if !finite(v) {
			return i, true
		}
	}
	return -1, false
}
