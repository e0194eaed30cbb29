package sim

import (
	"fmt"
	"sync"

	"allegro/define"
)

// Hand 内置仿真后端：用一个简化的 PD 力矩模型代替真实 BHand 库，
// 用于无硬件运行与测试。
type Hand struct {
	mu sync.Mutex

	handType   define.HandType
	motionType int
	dt         float64

	jointPositions   []float64
	desiredPositions []float64
	jointTorques     []float64
	graspingForces   []float64
	kpGains          []float64
	kdGains          []float64

	fingertipX, fingertipY, fingertipZ    []float64
	graspForceX, graspForceY, graspForceZ []float64
}

func NewHand(handType define.HandType) *Hand {
	h := &Hand{
		handType:         handType,
		dt:               define.DefaultDT,
		jointPositions:   make([]float64, define.NumJoints),
		desiredPositions: make([]float64, define.NumJoints),
		jointTorques:     make([]float64, define.NumJoints),
		graspingForces:   make([]float64, define.NumFingers),
		kpGains:          make([]float64, define.NumJoints),
		kdGains:          make([]float64, define.NumJoints),
		fingertipX:       make([]float64, define.NumFingers),
		fingertipY:       make([]float64, define.NumFingers),
		fingertipZ:       make([]float64, define.NumFingers),
		graspForceX:      make([]float64, define.NumFingers),
		graspForceY:      make([]float64, define.NumFingers),
		graspForceZ:      make([]float64, define.NumFingers),
	}

	// 默认增益与真实 BHand 初始化保持一致
	for i := range h.kpGains {
		h.kpGains[i] = 1.0
		h.kdGains[i] = 0.1
	}

	return h
}

func (h *Hand) SetMotionType(motionType int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.motionType = motionType
	return nil
}

func (h *Hand) SetJointPositions(q []float64) error {
	if len(q) != define.NumJoints {
		return fmt.Errorf("关节位置长度必须为 %d，实际 %d", define.NumJoints, len(q))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.jointPositions, q)
	return nil
}

func (h *Hand) SetDesiredJointPositions(q []float64) error {
	if len(q) != define.NumJoints {
		return fmt.Errorf("目标关节位置长度必须为 %d，实际 %d", define.NumJoints, len(q))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.desiredPositions, q)
	return nil
}

func (h *Hand) SetGraspingForces(forces []float64) error {
	if len(forces) != define.NumFingers {
		return fmt.Errorf("抓取力长度必须为 %d，实际 %d", define.NumFingers, len(forces))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.graspingForces, forces)
	return nil
}

func (h *Hand) SetGains(kp, kd []float64) error {
	if len(kp) != define.NumJoints || len(kd) != define.NumJoints {
		return fmt.Errorf("增益长度必须为 %d，实际 kp=%d kd=%d", define.NumJoints, len(kp), len(kd))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.kpGains, kp)
	copy(h.kdGains, kd)
	return nil
}

func (h *Hand) SetTimeInterval(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("控制周期必须为正数，实际 %v", dt)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dt = dt
	return nil
}

// AdvanceControl 推进一步仿真：τ = kp·(q_des − q)
func (h *Hand) AdvanceControl(t float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := 0; i < define.NumJoints; i++ {
		h.jointTorques[i] = h.kpGains[i] * (h.desiredPositions[i] - h.jointPositions[i])
	}
	return nil
}

func (h *Hand) JointTorque() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.jointTorques)
}

func (h *Hand) MotionType() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.motionType
}

func (h *Hand) JointPositions() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.jointPositions)
}

func (h *Hand) DesiredJointPositions() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.desiredPositions)
}

func (h *Hand) GraspingForces() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.graspingForces)
}

func (h *Hand) TimeInterval() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dt
}

func (h *Hand) HandType() define.HandType {
	return h.handType
}

// KpGains 测试辅助读取
func (h *Hand) KpGains() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.kpGains)
}

// KdGains 测试辅助读取
func (h *Hand) KdGains() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.kdGains)
}

// FingertipPositions 实现 backend.Telemetry
func (h *Hand) FingertipPositions() (x, y, z []float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.fingertipX), cloned(h.fingertipY), cloned(h.fingertipZ)
}

// GraspForceVectors 实现 backend.Telemetry
func (h *Hand) GraspForceVectors() (x, y, z []float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloned(h.graspForceX), cloned(h.graspForceY), cloned(h.graspForceZ)
}

func cloned(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
