package backend

import "allegro/define"

// Backend 代表一个可驱动的手部执行单元（真实硬件桥接或仿真）。
// 管道通过注入的 Backend 读写手部状态，不假设其内部表示。
type Backend interface {
	SetMotionType(motionType int) error             // 设置控制模式
	SetJointPositions(q []float64) error            // 写入当前关节位置（16）
	SetDesiredJointPositions(q []float64) error     // 写入目标关节位置（16）
	SetGraspingForces(forces []float64) error       // 写入抓取力（4）
	SetGains(kp, kd []float64) error                // 写入 PD 增益（各 16）
	SetTimeInterval(dt float64) error               // 写入控制周期
	AdvanceControl(t float64) error                 // 推进一步控制计算
	JointTorque() []float64                         // 读取最近一次计算的关节力矩（16）

	// --- 状态快照读取 ---
	MotionType() int
	JointPositions() []float64
	DesiredJointPositions() []float64
	GraspingForces() []float64
	TimeInterval() float64
	HandType() define.HandType
}

// Telemetry 可选能力：提供指尖坐标与分轴抓取力遥测。
// 不支持遥测的后端保持响应中对应字段为零值。
type Telemetry interface {
	FingertipPositions() (x, y, z []float64) // 每个返回 4 个元素
	GraspForceVectors() (x, y, z []float64)  // 每个返回 4 个元素
}
