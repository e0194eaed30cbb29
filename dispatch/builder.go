package dispatch

import (
	"allegro/backend"
	"allegro/define"
	"allegro/protocol"
)

// BuildError 构造错误响应。数值字段保持零填充默认值：
// 管道中途失败后后端可能处于部分更新状态，展示它反而会误导调用方。
func BuildError(message string) *protocol.Response {
	resp := protocol.NewResponse(protocol.RespError, false)
	resp.Message = message
	return resp
}

// BuildSuccess 构造成功响应并填入后端状态快照，data 可为 nil
func BuildSuccess(message string, data []float64, b backend.Backend) *protocol.Response {
	resp := snapshot(protocol.RespSuccess, b)
	resp.Success = true
	resp.Message = message
	if data != nil {
		resp.Data = data
	}
	return resp
}

// BuildStatus 构造只读状态响应，不触发任何后端写操作
func BuildStatus(b backend.Backend) *protocol.Response {
	resp := snapshot(protocol.RespStatus, b)
	resp.Success = true
	resp.Message = "Hand state snapshot"
	return resp
}

// snapshot 从后端读取当前手部状态填入响应
func snapshot(t protocol.ResponseType, b backend.Backend) *protocol.Response {
	resp := protocol.NewResponse(t, true)

	resp.QposMeasured = protocol.FitLength(b.JointPositions(), define.NumJoints)
	resp.TauCommanded = protocol.FitLength(b.JointTorque(), define.NumJoints)
	resp.QposCommanded = protocol.FitLength(b.DesiredJointPositions(), define.NumJoints)

	// 指尖与分轴力遥测是可选能力，不支持时保持零值
	if telemetry, ok := b.(backend.Telemetry); ok {
		x, y, z := telemetry.FingertipPositions()
		resp.FingertipX = protocol.FitLength(x, define.NumFingers)
		resp.FingertipY = protocol.FitLength(y, define.NumFingers)
		resp.FingertipZ = protocol.FitLength(z, define.NumFingers)

		fx, fy, fz := telemetry.GraspForceVectors()
		resp.GraspForceX = protocol.FitLength(fx, define.NumFingers)
		resp.GraspForceY = protocol.FitLength(fy, define.NumFingers)
		resp.GraspForceZ = protocol.FitLength(fz, define.NumFingers)
	}

	resp.HandType = int(b.HandType())
	resp.TimeInterval = b.TimeInterval()
	resp.MotionType = b.MotionType()

	return resp
}
