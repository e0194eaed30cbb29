package dispatch

import (
	"errors"

	"allegro/protocol"
)

var (
	// ErrBackendUnavailable 没有注入可用的后端
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrDispatchRejected 某个后端写操作未通过其更窄的范围检查
	ErrDispatchRejected = errors.New("dispatch rejected")
	// ErrControlStepFailed 控制推进步骤失败
	ErrControlStepFailed = errors.New("control step failed")
)

// stageOf 将错误归类到错误分级，用于指标与日志
func stageOf(err error) string {
	switch {
	case errors.Is(err, ErrBackendUnavailable):
		return "backend_unavailable"
	case errors.Is(err, protocol.ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, protocol.ErrStructuralInvalid):
		return "structural_invalid"
	case errors.Is(err, ErrDispatchRejected):
		return "dispatch_rejected"
	case errors.Is(err, ErrControlStepFailed):
		return "control_step_failed"
	default:
		return "unknown"
	}
}
