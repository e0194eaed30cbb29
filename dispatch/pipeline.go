package dispatch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"allegro/backend"
	"allegro/define"
	"allegro/metrics"
	"allegro/protocol"
)

// Pipeline 指令管道：解码 → 校验 → 按固定顺序调度到后端 → 构造应答。
// 单实例独占一个后端句柄，内部不加锁；需要并发调用时由外层做串行化。
type Pipeline struct {
	backend backend.Backend
}

func NewPipeline(b backend.Backend) *Pipeline {
	return &Pipeline{backend: b}
}

// Backend 返回管道持有的后端句柄（供旧协议解析器与状态接口共用）
func (p *Pipeline) Backend() backend.Backend { return p.backend }

// Execute 处理一条 JSON 指令并返回应答。
// 任意步骤失败即短路返回错误响应，已成功的步骤不回滚，
// 后端可能处于部分更新状态。错误只会进入应答，不向外抛出。
func (p *Pipeline) Execute(raw []byte) *protocol.Response {
	timer := prometheus.NewTimer(metrics.DispatchDuration)
	defer timer.ObserveDuration()

	if p.backend == nil {
		return p.fail(ErrBackendUnavailable, "BHand not initialized")
	}

	cmd, err := protocol.ParseCommand(raw)
	if err != nil {
		return p.fail(err, fmt.Sprintf("JSON parsing error: %v", err))
	}

	if err := protocol.ValidateCommand(cmd); err != nil {
		return p.fail(err, "Invalid JSON command structure")
	}

	// 先设置控制模式。范围在这里按后端 API 的约定再查一次
	if err := p.setMotionType(cmd.MotionType); err != nil {
		return p.fail(err, "Failed to set motion type")
	}

	switch define.MotionType(cmd.MotionType) {
	case define.MotionJointPD:
		// PD 控制需要下发目标关节位置
		if err := p.setDesiredJointPositions(cmd.DesiredPositions); err != nil {
			return p.fail(err, "Failed to set desired joint positions")
		}
	default:
		// 其余控制模式只需设置模式本身，在范围内的未知模式静默接受
		log.Debugf("控制模式 %s(%d) 无额外调度动作", define.MotionType(cmd.MotionType), cmd.MotionType)
	}

	// 全零抓取力视为未提供，保留后端当前值
	if anyNonZero(cmd.GraspingForces) {
		if err := p.setGraspingForces(cmd.GraspingForces); err != nil {
			return p.fail(err, "Failed to set grasping forces")
		}
	}

	// 控制周期为 0 表示沿用默认值，不是设置为零
	if cmd.TimeInterval > 0 {
		if err := p.backend.SetTimeInterval(cmd.TimeInterval); err != nil {
			return p.fail(fmt.Errorf("%w: %v", ErrDispatchRejected, err), "Failed to set time interval")
		}
	}

	// 两组增益都提供时才下发，空增益表示调用方未提供
	if len(cmd.KpGains) > 0 && len(cmd.KdGains) > 0 {
		if err := p.setGains(cmd.KpGains, cmd.KdGains); err != nil {
			return p.fail(err, "Failed to set gains")
		}
	}

	// 无论何种控制模式都推进一步控制
	if err := p.backend.AdvanceControl(0.0); err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrControlStepFailed, err), "Failed to update control")
	}

	metrics.CommandsTotal.WithLabelValues("success").Inc()
	log.Infof("✅ 指令执行成功: motion=%s dt=%v", define.MotionType(cmd.MotionType), cmd.TimeInterval)

	return BuildSuccess("JSON command executed successfully", nil, p.backend)
}

// Snapshot 返回当前后端状态的只读应答，后端缺失时返回错误响应
func (p *Pipeline) Snapshot() *protocol.Response {
	if p.backend == nil {
		return BuildError("BHand not initialized")
	}
	return BuildStatus(p.backend)
}

// fail 记录失败并构造错误响应，wireMessage 是写入应答的协议文案
func (p *Pipeline) fail(err error, wireMessage string) *protocol.Response {
	stage := stageOf(err)
	metrics.CommandsTotal.WithLabelValues("error").Inc()
	metrics.DispatchFailures.WithLabelValues(stage).Inc()
	log.Warnf("⚠️ 指令执行失败 [%s]: %v", stage, err)
	return BuildError(wireMessage)
}

func (p *Pipeline) setMotionType(motionType int) error {
	if !define.MotionType(motionType).IsValid() {
		return fmt.Errorf("%w: 控制模式 %d 超出后端可接受范围", ErrDispatchRejected, motionType)
	}
	if err := p.backend.SetMotionType(motionType); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	return nil
}

func (p *Pipeline) setDesiredJointPositions(q []float64) error {
	if err := protocol.ValidateJointRange(q); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	if err := p.backend.SetDesiredJointPositions(q); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	return nil
}

func (p *Pipeline) setGraspingForces(forces []float64) error {
	if err := protocol.ValidateForceRange(forces); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	if err := p.backend.SetGraspingForces(forces); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	return nil
}

func (p *Pipeline) setGains(kp, kd []float64) error {
	if err := protocol.ValidateGainRange(kp, kd); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	if err := p.backend.SetGains(kp, kd); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
	}
	return nil
}

func anyNonZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}
