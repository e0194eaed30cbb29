package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allegro/define"
)

func TestNewHandDefaults(t *testing.T) {
	h := NewHand(define.HAND_TYPE_RIGHT)

	assert.Equal(t, define.HAND_TYPE_RIGHT, h.HandType())
	assert.Equal(t, 0, h.MotionType())
	assert.Equal(t, define.DefaultDT, h.TimeInterval())
	assert.Equal(t, make([]float64, 16), h.JointPositions())
	assert.Equal(t, make([]float64, 4), h.GraspingForces())

	kp := h.KpGains()
	kd := h.KdGains()
	assert.Equal(t, 1.0, kp[0])
	assert.Equal(t, 0.1, kd[0])
}

func TestSetterLengthChecks(t *testing.T) {
	h := NewHand(define.HAND_TYPE_RIGHT)

	assert.Error(t, h.SetJointPositions(make([]float64, 4)))
	assert.Error(t, h.SetDesiredJointPositions(make([]float64, 15)))
	assert.Error(t, h.SetGraspingForces(make([]float64, 16)))
	assert.Error(t, h.SetGains(make([]float64, 16), make([]float64, 8)))
	assert.Error(t, h.SetTimeInterval(0))
	assert.Error(t, h.SetTimeInterval(-1))
}

func TestAdvanceControlPDTorque(t *testing.T) {
	h := NewHand(define.HAND_TYPE_RIGHT)

	current := make([]float64, 16)
	desired := make([]float64, 16)
	kp := make([]float64, 16)
	kd := make([]float64, 16)
	for i := range desired {
		current[i] = 0.1
		desired[i] = 0.5
		kp[i] = 2.0
		kd[i] = 0.1
	}

	require.NoError(t, h.SetJointPositions(current))
	require.NoError(t, h.SetDesiredJointPositions(desired))
	require.NoError(t, h.SetGains(kp, kd))
	require.NoError(t, h.AdvanceControl(0))

	// τ = kp·(q_des − q) = 2·(0.5 − 0.1)
	for i, tau := range h.JointTorque() {
		assert.InDelta(t, 0.8, tau, 1e-12, "tau[%d]", i)
	}
}

func TestReadersReturnCopies(t *testing.T) {
	h := NewHand(define.HAND_TYPE_RIGHT)

	q := h.JointPositions()
	q[0] = 42

	fresh := h.JointPositions()
	assert.Equal(t, 0.0, fresh[0])
}

func TestTelemetryShape(t *testing.T) {
	h := NewHand(define.HAND_TYPE_RIGHT)

	x, y, z := h.FingertipPositions()
	assert.Len(t, x, 4)
	assert.Len(t, y, 4)
	assert.Len(t, z, 4)

	fx, fy, fz := h.GraspForceVectors()
	assert.Len(t, fx, 4)
	assert.Len(t, fy, 4)
	assert.Len(t, fz, 4)
}
