package protocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCommand() *Command {
	cmd := NewCommand()
	cmd.MotionType = 2
	return cmd
}

func TestValidateCommandMotionTypeRange(t *testing.T) {
	for _, mt := range []int{0, 1, 11, 13} {
		cmd := validCommand()
		cmd.MotionType = mt
		assert.NoError(t, ValidateCommand(cmd), "motion_type=%d", mt)
	}

	for _, mt := range []int{-1, 14, 99} {
		cmd := validCommand()
		cmd.MotionType = mt
		err := ValidateCommand(cmd)
		require.Error(t, err, "motion_type=%d", mt)
		assert.ErrorIs(t, err, ErrStructuralInvalid)
	}
}

func TestValidateCommandLengths(t *testing.T) {
	cmd := validCommand()
	cmd.JointPositions = make([]float64, 15)
	assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

	cmd = validCommand()
	cmd.DesiredPositions = make([]float64, 17)
	assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

	cmd = validCommand()
	cmd.GraspingForces = make([]float64, 3)
	assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

	// 提供增益时必须完整
	cmd = validCommand()
	cmd.KpGains = make([]float64, 8)
	assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

	// 空增益表示未提供，结构上合法
	cmd = validCommand()
	cmd.KpGains = nil
	cmd.KdGains = nil
	assert.NoError(t, ValidateCommand(cmd))
}

func TestValidateCommandNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cmd := validCommand()
		cmd.JointPositions[3] = bad
		assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

		cmd = validCommand()
		cmd.DesiredPositions[0] = bad
		assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

		cmd = validCommand()
		cmd.GraspingForces[2] = bad
		assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

		cmd = validCommand()
		cmd.TimeInterval = bad
		assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)
	}
}

func TestValidateCommandNegativeTimeInterval(t *testing.T) {
	cmd := validCommand()
	cmd.TimeInterval = -0.001
	assert.ErrorIs(t, ValidateCommand(cmd), ErrStructuralInvalid)

	cmd.TimeInterval = 0
	assert.NoError(t, ValidateCommand(cmd))
}

func TestValidateJointRange(t *testing.T) {
	q := make([]float64, 16)
	assert.NoError(t, ValidateJointRange(q))

	q[5] = 6.28
	assert.NoError(t, ValidateJointRange(q))

	q[5] = 6.29
	assert.Error(t, ValidateJointRange(q))

	q[5] = -7.0
	assert.Error(t, ValidateJointRange(q))

	assert.Error(t, ValidateJointRange(make([]float64, 4)))
}

func TestValidateForceRange(t *testing.T) {
	f := []float64{10, -50, 100, 0}
	assert.NoError(t, ValidateForceRange(f))

	f[0] = 150
	assert.Error(t, ValidateForceRange(f))

	f[0] = -101
	assert.Error(t, ValidateForceRange(f))

	assert.Error(t, ValidateForceRange([]float64{1, 2}))
}

func TestValidateGainRange(t *testing.T) {
	kp := make([]float64, 16)
	kd := make([]float64, 16)
	for i := range kp {
		kp[i] = 500
		kd[i] = 20
	}
	assert.NoError(t, ValidateGainRange(kp, kd))

	kp[0] = 10001
	assert.Error(t, ValidateGainRange(kp, kd))
	kp[0] = -1
	assert.Error(t, ValidateGainRange(kp, kd))
	kp[0] = 0

	kd[0] = 1001
	assert.Error(t, ValidateGainRange(kp, kd))
	kd[0] = 0

	assert.Error(t, ValidateGainRange(make([]float64, 8), kd))
}
