package protocol

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allegro/define"
)

func TestParseCommandDefaults(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, int(define.MotionNone), cmd.MotionType)
	assert.Equal(t, make([]float64, 16), cmd.JointPositions)
	assert.Equal(t, make([]float64, 16), cmd.DesiredPositions)
	assert.Equal(t, make([]float64, 4), cmd.GraspingForces)
	assert.Equal(t, define.DefaultDT, cmd.TimeInterval)
	// 未提供的增益保持为空
	assert.Empty(t, cmd.KpGains)
	assert.Empty(t, cmd.KdGains)
}

func TestParseCommandInvalidJSON(t *testing.T) {
	_, err := ParseCommand([]byte(`{invalid json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseCommandNullArraysZeroFilled(t *testing.T) {
	payload := `{"motion_type":2,"joint_positions":null,"desired_positions":null,"grasping_forces":null}`
	cmd, err := ParseCommand([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, make([]float64, 16), cmd.JointPositions)
	assert.Equal(t, make([]float64, 16), cmd.DesiredPositions)
	assert.Equal(t, make([]float64, 4), cmd.GraspingForces)
	// 校验器必须接受 null 补零后的指令
	assert.NoError(t, ValidateCommand(cmd))
}

func TestParseCommandResizesWrongLength(t *testing.T) {
	payload := `{"desired_positions":[0.1,0.2],"grasping_forces":[1,2,3,4,5,6]}`
	cmd, err := ParseCommand([]byte(payload))
	require.NoError(t, err)

	// 解码阶段强制对齐长度而不是拒绝
	require.Len(t, cmd.DesiredPositions, 16)
	assert.Equal(t, 0.1, cmd.DesiredPositions[0])
	assert.Equal(t, 0.2, cmd.DesiredPositions[1])
	assert.Equal(t, 0.0, cmd.DesiredPositions[2])

	assert.Equal(t, []float64{1, 2, 3, 4}, cmd.GraspingForces)
	assert.NoError(t, ValidateCommand(cmd))
}

func TestParseCommandNonNumericMotionType(t *testing.T) {
	_, err := ParseCommand([]byte(`{"motion_type":"home"}`))
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = ParseCommand([]byte(`{"time_interval":"fast"}`))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseCommandNonSequenceField(t *testing.T) {
	_, err := ParseCommand([]byte(`{"joint_positions":42}`))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseCommandAdvisoryFields(t *testing.T) {
	payload := `{"fingertip_positions":[[0.1,0.2,0.3],[0.4,0.5,0.6],[0.7,0.8,0.9],[1.0,1.1,1.2]],"object_displacement":[0.5,0.6,0.7]}`
	cmd, err := ParseCommand([]byte(payload))
	require.NoError(t, err)

	require.Len(t, cmd.FingertipPositions, 4)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, cmd.FingertipPositions[0])
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, cmd.ObjectDisplacement)
}

func TestParseCommandFullPayload(t *testing.T) {
	joints := make([]float64, 16)
	for i := range joints {
		joints[i] = 0.1
	}
	jointsJSON, _ := json.Marshal(joints)
	payload := fmt.Sprintf(`{"motion_type":11,"desired_positions":%s,"time_interval":0.005,"kp_gains":%s,"kd_gains":%s}`,
		jointsJSON, jointsJSON, jointsJSON)

	cmd, err := ParseCommand([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 11, cmd.MotionType)
	assert.Equal(t, joints, cmd.DesiredPositions)
	assert.Equal(t, 0.005, cmd.TimeInterval)
	assert.Equal(t, joints, cmd.KpGains)
	assert.Equal(t, joints, cmd.KdGains)
	assert.NoError(t, ValidateCommand(cmd))
}
