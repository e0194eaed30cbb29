package legacy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allegro/backend/sim"
	"allegro/define"
	"allegro/protocol"
)

func handCSV(v string) string {
	parts := make([]string, 16)
	for i := range parts {
		parts[i] = v
	}
	return strings.Join(parts, ",")
}

func TestParseFrame(t *testing.T) {
	frame, err := ParseFrame("1,2,3,4,5,6,7;" + handCSV("0.1") + ":ee")
	require.NoError(t, err)

	assert.Equal(t, "ee", frame.Code)
	assert.Len(t, frame.Arm, 7)
	require.Len(t, frame.Hand, 16)
	assert.Equal(t, 0.1, frame.Hand[0])
}

func TestParseFrameEmptySections(t *testing.T) {
	// 机械臂段为空：只有手部
	frame, err := ParseFrame(";" + handCSV("0.2") + ":jp")
	require.NoError(t, err)
	assert.Empty(t, frame.Arm)
	assert.Len(t, frame.Hand, 16)

	// 手部段为空：只有机械臂
	frame, err = ParseFrame("1,2,3;:ee")
	require.NoError(t, err)
	assert.Len(t, frame.Arm, 3)
	assert.Empty(t, frame.Hand)
}

func TestParseFrameMalformed(t *testing.T) {
	// 缺少指令码
	_, err := ParseFrame("1,2,3;4,5,6")
	assert.ErrorIs(t, err, protocol.ErrMalformedInput)

	// 指令码为空
	_, err = ParseFrame("1,2;3,4:")
	assert.ErrorIs(t, err, protocol.ErrMalformedInput)

	// 段数不对
	_, err = ParseFrame("1,2:ee")
	assert.ErrorIs(t, err, protocol.ErrMalformedInput)

	// 非数值
	_, err = ParseFrame("a,b;" + handCSV("0.1") + ":ee")
	assert.ErrorIs(t, err, protocol.ErrMalformedInput)

	// 手部段长度不是 16
	_, err = ParseFrame(";1,2,3:ee")
	assert.ErrorIs(t, err, protocol.ErrMalformedInput)
}

func TestEncodeJointsRoundTrip(t *testing.T) {
	q := make([]float64, 16)
	for i := range q {
		q[i] = float64(i) * 0.25
	}

	encoded := EncodeJoints(q)
	frame, err := ParseFrame(";" + encoded + ":jp")
	require.NoError(t, err)
	assert.Equal(t, q, frame.Hand)
}

func TestApplySetsDesiredPositions(t *testing.T) {
	hand := sim.NewHand(define.HAND_TYPE_RIGHT)

	frame, err := ParseFrame(";" + handCSV("0.3") + ":jp")
	require.NoError(t, err)
	require.NoError(t, Apply(frame, hand))

	desired := hand.DesiredJointPositions()
	for i, v := range desired {
		assert.Equal(t, 0.3, v, "desired[%d]", i)
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	hand := sim.NewHand(define.HAND_TYPE_RIGHT)

	frame, err := ParseFrame(";" + handCSV("7.0") + ":jp")
	require.NoError(t, err)

	// 与 JSON 管道相同的幅值检查，后端保持不变
	assert.Error(t, Apply(frame, hand))
	assert.Equal(t, make([]float64, 16), hand.DesiredJointPositions())
}

func TestApplyEmptyHandSectionNoOp(t *testing.T) {
	hand := sim.NewHand(define.HAND_TYPE_RIGHT)

	frame, err := ParseFrame("1,2,3;:ee")
	require.NoError(t, err)
	require.NoError(t, Apply(frame, hand))

	assert.Equal(t, make([]float64, 16), hand.DesiredJointPositions())
}

func TestApplyNilBackend(t *testing.T) {
	frame := &Frame{Hand: make([]float64, 16), Code: "jp"}
	assert.Error(t, Apply(frame, nil))
}
