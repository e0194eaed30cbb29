package protocol

import (
	"encoding/json"
	"fmt"

	"allegro/define"
)

// ResponseType 响应类别
type ResponseType string

const (
	RespSuccess ResponseType = "SUCCESS"
	RespError   ResponseType = "ERROR"
	RespData    ResponseType = "DATA"
	RespStatus  ResponseType = "STATUS"
)

// Response 一次指令的应答记录，携带完整手部状态快照。
// 定长数组恒为满长度（16/16/16/4×3/4×3），零填充本身是协议的一部分：
// 下游编码器假定这些字段始终存在。交给编码器后不再修改。
type Response struct {
	Type    ResponseType `json:"type"`
	Success bool         `json:"success"`
	Message string       `json:"message"`

	QposMeasured  []float64 `json:"qpos_measured"`  // 实测关节位置（16）
	TauCommanded  []float64 `json:"tau_commanded"`  // 计算力矩（16）
	QposCommanded []float64 `json:"qpos_commanded"` // 目标关节位置（16）

	FingertipX []float64 `json:"fingertip_x"` // 指尖 X 坐标（4）
	FingertipY []float64 `json:"fingertip_y"` // 指尖 Y 坐标（4）
	FingertipZ []float64 `json:"fingertip_z"` // 指尖 Z 坐标（4）

	GraspForceX []float64 `json:"grasp_force_x"` // X 方向抓取力（4）
	GraspForceY []float64 `json:"grasp_force_y"` // Y 方向抓取力（4）
	GraspForceZ []float64 `json:"grasp_force_z"` // Z 方向抓取力（4）

	HandType     int     `json:"hand_type"`
	TimeInterval float64 `json:"time_interval"`
	MotionType   int     `json:"motion_type"`

	Data []float64 `json:"data"` // 自定义附加数值
}

// NewResponse 构造零填充的响应记录
func NewResponse(t ResponseType, success bool) *Response {
	return &Response{
		Type:          t,
		Success:       success,
		QposMeasured:  make([]float64, define.NumJoints),
		TauCommanded:  make([]float64, define.NumJoints),
		QposCommanded: make([]float64, define.NumJoints),
		FingertipX:    make([]float64, define.NumFingers),
		FingertipY:    make([]float64, define.NumFingers),
		FingertipZ:    make([]float64, define.NumFingers),
		GraspForceX:   make([]float64, define.NumFingers),
		GraspForceY:   make([]float64, define.NumFingers),
		GraspForceZ:   make([]float64, define.NumFingers),
		TimeInterval:  define.DefaultDT,
		Data:          []float64{},
	}
}

// EncodeResponse 将响应序列化为线上 JSON。
// 序列化前强制所有定长字段满长度，任何字段都不会被省略。
func EncodeResponse(resp *Response) ([]byte, error) {
	normalized := *resp
	normalized.QposMeasured = FitLength(resp.QposMeasured, define.NumJoints)
	normalized.TauCommanded = FitLength(resp.TauCommanded, define.NumJoints)
	normalized.QposCommanded = FitLength(resp.QposCommanded, define.NumJoints)
	normalized.FingertipX = FitLength(resp.FingertipX, define.NumFingers)
	normalized.FingertipY = FitLength(resp.FingertipY, define.NumFingers)
	normalized.FingertipZ = FitLength(resp.FingertipZ, define.NumFingers)
	normalized.GraspForceX = FitLength(resp.GraspForceX, define.NumFingers)
	normalized.GraspForceY = FitLength(resp.GraspForceY, define.NumFingers)
	normalized.GraspForceZ = FitLength(resp.GraspForceZ, define.NumFingers)
	if normalized.Data == nil {
		normalized.Data = []float64{}
	}

	data, err := json.Marshal(&normalized)
	if err != nil {
		return nil, fmt.Errorf("序列化响应失败：%w", err)
	}
	return data, nil
}

// DecodeResponse 从线上 JSON 还原响应记录
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &resp, nil
}
