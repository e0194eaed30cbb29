package canbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"allegro/define"
)

// handOp 代表发送给 hand-bridge 服务的一次后端操作
type handOp struct {
	Op     string    `json:"op"`               // 操作名，例如 "motion-type", "advance"
	Values []float64 `json:"values,omitempty"` // 操作的数值负载
	Kp     []float64 `json:"kp,omitempty"`     // 比例增益（仅 "gains"）
	Kd     []float64 `json:"kd,omitempty"`     // 微分增益（仅 "gains"）
	Scalar float64   `json:"scalar,omitempty"` // 标量参数（motion type、dt、时间）
}

// handState hand-bridge 返回的手部状态文档
type handState struct {
	MotionType       int       `json:"motionType"`
	JointPositions   []float64 `json:"jointPositions"`
	DesiredPositions []float64 `json:"desiredPositions"`
	JointTorques     []float64 `json:"jointTorques"`
	GraspingForces   []float64 `json:"graspingForces"`
	TimeInterval     float64   `json:"timeInterval"`
}

// apiEnvelope hand-bridge 服务的统一响应格式
type apiEnvelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Client 通过 HTTP 将后端操作转发到远程 hand-bridge 服务，
// 并在本地维护一份状态镜像供响应快照读取。
type Client struct {
	serviceURL string
	client     *http.Client
	handType   define.HandType

	mu    sync.Mutex
	state handState
}

func NewClient(serviceURL string, handType define.HandType) *Client {
	c := &Client{
		serviceURL: serviceURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		handType:   handType,
	}
	c.state = handState{
		JointPositions:   make([]float64, define.NumJoints),
		DesiredPositions: make([]float64, define.NumJoints),
		JointTorques:     make([]float64, define.NumJoints),
		GraspingForces:   make([]float64, define.NumFingers),
		TimeInterval:     define.DefaultDT,
	}
	return c
}

// post 将一次操作 POST 到 hand-bridge 服务
func (c *Client) post(op handOp) error {
	jsonData, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("序列化操作失败：%w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/api/hand", c.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("创建 HTTP 请求失败：%w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送 HTTP 请求失败：%w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("hand-bridge 服务返回错误: %d, %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Client) SetMotionType(motionType int) error {
	if err := c.post(handOp{Op: "motion-type", Scalar: float64(motionType)}); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.MotionType = motionType
	c.mu.Unlock()
	return nil
}

func (c *Client) SetJointPositions(q []float64) error {
	if err := c.post(handOp{Op: "joint-positions", Values: q}); err != nil {
		return err
	}
	c.mu.Lock()
	copy(c.state.JointPositions, q)
	c.mu.Unlock()
	return nil
}

func (c *Client) SetDesiredJointPositions(q []float64) error {
	if err := c.post(handOp{Op: "desired-positions", Values: q}); err != nil {
		return err
	}
	c.mu.Lock()
	copy(c.state.DesiredPositions, q)
	c.mu.Unlock()
	return nil
}

func (c *Client) SetGraspingForces(forces []float64) error {
	if err := c.post(handOp{Op: "grasping-forces", Values: forces}); err != nil {
		return err
	}
	c.mu.Lock()
	copy(c.state.GraspingForces, forces)
	c.mu.Unlock()
	return nil
}

func (c *Client) SetGains(kp, kd []float64) error {
	return c.post(handOp{Op: "gains", Kp: kp, Kd: kd})
}

func (c *Client) SetTimeInterval(dt float64) error {
	if err := c.post(handOp{Op: "time-interval", Scalar: dt}); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.TimeInterval = dt
	c.mu.Unlock()
	return nil
}

// AdvanceControl 推进远端控制一步，随后刷新本地状态镜像
func (c *Client) AdvanceControl(t float64) error {
	if err := c.post(handOp{Op: "advance", Scalar: t}); err != nil {
		return err
	}
	return c.refreshState()
}

// refreshState 拉取 hand-bridge 的最新手部状态
func (c *Client) refreshState() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/api/hand/state", c.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("创建状态请求失败：%w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("获取手部状态失败：%w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hand-bridge 服务返回错误：%d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("解析状态响应失败：%w", err)
	}

	var state handState
	if err := json.Unmarshal(envelope.Data, &state); err != nil {
		return fmt.Errorf("解析手部状态失败：%w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.MotionType = state.MotionType
	// 镜像数组保持固定长度，桥接端短缺的部分保留原值
	copy(c.state.JointPositions, state.JointPositions)
	copy(c.state.DesiredPositions, state.DesiredPositions)
	copy(c.state.JointTorques, state.JointTorques)
	copy(c.state.GraspingForces, state.GraspingForces)
	if state.TimeInterval > 0 {
		c.state.TimeInterval = state.TimeInterval
	}
	return nil
}

func (c *Client) JointTorque() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloned(c.state.JointTorques)
}

func (c *Client) MotionType() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.MotionType
}

func (c *Client) JointPositions() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloned(c.state.JointPositions)
}

func (c *Client) DesiredJointPositions() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloned(c.state.DesiredPositions)
}

func (c *Client) GraspingForces() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloned(c.state.GraspingForces)
}

func (c *Client) TimeInterval() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.TimeInterval
}

func (c *Client) HandType() define.HandType { return c.handType }

// SetServiceURL 设置 hand-bridge 服务的 URL
func (c *Client) SetServiceURL(url string) { c.serviceURL = url }

// IsConnected 检查与 hand-bridge 服务的连接状态
func (c *Client) IsConnected() bool {
	return c.refreshState() == nil
}

func cloned(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
