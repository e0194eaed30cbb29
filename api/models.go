package api

// TextCommandRequest 旧版文本指令请求（也可直接以 text/plain 提交帧内容）
type TextCommandRequest struct {
	Frame string `json:"frame" binding:"required"`
}
