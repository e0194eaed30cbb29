package define

type HandType int

const (
	HAND_TYPE_LEFT  HandType = 0
	HAND_TYPE_RIGHT HandType = 1
)

func (ht HandType) String() string {
	if ht == HAND_TYPE_LEFT {
		return "左手"
	}
	return "右手"
}

// 解析手型参数，无法识别时返回默认右手
func ParseHandType(s string) HandType {
	if s == "left" {
		return HAND_TYPE_LEFT
	}
	return HAND_TYPE_RIGHT
}
