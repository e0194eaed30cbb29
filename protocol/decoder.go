package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput 请求负载无法按协议解析
	ErrMalformedInput = errors.New("malformed input")
	// ErrStructuralInvalid 指令结构校验失败（长度、NaN/Inf、枚举范围）
	ErrStructuralInvalid = errors.New("invalid command structure")
)

// DecodeVector 将松散类型的 JSON 值转换为定长数值序列。
// expected < 0 表示不限制长度。
//
// 解码刻意宽松：null 返回全零序列；非数值元素替换为 0.0；
// 长度不符时强制补零或截断。真正的拒绝发生在后续校验阶段，
// 校验器会重新检查长度与有限性。
func DecodeVector(raw interface{}, expected int) ([]float64, error) {
	if raw == nil {
		if expected > 0 {
			return make([]float64, expected), nil
		}
		return []float64{}, nil
	}

	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected JSON array", ErrMalformedInput)
	}

	result := make([]float64, 0, len(arr))
	for _, element := range arr {
		if num, ok := element.(float64); ok {
			result = append(result, num)
		} else {
			// 非数值元素不报错，按 0.0 处理
			result = append(result, 0.0)
		}
	}

	// 强制对齐到期望长度：截断多余元素或补零
	if expected > 0 && len(result) != expected {
		resized := make([]float64, expected)
		copy(resized, result)
		result = resized
	}

	return result, nil
}

// DecodeMatrix 将 2D JSON 数组转换为 float64 矩阵。
// 非数组的行被静默丢弃，外层长度不做约束。
func DecodeMatrix(raw interface{}) [][]float64 {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var result [][]float64
	for _, row := range arr {
		rowArr, ok := row.([]interface{})
		if !ok {
			continue
		}
		rowVec := make([]float64, 0, len(rowArr))
		for _, element := range rowArr {
			if num, ok := element.(float64); ok {
				rowVec = append(rowVec, num)
			} else {
				rowVec = append(rowVec, 0.0)
			}
		}
		result = append(result, rowVec)
	}

	return result
}

// FitLength 将序列强制对齐到固定长度（补零或截断），
// 编码器与响应构建依赖它保证定长数组恒在。
func FitLength(v []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, v)
	return out
}
