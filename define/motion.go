package define

// MotionType 后端控制模式选择器（BHand 协议 0-13）
type MotionType int

const (
	MotionNone            MotionType = 0  // 断电
	MotionHome            MotionType = 1  // 回到初始位置
	MotionReady           MotionType = 2  // 准备位置
	MotionGravityComp     MotionType = 3  // 重力补偿
	MotionPreShape        MotionType = 4  // 预抓取形态
	MotionGrasp3          MotionType = 5  // 三指抓取
	MotionGrasp4          MotionType = 6  // 四指抓取
	MotionPinchIT         MotionType = 7  // 食指拇指捏取
	MotionPinchMT         MotionType = 8  // 中指拇指捏取
	MotionObjectMoving    MotionType = 9  // 物体移动
	MotionEnvelop         MotionType = 10 // 包络抓取
	MotionJointPD         MotionType = 11 // 关节 PD 控制
	MotionMoveObj         MotionType = 12 // 物体操作
	MotionFingertipMoving MotionType = 13 // 指尖移动控制

	NumberOfMotionTypes = 14
)

var motionNames = map[MotionType]string{
	MotionNone:            "NONE",
	MotionHome:            "HOME",
	MotionReady:           "READY",
	MotionGravityComp:     "GRAVITY_COMP",
	MotionPreShape:        "PRE_SHAPE",
	MotionGrasp3:          "GRASP_3",
	MotionGrasp4:          "GRASP_4",
	MotionPinchIT:         "PINCH_IT",
	MotionPinchMT:         "PINCH_MT",
	MotionObjectMoving:    "OBJECT_MOVING",
	MotionEnvelop:         "ENVELOP",
	MotionJointPD:         "JOINT_PD",
	MotionMoveObj:         "MOVE_OBJ",
	MotionFingertipMoving: "FINGERTIP_MOVING",
}

func (mt MotionType) String() string {
	if name, ok := motionNames[mt]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid 判断控制模式是否在枚举范围内（半开区间 [0, 14)）
func (mt MotionType) IsValid() bool {
	return mt >= 0 && mt < NumberOfMotionTypes
}
