package domain

import "errors"

var (
	ErrTooFar           = errors.New("城市超出中心的服务半径")
	ErrTooClose         = errors.New("与已启用的中心距离过近")
	ErrCapacityExceeded = errors.New("中心容量不足")
	ErrAlreadyPrimary   = errors.New("该中心已是城市的主中心")
	ErrAlreadySecondary = errors.New("该中心已是城市的副中心")
	ErrInactive         = errors.New("中心尚未启用")
	ErrInfeasible       = errors.New("没有可行的中心")
)

// Reason 是可行性检查的结果，Admitted 表示可以接纳，其余值为拒绝原因。
// 拒绝在启发式算法中是常态，因此用值而不是 error 来表示。
type Reason int

const (
	Admitted Reason = iota
	TooFar
	TooClose
	CapacityExceeded
	AlreadyPrimary
	AlreadySecondary
	Inactive
	Infeasible
)

var reasonErrors = map[Reason]error{
	TooFar:           ErrTooFar,
	TooClose:         ErrTooClose,
	CapacityExceeded: ErrCapacityExceeded,
	AlreadyPrimary:   ErrAlreadyPrimary,
	AlreadySecondary: ErrAlreadySecondary,
	Inactive:         ErrInactive,
	Infeasible:       ErrInfeasible,
}

// Err 将拒绝原因转换为对应的哨兵错误，Admitted 返回 nil
func (r Reason) Err() error {
	return reasonErrors[r]
}

func (r Reason) String() string {
	switch r {
	case Admitted:
		return "admitted"
	case TooFar:
		return "too_far"
	case TooClose:
		return "too_close"
	case CapacityExceeded:
		return "capacity_exceeded"
	case AlreadyPrimary:
		return "already_primary"
	case AlreadySecondary:
		return "already_secondary"
	case Inactive:
		return "inactive"
	default:
		return "infeasible"
	}
}
