package domain

import "math"

// Epsilon 为容量与距离比较时允许的浮点误差
const Epsilon = 1e-9

type City struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name,omitempty"`
	Code       string  `json:"code,omitempty" yaml:"code,omitempty"` // 城市名的拼音简写
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	Population float64 `json:"population" yaml:"population" validate:"gt=0"`

	Primary   *Facility `json:"-" yaml:"-" validate:"-"` // 未分配时为 nil
	Secondary *Facility `json:"-" yaml:"-" validate:"-"` // 未分配时为 nil
}

// Facility 返回城市在指定角色下所分配的中心
func (c *City) Facility(role Role) *Facility {
	if role == RolePrimary {
		return c.Primary
	}
	return c.Secondary
}

func (c *City) setFacility(role Role, f *Facility) {
	if role == RolePrimary {
		c.Primary = f
	} else {
		c.Secondary = f
	}
}

// Assigned 表示城市的主、副中心是否都已分配
func (c *City) Assigned() bool {
	return c.Primary != nil && c.Secondary != nil
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
