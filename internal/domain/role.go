package domain

type Role string

const (
	RolePrimary   Role = "主中心"
	RoleSecondary Role = "副中心"
)

// Roles 为启发式算法遍历角色的固定顺序
var Roles = []Role{RolePrimary, RoleSecondary}

// Weight 为该角色下城市人口计入中心负载的权重
func (r Role) Weight() float64 {
	if r == RolePrimary {
		return 1
	}
	return 0.1
}

// Reach 为该角色下中心服务半径相对工作距离的倍数
func (r Role) Reach() float64 {
	if r == RolePrimary {
		return 1
	}
	return 3
}
