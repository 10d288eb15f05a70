package planner

import "github.com/sysu-ecnc-dev/center-planner/internal/domain"

const (
	AlgorithmGreedy      = "greedy"
	AlgorithmLocalSearch = "localsearch"
	AlgorithmGRASP       = "grasp"
)

// 启发式算法参数
type Parameters struct {
	Seed       int64   // 随机种子，为 0 时使用当前时间
	Restarts   int     `validate:"min=1"`         // GRASP 重启次数
	AlphaStart float64 `validate:"min=0,max=1"`   // 第一次重启的 alpha
	AlphaStep  float64 `validate:"min=0,max=1"`   // 每次重启 alpha 的增量
	Passes     int     `validate:"min=0,max=100"` // 局部搜索的最大轮数
}

func DefaultParameters() *Parameters {
	return &Parameters{
		Seed:       1,
		Restarts:   3,
		AlphaStart: 0,
		AlphaStep:  0.1,
		Passes:     5,
	}
}

// Admission: 把城市以某个角色交给某个中心的代价评估
type Admission struct {
	Facility *domain.Facility
	Type     *domain.FacilityType // 接纳之后中心应当使用的类型
	Cost     int                  // 增量成本，未启用的中心为类型的启用成本，升级时为差价
	Reason   domain.Reason        // 不可行时记录最后一次拒绝的原因
}

func (a Admission) Feasible() bool {
	return a.Reason == domain.Admitted
}

// Metrics 记录一次运行的统计信息，供日志和报告使用
type Metrics struct {
	Algorithm    string `json:"algorithm"`
	Unassigned   []int  `json:"unassigned"`             // 缺少主中心或副中心的城市
	RestartCosts []int  `json:"restartCosts,omitempty"` // GRASP 每次重启得到的总成本
	BestRestart  int    `json:"bestRestart,omitempty"`
	Moves        int    `json:"moves,omitempty"`  // 局部搜索执行的移动次数
	Passes       int    `json:"passes,omitempty"` // 局部搜索实际执行的轮数
}
