package planner

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/utils"
)

type Planner struct {
	parameters *Parameters
	instance   *domain.Instance // 只读，每次构造都在它的 Blank 副本上进行
	rng        *rand.Rand
	logger     *slog.Logger
}

func New(parameters *Parameters, inst *domain.Instance, logger *slog.Logger) (*Planner, error) {
	if parameters == nil {
		parameters = DefaultParameters()
	}
	if err := utils.ValidateStruct(parameters); err != nil {
		return nil, fmt.Errorf("算法参数不合法: %w", err)
	}
	if err := utils.ValidateInstance(inst); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	seed := parameters.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Planner{
		parameters: parameters,
		instance:   inst,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}, nil
}

// Run 按算法名称执行对应的启发式算法。localsearch 在贪心构造之后做局部搜索，grasp 在 GRASP 之后做局部搜索。
func (p *Planner) Run(algorithm string) (*domain.Solution, Metrics, error) {
	switch algorithm {
	case AlgorithmGreedy:
		return p.Greedy()
	case AlgorithmLocalSearch:
		sol, metrics, err := p.Greedy()
		if err != nil {
			return nil, metrics, err
		}
		metrics.Algorithm = AlgorithmLocalSearch
		return p.improveAfter(sol, metrics)
	case AlgorithmGRASP:
		sol, metrics, err := p.GRASP()
		if err != nil {
			return nil, metrics, err
		}
		return p.improveAfter(sol, metrics)
	default:
		return nil, Metrics{Algorithm: algorithm}, fmt.Errorf("未知的算法: %s", algorithm)
	}
}

// improveAfter 对构造得到的结果做局部搜索，并把局部搜索的统计合并到构造的统计中
func (p *Planner) improveAfter(sol *domain.Solution, metrics Metrics) (*domain.Solution, Metrics, error) {
	improved, lsMetrics, err := p.Improve(sol)
	if err != nil {
		return nil, metrics, err
	}

	metrics.Unassigned = lsMetrics.Unassigned
	metrics.Moves = lsMetrics.Moves
	metrics.Passes = lsMetrics.Passes
	return improved, metrics, nil
}

// finish 校验最终结果的约束并补全统计信息
func (p *Planner) finish(sol *domain.Solution, metrics *Metrics) error {
	if err := utils.ValidateSolution(sol); err != nil {
		return fmt.Errorf("%s 得到的结果违反约束: %w", metrics.Algorithm, err)
	}

	metrics.Unassigned = unassignedCities(sol)
	p.logger.Info("算法运行结束", slog.String("algorithm", metrics.Algorithm), slog.Int("cost", sol.Cost()), slog.Int("unassigned", len(metrics.Unassigned)))

	return nil
}
