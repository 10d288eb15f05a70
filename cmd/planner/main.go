package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/center-planner/internal/config"
	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/planner"
	"github.com/sysu-ecnc-dev/center-planner/internal/report"
	"github.com/sysu-ecnc-dev/center-planner/internal/seed"
	"github.com/sysu-ecnc-dev/center-planner/internal/utils"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	// 报告写到标准输出，日志写到标准错误
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置，命令行参数优先于环境变量
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Planner.Algorithm, "algorithm", cfg.Planner.Algorithm, "使用的算法 (greedy, localsearch, grasp)")
	flag.Int64Var(&cfg.Planner.Seed, "seed", cfg.Planner.Seed, "随机种子，0 表示使用当前时间")
	flag.IntVar(&cfg.Planner.GRASP.Restarts, "restarts", cfg.Planner.GRASP.Restarts, "GRASP 重启次数")
	flag.Float64Var(&cfg.Planner.GRASP.AlphaStart, "alpha-start", cfg.Planner.GRASP.AlphaStart, "GRASP 初始 alpha")
	flag.Float64Var(&cfg.Planner.GRASP.AlphaStep, "alpha-step", cfg.Planner.GRASP.AlphaStep, "GRASP 每次重启 alpha 的增量")
	flag.IntVar(&cfg.Planner.LocalSearch.Passes, "passes", cfg.Planner.LocalSearch.Passes, "局部搜索的最大轮数")
	flag.StringVar(&cfg.Instance.Path, "instance", cfg.Instance.Path, "实例文件路径 (YAML)，为空时使用内置实例")
	flag.Float64Var(&cfg.Instance.MinSeparation, "min-separation", cfg.Instance.MinSeparation, "覆盖实例的最小间距，小于 0 时不覆盖")
	flag.StringVar(&cfg.Report.Format, "format", cfg.Report.Format, "报告格式 (text, json)")
	flag.BoolVar(&cfg.Report.SystemInfo, "sysinfo", cfg.Report.SystemInfo, "在报告中附带机器信息")
	flag.Parse()

	if logger, err = cfg.NewLogger(os.Stderr); err != nil {
		slog.Error("无法创建 logger", "error", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	logger = logger.With(slog.String("run", runID))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载实例
	 **********************************************/
	inst := seed.DefaultInstance()
	if cfg.Instance.Path != "" {
		if inst, err = seed.LoadInstance(cfg.Instance.Path); err != nil {
			logger.Error("无法加载实例", "error", err)
			os.Exit(1)
		}
	}
	if cfg.Instance.MinSeparation >= 0 {
		inst.MinSeparation = cfg.Instance.MinSeparation
	}
	logger.Info("实例加载完成", slog.String("instance", inst.Name), slog.Int("cities", len(inst.Cities)), slog.Int("facilities", len(inst.Facilities)))

	/**********************************************
	 * 运行算法
	 **********************************************/
	p, err := planner.New(&planner.Parameters{
		Seed:       cfg.Planner.Seed,
		Restarts:   cfg.Planner.GRASP.Restarts,
		AlphaStart: cfg.Planner.GRASP.AlphaStart,
		AlphaStep:  cfg.Planner.GRASP.AlphaStep,
		Passes:     cfg.Planner.LocalSearch.Passes,
	}, inst, logger)
	if err != nil {
		logger.Error("无法创建规划器", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	sol, metrics, err := p.Run(cfg.Planner.Algorithm)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInfeasible):
			logger.Error("实例无可行解", "error", err)
		default:
			logger.Error("算法运行失败", "error", err)
		}
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if err := utils.ValidateCompleteness(sol); err != nil {
		logger.Warn("结果不完整", "error", err)
	}

	/**********************************************
	 * 输出报告
	 **********************************************/
	r := report.New(runID, inst.Name, sol, metrics, elapsed)
	if cfg.Report.SystemInfo {
		r.System = report.CollectSysInfo()
	}
	if err := r.Write(os.Stdout, cfg.Report.Format); err != nil {
		logger.Error("无法输出报告", "error", err)
		os.Exit(1)
	}
}
