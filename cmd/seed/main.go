package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/center-planner/internal/config"
	"github.com/sysu-ecnc-dev/center-planner/internal/seed"
	"github.com/sysu-ecnc-dev/center-planner/internal/utils"
)

func main() {
	var op int
	var output string
	var randomSeed int64

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("无法读取配置", slog.String("error", err.Error()))
		os.Exit(1)
	}

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 导出内置实例, 2: 生成随机实例)")
	flag.StringVar(&output, "o", "instance.yaml", "输出的实例文件路径")
	flag.Int64Var(&randomSeed, "seed", 0, "随机种子，0 表示使用当前时间")
	flag.IntVar(&cfg.Generator.Cities, "n", cfg.Generator.Cities, "随机实例的城市数量")
	flag.IntVar(&cfg.Generator.Locations, "m", cfg.Generator.Locations, "随机实例的候选位置数量")
	flag.Float64Var(&cfg.Generator.Size, "size", cfg.Generator.Size, "坐标的取值范围")
	flag.Float64Var(&cfg.Instance.MinSeparation, "min-separation", cfg.Instance.MinSeparation, "随机实例的最小间距，小于 0 时使用内置实例的值")
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stdout)
	if err != nil {
		slog.Error("无法创建 logger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(logger)

	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		inst := seed.DefaultInstance()
		if err := seed.SaveInstance(output, inst); err != nil {
			slog.Error("无法导出内置实例", slog.String("error", err.Error()))
			return
		}

		slog.Info("导出内置实例成功", slog.String("path", output))
	case 2:
		if randomSeed == 0 {
			randomSeed = time.Now().UnixNano()
		}
		minSeparation := cfg.Instance.MinSeparation
		if minSeparation < 0 {
			minSeparation = seed.DefaultInstance().MinSeparation
		}

		inst, err := utils.GenerateRandomInstance(rand.New(rand.NewSource(randomSeed)), utils.GeneratorOptions{
			Cities:        cfg.Generator.Cities,
			Locations:     cfg.Generator.Locations,
			Size:          cfg.Generator.Size,
			MaxPopulation: cfg.Generator.MaxPopulation,
			MinSeparation: minSeparation,
			Types:         seed.DefaultTypes(),
		})
		if err != nil {
			slog.Error("无法生成随机实例", slog.String("error", err.Error()))
			return
		}

		if err := seed.SaveInstance(output, inst); err != nil {
			slog.Error("无法写入随机实例", slog.String("error", err.Error()))
			return
		}

		slog.Info("生成随机实例成功", slog.String("path", output), slog.Int("cities", len(inst.Cities)), slog.Int("facilities", len(inst.Facilities)), slog.Int64("seed", randomSeed))
	default:
		slog.Error("指定的操作非法")
	}
}
