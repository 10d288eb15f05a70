package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Log         struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"text"` // text 或 json
	} `envPrefix:"LOG_"`
	Planner struct {
		Algorithm string `env:"ALGORITHM" envDefault:"greedy"`
		Seed      int64  `env:"SEED" envDefault:"1"` // 为 0 时使用当前时间
		GRASP     struct {
			Restarts   int     `env:"RESTARTS" envDefault:"3"`
			AlphaStart float64 `env:"ALPHA_START" envDefault:"0"`
			AlphaStep  float64 `env:"ALPHA_STEP" envDefault:"0.1"`
		} `envPrefix:"GRASP_"`
		LocalSearch struct {
			Passes int `env:"PASSES" envDefault:"5"`
		} `envPrefix:"LOCAL_SEARCH_"`
	} `envPrefix:"PLANNER_"`
	Instance struct {
		Path          string  `env:"PATH"`                           // 为空时使用内置的实例
		MinSeparation float64 `env:"MIN_SEPARATION" envDefault:"-1"` // 小于 0 时使用实例自带的值
	} `envPrefix:"INSTANCE_"`
	Report struct {
		Format     string `env:"FORMAT" envDefault:"text"` // text 或 json
		SystemInfo bool   `env:"SYSTEM_INFO" envDefault:"false"`
	} `envPrefix:"REPORT_"`
	Generator struct {
		Cities        int     `env:"CITIES" envDefault:"20"`
		Locations     int     `env:"LOCATIONS" envDefault:"8"`
		Size          float64 `env:"SIZE" envDefault:"10"`
		MaxPopulation int     `env:"MAX_POPULATION" envDefault:"6"`
	} `envPrefix:"GENERATOR_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
