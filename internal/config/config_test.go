package config_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/center-planner/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "greedy", cfg.Planner.Algorithm)
	require.EqualValues(t, 1, cfg.Planner.Seed)
	require.Equal(t, 3, cfg.Planner.GRASP.Restarts)
	require.Equal(t, 0.1, cfg.Planner.GRASP.AlphaStep)
	require.Equal(t, 5, cfg.Planner.LocalSearch.Passes)
	require.Equal(t, -1.0, cfg.Instance.MinSeparation)
	require.Equal(t, "text", cfg.Report.Format)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PLANNER_ALGORITHM", "grasp")
	t.Setenv("PLANNER_GRASP_RESTARTS", "10")
	t.Setenv("PLANNER_GRASP_ALPHA_START", "0.2")
	t.Setenv("INSTANCE_PATH", "/tmp/instance.yaml")
	t.Setenv("REPORT_SYSTEM_INFO", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "grasp", cfg.Planner.Algorithm)
	require.Equal(t, 10, cfg.Planner.GRASP.Restarts)
	require.Equal(t, 0.2, cfg.Planner.GRASP.AlphaStart)
	require.Equal(t, "/tmp/instance.yaml", cfg.Instance.Path)
	require.True(t, cfg.Report.SystemInfo)
}

func TestLoadConfigInvalidValue(t *testing.T) {
	t.Setenv("PLANNER_GRASP_RESTARTS", "many")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("不会输出")
	logger.Warn("会输出")
	require.NotContains(t, buf.String(), "不会输出")
	require.Contains(t, buf.String(), "会输出")

	cfg.Log.Level = "verbose"
	_, err = cfg.NewLogger(&buf)
	require.Error(t, err)

	cfg.Log.Level = "info"
	cfg.Log.Format = "xml"
	_, err = cfg.NewLogger(&buf)
	require.Error(t, err)
}
