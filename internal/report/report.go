package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
	"github.com/sysu-ecnc-dev/center-planner/internal/planner"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Report struct {
	RunID       string                   `json:"runId"`
	Instance    string                   `json:"instance"`
	Cost        int                      `json:"cost"`
	Complete    bool                     `json:"complete"`
	Elapsed     time.Duration            `json:"elapsed"`
	Metrics     planner.Metrics          `json:"metrics"`
	Assignments []domain.Assignment      `json:"assignments"`
	Facilities  []domain.FacilitySummary `json:"facilities"`
	System      *SysInfo                 `json:"system,omitempty"`
}

func New(runID string, instance string, sol *domain.Solution, metrics planner.Metrics, elapsed time.Duration) *Report {
	return &Report{
		RunID:       runID,
		Instance:    instance,
		Cost:        sol.Cost(),
		Complete:    sol.Complete(),
		Elapsed:     elapsed,
		Metrics:     metrics,
		Assignments: sol.Assignments(),
		Facilities:  sol.Facilities(),
	}
}

// Write 按指定格式输出报告
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatText:
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("未知的报告格式: %s", format)
	}
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func describe(ref *domain.FacilityRef) string {
	if ref == nil {
		return "无"
	}
	return fmt.Sprintf("%d 号 (%g, %g)，类型 %d", ref.Facility, ref.X, ref.Y, ref.Type)
}

func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "运行 %s：实例 %s，算法 %s，耗时 %s\n", r.RunID, r.Instance, r.Metrics.Algorithm, r.Elapsed)
	for _, a := range r.Assignments {
		fmt.Fprintf(&b, "城市 %d (%g, %g):\n", a.City, a.X, a.Y)
		fmt.Fprintf(&b, "\t主中心: %s\n", describe(a.Primary))
		fmt.Fprintf(&b, "\t副中心: %s\n", describe(a.Secondary))
	}

	for _, f := range r.Facilities {
		fmt.Fprintf(&b, "中心 %d (%g, %g) 启用类型 %d，成本 %d，负载 %.2f/%g\n", f.Facility, f.X, f.Y, f.Type, f.Cost, f.Load, f.Capacity)
	}

	if len(r.Metrics.Unassigned) > 0 {
		fmt.Fprintf(&b, "缺少分配的城市: %v\n", r.Metrics.Unassigned)
	}
	if len(r.Metrics.RestartCosts) > 0 {
		fmt.Fprintf(&b, "各次重启的成本: %v，最好的一次: %d\n", r.Metrics.RestartCosts, r.Metrics.BestRestart)
	}
	if r.Metrics.Passes > 0 {
		fmt.Fprintf(&b, "局部搜索: %d 轮，%d 次移动\n", r.Metrics.Passes, r.Metrics.Moves)
	}
	if r.System != nil {
		fmt.Fprintf(&b, "系统: %s / %s / %s\n", r.System.Platform, r.System.CPU, r.System.RAM)
	}
	fmt.Fprintf(&b, "总成本: %d\n", r.Cost)

	_, err := io.WriteString(w, b.String())
	return err
}
