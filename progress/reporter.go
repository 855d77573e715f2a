// Package progress 提供界面上“网格划分 → 求解 → 收敛”的进度展示。
// 这些数字只用于展示，与关联式计算结果无关。
package progress

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	StageMesh     = "mesh"
	StageSolve    = "solve"
	StageConverge = "converge"
	StageDone     = "done"
)

type Stage struct {
	Name      string  `json:"name"`
	Percent   int     `json:"percent"`
	MeshCells int     `json:"mesh_cells"`
	Iteration int     `json:"iteration"`
	Residual  float64 `json:"residual"`
}

// 定时推送进度，Stop 后不再推送
type Reporter struct {
	interval time.Duration
	rnd      *rand.Rand

	out      chan Stage
	stop     chan struct{}
	stopOnce sync.Once
}

func NewReporter(interval time.Duration, seed int64) *Reporter {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Reporter{
		interval: interval,
		rnd:      rand.New(rand.NewSource(seed)),
		out:      make(chan Stage, 1),
		stop:     make(chan struct{}),
	}
}

// 每 10% 推送一次，结束或停止后关闭通道
func (r *Reporter) Start() <-chan Stage {
	go r.run()
	return r.out
}

func (r *Reporter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

func (r *Reporter) run() {
	defer close(r.out)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	cells := 10000 + r.rnd.Intn(40000)
	iteration := 0
	for percent := 0; percent <= 100; percent += 10 {
		s := Stage{Name: stageOf(percent), Percent: percent, MeshCells: cells}
		if percent > 30 {
			iteration += 50 + r.rnd.Intn(50)
			s.Iteration = iteration
			s.Residual = 1e-2 * math.Exp(-float64(iteration)/150) * (0.5 + r.rnd.Float64())
		}
		select {
		case <-r.stop:
			return
		case r.out <- s:
		}
		if percent == 100 {
			return
		}
		select {
		case <-r.stop:
			return
		case <-ticker.C:
		}
	}
}

func stageOf(percent int) string {
	switch {
	case percent >= 100:
		return StageDone
	case percent <= 30:
		return StageMesh
	case percent <= 80:
		return StageSolve
	default:
		return StageConverge
	}
}
