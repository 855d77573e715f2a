package calculator

import (
	"strconv"
	"sync"

	"flowcalc/model"
)

const maxSweepPoints = 1000

type task struct {
	index int
	v     float64
}

// 速度扫描，每个点相互独立，由固定数量的 worker 并发计算
type executor struct {
	workers      int
	dispatchChan chan task
	doneChan     chan model.SweepPoint
}

func newExecutor(workers int) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{
		workers:      workers,
		dispatchChan: make(chan task, 50),
		doneChan:     make(chan model.SweepPoint, 50),
	}
}

func (e *executor) run(total int, f func(t task) model.SweepPoint) []model.SweepPoint {
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range e.dispatchChan {
				e.doneChan <- f(t)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(e.doneChan)
	}()
	return e.collect(total)
}

func (e *executor) collect(total int) []model.SweepPoint {
	points := make([]model.SweepPoint, total)
	for p := range e.doneChan {
		points[p.Index] = p
	}
	return points
}

func (e *executor) dispatchTask(tasks []task) {
	go func() {
		for _, t := range tasks {
			e.dispatchChan <- t
		}
		close(e.dispatchChan)
	}()
}

// 在 [VelocityStart, VelocityEnd] 上等距取点，单点失败只记录在该点上
func (c *Calculator) Sweep(req model.SweepRequest, workers int) ([]model.SweepPoint, error) {
	if req.Points < 1 || req.Points > maxSweepPoints {
		return nil, validationError("points", "must be between 1 and "+strconv.Itoa(maxSweepPoints))
	}
	if !finite(req.VelocityStart) || req.VelocityStart <= 0 {
		return nil, validationError("velocity_start", "must be a finite number greater than 0")
	}
	if !finite(req.VelocityEnd) || req.VelocityEnd <= 0 {
		return nil, validationError("velocity_end", "must be a finite number greater than 0")
	}
	mode := model.Mode(req.Mode)
	if mode == "" {
		mode = model.ModeFlow
	}
	if mode != model.ModeFlow && mode != model.ModePipe {
		return nil, validationError("mode", "unknown mode "+req.Mode)
	}

	raw := req.Spec
	raw.MeanVelocity = model.Number(strconv.FormatFloat(req.VelocityStart, 'g', -1, 64))
	base, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	step := 0.0
	if req.Points > 1 {
		step = (req.VelocityEnd - req.VelocityStart) / float64(req.Points-1)
	}
	tasks := make([]task, req.Points)
	for i := range tasks {
		tasks[i] = task{index: i, v: req.VelocityStart + float64(i)*step}
	}

	e := newExecutor(workers)
	e.dispatchTask(tasks)
	return e.run(len(tasks), func(t task) model.SweepPoint {
		spec := base
		spec.MeanVelocity = t.v
		var (
			res model.CalculationResult
			err error
		)
		if mode == model.ModePipe {
			res, err = c.ComputePipeResult(spec)
		} else {
			res, err = c.ComputeFlowResult(spec)
		}
		p := model.SweepPoint{Index: t.index, MeanVelocity: t.v}
		if err != nil {
			p.Error = err.Error()
			return p
		}
		p.Result = &res
		return p
	}), nil
}
