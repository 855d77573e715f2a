package server

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"flowcalc/calculator"
	"flowcalc/fluid"
	"flowcalc/metrics"
	"flowcalc/model"
)

// websocket 与 REST 共用的计算入口
type Service struct {
	cfg          calculator.Config
	fluids       *fluid.Library
	sweepWorkers int
}

func NewService(cfg calculator.Config, fluids *fluid.Library, sweepWorkers int) *Service {
	if fluids == nil {
		fluids = fluid.Default()
	}
	return &Service{cfg: cfg, fluids: fluids, sweepWorkers: sweepWorkers}
}

// 选定预置流体时，用其物性补全输入并覆盖导热系数与普朗特数
func (s *Service) prepare(raw model.RawSpecification) (model.RawSpecification, *calculator.Calculator, error) {
	if raw.Fluid == "" {
		return raw, calculator.NewCalculator(s.cfg), nil
	}
	f, ok := s.fluids.Get(raw.Fluid)
	if !ok {
		return raw, nil, &calculator.EngineError{Kind: calculator.ErrValidation, Field: "fluid", Msg: "unknown fluid " + raw.Fluid}
	}
	cfg := s.cfg.WithFluidProperties(f.ThermalConductivity, f.Prandtl)
	return f.ApplyTo(raw), calculator.NewCalculator(cfg), nil
}

func (s *Service) Calculate(req model.CalculateRequest) (model.HistoryEntry, error) {
	raw, c, err := s.prepare(req.Spec)
	if err != nil {
		metrics.RecordError(calculator.ErrorKind(err))
		return model.HistoryEntry{}, err
	}
	res, err := c.Calculate(raw, model.Mode(req.Mode))
	if err != nil {
		metrics.RecordError(calculator.ErrorKind(err))
		log.WithError(err).WithField("mode", req.Mode).Warn("计算失败")
		return model.HistoryEntry{}, err
	}
	metrics.RecordResult(res)
	entry := model.HistoryEntry{
		ID:      uuid.NewString(),
		Time:    time.Now(),
		Fluid:   raw.Fluid,
		Result:  res,
		Display: calculator.Format(res),
	}
	log.WithFields(log.Fields{
		"id":       entry.ID,
		"mode":     res.Mode,
		"reynolds": entry.Display.Reynolds,
		"regime":   res.Regime,
		"friction": entry.Display.FrictionFactor,
	}).Info("计算完成")
	return entry, nil
}

func (s *Service) Sweep(req model.SweepRequest) ([]model.SweepPoint, error) {
	raw, c, err := s.prepare(req.Spec)
	if err != nil {
		metrics.RecordError(calculator.ErrorKind(err))
		return nil, err
	}
	req.Spec = raw
	start := time.Now()
	points, err := c.Sweep(req, s.sweepWorkers)
	if err != nil {
		metrics.RecordError(calculator.ErrorKind(err))
		return nil, err
	}
	for _, p := range points {
		if p.Result != nil {
			metrics.RecordResult(*p.Result)
		}
	}
	log.WithFields(log.Fields{
		"points":  len(points),
		"workers": s.sweepWorkers,
		"cost":    time.Since(start),
	}).Info("速度扫描完成")
	return points, nil
}

func (s *Service) Fluids() []fluid.Fluid {
	return s.fluids.List()
}

func (s *Service) Config() calculator.Config {
	return s.cfg
}
