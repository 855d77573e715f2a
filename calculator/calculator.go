package calculator

import (
	"fmt"

	"flowcalc/model"
)

// 关联式计算器，只持有不可变的参数，可并发使用
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

func (c *Calculator) Config() Config {
	return c.cfg
}

// 使用默认参数的 CFD 计算
func ComputeFlowResult(spec model.FlowSpecification) (model.CalculationResult, error) {
	return NewCalculator(DefaultConfig()).ComputeFlowResult(spec)
}

// 校验原始输入后按模式计算
func (c *Calculator) Calculate(raw model.RawSpecification, mode model.Mode) (model.CalculationResult, error) {
	spec, err := Validate(raw)
	if err != nil {
		return model.CalculationResult{}, err
	}
	switch mode {
	case model.ModeFlow, "":
		return c.ComputeFlowResult(spec)
	case model.ModePipe:
		return c.ComputePipeResult(spec)
	}
	return model.CalculationResult{}, validationError("mode", fmt.Sprintf("unknown mode %q", mode))
}

// CFD 计算器：速度头形式压降、剪切应力和湍流强度
func (c *Calculator) ComputeFlowResult(spec model.FlowSpecification) (model.CalculationResult, error) {
	res, err := c.common(spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	f := res.Friction.FrictionFactor
	if res.PressureDrop, err = VelocityHeadPressureDrop(f, spec); err != nil {
		return model.CalculationResult{}, err
	}
	tau, err := ShearStress(f, spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	ti, err := c.cfg.TurbulenceIntensity(res.Reynolds)
	if err != nil {
		return model.CalculationResult{}, err
	}
	res.Mode = model.ModeFlow
	res.PressureDropUnit = "Pa"
	res.ShearStress = &tau
	res.TurbulenceIntensity = &ti
	return res, nil
}

// 管道设计：完整 Darcy–Weisbach 压降、扬程损失和泵功率，需要给出管长
func (c *Calculator) ComputePipeResult(spec model.FlowSpecification) (model.CalculationResult, error) {
	if spec.PipeLength == nil {
		return model.CalculationResult{}, validationError("pipe_length", "is required in pipe mode")
	}
	res, err := c.common(spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	pipe, err := c.cfg.PipePressureDrop(res.Friction.FrictionFactor, spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	res.Mode = model.ModePipe
	res.PressureDrop = pipe.PressureDropKPa
	res.PressureDropUnit = "kPa"
	res.Pipe = &pipe
	return res, nil
}

func (c *Calculator) common(spec model.FlowSpecification) (model.CalculationResult, error) {
	if err := c.cfg.Validate(); err != nil {
		return model.CalculationResult{}, err
	}
	// 直接调用引擎时几何类型可能未经规整，未识别的按圆管处理
	spec.Geometry = NormalizeGeometry(string(spec.Geometry))
	if err := CheckSpecification(spec); err != nil {
		return model.CalculationResult{}, err
	}
	re, err := Reynolds(spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	regime := c.cfg.Classify(re)
	friction, err := CalculateFriction(re, regime, spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	thermal, err := c.cfg.CalculateThermal(re, regime, spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	profile, err := c.cfg.GenerateProfile(regime, spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	return model.CalculationResult{
		Reynolds: re,
		Regime:   regime,
		Friction: friction,
		Thermal:  thermal,
		Profile:  profile,
	}, nil
}
