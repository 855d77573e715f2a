package calculator

import (
	"math"

	"flowcalc/model"
)

// 速度头形式，没有管长时按 1/L 缩放，单位 Pa
// ΔP = f * (1/L) * 0.5 * ρ * v²
func VelocityHeadPressureDrop(f float64, spec model.FlowSpecification) (float64, error) {
	dp := f * (1 / spec.CharacteristicLength) * dynamicPressure(spec)
	if !finite(dp) {
		return 0, arithmeticError("pressure_drop", "is not finite")
	}
	return dp, nil
}

// 壁面剪切应力 τ = f * 0.5 * ρ * v²，单位 Pa
func ShearStress(f float64, spec model.FlowSpecification) (float64, error) {
	tau := f * dynamicPressure(spec)
	if !finite(tau) {
		return 0, arithmeticError("shear_stress", "is not finite")
	}
	return tau, nil
}

// 完整 Darcy–Weisbach，含高差；管径取特征长度
func (c Config) PipePressureDrop(f float64, spec model.FlowSpecification) (model.PipeResult, error) {
	if spec.PipeLength == nil {
		return model.PipeResult{}, validationError("pipe_length", "is required for pipe pressure drop")
	}
	d := spec.CharacteristicLength
	v := spec.MeanVelocity
	g := c.Gravity

	hf := f * (*spec.PipeLength / d) * (v * v / (2 * g))
	total := hf
	if spec.ElevationChange != nil {
		total += *spec.ElevationChange
	}
	dpPa := total * spec.Density * g
	q := v * math.Pi * d * d / 4
	res := model.PipeResult{
		HeadLossFriction:   hf,
		TotalHeadLoss:      total,
		PressureDropKPa:    dpPa / 1000,
		VolumetricFlowRate: q,
		PumpPowerKW:        dpPa * q / 1000,
	}
	for _, x := range []float64{res.HeadLossFriction, res.TotalHeadLoss, res.PressureDropKPa, res.VolumetricFlowRate, res.PumpPowerKW} {
		if !finite(x) {
			return model.PipeResult{}, arithmeticError("pressure_drop", "is not finite")
		}
	}
	return res, nil
}

func dynamicPressure(spec model.FlowSpecification) float64 {
	return 0.5 * spec.Density * spec.MeanVelocity * spec.MeanVelocity
}
