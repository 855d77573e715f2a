package calculator

import "flowcalc/model"

// Re = ρvL/μ
func Reynolds(spec model.FlowSpecification) (float64, error) {
	if spec.Viscosity == 0 {
		return 0, domainError("viscosity", "is zero, Reynolds number undefined")
	}
	re := spec.Density * spec.MeanVelocity * spec.CharacteristicLength / spec.Viscosity
	if !finite(re) {
		return 0, arithmeticError("reynolds", "is not finite")
	}
	if re <= 0 {
		return 0, domainError("reynolds", "must be greater than 0")
	}
	return re, nil
}

// 两端阈值都归入过渡流
func (c Config) Classify(re float64) model.FlowRegime {
	switch {
	case re < c.LaminarLimit:
		return model.Laminar
	case re <= c.TurbulentLimit:
		return model.Transitional
	default:
		return model.Turbulent
	}
}
