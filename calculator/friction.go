package calculator

import (
	"math"

	"flowcalc/model"
)

// 摩擦系数关联式
type FrictionStrategy interface {
	Correlation() model.Correlation
	Factor(re float64) (float64, error)
}

// f = 64 / Re
type poiseuille struct{}

func (poiseuille) Correlation() model.Correlation { return model.CorrelationPoiseuille }

func (poiseuille) Factor(re float64) (float64, error) {
	if re <= 0 {
		return 0, domainError("reynolds", "must be greater than 0")
	}
	return 64 / re, nil
}

// 光滑管 f = 0.316 Re^-0.25
type blasius struct{}

func (blasius) Correlation() model.Correlation { return model.CorrelationBlasius }

func (blasius) Factor(re float64) (float64, error) {
	if re <= 0 {
		return 0, domainError("reynolds", "must be greater than 0")
	}
	return 0.316 * math.Pow(re, -0.25), nil
}

// Colebrook 显式近似 f = 0.25 / log10(ε/D/3.7 + 5.74/Re^0.9)²
type colebrook struct {
	relativeRoughness float64
}

func (colebrook) Correlation() model.Correlation { return model.CorrelationColebrook }

func (c colebrook) Factor(re float64) (float64, error) {
	if re <= 0 {
		return 0, domainError("reynolds", "must be greater than 0")
	}
	arg := c.relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9)
	if !finite(arg) || arg <= 0 {
		return 0, arithmeticError("friction_factor", "Colebrook logarithm argument is not positive")
	}
	l := math.Log10(arg)
	if l == 0 {
		return 0, arithmeticError("friction_factor", "Colebrook logarithm is zero")
	}
	f := 0.25 / (l * l)
	if !finite(f) {
		return 0, arithmeticError("friction_factor", "Colebrook result is not finite")
	}
	return f, nil
}

// 层流始终用 64/Re；过渡流与湍流有粗糙度时用 Colebrook，否则用 Blasius
func SelectFrictionStrategy(regime model.FlowRegime, spec model.FlowSpecification) FrictionStrategy {
	if regime == model.Laminar {
		return poiseuille{}
	}
	if spec.HasRoughness() {
		return colebrook{relativeRoughness: *spec.PipeRoughness / spec.CharacteristicLength}
	}
	return blasius{}
}

func CalculateFriction(re float64, regime model.FlowRegime, spec model.FlowSpecification) (model.FrictionResult, error) {
	s := SelectFrictionStrategy(regime, spec)
	f, err := s.Factor(re)
	if err != nil {
		return model.FrictionResult{}, err
	}
	return model.FrictionResult{FrictionFactor: f, Correlation: s.Correlation()}, nil
}
