package calculator

import (
	"math"

	"flowcalc/model"
)

// 充分发展层流圆管 Nu
const laminarNusselt = 3.66

// 层流取常数 Nu，过渡流与湍流用 Dittus–Boelter: Nu = 0.023 Re^0.8 Pr^0.4
// h = Nu * k / L
func (c Config) CalculateThermal(re float64, regime model.FlowRegime, spec model.FlowSpecification) (model.ThermalResult, error) {
	nu := laminarNusselt
	if regime != model.Laminar {
		nu = 0.023 * math.Pow(re, 0.8) * math.Pow(c.Prandtl, 0.4)
	}
	if !finite(nu) || nu <= 0 {
		return model.ThermalResult{}, arithmeticError("nusselt_number", "is not a finite positive number")
	}
	h := nu * c.ThermalConductivity / spec.CharacteristicLength
	if !finite(h) {
		return model.ThermalResult{}, arithmeticError("heat_transfer_coefficient", "is not finite")
	}
	return model.ThermalResult{
		NusseltNumber:           nu,
		HeatTransferCoefficient: h,
	}, nil
}
