package calculator

import (
	"strconv"

	"flowcalc/model"
)

// 前端展示精度：Re 0 位，摩擦系数 5 位，压降、剪切应力、换热系数 2 位
func Format(r model.CalculationResult) model.DisplayResult {
	d := model.DisplayResult{
		Reynolds:                fixed(r.Reynolds, 0),
		Regime:                  string(r.Regime),
		FrictionFactor:          fixed(r.Friction.FrictionFactor, 5),
		PressureDrop:            fixed(r.PressureDrop, 2) + " " + r.PressureDropUnit,
		HeatTransferCoefficient: fixed(r.Thermal.HeatTransferCoefficient, 2),
	}
	if r.ShearStress != nil {
		d.ShearStress = fixed(*r.ShearStress, 2)
	}
	if r.TurbulenceIntensity != nil {
		d.TurbulenceIntensity = fixed(*r.TurbulenceIntensity*100, 2) + "%"
	}
	if r.Pipe != nil {
		d.PumpPower = fixed(r.Pipe.PumpPowerKW, 2)
	}
	return d
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
