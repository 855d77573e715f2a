package calculator

import "math"

// 湍流强度经验式 I = 0.16 Re^-0.125，层流下同样给出数值
func (c Config) TurbulenceIntensity(re float64) (float64, error) {
	if re <= 0 {
		return 0, domainError("reynolds", "must be greater than 0")
	}
	i := c.TurbulenceCoefficient * math.Pow(re, c.TurbulenceExponent)
	if !finite(i) {
		return 0, arithmeticError("turbulence_intensity", "is not finite")
	}
	return i, nil
}
