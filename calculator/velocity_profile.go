package calculator

import (
	"fmt"
	"math"

	"flowcalc/model"
)

// 0 到 1 共 11 个采样点
const profileSamples = 11

// 圆管层流为 Poiseuille 抛物线分布 u = 2U(1-r²)，
// 其余情况为幂律分布 u = U(1-r)^(1/n)
func (c Config) GenerateProfile(regime model.FlowRegime, spec model.FlowSpecification) (model.VelocityProfile, error) {
	parabolic := regime == model.Laminar && spec.Geometry == model.GeometryPipe
	v := spec.MeanVelocity
	profile := make(model.VelocityProfile, profileSamples)
	for i := 0; i < profileSamples; i++ {
		r := float64(i) / float64(profileSamples-1)
		var u float64
		if parabolic {
			u = v * 2 * (1 - r*r)
		} else {
			u = v * math.Pow(1-r, 1/c.ProfileExponent)
		}
		if !finite(u) {
			return nil, arithmeticError("profile", fmt.Sprintf("velocity at r=%.1f is not finite", r))
		}
		profile[i] = model.VelocitySample{Position: r, Velocity: u}
	}
	return profile, nil
}
