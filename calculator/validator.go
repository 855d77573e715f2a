package calculator

import (
	"math"
	"strconv"
	"strings"

	"flowcalc/model"
)

const defaultTemperature = 20.0 // ℃

// 校验并规范化前端输入，任何不合法字段都会在计算前直接返回 ValidationError
func Validate(raw model.RawSpecification) (model.FlowSpecification, error) {
	spec := model.FlowSpecification{
		Geometry:    NormalizeGeometry(raw.Geometry),
		Temperature: defaultTemperature,
	}
	var err error
	if spec.CharacteristicLength, err = requirePositive("characteristic_length", raw.CharacteristicLength); err != nil {
		return model.FlowSpecification{}, err
	}
	if spec.Density, err = requirePositive("density", raw.Density); err != nil {
		return model.FlowSpecification{}, err
	}
	if spec.Viscosity, err = requirePositive("viscosity", raw.Viscosity); err != nil {
		return model.FlowSpecification{}, err
	}
	if spec.MeanVelocity, err = requirePositive("mean_velocity", raw.MeanVelocity); err != nil {
		return model.FlowSpecification{}, err
	}

	if t, ok, err := optional("temperature", raw.Temperature); err != nil {
		return model.FlowSpecification{}, err
	} else if ok {
		spec.Temperature = t
	}
	if l, ok, err := optional("pipe_length", raw.PipeLength); err != nil {
		return model.FlowSpecification{}, err
	} else if ok {
		if l <= 0 {
			return model.FlowSpecification{}, validationError("pipe_length", "must be greater than 0")
		}
		spec.PipeLength = &l
	}
	if e, ok, err := optional("pipe_roughness", raw.PipeRoughness); err != nil {
		return model.FlowSpecification{}, err
	} else if ok {
		if e < 0 {
			return model.FlowSpecification{}, validationError("pipe_roughness", "must not be negative")
		}
		spec.PipeRoughness = &e
	}
	if z, ok, err := optional("elevation_change", raw.ElevationChange); err != nil {
		return model.FlowSpecification{}, err
	} else if ok {
		spec.ElevationChange = &z
	}
	return spec, nil
}

// 对已构造好的参数再做一次检查，供直接调用引擎的场景使用
func CheckSpecification(spec model.FlowSpecification) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"characteristic_length", spec.CharacteristicLength},
		{"density", spec.Density},
		{"viscosity", spec.Viscosity},
		{"mean_velocity", spec.MeanVelocity},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return validationError(f.name, "must be a finite number")
		}
		if f.v <= 0 {
			return validationError(f.name, "must be greater than 0")
		}
	}
	if !finite(spec.Temperature) {
		return validationError("temperature", "must be a finite number")
	}
	if spec.PipeLength != nil && (!finite(*spec.PipeLength) || *spec.PipeLength <= 0) {
		return validationError("pipe_length", "must be a finite number greater than 0")
	}
	if spec.PipeRoughness != nil && (!finite(*spec.PipeRoughness) || *spec.PipeRoughness < 0) {
		return validationError("pipe_roughness", "must be a finite, non-negative number")
	}
	if spec.ElevationChange != nil && !finite(*spec.ElevationChange) {
		return validationError("elevation_change", "must be a finite number")
	}
	return nil
}

// 未识别的几何类型一律按圆管处理
func NormalizeGeometry(g string) model.GeometryType {
	s := strings.ToLower(strings.TrimSpace(g))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	switch model.GeometryType(s) {
	case model.GeometryPipe, model.GeometryChannel, model.GeometryCavity, model.GeometryBackwardFacingStep:
		return model.GeometryType(s)
	}
	return model.GeometryPipe
}

func requirePositive(field string, n model.Number) (float64, error) {
	v, ok, err := optional(field, n)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, validationError(field, "is required")
	}
	if v <= 0 {
		return 0, validationError(field, "must be greater than 0")
	}
	return v, nil
}

// 空值返回 ok == false
func optional(field string, n model.Number) (float64, bool, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, validationError(field, "is not a number")
	}
	if !finite(v) {
		return 0, false, validationError(field, "must be a finite number")
	}
	return v, true, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
