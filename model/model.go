package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// 几何类型
type GeometryType string

const (
	GeometryPipe               GeometryType = "pipe"
	GeometryChannel            GeometryType = "channel"
	GeometryCavity             GeometryType = "cavity"
	GeometryBackwardFacingStep GeometryType = "backward-facing-step"
)

// 前端输入的数值，可能是数字也可能是字符串
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("not a number: %s", data)
	}
	*n = Number(num.String())
	return nil
}

// 前端提交的原始流动参数，未经校验
type RawSpecification struct {
	Geometry             string `json:"geometry"`
	Fluid                string `json:"fluid,omitempty"` // 预置流体名称，可选
	CharacteristicLength Number `json:"characteristic_length"`
	Density              Number `json:"density"`
	Viscosity            Number `json:"viscosity"`
	MeanVelocity         Number `json:"mean_velocity"`
	Temperature          Number `json:"temperature,omitempty"`
	PipeLength           Number `json:"pipe_length,omitempty"`
	PipeRoughness        Number `json:"pipe_roughness,omitempty"`
	ElevationChange      Number `json:"elevation_change,omitempty"`
}

// 校验后的流动参数，单位均为国际单位制
// 管道模式下 CharacteristicLength 即为管道内径
type FlowSpecification struct {
	Geometry             GeometryType `json:"geometry"`
	CharacteristicLength float64      `json:"characteristic_length"`      // m
	Density              float64      `json:"density"`                    // kg/m³
	Viscosity            float64      `json:"viscosity"`                  // Pa·s
	MeanVelocity         float64      `json:"mean_velocity"`              // m/s
	Temperature          float64      `json:"temperature"`                // ℃，仅展示
	PipeLength           *float64     `json:"pipe_length,omitempty"`      // m
	PipeRoughness        *float64     `json:"pipe_roughness,omitempty"`   // m
	ElevationChange      *float64     `json:"elevation_change,omitempty"` // m
}

// 是否给出了管壁粗糙度
func (s FlowSpecification) HasRoughness() bool {
	return s.PipeRoughness != nil && *s.PipeRoughness > 0
}

// 速度扫描请求
type SweepRequest struct {
	Spec          RawSpecification `json:"spec"`
	Mode          string           `json:"mode"`
	VelocityStart float64          `json:"velocity_start"`
	VelocityEnd   float64          `json:"velocity_end"`
	Points        int              `json:"points"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 单次计算请求
type CalculateRequest struct {
	Mode string           `json:"mode"`
	Spec RawSpecification `json:"spec"`
}
