package model

import "time"

// 流态
type FlowRegime string

const (
	Laminar      FlowRegime = "laminar"
	Transitional FlowRegime = "transitional"
	Turbulent    FlowRegime = "turbulent"
)

// 摩擦系数关联式
type Correlation string

const (
	CorrelationPoiseuille Correlation = "laminar-Poiseuille"
	CorrelationBlasius    Correlation = "Blasius"
	CorrelationColebrook  Correlation = "Colebrook-approximation"
)

// 计算模式
type Mode string

const (
	ModeFlow Mode = "flow" // CFD 计算器，速度头形式
	ModePipe Mode = "pipe" // 管道设计，完整 Darcy–Weisbach
)

type FrictionResult struct {
	FrictionFactor float64     `json:"friction_factor"`
	Correlation    Correlation `json:"correlation"`
}

type ThermalResult struct {
	NusseltNumber           float64 `json:"nusselt_number"`
	HeatTransferCoefficient float64 `json:"heat_transfer_coefficient"` // W/(m²·K)
}

type VelocitySample struct {
	Position float64 `json:"position"` // 无量纲径向位置，0 为中心线，1 为壁面
	Velocity float64 `json:"velocity"` // m/s
}

type VelocityProfile []VelocitySample

// 管道设计模式的附加结果
type PipeResult struct {
	HeadLossFriction   float64 `json:"head_loss_friction"`   // m
	TotalHeadLoss      float64 `json:"total_head_loss"`      // m
	PressureDropKPa    float64 `json:"pressure_drop_kpa"`    // kPa
	VolumetricFlowRate float64 `json:"volumetric_flow_rate"` // m³/s
	PumpPowerKW        float64 `json:"pump_power_kw"`        // kW
}

type CalculationResult struct {
	Mode                Mode            `json:"mode"`
	Reynolds            float64         `json:"reynolds"`
	Regime              FlowRegime      `json:"regime"`
	Friction            FrictionResult  `json:"friction"`
	PressureDrop        float64         `json:"pressure_drop"`
	PressureDropUnit    string          `json:"pressure_drop_unit"`
	ShearStress         *float64        `json:"shear_stress,omitempty"` // Pa，仅 flow 模式
	Thermal             ThermalResult   `json:"thermal"`
	TurbulenceIntensity *float64        `json:"turbulence_intensity,omitempty"` // 仅 flow 模式
	Profile             VelocityProfile `json:"profile"`
	Pipe                *PipeResult     `json:"pipe,omitempty"`
}

// 展示用的定精度结果
type DisplayResult struct {
	Reynolds                string `json:"reynolds"`
	Regime                  string `json:"regime"`
	FrictionFactor          string `json:"friction_factor"`
	PressureDrop            string `json:"pressure_drop"`
	ShearStress             string `json:"shear_stress,omitempty"`
	HeatTransferCoefficient string `json:"heat_transfer_coefficient"`
	TurbulenceIntensity     string `json:"turbulence_intensity,omitempty"`
	PumpPower               string `json:"pump_power,omitempty"`
}

// 扫描结果中的单点
type SweepPoint struct {
	Index        int                `json:"index"`
	MeanVelocity float64            `json:"mean_velocity"`
	Result       *CalculationResult `json:"result,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type CalculateResponse struct {
	ID      string            `json:"id"`
	Result  CalculationResult `json:"result"`
	Display DisplayResult     `json:"display"`
}

// 会话历史记录
type HistoryEntry struct {
	ID      string            `json:"id"`
	Time    time.Time         `json:"time"`
	Fluid   string            `json:"fluid,omitempty"`
	Result  CalculationResult `json:"result"`
	Display DisplayResult     `json:"display"`
}

// 错误回复
type ErrorReply struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
