package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 关联式中用到的可覆盖常数
type Config struct {
	ThermalConductivity   float64 // 流体导热系数 W/(m·K)
	Prandtl               float64 // 普朗特数
	ProfileExponent       float64 // 幂律速度分布指数 n，u = U(1-r)^(1/n)
	LaminarLimit          float64 // Re 小于该值为层流
	TurbulentLimit        float64 // Re 大于该值为湍流
	TurbulenceCoefficient float64 // I = C * Re^m
	TurbulenceExponent    float64
	Gravity               float64 // m/s²
}

func DefaultConfig() Config {
	return Config{
		ThermalConductivity:   0.6,
		Prandtl:               0.7,
		ProfileExponent:       7,
		LaminarLimit:          2300,
		TurbulentLimit:        4000,
		TurbulenceCoefficient: 0.16,
		TurbulenceExponent:    -0.125,
		Gravity:               9.81,
	}
}

// 从配置文件读取，文件不存在时使用默认值
func LoadConfig(path string) (Config, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := ReadConfig(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ReadConfig(file *ini.File) Config {
	d := DefaultConfig()
	sec := file.Section("correlation")
	cfg := Config{
		ThermalConductivity:   sec.Key("ThermalConductivity").MustFloat64(d.ThermalConductivity),
		Prandtl:               sec.Key("Prandtl").MustFloat64(d.Prandtl),
		ProfileExponent:       sec.Key("ProfileExponent").MustFloat64(d.ProfileExponent),
		LaminarLimit:          sec.Key("LaminarLimit").MustFloat64(d.LaminarLimit),
		TurbulentLimit:        sec.Key("TurbulentLimit").MustFloat64(d.TurbulentLimit),
		TurbulenceCoefficient: sec.Key("TurbulenceCoefficient").MustFloat64(d.TurbulenceCoefficient),
		TurbulenceExponent:    sec.Key("TurbulenceExponent").MustFloat64(d.TurbulenceExponent),
		Gravity:               sec.Key("Gravity").MustFloat64(d.Gravity),
	}
	log.WithFields(log.Fields{
		"ThermalConductivity": cfg.ThermalConductivity,
		"Prandtl":             cfg.Prandtl,
		"ProfileExponent":     cfg.ProfileExponent,
		"LaminarLimit":        cfg.LaminarLimit,
		"TurbulentLimit":      cfg.TurbulentLimit,
		"Gravity":             cfg.Gravity,
	}).Info("读取关联式参数")
	return cfg
}

func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ThermalConductivity", c.ThermalConductivity},
		{"Prandtl", c.Prandtl},
		{"ProfileExponent", c.ProfileExponent},
		{"LaminarLimit", c.LaminarLimit},
		{"TurbulentLimit", c.TurbulentLimit},
		{"TurbulenceCoefficient", c.TurbulenceCoefficient},
		{"TurbulenceExponent", c.TurbulenceExponent},
		{"Gravity", c.Gravity},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return validationError(f.name, "must be a finite number")
		}
		// 指数可以为负，其余常数必须为正
		if f.name != "TurbulenceExponent" && f.v <= 0 {
			return validationError(f.name, "must be positive")
		}
	}
	if c.TurbulentLimit < c.LaminarLimit {
		return validationError("LaminarLimit", "regime thresholds must satisfy 0 < laminar <= turbulent")
	}
	return nil
}

// 用预置流体的物性替换导热系数和普朗特数，零值表示沿用原值
func (c Config) WithFluidProperties(thermalConductivity, prandtl float64) Config {
	if thermalConductivity > 0 {
		c.ThermalConductivity = thermalConductivity
	}
	if prandtl > 0 {
		c.Prandtl = prandtl
	}
	return c
}
