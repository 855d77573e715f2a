package fluid

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"flowcalc/model"
)

//go:embed fluids.yaml
var defaultFluids []byte

// 流体物性参数
type Fluid struct {
	Name                string  `yaml:"name" json:"name"`
	Density             float64 `yaml:"density" json:"density"`                           // kg/m³
	Viscosity           float64 `yaml:"viscosity" json:"viscosity"`                       // Pa·s
	ThermalConductivity float64 `yaml:"thermal_conductivity" json:"thermal_conductivity"` // W/(m·K)
	Prandtl             float64 `yaml:"prandtl" json:"prandtl"`
}

// 用预置物性补全未填写的密度和粘度，已填写的以用户输入为准
func (f Fluid) ApplyTo(raw model.RawSpecification) model.RawSpecification {
	if strings.TrimSpace(string(raw.Density)) == "" {
		raw.Density = model.Number(strconv.FormatFloat(f.Density, 'g', -1, 64))
	}
	if strings.TrimSpace(string(raw.Viscosity)) == "" {
		raw.Viscosity = model.Number(strconv.FormatFloat(f.Viscosity, 'g', -1, 64))
	}
	return raw
}

func (f Fluid) validate() error {
	if f.Name == "" {
		return fmt.Errorf("fluid without name")
	}
	for _, v := range []float64{f.Density, f.Viscosity, f.ThermalConductivity, f.Prandtl} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("fluid %s: properties must be positive finite numbers", f.Name)
		}
	}
	return nil
}

// 预置流体库，加载后只读
type Library struct {
	fluids map[string]Fluid
}

// 内置流体库
func Default() *Library {
	lib, err := parse(defaultFluids)
	if err != nil {
		panic(fmt.Sprintf("embedded fluids.yaml: %v", err))
	}
	return lib
}

// 内置流体库基础上叠加文件中的流体，同名覆盖；path 为空时只用内置库
func Load(path string) (*Library, error) {
	lib := Default()
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fluid presets: %w", err)
	}
	extra, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fluid presets %s: %w", path, err)
	}
	for name, f := range extra.fluids {
		lib.fluids[name] = f
	}
	log.WithFields(log.Fields{
		"file":   path,
		"count":  len(extra.fluids),
		"fluids": lib.Names(),
	}).Info("加载流体物性")
	return lib, nil
}

func parse(data []byte) (*Library, error) {
	var list []Fluid
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	lib := &Library{fluids: make(map[string]Fluid, len(list))}
	for _, f := range list {
		f.Name = normalize(f.Name)
		if err := f.validate(); err != nil {
			return nil, err
		}
		lib.fluids[f.Name] = f
	}
	return lib, nil
}

func (l *Library) Get(name string) (Fluid, bool) {
	f, ok := l.fluids[normalize(name)]
	return f, ok
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.fluids))
	for name := range l.fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Library) List() []Fluid {
	names := l.Names()
	list := make([]Fluid, len(names))
	for i, name := range names {
		list[i] = l.fluids[name]
	}
	return list
}

func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
