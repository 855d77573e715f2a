package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcalc/model"
)

func TestClassify_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		re   float64
		want model.FlowRegime
	}{
		{1, model.Laminar},
		{2299.999, model.Laminar},
		{2300, model.Transitional},
		{3000, model.Transitional},
		{4000, model.Transitional},
		{4000.0001, model.Turbulent},
		{1e7, model.Turbulent},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cfg.Classify(c.re), "Re = %v", c.re)
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LaminarLimit = 2000
	cfg.TurbulentLimit = 3000
	assert.Equal(t, model.Transitional, cfg.Classify(2100))
	assert.Equal(t, model.Turbulent, cfg.Classify(3500))
}

func TestReynolds_ZeroViscosity(t *testing.T) {
	spec := water(1, 0.05)
	spec.Viscosity = 0
	_, err := Reynolds(spec)
	require.ErrorIs(t, err, ErrDomain)
}

func TestReynolds_NonPositive(t *testing.T) {
	spec := water(-1, 0.05)
	_, err := Reynolds(spec)
	require.ErrorIs(t, err, ErrDomain)
}

func TestFriction_LaminarIgnoresRoughness(t *testing.T) {
	for _, re := range []float64{10, 500, 1000, 2299} {
		spec := water(1, 0.05)
		spec.PipeRoughness = f64(0.001)
		res, err := CalculateFriction(re, model.Laminar, spec)
		require.NoError(t, err)
		assert.Equal(t, model.CorrelationPoiseuille, res.Correlation)
		assert.InDelta(t, 64/re, res.FrictionFactor, 1e-15)
	}
}

func TestFriction_Selection(t *testing.T) {
	smooth := water(1, 0.05)
	rough := water(1, 0.05)
	rough.PipeRoughness = f64(0.000045)
	zero := water(1, 0.05)
	zero.PipeRoughness = f64(0)

	assert.Equal(t, model.CorrelationBlasius, SelectFrictionStrategy(model.Turbulent, smooth).Correlation())
	assert.Equal(t, model.CorrelationBlasius, SelectFrictionStrategy(model.Transitional, smooth).Correlation())
	assert.Equal(t, model.CorrelationBlasius, SelectFrictionStrategy(model.Turbulent, zero).Correlation())
	assert.Equal(t, model.CorrelationColebrook, SelectFrictionStrategy(model.Turbulent, rough).Correlation())
	assert.Equal(t, model.CorrelationColebrook, SelectFrictionStrategy(model.Transitional, rough).Correlation())
	assert.Equal(t, model.CorrelationPoiseuille, SelectFrictionStrategy(model.Laminar, rough).Correlation())
}

func TestFriction_Colebrook(t *testing.T) {
	spec := water(2, 0.05)
	spec.PipeRoughness = f64(0.000045)
	res, err := CalculateFriction(1e5, model.Turbulent, spec)
	require.NoError(t, err)

	arg := 0.0009/3.7 + 5.74/math.Pow(1e5, 0.9)
	want := 0.25 / math.Pow(math.Log10(arg), 2)
	assert.InDelta(t, want, res.FrictionFactor, 1e-15)
	assert.InDelta(t, 0.0220, res.FrictionFactor, 2e-4)
}

func TestFriction_ColebrookDegenerate(t *testing.T) {
	for _, rr := range []float64{-3.7, -100, math.NaN(), math.Inf(-1)} {
		_, err := colebrook{relativeRoughness: rr}.Factor(1e5)
		require.ErrorIs(t, err, ErrArithmetic, "relative roughness %v", rr)
	}
}

func TestFriction_Blasius(t *testing.T) {
	f, err := blasius{}.Factor(1e5)
	require.NoError(t, err)
	assert.InDelta(t, 0.316/math.Pow(1e5, 0.25), f, 1e-15)

	_, err = blasius{}.Factor(0)
	require.ErrorIs(t, err, ErrDomain)
}

func TestThermal_TurbulentIncreasesWithReynolds(t *testing.T) {
	cfg := DefaultConfig()
	spec := water(1, 0.05)
	prev := 0.0
	for _, re := range []float64{5000, 1e4, 5e4, 1e5, 1e6} {
		res, err := cfg.CalculateThermal(re, model.Turbulent, spec)
		require.NoError(t, err)
		assert.Greater(t, res.HeatTransferCoefficient, prev)
		prev = res.HeatTransferCoefficient
	}
}

func TestThermal_DittusBoelter(t *testing.T) {
	cfg := DefaultConfig()
	spec := water(1, 0.05)
	res, err := cfg.CalculateThermal(1e5, model.Turbulent, spec)
	require.NoError(t, err)
	nu := 0.023 * math.Pow(1e5, 0.8) * math.Pow(0.7, 0.4)
	assert.InDelta(t, nu, res.NusseltNumber, 1e-9)
	assert.InDelta(t, nu*0.6/0.05, res.HeatTransferCoefficient, 1e-9)

	trans, err := cfg.CalculateThermal(3000, model.Transitional, spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.023*math.Pow(3000, 0.8)*math.Pow(0.7, 0.4), trans.NusseltNumber, 1e-9)

	// 流体物性覆盖
	oil := cfg.WithFluidProperties(0.15, 100)
	res2, err := oil.CalculateThermal(1e5, model.Turbulent, spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.023*math.Pow(1e5, 0.8)*math.Pow(100, 0.4)*0.15/0.05, res2.HeatTransferCoefficient, 1e-6)
}

func TestGenerateProfile(t *testing.T) {
	cfg := DefaultConfig()

	laminarPipe, err := cfg.GenerateProfile(model.Laminar, water(0.5, 0.05))
	require.NoError(t, err)
	powerLaw, err := cfg.GenerateProfile(model.Turbulent, water(0.5, 0.05))
	require.NoError(t, err)
	channel := water(0.5, 0.05)
	channel.Geometry = model.GeometryChannel
	laminarChannel, err := cfg.GenerateProfile(model.Laminar, channel)
	require.NoError(t, err)

	for _, p := range []model.VelocityProfile{laminarPipe, powerLaw, laminarChannel} {
		require.Len(t, p, 11)
		assert.Equal(t, 0.0, p[0].Position)
		assert.Equal(t, 1.0, p[10].Position)
		assert.Equal(t, 0.0, p[10].Velocity)
		for i := 1; i < len(p); i++ {
			assert.Greater(t, p[i].Position, p[i-1].Position)
			assert.GreaterOrEqual(t, p[i].Velocity, 0.0)
		}
	}

	assert.InDelta(t, 1.0, laminarPipe[0].Velocity, 1e-15)
	assert.InDelta(t, 0.5*2*(1-0.25), laminarPipe[5].Velocity, 1e-12)
	assert.InDelta(t, 0.5, powerLaw[0].Velocity, 1e-15)
	assert.InDelta(t, 0.5*math.Pow(0.5, 1.0/7), powerLaw[5].Velocity, 1e-12)
	assert.Equal(t, powerLaw, laminarChannel)
}

// 负指数在壁面处得到 +Inf
func TestGenerateProfile_NonFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProfileExponent = -7
	_, err := cfg.GenerateProfile(model.Turbulent, water(0.5, 0.05))
	require.ErrorIs(t, err, ErrArithmetic)

	cfg.ProfileExponent = math.NaN()
	_, err = cfg.GenerateProfile(model.Turbulent, water(0.5, 0.05))
	require.ErrorIs(t, err, ErrArithmetic)
}

func TestTurbulenceIntensity(t *testing.T) {
	cfg := DefaultConfig()
	i, err := cfg.TurbulenceIntensity(1e5)
	require.NoError(t, err)
	assert.InDelta(t, 0.16*math.Pow(1e5, -0.125), i, 1e-15)

	lam, err := cfg.TurbulenceIntensity(1000)
	require.NoError(t, err)
	assert.Greater(t, lam, i)

	_, err = cfg.TurbulenceIntensity(0)
	require.ErrorIs(t, err, ErrDomain)
}

func TestVelocityHeadPressureDrop(t *testing.T) {
	spec := water(2, 0.1)
	dp, err := VelocityHeadPressureDrop(0.02, spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.02*10*0.5*1000*4, dp, 1e-9)

	tau, err := ShearStress(0.02, spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.02*0.5*1000*4, tau, 1e-9)
}
