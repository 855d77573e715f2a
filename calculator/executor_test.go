package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcalc/model"
)

func TestSweep(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	req := model.SweepRequest{
		Spec:          validRaw(),
		VelocityStart: 0.02,
		VelocityEnd:   10,
		Points:        25,
	}

	points, err := c.Sweep(req, 4)
	require.NoError(t, err)
	require.Len(t, points, 25)

	for i, p := range points {
		assert.Equal(t, i, p.Index)
		require.NotNil(t, p.Result, "point %d: %s", i, p.Error)
		assert.Equal(t, model.ModeFlow, p.Result.Mode)
		if i > 0 {
			assert.Greater(t, p.MeanVelocity, points[i-1].MeanVelocity)
			assert.Greater(t, p.Result.Reynolds, points[i-1].Result.Reynolds)
		}
	}
	assert.Equal(t, model.Laminar, points[0].Result.Regime)
	assert.Equal(t, model.Turbulent, points[24].Result.Regime)
	assert.InDelta(t, 10, points[24].MeanVelocity, 1e-9)

	// 与单独计算结果一致
	spec, err := Validate(validRaw())
	require.NoError(t, err)
	spec.MeanVelocity = points[7].MeanVelocity
	single, err := c.ComputeFlowResult(spec)
	require.NoError(t, err)
	assert.Equal(t, single, *points[7].Result)
}

func TestSweep_PipeModeRecordsPointErrors(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	req := model.SweepRequest{
		Spec:          validRaw(), // 没有管长
		Mode:          "pipe",
		VelocityStart: 1,
		VelocityEnd:   2,
		Points:        3,
	}
	points, err := c.Sweep(req, 2)
	require.NoError(t, err)
	require.Len(t, points, 3)
	for _, p := range points {
		assert.Nil(t, p.Result)
		assert.Contains(t, p.Error, "pipe_length")
	}
}

func TestSweep_Rejects(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	bad := []model.SweepRequest{
		{Spec: validRaw(), VelocityStart: 1, VelocityEnd: 2, Points: 0},
		{Spec: validRaw(), VelocityStart: 1, VelocityEnd: 2, Points: maxSweepPoints + 1},
		{Spec: validRaw(), VelocityStart: 0, VelocityEnd: 2, Points: 3},
		{Spec: validRaw(), VelocityStart: 1, VelocityEnd: -2, Points: 3},
		{Spec: validRaw(), VelocityStart: 1, VelocityEnd: 2, Points: 3, Mode: "mesh"},
		{Spec: model.RawSpecification{}, VelocityStart: 1, VelocityEnd: 2, Points: 3},
	}
	for i, req := range bad {
		_, err := c.Sweep(req, 2)
		require.ErrorIs(t, err, ErrValidation, "case %d", i)
	}
}

func TestSweep_SinglePoint(t *testing.T) {
	points, err := NewCalculator(DefaultConfig()).Sweep(model.SweepRequest{
		Spec: validRaw(), VelocityStart: 3, VelocityEnd: 9, Points: 1,
	}, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 3.0, points[0].MeanVelocity)
}
