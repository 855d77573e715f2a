package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"flowcalc/model"
)

func TestRecordResult(t *testing.T) {
	c := calculationsTotal.WithLabelValues("pipe", "laminar")
	before := testutil.ToFloat64(c)

	RecordResult(model.CalculationResult{Mode: model.ModePipe, Regime: model.Laminar, Reynolds: 1000})
	RecordResult(model.CalculationResult{Mode: model.ModePipe, Regime: model.Laminar, Reynolds: 1500})

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestRecordError(t *testing.T) {
	c := calculationErrorsTotal.WithLabelValues("arithmetic")
	before := testutil.ToFloat64(c)
	RecordError("arithmetic")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestSessions(t *testing.T) {
	before := testutil.ToFloat64(activeSessions)
	SessionOpened()
	assert.Equal(t, before+1, testutil.ToFloat64(activeSessions))
	SessionClosed()
	assert.Equal(t, before, testutil.ToFloat64(activeSessions))
}
