package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ch <-chan Stage) []Stage {
	var stages []Stage
	for s := range ch {
		stages = append(stages, s)
	}
	return stages
}

func TestReporter_RunsToCompletion(t *testing.T) {
	r := NewReporter(time.Millisecond, 42)
	stages := collect(r.Start())

	require.Len(t, stages, 11)
	assert.Equal(t, StageMesh, stages[0].Name)
	assert.Equal(t, 0, stages[0].Percent)
	assert.Equal(t, StageDone, stages[10].Name)
	assert.Equal(t, 100, stages[10].Percent)

	for i := 1; i < len(stages); i++ {
		assert.Greater(t, stages[i].Percent, stages[i-1].Percent)
		assert.GreaterOrEqual(t, stages[i].Iteration, stages[i-1].Iteration)
		assert.Equal(t, stages[0].MeshCells, stages[i].MeshCells)
	}
	assert.Positive(t, stages[10].Residual)
}

func TestReporter_SameSeedSameStages(t *testing.T) {
	a := collect(NewReporter(time.Millisecond, 7).Start())
	b := collect(NewReporter(time.Millisecond, 7).Start())
	assert.Equal(t, a, b)
}

func TestReporter_Stop(t *testing.T) {
	r := NewReporter(time.Hour, 1)
	ch := r.Start()
	first := <-ch
	assert.Equal(t, 0, first.Percent)

	r.Stop()
	r.Stop()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}
}
