package history

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridmesh/core"
	"github.com/hupe1980/gridmesh/engine"
	"github.com/hupe1980/gridmesh/internal/testutil"
)

func TestInMemoryStore_AppendAndGet(t *testing.T) {
	store := NewInMemoryStore()

	store.AppendEvent(core.NewEvent("run-1", core.EventMoved, 1, 0))
	store.AppendEvent(core.NewEvent("run-1", core.EventWaited, 1, 1))
	store.AppendEvent(core.NewEvent("run-2", core.EventMoved, 1, 0))

	rec, ok := store.Get("run-1")
	require.True(t, ok)
	assert.Len(t, rec.Events, 2)
	assert.Equal(t, core.EventMoved, rec.Events[0].Kind)
	assert.Nil(t, rec.Report)
	assert.Equal(t, 2, store.Len())

	_, ok = store.Get("run-3")
	assert.False(t, ok)
}

func TestInMemoryStore_SaveReportWithoutEvents(t *testing.T) {
	store := NewInMemoryStore()

	store.SaveReport(&engine.Report{RunID: "run-1", Outcome: engine.OutcomeSuccess, Steps: 3})

	rec, ok := store.Get("run-1")
	require.True(t, ok)
	assert.Empty(t, rec.Events)
	assert.Equal(t, engine.OutcomeSuccess, rec.Report.Outcome)
}

func TestInMemoryStore_GetReturnsClone(t *testing.T) {
	store := NewInMemoryStore()
	store.AppendEvent(core.NewEvent("run-1", core.EventMoved, 1, 0))
	store.SaveReport(&engine.Report{
		RunID:          "run-1",
		Outcome:        engine.OutcomeSuccess,
		FinalPositions: map[int]core.Position{0: testutil.P(1, 1)},
	})

	rec, ok := store.Get("run-1")
	require.True(t, ok)
	rec.Events[0].Detail = "tampered"
	rec.Report.FinalPositions[0] = testutil.P(9, 9)

	fresh, _ := store.Get("run-1")
	assert.Empty(t, fresh.Events[0].Detail)
	assert.Equal(t, testutil.P(1, 1), fresh.Report.FinalPositions[0])
}

func TestInMemoryStore_SinkCollectsACompleteRun(t *testing.T) {
	store := NewInMemoryStore()

	c, err := engine.New(testutil.FreeGrid(t, 1, 3),
		[]core.Position{testutil.P(0, 0)},
		testutil.P(0, 2),
		func(o *engine.Options) { o.EventSink = store.Sink() },
	)
	require.NoError(t, err)

	report := c.Run()
	store.SaveReport(report)

	rec, ok := store.Get(report.RunID)
	require.True(t, ok)
	assert.NotEmpty(t, rec.Events)
	assert.Equal(t, core.EventFinished, rec.Events[len(rec.Events)-1].Kind)
	assert.Equal(t, engine.OutcomeSuccess, rec.Report.Outcome)
}

func TestInMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(step int) {
			defer wg.Done()
			store.AppendEvent(core.NewEvent("run-1", core.EventMoved, step, 0))
		}(i)
	}
	wg.Wait()

	rec, ok := store.Get("run-1")
	require.True(t, ok)
	assert.Len(t, rec.Events, 8)
}
