package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventWithArgInvokesInOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	e.Invoke(3)

	assert.Equal(t, []int{3, 30}, got)
	assert.Equal(t, 2, e.GetListenerCount())
}

func TestEventWithArgRemoveListener(t *testing.T) {
	var e EventWithArg[string]
	calls := 0

	id := e.AddListener(func(string) { calls++ })
	e.AddListener(func(string) { calls += 10 })

	assert.True(t, e.RemoveListener(id))
	assert.False(t, e.RemoveListener(id))
	e.Invoke("x")
	assert.Equal(t, 10, calls)

	e.RemoveAllListeners()
	e.Invoke("x")
	assert.Equal(t, 10, calls)
	assert.Zero(t, e.GetListenerCount())
}

func TestEventWithArgNilListener(t *testing.T) {
	var e EventWithArg[int]
	assert.Equal(t, ListenerID(0), e.AddListener(nil))
	assert.Zero(t, e.GetListenerCount())
}

func TestEventListenerAddedDuringInvoke(t *testing.T) {
	var e EventWithArg[int]
	calls := 0
	e.AddListener(func(int) {
		calls++
		e.AddListener(func(int) { calls += 100 })
	})

	e.Invoke(0)
	assert.Equal(t, 1, calls, "listeners added during dispatch wait for the next invoke")

	e.Invoke(0)
	assert.Equal(t, 102, calls)
}

func TestEvent(t *testing.T) {
	var e Event
	calls := 0
	id := e.AddListener(func() { calls++ })

	e.Invoke()
	e.Invoke()
	assert.Equal(t, 2, calls)

	assert.True(t, e.RemoveListener(id))
	e.Invoke()
	assert.Equal(t, 2, calls)
	assert.Zero(t, e.GetListenerCount())
}
