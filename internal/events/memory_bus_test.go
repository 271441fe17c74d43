package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_DeliversToEverySubscriber(t *testing.T) {
	bus := NewMemoryBus()
	a, releaseA := bus.Subscribe()
	b, releaseB := bus.Subscribe()
	defer releaseA()
	defer releaseB()

	evt := Event{Type: TypeResponseSubmitted, ResponseID: "c@x.io_J1", JobID: "J1", Version: 2, At: time.Now()}
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, evt, <-a)
	assert.Equal(t, evt, <-b)
}

func TestMemoryBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := NewMemoryBus()
	ch, release := bus.Subscribe()
	defer release()

	for i := 0; i < subscriberBuffer+10; i++ {
		require.NoError(t, bus.Publish(context.Background(), Event{Version: i}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestMemoryBus_ReleaseAndClose(t *testing.T) {
	bus := NewMemoryBus()
	ch, release := bus.Subscribe()
	release()
	release()

	_, ok := <-ch
	assert.False(t, ok)

	other, _ := bus.Subscribe()
	require.NoError(t, bus.Close())
	_, ok = <-other
	assert.False(t, ok)

	late, _ := bus.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}
