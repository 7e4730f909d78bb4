// SPDX-License-Identifier: Apache-2.0

package netbridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesNotify(t *testing.T) {
	n := NewNotifier()
	events, cancel := n.Subscribe(nil)
	defer cancel()

	n.Notify(ConnectivityEvent{Disconnected: true})

	select {
	case ev := <-events:
		assert.True(t, ev.Disconnected)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestNotifyFansOutToMultipleSubscribers(t *testing.T) {
	n := NewNotifier()
	ev1, cancel1 := n.Subscribe(nil)
	defer cancel1()
	ev2, cancel2 := n.Subscribe(nil)
	defer cancel2()

	require.Equal(t, 2, n.SubscriberCount())

	n.Notify(ConnectivityEvent{Disconnected: false})

	for _, ch := range []<-chan ConnectivityEvent{ev1, ev2} {
		select {
		case ev := <-ch:
			assert.False(t, ev.Disconnected)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for fan-out delivery")
		}
	}
}

func TestCancelStopsDeliveryAndClosesChannel(t *testing.T) {
	n := NewNotifier()
	events, cancel := n.Subscribe(nil)

	cancel()
	assert.Equal(t, 0, n.SubscriberCount())

	_, open := <-events
	assert.False(t, open)

	// Must not panic or deliver anywhere once cancelled.
	n.Notify(ConnectivityEvent{Disconnected: true})
}

func TestCancelIsIdempotent(t *testing.T) {
	n := NewNotifier()
	_, cancel := n.Subscribe(nil)

	assert.NotPanics(t, func() {
		cancel()
		cancel()
	})
}

func TestContextCancellationAutoUnsubscribes(t *testing.T) {
	n := NewNotifier()
	ctx, cancelCtx := context.WithCancel(context.Background())
	events, _ := n.Subscribe(ctx)

	cancelCtx()

	require.Eventually(t, func() bool {
		return n.SubscriberCount() == 0
	}, time.Second, time.Millisecond)

	_, open := <-events
	assert.False(t, open)
}

func TestNotifyDropsOnFullSubscriberBuffer(t *testing.T) {
	n := NewNotifier()
	events, cancel := n.Subscribe(nil)
	defer cancel()

	// The subscriber buffer is small and bounded; flooding it must not
	// block Notify.
	for i := 0; i < 100; i++ {
		n.Notify(ConnectivityEvent{Disconnected: i%2 == 0})
	}

	count := 0
	for {
		select {
		case <-events:
			count++
		default:
			assert.Greater(t, count, 0)
			assert.Less(t, count, 100)
			return
		}
	}
}

func TestNotifyWithNoSubscribersIsANoop(t *testing.T) {
	n := NewNotifier()
	assert.NotPanics(t, func() {
		n.Notify(ConnectivityEvent{Disconnected: true})
	})
}
