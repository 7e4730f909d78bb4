// SPDX-License-Identifier: Apache-2.0

// Package netbridge models, for boundary completeness, the
// connectivity-change collaborator spec.md §5 describes as an
// external JNI/Android bridge: a host-side component that reports
// network transitions to the ESP/IKE data path. The original is a
// mutex-guarded raw callback pointer invoked from a JNI upcall on an
// unspecified thread (see original_source network_manager.c); this
// package re-architects that as a message-passing boundary per
// spec.md §9's design note, eliminating the mutex-around-a-callback
// pattern in favor of per-subscriber channels.
package netbridge

import (
	"context"
	"sync"
)

// ConnectivityEvent reports a network connectivity transition.
type ConnectivityEvent struct {
	// Disconnected is true when connectivity was lost, false when it
	// was (re)established.
	Disconnected bool
}

// Notifier fans connectivity events, posted by Notify, out to
// subscribers registered with Subscribe. It replaces the JNI bridge's
// single mutex-guarded callback slot with a set of independent,
// buffered channels.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan ConnectivityEvent
	next int
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan ConnectivityEvent)}
}

// Subscribe registers a new subscriber and returns its event channel
// and a cancel function. Connectivity transitions are delivered at
// most once per event, from an unspecified goroutine (whichever calls
// Notify), after Subscribe returns and until cancel is called. The
// channel is closed by cancel (or by ctx's cancellation) so range
// loops over it terminate cleanly.
func (n *Notifier) Subscribe(ctx context.Context) (events <-chan ConnectivityEvent, cancel func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	ch := make(chan ConnectivityEvent, 8)
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	cancelFn := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			cancelFn()
		}()
	}

	return ch, cancelFn
}

// Notify delivers a connectivity event to every current subscriber.
// It is safe to call from any goroutine, analogous to the JNI
// NetworkManager.networkChanged upcall landing on an arbitrary JVM
// thread. A subscriber with a full buffer drops the event rather than
// blocking the notifier.
func (n *Notifier) Notify(event ConnectivityEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount reports the number of currently registered
// subscribers, mainly useful for tests and diagnostics.
func (n *Notifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
