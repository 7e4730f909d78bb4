// SPDX-License-Identifier: Apache-2.0

// Package sa supplements the ESP anti-replay core with a minimal SA
// (Security Association) manager: it owns the inbound/outbound
// esp.Context pair for each SPI and turns outbound seqno exhaustion
// into the rekey signal spec.md describes but leaves to an "enclosing
// SA manager". It does not negotiate keys, does not expire SAs on a
// timer, and does not implement Extended Sequence Numbers — those
// remain out of scope.
package sa

import (
	"fmt"
	"sync"

	"github.com/strongswan-go/espcontext"
	"github.com/strongswan-go/espcontext/cryptoengine"
)

// SPI is a Security Parameter Index, the 32-bit value that, together
// with the destination address and protocol, identifies an SA.
type SPI uint32

// RekeyFunc is invoked exactly once per SPI when that SPI's outbound
// context exhausts its sequence-number space. The manager does not
// perform the rekey itself; it only signals that one is due.
type RekeyFunc func(spi SPI)

// Pair is the inbound/outbound esp.Context pair for one SPI.
type Pair struct {
	Inbound  *esp.Context
	Outbound *esp.Context
}

// Manager owns one Pair per SPI and mediates NextSeqno/VerifySeqno so
// that outbound exhaustion reliably reaches a RekeyFunc exactly once.
type Manager struct {
	mu      sync.Mutex
	pairs   map[SPI]*Pair
	rekeyed map[SPI]bool
	onRekey RekeyFunc
	factory *cryptoengine.Factory
}

// NewManager returns a Manager that calls onRekey when an SPI's
// outbound context is exhausted. onRekey may be nil, in which case
// exhaustion is silently absorbed (Send still reports failure).
func NewManager(onRekey RekeyFunc) *Manager {
	return &Manager{
		pairs:   make(map[SPI]*Pair),
		rekeyed: make(map[SPI]bool),
		onRekey: onRekey,
		factory: cryptoengine.NewFactory(),
	}
}

// AddSPI constructs and registers the inbound/outbound esp.Context
// pair for spi, keyed with encrAlg/encrKey and integAlg/integKey and
// using esp.DefaultWindowSize unless opts overrides it.
func (m *Manager) AddSPI(spi SPI, encrAlg cryptoengine.EncrAlgorithm, encrKey []byte,
	integAlg cryptoengine.IntegAlgorithm, integKey []byte, opts ...esp.Option) error {

	opts = append([]esp.Option{esp.WithFactory(m.factory)}, opts...)

	in, err := esp.New(true, encrAlg, encrKey, integAlg, integKey, opts...)
	if err != nil {
		return fmt.Errorf("sa: inbound context for spi %#x: %w", spi, err)
	}
	out, err := esp.New(false, encrAlg, encrKey, integAlg, integKey, opts...)
	if err != nil {
		in.Destroy()
		return fmt.Errorf("sa: outbound context for spi %#x: %w", spi, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairs[spi] = &Pair{Inbound: in, Outbound: out}
	return nil
}

// RemoveSPI destroys and forgets the Pair for spi, if any.
func (m *Manager) RemoveSPI(spi SPI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.pairs[spi]; ok {
		p.Inbound.Destroy()
		p.Outbound.Destroy()
		delete(m.pairs, spi)
		delete(m.rekeyed, spi)
	}
}

// Send assigns the next outbound seqno for spi. On exhaustion it
// invokes the registered RekeyFunc exactly once for this SPI and
// returns (0, false); further calls after exhaustion keep failing
// without re-invoking RekeyFunc.
func (m *Manager) Send(spi SPI) (seqno uint32, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.pairs[spi]
	if !exists {
		return 0, false
	}

	ok2, seqno2 := p.Outbound.NextSeqno()
	if ok2 {
		return seqno2, true
	}

	if !m.rekeyed[spi] {
		m.rekeyed[spi] = true
		if m.onRekey != nil {
			m.onRekey(spi)
		}
	}
	return 0, false
}

// Receive checks seqno for replay against spi's inbound context.
// Callers must pass macValid == true only after authenticating the
// packet's MAC; the seqno is committed into the anti-replay window
// only when both the replay check and the MAC validation pass,
// mirroring the precondition in spec §4.1.4.
func (m *Manager) Receive(spi SPI, seqno uint32, macValid bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.pairs[spi]
	if !exists {
		return false
	}

	if !p.Inbound.VerifySeqno(seqno) {
		return false
	}
	if !macValid {
		return false
	}
	p.Inbound.SetAuthenticatedSeqno(seqno)
	return true
}
