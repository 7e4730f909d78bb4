// SPDX-License-Identifier: Apache-2.0

package esp

// setWindowBit sets or clears bit index in the window buffer.
func (c *Context) setWindowBit(index uint, set bool) {
	i := index / 8
	bit := byte(1) << (index % 8)
	if set {
		c.window[i] |= bit
	} else {
		c.window[i] &^= bit
	}
}

// getWindowBit reports whether bit index is set in the window buffer.
func (c *Context) getWindowBit(index uint) bool {
	i := index / 8
	bit := byte(1) << (index % 8)
	return c.window[i]&bit != 0
}

// windowIndex maps an in-window seqno to its bit index, given the
// already-verified precondition last - seqno < windowSize. Bounds
// must be checked by the caller before calling this: the source
// strongSwan implementation computes this offset via unsigned
// subtraction before checking bounds, which wraps on a
// precondition violation. We require the check first (spec §9).
func (c *Context) windowIndex(seqno uint32) uint {
	offset := int64(c.lastSeqno) - int64(seqno)
	idx := (int64(c.seqnoIndex) - offset) % int64(c.windowSize)
	if idx < 0 {
		idx += int64(c.windowSize)
	}
	return uint(idx)
}

// ReplayStatus classifies the outcome of a replay check in more
// detail than the plain boolean VerifySeqno returns, for callers that
// want to distinguish a duplicate from a stale packet (e.g. for
// separate counters). It carries no wire representation; it exists
// purely as an in-process diagnostic, analogous to the
// InfoDuplicateToken/InfoOldToken distinction RFC 2743's GSS status
// codes make for per-message tokens.
type ReplayStatus uint8

const (
	// ReplayAccepted means the seqno is ahead of the window, or
	// inside the window and not yet marked accepted.
	ReplayAccepted ReplayStatus = iota
	// ReplayDuplicate means the seqno is inside the window but its
	// bit is already set: it was already authenticated.
	ReplayDuplicate
	// ReplayTooOld means the seqno is zero, or at/behind the trailing
	// edge of the window. It is also the status of every seqno on an
	// outbound context.
	ReplayTooOld
)

func (s ReplayStatus) String() string {
	switch s {
	case ReplayAccepted:
		return "accepted"
	case ReplayDuplicate:
		return "duplicate"
	case ReplayTooOld:
		return "too-old"
	default:
		return "unknown"
	}
}

// VerifySeqno performs a non-destructive anti-replay check on seqno,
// per RFC 4303 and spec §4.1.3. It always returns false for outbound
// contexts. It never mutates context state; callers must MAC-validate
// the packet and then call SetAuthenticatedSeqno to commit it.
func (c *Context) VerifySeqno(seqno uint32) bool {
	ok, _ := c.verifySeqnoStatus(seqno)
	return ok
}

// ReplayStatusOf is a diagnostic-only counterpart to VerifySeqno that
// additionally classifies a rejection as a duplicate or too-old. It
// performs the identical, non-mutating check.
func (c *Context) ReplayStatusOf(seqno uint32) ReplayStatus {
	_, status := c.verifySeqnoStatus(seqno)
	return status
}

func (c *Context) verifySeqnoStatus(seqno uint32) (bool, ReplayStatus) {
	if !c.inbound {
		return false, ReplayTooOld
	}

	switch {
	case seqno > c.lastSeqno:
		// Ahead of the window: always accept.
		return true, ReplayAccepted

	case seqno > 0 && uint64(c.lastSeqno)-uint64(seqno) < uint64(c.windowSize):
		// Inside the window: accept iff not already marked.
		if c.getWindowBit(c.windowIndex(seqno)) {
			return false, ReplayDuplicate
		}
		return true, ReplayAccepted

	default:
		// seqno == 0, or behind/at the trailing edge of the window.
		return false, ReplayTooOld
	}
}

// SetAuthenticatedSeqno commits a verified, MAC-validated seqno into
// the window, per spec §4.1.4. It is a no-op on outbound contexts.
// Callers must have already observed VerifySeqno(seqno) == true and
// authenticated the packet's MAC; this call does not re-verify.
// Committing an already-set in-window seqno is silently idempotent.
func (c *Context) SetAuthenticatedSeqno(seqno uint32) {
	if !c.inbound {
		return
	}

	if seqno > c.lastSeqno {
		shift := uint64(seqno) - uint64(c.lastSeqno)
		if shift > uint64(c.windowSize) {
			shift = uint64(c.windowSize)
		}
		for i := uint64(0); i < shift; i++ {
			c.seqnoIndex = (c.seqnoIndex + 1) % c.windowSize
			c.setWindowBit(c.seqnoIndex, false)
		}
		c.setWindowBit(c.seqnoIndex, true)
		c.lastSeqno = seqno
		return
	}

	// In-window case: last_seqno and seqno_index are unchanged.
	c.setWindowBit(c.windowIndex(seqno), true)
}
