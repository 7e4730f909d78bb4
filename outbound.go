// SPDX-License-Identifier: Apache-2.0

package esp

import "math"

// NextSeqno assigns and returns the next outbound seqno, per spec
// §4.1.2. It fails (returning ok == false) if the context is inbound
// or the counter has reached 2^32-1; the first successful call on a
// fresh outbound context yields seqno 1. Exhaustion is a normal,
// reportable condition (not an error): the enclosing SA manager is
// expected to treat it as a rekey trigger (see package sa).
func (c *Context) NextSeqno() (ok bool, seqno uint32) {
	if c.inbound || c.lastSeqno == math.MaxUint32 {
		return false, 0
	}
	c.lastSeqno++
	return true, c.lastSeqno
}
