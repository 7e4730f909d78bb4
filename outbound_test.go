// SPDX-License-Identifier: Apache-2.0

package esp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S6: Exhaustion. Forcing lastSeqno via SetSeqnoForTesting is the
// white-box hook spec §8 allows in lieu of 2^32-1 real calls.
func TestScenarioExhaustion(t *testing.T) {
	ctx := newOutboundContext(t)
	ctx.SetSeqnoForTesting(math.MaxUint32)

	ok, seqno := ctx.NextSeqno()
	assert.False(t, ok)
	assert.Equal(t, uint32(0), seqno)
	assert.Equal(t, uint32(math.MaxUint32), ctx.GetSeqno())

	// Exhaustion is sticky: it never recovers on its own.
	ok, _ = ctx.NextSeqno()
	assert.False(t, ok)
}

func TestNextSeqnoFirstCallYieldsOne(t *testing.T) {
	ctx := newOutboundContext(t)

	ok, seqno := ctx.NextSeqno()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), seqno)
}

func TestNextSeqnoMonotoneProperty(t *testing.T) {
	ctx := newOutboundContext(t)

	var prev uint32
	for i := 0; i < 1000; i++ {
		ok, seqno := ctx.NextSeqno()
		assert.True(t, ok)
		assert.Greater(t, seqno, prev)
		prev = seqno
	}
}
