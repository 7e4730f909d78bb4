// SPDX-License-Identifier: Apache-2.0

package esp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// myassert is a local extension of testify/assert used across this
// package's tests.
type myassert struct {
	*assert.Assertions

	t *testing.T
}

// NoErrorFatal fails the test immediately if err is non-nil.
func (a *myassert) NoErrorFatal(err error) {
	a.NoError(err)
	if err != nil {
		a.t.Logf("stopping test %s due to fatal error", a.t.Name())
		a.t.FailNow()
	}
}

func NewAssert(t *testing.T) *myassert {
	return &myassert{assert.New(t), t}
}
