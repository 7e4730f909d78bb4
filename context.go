// SPDX-License-Identifier: Apache-2.0

package esp

import (
	"github.com/strongswan-go/espcontext/cryptoengine"
)

// DefaultWindowSize is the default anti-replay window width in bits,
// per RFC 4303 (which requires at least 32). It must remain a
// positive multiple of 8.
const DefaultWindowSize = 128

// Context is the per-SA ESP cryptographic context: a keyed cipher
// handle, a keyed MAC handle, and (for inbound contexts) the
// sequence-number high-water mark and anti-replay window. A Context
// is bound to a single, unidirectional Security Association for its
// entire lifetime and is not copyable; construct a new one per
// direction per SA.
//
// A Context is single-owner, non-shared state: it is safe to use
// serially from the packet-processing path that owns it, but it does
// not internally synchronize NextSeqno/SetAuthenticatedSeqno against
// concurrent callers.
type Context struct {
	inbound bool

	cipher cryptoengine.Crypter
	mac    cryptoengine.Signer

	// lastSeqno is, for outbound contexts, the last assigned seqno;
	// for inbound contexts, the highest authenticated seqno.
	lastSeqno uint32

	// windowSize is fixed at construction and is always a positive
	// multiple of 8.
	windowSize uint

	// window is the anti-replay bit buffer (inbound only), indexed
	// circularly from seqnoIndex: a set bit means the seqno mapped to
	// it by windowIndex has been accepted.
	window []byte

	// seqnoIndex is the bit index in window corresponding to
	// lastSeqno (inbound only).
	seqnoIndex uint
}

// config accumulates the optional settings applied by Option values.
// It is unexported: callers only ever see the Option constructors.
type config struct {
	windowSize uint
	factory    *cryptoengine.Factory
}

// Option configures an optional aspect of Context construction.
// Modeled on the teacher stack's functional-option pattern for
// optional, rarely-changed construction parameters.
type Option func(*config) error

// WithWindowSize overrides DefaultWindowSize. size must be a positive
// multiple of 8; New returns a *ConstructionError wrapping
// ErrInvalidWindowSize otherwise.
func WithWindowSize(size uint) Option {
	return func(c *config) error {
		if size == 0 || size%8 != 0 {
			return ErrInvalidWindowSize
		}
		c.windowSize = size
		return nil
	}
}

// WithFactory overrides the cryptoengine.Factory used to resolve the
// cipher and MAC. NewFactory's default stdlib-backed factory is used
// when this option is not supplied.
func WithFactory(f *cryptoengine.Factory) Option {
	return func(c *config) error {
		c.factory = f
		return nil
	}
}

// New constructs a Context for one direction of a Security
// Association, resolving and keying encrAlg/encrKey and
// integAlg/integKey via a cryptoengine.Factory (WithFactory, or the
// stdlib-backed default), and, for inbound contexts, allocating a
// zeroed anti-replay window.
//
// Construction fails atomically: if any step fails, every resource
// already acquired is released before New returns, and the returned
// error is a *ConstructionError (unwrap it, or use errors.Is, to
// inspect the underlying sentinel: ErrUnsupportedCipher,
// ErrUnsupportedIntegrity, ErrCipherKeyInstall,
// ErrIntegrityKeyInstall, ErrInvalidWindowSize). Failure is also
// logged at the "ESP" diagnostic facet identifying the failing step.
func New(inbound bool, encrAlg cryptoengine.EncrAlgorithm, encrKey []byte,
	integAlg cryptoengine.IntegAlgorithm, integKey []byte, opts ...Option) (*Context, error) {

	cfg := config{windowSize: DefaultWindowSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			cerr := &ConstructionError{Step: "allocation", Err: err}
			logConstructionFailure(cerr.Step, cerr.Err)
			return nil, cerr
		}
	}

	factory := cfg.factory
	if factory == nil {
		factory = cryptoengine.NewFactory()
	}

	ctx := &Context{
		inbound:    inbound,
		windowSize: cfg.windowSize,
	}

	cipher := factory.CreateCrypter(encrAlg, len(encrKey))
	if cipher == nil {
		err := &ConstructionError{Step: "algorithm", Err: ErrUnsupportedCipher}
		logConstructionFailure(err.Step, err.Err)
		return nil, err
	}
	if err := cipher.SetKey(encrKey); err != nil {
		cipher.Destroy()
		cerr := &ConstructionError{Step: "key", Err: ErrCipherKeyInstall}
		logConstructionFailure(cerr.Step, cerr.Err)
		return nil, cerr
	}
	ctx.cipher = cipher

	mac := factory.CreateSigner(integAlg)
	if mac == nil {
		cipher.Destroy()
		err := &ConstructionError{Step: "algorithm", Err: ErrUnsupportedIntegrity}
		logConstructionFailure(err.Step, err.Err)
		return nil, err
	}
	if err := mac.SetKey(integKey); err != nil {
		cipher.Destroy()
		mac.Destroy()
		cerr := &ConstructionError{Step: "key", Err: ErrIntegrityKeyInstall}
		logConstructionFailure(cerr.Step, cerr.Err)
		return nil, cerr
	}
	ctx.mac = mac

	if inbound {
		ctx.window = make([]byte, cfg.windowSize/8)
	}

	return ctx, nil
}

// GetCipher returns the context's cipher handle. The returned handle
// is borrowed: its lifetime does not exceed the Context's.
func (c *Context) GetCipher() cryptoengine.Crypter {
	return c.cipher
}

// GetMAC returns the context's MAC handle. The returned handle is
// borrowed: its lifetime does not exceed the Context's.
func (c *Context) GetMAC() cryptoengine.Signer {
	return c.mac
}

// GetSeqno returns the current lastSeqno: for outbound contexts, the
// last assigned seqno; for inbound contexts, the highest
// authenticated seqno.
func (c *Context) GetSeqno() uint32 {
	return c.lastSeqno
}

// Inbound reports the direction fixed at construction.
func (c *Context) Inbound() bool {
	return c.inbound
}

// SetSeqnoForTesting forces c's internal high-water seqno without
// driving NextSeqno/SetAuthenticatedSeqno. It exists only to reach
// sequence-number exhaustion in tests without 2^32-1 real calls, the
// white-box hook spec §8 allows in lieu of that; it must not be used
// outside tests.
func (c *Context) SetSeqnoForTesting(seqno uint32) {
	c.lastSeqno = seqno
}

// Destroy releases the cipher, the MAC, and (for inbound contexts)
// the window buffer. The Context must not be used afterwards.
func (c *Context) Destroy() {
	if c.cipher != nil {
		c.cipher.Destroy()
		c.cipher = nil
	}
	if c.mac != nil {
		c.mac.Destroy()
		c.mac = nil
	}
	c.window = nil
}
