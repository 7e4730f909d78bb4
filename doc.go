// SPDX-License-Identifier: Apache-2.0

/*
Package esp implements the per-SA ESP (Encapsulating Security Payload,
RFC 4303) cryptographic context: a keyed cipher handle, a keyed MAC
handle, and the 32-bit sequence-number/anti-replay-window state that
binds them.

A Context is created bound to a single, unidirectional Security
Association via New. Outbound contexts hand out monotonically
increasing sequence numbers with NextSeqno; inbound contexts check
candidate sequence numbers for replay with VerifySeqno and commit
MAC-validated ones with SetAuthenticatedSeqno. The context does not
encrypt or parse packets, negotiate keys, or manage SA lifecycle —
those are the responsibility of the enclosing ESP transform and SA
manager (see the sibling sa package).
*/
package esp
