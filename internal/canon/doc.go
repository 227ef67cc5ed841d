// Package canon produces a deterministic serialization of expression
// trees and derives content-addressed identities from it.
//
// The canonical form is JSON with sorted object keys, NFC-normalized
// strings, no HTML escaping, and a fixed number format, so that the same
// tree always serializes to the same bytes on every platform. Content
// hashes are SHA-256 over the canonical bytes with a domain prefix.
//
// Two trees are structurally equal exactly when their canonical bytes
// (and therefore their hashes) are equal. Compose nodes hash by declared
// function name; the captured Go function value itself is not
// serializable and does not participate in identity.
package canon
