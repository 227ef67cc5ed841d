package canon

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// DomainTree is the domain prefix for tree identity hashes. The version
// suffix enables future canonical-form migration.
const DomainTree = "fieldexpr/tree/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// TreeHash computes the content-addressed identity of a tree. Equal
// hashes mean structurally equal trees; the hash is stable across
// processes and platforms.
func TreeHash(o expr.Operand) (string, error) {
	canonical, err := Marshal(o)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainTree, canonical), nil
}

// Equal reports whether two trees are structurally equal, i.e. their
// canonical forms are byte-identical.
func Equal(a, b expr.Operand) (bool, error) {
	ca, err := Marshal(a)
	if err != nil {
		return false, err
	}
	cb, err := Marshal(b)
	if err != nil {
		return false, err
	}
	return string(ca) == string(cb), nil
}
