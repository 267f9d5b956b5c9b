package bounty

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	// multihash prefix of a SHA2-256 digest.
	sha256Code   = 0x12
	sha256Length = 0x20

	cidV0Length = 2 + sha256Length
)

// ErrInvalidEvidence is returned for evidence identifiers that are not
// CIDv0 content identifiers.
var ErrInvalidEvidence = errors.New("invalid evidence identifier")

// ParseEvidence decodes base58-encoded CIDv0 evidence identifier (like
// "Qm...") attached to auditor votes and returns the SHA2-256 digest of the
// referenced content.
func ParseEvidence(cid string) ([]byte, error) {
	raw, err := base58.Decode(cid)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEvidence, err.Error())
	}
	if len(raw) != cidV0Length || raw[0] != sha256Code || raw[1] != sha256Length {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEvidence, cid)
	}
	return raw[2:], nil
}

// ValidateEvidence checks every identifier in the list with ParseEvidence.
func ValidateEvidence(evidence []string) error {
	for i := range evidence {
		if _, err := ParseEvidence(evidence[i]); err != nil {
			return fmt.Errorf("evidence %d: %w", i, err)
		}
	}
	return nil
}

// EvidenceID encodes SHA2-256 digest into CIDv0 evidence identifier.
func EvidenceID(digest []byte) (string, error) {
	if len(digest) != sha256Length {
		return "", fmt.Errorf("%w: wrong digest length %d", ErrInvalidEvidence, len(digest))
	}
	raw := make([]byte, 0, cidV0Length)
	raw = append(raw, sha256Code, sha256Length)
	raw = append(raw, digest...)
	return base58.Encode(raw), nil
}
