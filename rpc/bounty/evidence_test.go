package bounty

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestParseEvidence(t *testing.T) {
	digest := sha256.Sum256([]byte("milestone report"))

	id, err := EvidenceID(digest[:])
	require.NoError(t, err)
	require.Equal(t, "Qm", id[:2])

	res, err := ParseEvidence(id)
	require.NoError(t, err)
	require.Equal(t, digest[:], res)

	t.Run("invalid base58", func(t *testing.T) {
		_, err := ParseEvidence("Qm0OIl")
		require.True(t, errors.Is(err, ErrInvalidEvidence))
	})
	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseEvidence(base58.Encode([]byte{0x12, 0x20, 1, 2, 3}))
		require.True(t, errors.Is(err, ErrInvalidEvidence))
	})
	t.Run("wrong hash function", func(t *testing.T) {
		raw := append([]byte{0x13, 0x20}, digest[:]...)
		_, err := ParseEvidence(base58.Encode(raw))
		require.True(t, errors.Is(err, ErrInvalidEvidence))
	})
	t.Run("wrong digest length", func(t *testing.T) {
		_, err := EvidenceID(digest[:10])
		require.True(t, errors.Is(err, ErrInvalidEvidence))
	})
}

func TestValidateEvidence(t *testing.T) {
	d1 := sha256.Sum256([]byte("photo"))
	d2 := sha256.Sum256([]byte("invoice"))
	id1, err := EvidenceID(d1[:])
	require.NoError(t, err)
	id2, err := EvidenceID(d2[:])
	require.NoError(t, err)

	require.NoError(t, ValidateEvidence(nil))
	require.NoError(t, ValidateEvidence([]string{id1, id2}))
	require.ErrorIs(t, ValidateEvidence([]string{id1, "bad"}), ErrInvalidEvidence)
}
