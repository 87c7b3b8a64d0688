package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

func TestDeriveProofID_Deterministic(t *testing.T) {
	components := validComponents()

	first := DeriveProofID(testUser, components, 1, 1700000000)
	second := DeriveProofID(testUser, components, 1, 1700000000)
	assert.Equal(t, first, second)
}

func TestDeriveProofID_SensitiveToEveryInput(t *testing.T) {
	base := validComponents()
	baseID := DeriveProofID(testUser, base, 1, 1700000000)

	// Different submitter.
	assert.NotEqual(t, baseID, DeriveProofID(testVerifier, base, 1, 1700000000))

	// Different sequence.
	assert.NotEqual(t, baseID, DeriveProofID(testUser, base, 2, 1700000000))

	// Different timestamp.
	assert.NotEqual(t, baseID, DeriveProofID(testUser, base, 1, 1700000001))

	// Each component group contributes to the hash.
	modified := base
	modified.A[0]++
	assert.NotEqual(t, baseID, DeriveProofID(testUser, modified, 1, 1700000000))

	modified = base
	modified.B[1][0]++
	assert.NotEqual(t, baseID, DeriveProofID(testUser, modified, 1, 1700000000))

	modified = base
	modified.C[1]++
	assert.NotEqual(t, baseID, DeriveProofID(testUser, modified, 1, 1700000000))

	modified = base
	modified.Inputs = append([]uint64{}, base.Inputs...)
	modified.Inputs[0]++
	assert.NotEqual(t, baseID, DeriveProofID(testUser, modified, 1, 1700000000))
}

func TestDeriveProofID_NotZero(t *testing.T) {
	id := DeriveProofID(testUser, validComponents(), 1, 1700000000)
	assert.NotEqual(t, interfaces.ProofID{}, id)
}
