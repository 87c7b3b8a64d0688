package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

func TestSubmitProofRequest_Components(t *testing.T) {
	req := &SubmitProofRequest{
		A:      []uint64{1, 2},
		B:      [][]uint64{{3, 4}, {5, 6}},
		C:      []uint64{7, 8},
		Inputs: []uint64{10, 20},
	}

	pc, err := req.Components()
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{1, 2}, pc.A)
	assert.Equal(t, [2][2]uint64{{3, 4}, {5, 6}}, pc.B)
	assert.Equal(t, [2]uint64{7, 8}, pc.C)
	assert.Equal(t, []uint64{10, 20}, pc.Inputs)

	// The converted components own their inputs slice.
	req.Inputs[0] = 999
	assert.Equal(t, uint64(10), pc.Inputs[0])
}

func TestSubmitProofRequest_Components_EmptyInputs(t *testing.T) {
	// Inputs is a variable-length sequence; empty is a valid shape and
	// whether it proves anything is the verification predicate's call.
	req := &SubmitProofRequest{
		A:      []uint64{1, 2},
		B:      [][]uint64{{3, 4}, {5, 6}},
		C:      []uint64{7, 8},
		Inputs: []uint64{},
	}

	pc, err := req.Components()
	require.NoError(t, err)
	assert.Empty(t, pc.Inputs)
}

func TestSubmitProofRequest_Components_Invalid(t *testing.T) {
	valid := func() *SubmitProofRequest {
		return &SubmitProofRequest{
			A:      []uint64{1, 2},
			B:      [][]uint64{{3, 4}, {5, 6}},
			C:      []uint64{7, 8},
			Inputs: []uint64{10},
		}
	}

	tests := []struct {
		name   string
		mutate func(*SubmitProofRequest)
	}{
		{"a too short", func(r *SubmitProofRequest) { r.A = []uint64{1} }},
		{"a too long", func(r *SubmitProofRequest) { r.A = []uint64{1, 2, 3} }},
		{"c too short", func(r *SubmitProofRequest) { r.C = []uint64{7} }},
		{"b missing row", func(r *SubmitProofRequest) { r.B = [][]uint64{{3, 4}} }},
		{"b short row", func(r *SubmitProofRequest) { r.B = [][]uint64{{3}, {5, 6}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := req.Components()
			assert.ErrorIs(t, err, interfaces.ErrMalformedProof)
		})
	}
}
