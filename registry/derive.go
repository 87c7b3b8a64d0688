package registry

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// DeriveProofID deterministically derives a proof identifier from the
// submission content and its context. The digest is keccak256 over the
// 20-byte submitter address followed by every numeric value (a, b row-major,
// c, then the public inputs) and finally the submission sequence number and
// timestamp, each widened to a 32-byte big-endian word. The word encoding
// matches abi.encodePacked of uint256 values, so the identifier can be
// reproduced by external auditors and by on-chain code alike.
//
// Including the submitter and the monotonic sequence number guarantees that
// textually identical proofs from different accounts, or from the same
// account at different times, receive distinct identifiers.
func DeriveProofID(submitter interfaces.Address, components interfaces.ProofComponents, sequence uint64, submittedAt int64) interfaces.ProofID {
	packed := make([]byte, 0, 20+(9+len(components.Inputs)+2)*32)
	packed = append(packed, submitter.Bytes()...)

	packed = appendWord(packed, components.A[0])
	packed = appendWord(packed, components.A[1])
	for _, row := range components.B {
		packed = appendWord(packed, row[0])
		packed = appendWord(packed, row[1])
	}
	packed = appendWord(packed, components.C[0])
	packed = appendWord(packed, components.C[1])
	for _, input := range components.Inputs {
		packed = appendWord(packed, input)
	}

	packed = appendWord(packed, sequence)
	packed = appendWord(packed, uint64(submittedAt))

	return interfaces.ProofID(crypto.Keccak256Hash(packed))
}

// appendWord appends v as a 32-byte big-endian word.
func appendWord(dst []byte, v uint64) []byte {
	var word [32]byte
	binary.BigEndian.PutUint64(word[24:], v)
	return append(dst, word[:]...)
}
