package interfaces

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Address identifies an account (submitter, verifier, or owner).
type Address [20]byte

// NewAddressFromBytes creates an address from a 20-byte slice.
func NewAddressFromBytes(addr []byte) (Address, error) {
	if len(addr) != 20 {
		return Address{}, errors.New("invalid address length: must be 20 bytes")
	}

	var res Address
	copy(res[:], addr)
	return res, nil
}

// NewAddressFromHex creates an address from a hex string, with or without
// a 0x prefix.
func NewAddressFromHex(addr string) (Address, error) {
	clean := strings.TrimPrefix(addr, "0x")
	if len(clean) != 40 {
		return Address{}, errors.New("invalid address length: hex string must be 40 characters")
	}

	addrBytes, err := hex.DecodeString(clean)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex format: %w", err)
	}

	return NewAddressFromBytes(addrBytes)
}

// String returns the hex string representation of the address.
func (addr Address) String() string {
	return hex.EncodeToString(addr[:])
}

// Bytes returns the raw 20-byte address.
func (addr Address) Bytes() []byte {
	return addr[:]
}

// Equal compares two addresses for equality.
func (addr Address) Equal(other Address) bool {
	return addr == other
}

// IsZero reports whether the address is the zero value, which no account
// may use as an identity.
func (addr Address) IsZero() bool {
	return addr == Address{}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON input.
func (addr *Address) UnmarshalText(text []byte) error {
	parsed, err := NewAddressFromHex(string(text))
	if err != nil {
		return err
	}
	*addr = parsed
	return nil
}

// ProofID is the 32-byte content-derived identifier of a proof record.
type ProofID [32]byte

// NewProofIDFromBytes creates a proof ID from a 32-byte slice.
func NewProofIDFromBytes(source []byte) (ProofID, error) {
	if len(source) != 32 {
		return ProofID{}, errors.New("invalid proof ID conversion from bytes: incorrect length")
	}

	var id ProofID
	copy(id[:], source)
	return id, nil
}

// NewProofIDFromHex creates a proof ID from a hex string, with or without
// a 0x prefix.
func NewProofIDFromHex(source string) (ProofID, error) {
	clean := strings.TrimPrefix(source, "0x")
	if len(clean) != 64 {
		return ProofID{}, errors.New("invalid proof ID length: hex string must be 64 characters")
	}

	idBytes, err := hex.DecodeString(clean)
	if err != nil {
		return ProofID{}, fmt.Errorf("invalid hex format: %w", err)
	}

	return NewProofIDFromBytes(idBytes)
}

// String returns the hex representation of the proof ID.
func (id ProofID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns the raw 32-byte identifier.
func (id ProofID) Bytes() []byte {
	return id[:]
}

// Equal compares two proof IDs.
func (id ProofID) Equal(other ProofID) bool {
	return bytes.Equal(id[:], other[:])
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (id ProofID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON input.
func (id *ProofID) UnmarshalText(text []byte) error {
	parsed, err := NewProofIDFromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ProofComponents is the opaque payload of a submission: two fixed-size
// tuples, a 2x2 matrix, and a variable-length public-input sequence. The
// registry never interprets the values, it only passes them to the
// verification predicate. The layout mirrors a Groth16 proof (a, b, c) plus
// public inputs so a real pairing-check predicate can be substituted.
type ProofComponents struct {
	A      [2]uint64    `json:"a"`
	B      [2][2]uint64 `json:"b"`
	C      [2]uint64    `json:"c"`
	Inputs []uint64     `json:"inputs"`
}

// Clone returns a deep copy, so callers cannot mutate stored components
// through the shared Inputs slice.
func (pc ProofComponents) Clone() ProofComponents {
	cloned := pc
	if pc.Inputs != nil {
		cloned.Inputs = make([]uint64, len(pc.Inputs))
		copy(cloned.Inputs, pc.Inputs)
	}
	return cloned
}
