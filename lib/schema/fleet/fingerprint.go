// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/robofleet/robofleet/lib/codec"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the lowercase hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// fingerprintDomainKey separates fleet fingerprints from any other BLAKE3
// use. ASCII "robofleet.fleet", zero-padded. Changing it changes every
// fingerprint.
var fingerprintDomainKey = [32]byte{
	'r', 'o', 'b', 'o', 'f', 'l', 'e', 'e', 't', '.', 'f', 'l', 'e', 'e', 't', 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// fingerprintInput is what gets hashed. Start order matters and is kept;
// environment map order does not and is sorted by the encoder.
type fingerprintInput struct {
	Fleet       Fleet               `json:"fleet"`
	Environment EnvironmentOverride `json:"environment"`
}

// Fingerprint hashes the deterministic CBOR encoding of a fleet and its
// environment. Two compositions yield the same fingerprint exactly when a
// supervisor would start the same processes the same way, so a
// supervisor can compare fingerprints to decide whether a restart of the
// fleet is needed.
func Fingerprint(fleet Fleet, environment EnvironmentOverride) (Hash, error) {
	data, err := codec.Marshal(fingerprintInput{Fleet: fleet, Environment: environment})
	if err != nil {
		return Hash{}, fmt.Errorf("encoding fleet for fingerprint: %w", err)
	}

	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		return Hash{}, fmt.Errorf("initializing fingerprint hasher: %w", err)
	}
	hasher.Write(data)

	var digest Hash
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
