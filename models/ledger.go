// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Transaction identifies a submitted ledger transaction that still has to be
// awaited for confirmation.
type Transaction struct {
	Hash string `json:"hash"`
}

// EncryptedInput is the output of the encryption service: a ciphertext
// handle and the proof binding it to a contract and a submitter.
type EncryptedInput struct {
	Handle []byte
	Proof  []byte
}

// DecryptionResult is what the decryption oracle returns after it has
// produced cleartexts and submitted their proof on-chain.
type DecryptionResult struct {
	// ClearValues maps each requested handle (0x-prefixed hex) to its
	// cleartext. Keys may differ from the requested handles in hex letter
	// case; look values up with [DecryptionResult.ValueFor].
	ClearValues map[string]int64

	// EncodedClearValues is the ABI-encoded cleartext payload that was
	// submitted together with Proof.
	EncodedClearValues []byte

	Proof []byte

	// Transaction is the confirmed submission made by the oracle callback.
	Transaction Transaction
}

// ValueFor returns the cleartext of handle. An exact key wins over one that
// differs only in letter case.
func (r DecryptionResult) ValueFor(handle string) (int64, bool) {
	if v, ok := r.ClearValues[handle]; ok {
		return v, true
	}
	for key, v := range r.ClearValues {
		if strings.EqualFold(key, handle) {
			return v, true
		}
	}
	return 0, false
}

// RevealSource tells where the value of a reveal came from.
type RevealSource string

const (
	// RevealSourceCache means the record was already verified and no oracle
	// round trip happened.
	RevealSourceCache RevealSource = "cache"
	// RevealSourceOracle means the oracle produced the value and its proof
	// was accepted on-chain in this call.
	RevealSourceOracle RevealSource = "oracle"
	// RevealSourceConcurrent means somebody else verified the record while
	// this call was in flight. No value is carried.
	RevealSourceConcurrent RevealSource = "concurrent"
)

// RevealResult is the outcome of a successful reveal.
type RevealResult struct {
	ClearValue int64        `json:"clear_value"`
	Revealed   bool         `json:"revealed"`
	Source     RevealSource `json:"source"`
}
