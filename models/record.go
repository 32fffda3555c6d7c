// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strconv"
	"strings"
)

// EncryptedRecord is one loyalty entry as stored on the ledger.
//
// The integer value of a record lives on-chain as a ciphertext. ClearValue is
// only authoritative once IsVerified is true, i.e. after a decryption proof
// for the record has been accepted on-chain. Code outside this package should
// read it through [EncryptedRecord.RevealedValue].
type EncryptedRecord struct {
	// ID is the opaque identifier under which the record is stored.
	ID string `json:"id"`

	// Name is the public display name of the record.
	Name string `json:"name"`

	// Description is the public free-form description.
	Description string `json:"description"`

	// PublicValue1 and PublicValue2 are unencrypted numeric fields. They are
	// reserved and always submitted as zero by the create flow.
	PublicValue1 int64 `json:"public_value_1"`
	PublicValue2 int64 `json:"public_value_2"`

	// Creator is the wallet address that submitted the record.
	Creator string `json:"creator"`

	// CreatedAt is the ledger timestamp in seconds since epoch.
	CreatedAt int64 `json:"created_at"`

	// IsVerified reports whether the decryption proof was accepted on-chain.
	IsVerified bool `json:"is_verified"`

	// ClearValue is the on-chain finalized plaintext. Zero and meaningless
	// while IsVerified is false.
	ClearValue int64 `json:"-"`

	// CiphertextHandle is the reference the decryption oracle needs for this
	// record. It is empty in listings and set only while a reveal runs.
	CiphertextHandle string `json:"-"`
}

// RevealedValue returns the clear value and true when the record is publicly
// verified. For unverified records it returns 0 and false regardless of what
// ClearValue holds.
func (r EncryptedRecord) RevealedValue() (int64, bool) {
	if !r.IsVerified {
		return 0, false
	}
	return r.ClearValue, true
}

// Sanitized returns a copy of r in which an unverified clear value is zeroed.
func (r EncryptedRecord) Sanitized() EncryptedRecord {
	if !r.IsVerified {
		r.ClearValue = 0
	}
	return r
}

// Matches reports whether term occurs in the record's name or description,
// ignoring case. An empty term matches every record.
func (r EncryptedRecord) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

// NewRecordDraft is the user-authored input of a create operation.
// It is never persisted.
type NewRecordDraft struct {
	Name        string `json:"name"`
	RawValue    string `json:"value"`
	Description string `json:"description"`
}

// Value returns the integer RawValue starts with: an optional sign followed
// by decimal digits, or by hex digits after a 0x prefix. Anything after the
// leading integer is ignored, so "150abc" is 150 and "12.5" is 12. Input
// without a leading integer yields 0. Out-of-range values saturate.
func (d NewRecordDraft) Value() int64 {
	s := strings.TrimSpace(d.RawValue)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHexDigit(s[2]) {
		base, isDigit, s = 16, isHexDigit, s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	// On overflow ParseInt returns the saturated bound with ErrRange.
	v, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsEmpty reports whether every draft field is blank.
func (d NewRecordDraft) IsEmpty() bool {
	return d == NewRecordDraft{}
}

// CreateRecordRequest carries everything the ledger needs to store a new
// encrypted record.
type CreateRecordRequest struct {
	ID           string
	Name         string
	Handle       []byte
	Proof        []byte
	PublicValue1 int64
	PublicValue2 int64
	Description  string
}

// RecordStats summarises a snapshot of records.
type RecordStats struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Mine     int `json:"mine"`
}

// RecordPage is one page of a filtered snapshot.
type RecordPage struct {
	Items      []EncryptedRecord `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}
