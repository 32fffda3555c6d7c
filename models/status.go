// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationClass names a kind of user-triggered operation. Each class has
// exactly one live [OperationStatus].
type OperationClass string

const (
	OperationCreate       OperationClass = "create"
	OperationReveal       OperationClass = "reveal"
	OperationAvailability OperationClass = "availability"
	OperationRefresh      OperationClass = "refresh"
)

// OperationClasses lists every class in display order.
var OperationClasses = []OperationClass{
	OperationCreate,
	OperationReveal,
	OperationAvailability,
	OperationRefresh,
}

// Phase is the state of an [OperationStatus].
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// IsTerminal reports whether the phase ends an operation.
func (p Phase) IsTerminal() bool {
	return p == PhaseSuccess || p == PhaseError
}

// OperationStatus is the user-facing status of the latest operation of a
// class.
type OperationStatus struct {
	Class     OperationClass `json:"class"`
	Phase     Phase          `json:"phase"`
	Message   string         `json:"message"`
	Visible   bool           `json:"visible"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IdleStatus returns the invisible idle status of class.
func IdleStatus(class OperationClass) OperationStatus {
	return OperationStatus{Class: class, Phase: PhaseIdle}
}

// Outcome classifies how an operation ended, for metrics and logs.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	// OutcomeShortCircuit is a reveal answered from an already verified
	// record.
	OutcomeShortCircuit Outcome = "short_circuit"
	// OutcomeConcurrent is a reveal that found the record verified by
	// someone else mid-flight.
	OutcomeConcurrent Outcome = "concurrent"
	// OutcomeInProgress is an operation rejected because an identical one
	// is still running.
	OutcomeInProgress Outcome = "in_progress"
)
