// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the loyalty keeper process runtime.
//
// It wires the ledger and relayer adapters, the lifecycle services, the
// background refresh worker and the HTTP facade into a single process
// lifecycle that runs until the process receives a stop signal.
package client
