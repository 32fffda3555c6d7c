// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization and record id generation.
package utils

import (
	"context"
	"strings"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// WalletAddressCtxKey is the key used to store the connected wallet address
// in the context.
var WalletAddressCtxKey = contextKey("walletAddress")

// WithWalletAddress returns a copy of ctx carrying address. Surrounding
// whitespace is dropped.
func WithWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, WalletAddressCtxKey, strings.TrimSpace(address))
}

// GetWalletAddressFromContext retrieves the connected wallet address from
// the context.
//
// Returns the address and an ok flag:
//   - ok == true : a non-empty address is present
//   - ok == false: no wallet is connected
func GetWalletAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(WalletAddressCtxKey).(string)
	return address, ok && address != ""
}
