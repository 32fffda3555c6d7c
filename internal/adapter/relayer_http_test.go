// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContract  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testSubmitter = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testHandle    = "0x00000000000000000000000000000000000000000000000000000000000000aa"
)

func newTestRelayer(t *testing.T, serverURL string, cfg config.ClientRelayer) *httpRelayer {
	t.Helper()
	cfg.HTTPAddress = serverURL
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}

	r, err := NewHTTPRelayer(cfg, logger.Nop())
	require.NoError(t, err)
	return r
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Encrypt ─────────────────────────────────────────────────────────────────

func TestEncrypt_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/input-proof", r.URL.Path)
		assert.Equal(t, "go-loyalty-keeper", r.Header.Get("User-Agent"))

		var req inputProofRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testContract, req.ContractAddress)
		assert.Equal(t, testSubmitter, req.UserAddress)
		assert.Equal(t, []typedValue{{Type: "euint32", Value: "150"}}, req.Values)

		writeJSON(t, w, http.StatusOK, inputProofResponse{
			Handles:    []string{testHandle},
			InputProof: "0x0102",
		})
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	got, err := r.Encrypt(context.Background(), testContract, testSubmitter, 150)

	require.NoError(t, err)
	require.Len(t, got.Handle, 32)
	assert.Equal(t, byte(0xaa), got.Handle[31])
	assert.Equal(t, []byte{0x01, 0x02}, got.Proof)
}

func TestEncrypt_ValueOutOfRange(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})

	for _, value := range []int64{-1, 1 << 32} {
		_, err := r.Encrypt(context.Background(), testContract, testSubmitter, value)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadRequest)
	}
	assert.Zero(t, calls.Load())
}

func TestEncrypt_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("gateway exploded"))
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	_, err := r.Encrypt(context.Background(), testContract, testSubmitter, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "gateway exploded")
}

func TestEncrypt_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		resp inputProofResponse
	}{
		{"no handles", inputProofResponse{InputProof: "0x01"}},
		{"two handles", inputProofResponse{Handles: []string{testHandle, testHandle}, InputProof: "0x01"}},
		{"bad handle hex", inputProofResponse{Handles: []string{"zz"}, InputProof: "0x01"}},
		{"bad proof hex", inputProofResponse{Handles: []string{testHandle}, InputProof: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, tt.resp)
			}))
			defer srv.Close()

			r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
			_, err := r.Encrypt(context.Background(), testContract, testSubmitter, 1)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

// ── Verify ──────────────────────────────────────────────────────────────────

func TestVerify_Success(t *testing.T) {
	upperHandle := "0x00000000000000000000000000000000000000000000000000000000000000AA"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/public-decrypt", r.URL.Path)

		var req publicDecryptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{testHandle}, req.Handles)
		assert.Equal(t, testContract, req.ContractAddress)

		writeJSON(t, w, http.StatusOK, publicDecryptResponse{
			ClearValues:           map[string]string{upperHandle: "77"},
			AbiEncodedClearValues: "0x4d",
			DecryptionProof:       "0xbeef",
		})
	}))
	defer srv.Close()

	var submitted struct {
		encoded, proof []byte
	}
	submit := func(_ context.Context, encoded, proof []byte) (models.Transaction, error) {
		submitted.encoded, submitted.proof = encoded, proof
		return models.Transaction{Hash: "0xabc"}, nil
	}

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	got, err := r.Verify(context.Background(), []string{testHandle}, testContract, submit)

	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ClearValues[testHandle])
	assert.Equal(t, []byte{0x4d}, submitted.encoded)
	assert.Equal(t, []byte{0xbe, 0xef}, submitted.proof)
	assert.Equal(t, "0xabc", got.Transaction.Hash)
}

func TestVerify_AlreadyVerifiedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, relayerError{Code: "already_verified", Message: "Data already verified"})
	}))
	defer srv.Close()

	submit := func(context.Context, []byte, []byte) (models.Transaction, error) {
		t.Fatal("submit must not be called")
		return models.Transaction{}, nil
	}

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	_, err := r.Verify(context.Background(), []string{testHandle}, testContract, submit)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestVerify_SubmitErrorIsPropagated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, publicDecryptResponse{
			ClearValues:           map[string]string{testHandle: "5"},
			AbiEncodedClearValues: "0x05",
			DecryptionProof:       "0x01",
		})
	}))
	defer srv.Close()

	submit := func(context.Context, []byte, []byte) (models.Transaction, error) {
		return models.Transaction{}, ErrAlreadyVerified
	}

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	_, err := r.Verify(context.Background(), []string{testHandle}, testContract, submit)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestVerify_MalformedClearValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, publicDecryptResponse{
			ClearValues:           map[string]string{testHandle: "seventy"},
			AbiEncodedClearValues: "0x05",
			DecryptionProof:       "0x01",
		})
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{})
	_, err := r.Verify(context.Background(), []string{testHandle}, testContract, nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestVerify_NoHandles(t *testing.T) {
	r := newTestRelayer(t, "http://127.0.0.1:1", config.ClientRelayer{})
	_, err := r.Verify(context.Background(), nil, testContract, nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── rate limiting ───────────────────────────────────────────────────────────

func TestRelayer_RateLimitPacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, inputProofResponse{Handles: []string{testHandle}, InputProof: "0x01"})
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{RateLimit: 20, Burst: 1})

	start := time.Now()
	for range 3 {
		_, err := r.Encrypt(context.Background(), testContract, testSubmitter, 1)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRelayer_RateLimitHonoursDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, inputProofResponse{Handles: []string{testHandle}, InputProof: "0x01"})
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL, config.ClientRelayer{RateLimit: 0.01, Burst: 1})

	_, err := r.Encrypt(context.Background(), testContract, testSubmitter, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = r.Encrypt(ctx, testContract, testSubmitter, 1)
	require.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
