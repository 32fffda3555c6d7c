// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

// encryptedValueType is the ciphertext type the records contract expects.
const encryptedValueType = "euint32"

type httpRelayer struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

type inputProofRequest struct {
	ContractAddress string       `json:"contract_address"`
	UserAddress     string       `json:"user_address"`
	Values          []typedValue `json:"values"`
}

type typedValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type inputProofResponse struct {
	Handles    []string `json:"handles"`
	InputProof string   `json:"input_proof"`
}

type publicDecryptRequest struct {
	Handles         []string `json:"handles"`
	ContractAddress string   `json:"contract_address"`
}

type publicDecryptResponse struct {
	ClearValues           map[string]string `json:"clear_values"`
	AbiEncodedClearValues string            `json:"abi_encoded_clear_values"`
	DecryptionProof       string            `json:"decryption_proof"`
}

type relayerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewHTTPRelayer constructs the REST client of the relayer that fronts both
// the encryption service and the decryption oracle. The returned value
// implements [EncryptionService] and [DecryptionOracle].
//
// Outbound requests are paced by a token bucket of relayerCfg.RateLimit
// requests per second (unlimited when zero). Returns an error if
// relayerCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPRelayer(relayerCfg config.ClientRelayer, logger *logger.Logger) (*httpRelayer, error) {
	baseURL, err := normalizeBaseURL(relayerCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid relayer http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(relayerCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	limit := rate.Inf
	if relayerCfg.RateLimit > 0 {
		limit = rate.Limit(relayerCfg.RateLimit)
	}
	burst := relayerCfg.Burst
	if burst <= 0 {
		burst = 1
	}

	h := &httpRelayer{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
	client.OnBeforeRequest(h.wait)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Encrypt implements [EncryptionService]. It POSTs the value to
// /v1/input-proof and returns the single handle and the input proof. Values
// outside the uint32 range are rejected before any request is made.
func (h *httpRelayer) Encrypt(ctx context.Context, contractAddress, submitterAddress string, value int64) (models.EncryptedInput, error) {
	if value < 0 || value > math.MaxUint32 {
		return models.EncryptedInput{}, fmt.Errorf("%w: value %d does not fit %s", ErrBadRequest, value, encryptedValueType)
	}

	body := inputProofRequest{
		ContractAddress: contractAddress,
		UserAddress:     submitterAddress,
		Values:          []typedValue{{Type: encryptedValueType, Value: strconv.FormatInt(value, 10)}},
	}

	var result inputProofResponse
	apiErr := new(relayerError)
	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(apiErr).
		Post("/v1/input-proof")
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("input proof request: %w", err)
	}
	if err = mapRelayerError(resp, apiErr); err != nil {
		return models.EncryptedInput{}, err
	}

	if len(result.Handles) != 1 {
		return models.EncryptedInput{}, fmt.Errorf("%w: expected 1 handle, got %d", ErrMalformedResponse, len(result.Handles))
	}
	handle, err := hexutil.Decode(result.Handles[0])
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("%w: handle: %w", ErrMalformedResponse, err)
	}
	proof, err := hexutil.Decode(result.InputProof)
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("%w: input proof: %w", ErrMalformedResponse, err)
	}

	return models.EncryptedInput{Handle: handle, Proof: proof}, nil
}

// Verify implements [DecryptionOracle]. It POSTs the handles to
// /v1/public-decrypt, hands the encoded cleartexts and the decryption proof
// to submit, and returns the decoded values once submit has succeeded.
func (h *httpRelayer) Verify(ctx context.Context, handles []string, contractAddress string, submit SubmitFunc) (models.DecryptionResult, error) {
	if len(handles) == 0 {
		return models.DecryptionResult{}, fmt.Errorf("%w: no handles provided", ErrBadRequest)
	}

	var result publicDecryptResponse
	apiErr := new(relayerError)
	resp, err := h.request(ctx).
		SetBody(publicDecryptRequest{Handles: handles, ContractAddress: contractAddress}).
		SetResult(&result).
		SetError(apiErr).
		Post("/v1/public-decrypt")
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("public decrypt request: %w", err)
	}
	if err = mapRelayerError(resp, apiErr); err != nil {
		return models.DecryptionResult{}, err
	}

	clearValues, err := decodeClearValues(result.ClearValues)
	if err != nil {
		return models.DecryptionResult{}, err
	}
	encoded, err := hexutil.Decode(result.AbiEncodedClearValues)
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("%w: encoded clear values: %w", ErrMalformedResponse, err)
	}
	proof, err := hexutil.Decode(result.DecryptionProof)
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("%w: decryption proof: %w", ErrMalformedResponse, err)
	}

	tx, err := submit(ctx, encoded, proof)
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("submit decryption proof: %w", err)
	}
	h.logger.Debug().Str("tx", tx.Hash).Int("handles", len(handles)).Msg("decryption proof submitted")

	return models.DecryptionResult{
		ClearValues:        clearValues,
		EncodedClearValues: encoded,
		Proof:              proof,
		Transaction:        tx,
	}, nil
}

func (h *httpRelayer) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// wait blocks until the rate limiter admits one more request.
func (h *httpRelayer) wait(_ *resty.Client, req *resty.Request) error {
	if err := h.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("relayer rate limit: %w", err)
	}
	return nil
}

func decodeClearValues(raw map[string]string) (map[string]int64, error) {
	out := make(map[string]int64, len(raw))
	for handle, value := range raw {
		n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
		if !ok || !n.IsInt64() {
			return nil, fmt.Errorf("%w: clear value %q for handle %s", ErrMalformedResponse, value, handle)
		}
		out[strings.ToLower(handle)] = n.Int64()
	}
	return out, nil
}
