// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-resty/resty/v2"
)

// Revert reasons emitted by the records contract.
const (
	revertAlreadyVerified = "Data already verified"
	revertNotFound        = "Business data does not exist"
)

// Relayer error codes carried in the JSON body of non-2xx responses.
const (
	relayerCodeAlreadyVerified = "already_verified"
	relayerCodeUserRejected    = "user_rejected"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapRelayerError is mapHTTPError plus the relayer's machine-readable error
// codes, which take precedence over the status code.
func mapRelayerError(resp *resty.Response, apiErr *relayerError) error {
	err := mapHTTPError(resp)
	if err == nil || apiErr == nil {
		return err
	}

	switch apiErr.Code {
	case relayerCodeAlreadyVerified:
		return fmt.Errorf("%w: %s", ErrAlreadyVerified, apiErr.Message)
	case relayerCodeUserRejected:
		return fmt.Errorf("%w: %s", ErrUserRejected, apiErr.Message)
	}
	return err
}

// mapContractError decodes a contract revert carried by err and translates
// known revert reasons into sentinel errors. Errors that carry no revert data
// are returned unchanged.
func mapContractError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserRejected) {
		return err
	}

	reason, ok := revertReason(err)
	if !ok {
		return err
	}

	switch reason {
	case revertAlreadyVerified:
		return fmt.Errorf("%w: %w", ErrAlreadyVerified, err)
	case revertNotFound:
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return err
}

func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return revertReasonFromMessage(err.Error())
	}

	var raw []byte
	switch data := dataErr.ErrorData().(type) {
	case string:
		decoded, decodeErr := hexutil.Decode(data)
		if decodeErr != nil {
			return "", false
		}
		raw = decoded
	case []byte:
		raw = data
	default:
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(raw)
	if unpackErr != nil {
		return "", false
	}
	return reason, true
}

// revertReasonFromMessage recovers the reason from node messages of the form
// "execution reverted: <reason>", used when the revert data was dropped on
// the way up.
func revertReasonFromMessage(msg string) (string, bool) {
	const marker = "execution reverted: "
	idx := strings.LastIndex(msg, marker)
	if idx == -1 {
		return "", false
	}
	reason := strings.TrimSpace(msg[idx+len(marker):])
	return reason, reason != ""
}
