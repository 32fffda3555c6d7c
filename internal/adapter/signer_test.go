package adapter

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
)

// Well-known development keys.
const (
	devKey1     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress1 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	devKey2     = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

func unsignedTestTx() *types.Transaction {
	to := common.HexToAddress(testContract)
	return types.NewTx(&types.LegacyTx{
		Nonce:    3,
		GasPrice: big.NewInt(1_000_000_000),
		Gas:      100_000,
		To:       &to,
		Data:     []byte{0x01},
	})
}

// walletBridge answers /sign by signing with key.
func walletBridge(t *testing.T, key string) *httptest.Server {
	t.Helper()
	local, err := NewKeySigner(key)
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sign", r.URL.Path)

		var req signRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		tx := new(types.Transaction)
		require.NoError(t, tx.UnmarshalJSON([]byte(req.UnsignedTx)))
		chainID, ok := new(big.Int).SetString(req.ChainID, 10)
		require.True(t, ok)

		signed, err := local.SignTx(r.Context(), tx, chainID)
		require.NoError(t, err)
		raw, err := signed.MarshalBinary()
		require.NoError(t, err)

		writeJSON(t, w, http.StatusOK, signResponse{SignedTx: hexutil.Encode(raw)})
	}))
}

// ── NewSigner ───────────────────────────────────────────────────────────────

func TestNewSigner_Selection(t *testing.T) {
	_, err := NewSigner(config.ClientLedger{})
	assert.ErrorIs(t, err, ErrNoSigner)

	s, err := NewSigner(config.ClientLedger{PrivateKey: "0x" + devKey1})
	require.NoError(t, err)
	assert.IsType(t, &keySigner{}, s)

	s, err = NewSigner(config.ClientLedger{
		PrivateKey: devKey1,
		SignerURL:  "http://localhost:9000",
		Account:    devAddress1,
	})
	require.NoError(t, err)
	assert.IsType(t, &remoteSigner{}, s)
}

// ── keySigner ───────────────────────────────────────────────────────────────

func TestKeySigner_AddressAndSign(t *testing.T) {
	s, err := NewKeySigner(devKey1)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(devAddress1), s.Address())

	chainID := big.NewInt(31337)
	signed, err := s.SignTx(context.Background(), unsignedTestTx(), chainID)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), sender)
}

func TestKeySigner_InvalidKey(t *testing.T) {
	_, err := NewKeySigner("not-a-key")
	assert.Error(t, err)
}

// ── remoteSigner ────────────────────────────────────────────────────────────

func TestRemoteSigner_Success(t *testing.T) {
	srv := walletBridge(t, devKey1)
	defer srv.Close()

	s, err := NewRemoteSigner(config.ClientLedger{SignerURL: srv.URL, Account: devAddress1, SignerTimeout: 5 * time.Second})
	require.NoError(t, err)

	chainID := big.NewInt(31337)
	signed, err := s.SignTx(context.Background(), unsignedTestTx(), chainID)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(devAddress1), sender)
}

func TestRemoteSigner_WrongAccount(t *testing.T) {
	srv := walletBridge(t, devKey2)
	defer srv.Close()

	s, err := NewRemoteSigner(config.ClientLedger{SignerURL: srv.URL, Account: devAddress1})
	require.NoError(t, err)

	_, err = s.SignTx(context.Background(), unsignedTestTx(), big.NewInt(31337))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different account")
}

func TestRemoteSigner_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, relayerError{Message: "user denied"})
	}))
	defer srv.Close()

	s, err := NewRemoteSigner(config.ClientLedger{SignerURL: srv.URL, Account: devAddress1})
	require.NoError(t, err)

	_, err = s.SignTx(context.Background(), unsignedTestTx(), big.NewInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.Contains(t, err.Error(), "user denied")
}

func TestRemoteSigner_MalformedSignedTx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, signResponse{SignedTx: "0xdead"})
	}))
	defer srv.Close()

	s, err := NewRemoteSigner(config.ClientLedger{SignerURL: srv.URL, Account: devAddress1})
	require.NoError(t, err)

	_, err = s.SignTx(context.Background(), unsignedTestTx(), big.NewInt(1))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNewRemoteSigner_InvalidAccount(t *testing.T) {
	_, err := NewRemoteSigner(config.ClientLedger{SignerURL: "http://localhost:9000", Account: "0xABC"})
	assert.Error(t, err)
}
