package adapter

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
)

// Adapters bundles the clients of the three external services.
type Adapters struct {
	Ledger     LedgerClient
	Encryption EncryptionService
	Oracle     DecryptionOracle

	backend *ethclient.Client
}

// NewAdapters dials the ledger node, builds the configured signer and the
// relayer client.
func NewAdapters(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*Adapters, error) {
	signer, err := NewSigner(cfg.Ledger)
	if err != nil {
		return nil, fmt.Errorf("error creating signer: %w", err)
	}

	backend, err := DialEVMBackend(ctx, cfg.Ledger)
	if err != nil {
		return nil, fmt.Errorf("error dialing ledger node: %w", err)
	}

	ledger, err := NewEVMLedgerClient(backend, cfg.Ledger, signer, logger)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("error creating ledger client: %w", err)
	}

	relayer, err := NewHTTPRelayer(cfg.Relayer, logger)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("error creating relayer client: %w", err)
	}

	logger.Info().
		Str("contract", ledger.ContractAddress()).
		Str("signer", signer.Address().Hex()).
		Msg("adapters ready")

	return &Adapters{
		Ledger:     ledger,
		Encryption: relayer,
		Oracle:     relayer,
		backend:    backend,
	}, nil
}

// Close releases the ledger RPC connection.
func (a *Adapters) Close() {
	if a.backend != nil {
		a.backend.Close()
	}
}
