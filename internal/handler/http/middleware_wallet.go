package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
)

// walletHeader carries the address of the wallet the presentation layer is
// connected to. An absent header means no wallet is connected.
const walletHeader = "X-Wallet-Address"

func (h *Handler) withWallet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := strings.TrimSpace(r.Header.Get(walletHeader))
		if address == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithWalletAddress(r.Context(), address)
		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("wallet", address)
		})
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
