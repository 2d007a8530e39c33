package transport

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

var statusCodes = []struct {
	code int
	errs []error
}{
	{http.StatusTooEarly, []error{registrar.ErrNotReleased, registrar.ErrNotOpen, registrar.ErrNotResolved}},
	{http.StatusGone, []error{registrar.ErrWindowClosed, registrar.ErrWindowExpired, registrar.ErrHashMismatch, registrar.ErrForfeited}},
	{http.StatusConflict, []error{
		registrar.ErrDuplicateBid, registrar.ErrAlreadyRevealed, registrar.ErrAlreadyDone,
		registrar.ErrAlreadyResolved, registrar.ErrAlreadyRefunded,
	}},
	{http.StatusNotFound, []error{registrar.ErrNoSuchBid, registrar.ErrNoSuchAuction}},
	{http.StatusForbidden, []error{registrar.ErrNotWinner, registrar.ErrIsWinner}},
	{http.StatusUnprocessableEntity, []error{
		registrar.ErrInsufficientEscrow, storage.ErrInsufficientFunds, registrar.ErrInvalidName,
		registrar.ErrNotAuctioned, registrar.ErrInvalidAmount, registrar.ErrInvalidAccount,
		registrar.ErrInvalidPublicKey,
	}},
}

// statusCode maps a registrar rejection to an HTTP status. Unknown errors are internal.
func statusCode(err error) int {
	for _, sc := range statusCodes {
		for _, target := range sc.errs {
			if errors.Is(err, target) {
				return sc.code
			}
		}
	}
	return http.StatusInternalServerError
}
