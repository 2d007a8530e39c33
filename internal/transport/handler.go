// Package transport exposes the registrar over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/go-chi/chi/v5"
	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"go.uber.org/zap"
)

const (
	// AccountHeader carries the authenticated caller, set by the fronting gateway.
	AccountHeader = "X-Account-Id"

	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
	maxBodyBytes        = 1 << 16
)

// Handler serves the registrar API.
type Handler struct {
	registrar Registrar
	history   History
	logger    *zap.Logger
	devCredit bool
}

// NewHandler returns a Handler. history may be nil, in which case the history
// endpoints answer 404.
func NewHandler(reg Registrar, history History, logger *zap.Logger, devCredit bool) (*Handler, error) {
	if reg == nil {
		return nil, errors.New("transport registrar is required")
	}
	if logger == nil {
		return nil, errors.New("transport logger is required")
	}
	return &Handler{
		registrar: reg,
		history:   history,
		logger:    logger,
		devCredit: devCredit,
	}, nil
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Route("/names/{name}", func(r chi.Router) {
			r.Get("/", h.QueryStatus)
			r.Get("/release", h.ReleaseWeek)
			r.Get("/history", h.NameHistory)
			r.Post("/bids", h.Bid)
			r.Post("/reveals", h.Reveal)
			r.Post("/resolve", h.Resolve)
			r.Post("/claim", h.Claim)
			r.Post("/withdraw", h.Withdraw)
		})
		r.Route("/accounts/{account}", func(r chi.Router) {
			r.Get("/balance", h.Balance)
			r.Get("/history", h.AccountHistory)
			if h.devCredit {
				r.Post("/credit", h.Credit)
			}
		})
		r.Get("/pending", h.Pending)
		r.Get("/ledger/totals", h.Totals)
		r.Post("/commitments", h.Commitment)
	})
}

type bidRequest struct {
	Commitment model.CommitmentHash `json:"commitment"`
	Deposit    model.Amount         `json:"deposit"`
}

type revealRequest struct {
	Amount model.Amount `json:"amount"`
	Mask   string       `json:"mask"`
}

type claimRequest struct {
	PublicKey string `json:"public_key"`
}

type creditRequest struct {
	Amount model.Amount `json:"amount"`
}

type commitmentRequest struct {
	Bidder model.AccountID `json:"bidder"`
	Amount model.Amount    `json:"amount"`
	Mask   string          `json:"mask"`
}

type commitmentResponse struct {
	Commitment model.CommitmentHash `json:"commitment"`
}

type withdrawResponse struct {
	Name     model.Name      `json:"name"`
	Account  model.AccountID `json:"account"`
	Refunded model.Amount    `json:"refunded"`
}

type balanceResponse struct {
	Account model.AccountID `json:"account"`
	Balance model.Amount    `json:"balance"`
}

type releaseResponse struct {
	Name      model.Name `json:"name"`
	WeekIndex uint64     `json:"week_index"`
	ReleaseAt time.Time  `json:"release_at"`
	Released  bool       `json:"released"`
}

type pendingResponse struct {
	Names []model.Name `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Health reports server health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Bid handles POST /v1/names/{name}/bids.
func (h *Handler) Bid(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req bidRequest
	if !h.decode(w, r, &req) {
		return
	}
	name := nameParam(r)
	if err := h.registrar.Bid(r.Context(), name, caller, req.Commitment, req.Deposit); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"name": name, "bidder": caller, "deposit": req.Deposit})
}

// Reveal handles POST /v1/names/{name}/reveals.
func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req revealRequest
	if !h.decode(w, r, &req) {
		return
	}
	mask, err := decodeMask(req.Mask)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	name := nameParam(r)
	if err := h.registrar.Reveal(r.Context(), name, caller, req.Amount, mask); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"name": name, "bidder": caller, "amount": req.Amount})
}

// Resolve handles POST /v1/names/{name}/resolve.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	out, err := h.registrar.Resolve(r.Context(), nameParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// Claim handles POST /v1/names/{name}/claim.
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req claimRequest
	if !h.decode(w, r, &req) {
		return
	}
	key, err := registrar.ParsePublicKey(req.PublicKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.registrar.Claim(r.Context(), nameParam(r), caller, key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// Withdraw handles POST /v1/names/{name}/withdraw.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	name := nameParam(r)
	amount, err := h.registrar.Withdraw(r.Context(), name, caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{Name: name, Account: caller, Refunded: amount})
}

// QueryStatus handles GET /v1/names/{name}.
func (h *Handler) QueryStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.registrar.Status(r.Context(), nameParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

// ReleaseWeek handles GET /v1/names/{name}/release.
func (h *Handler) ReleaseWeek(w http.ResponseWriter, r *http.Request) {
	st, err := h.registrar.Status(r.Context(), nameParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, releaseResponse{
		Name:      st.Name,
		WeekIndex: st.WeekIndex,
		ReleaseAt: st.ReleaseAt,
		Released:  st.Released,
	})
}

// NameHistory handles GET /v1/names/{name}/history.
func (h *Handler) NameHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "History is not enabled", http.StatusNotFound)
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	events, err := h.history.EventsByName(r.Context(), nameParam(r), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

// AccountHistory handles GET /v1/accounts/{account}/history.
func (h *Handler) AccountHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "History is not enabled", http.StatusNotFound)
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	events, err := h.history.EventsByAccount(r.Context(), accountParam(r), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

// Balance handles GET /v1/accounts/{account}/balance.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	account := accountParam(r)
	balance, err := h.registrar.Balance(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{Account: account, Balance: balance})
}

// Credit handles POST /v1/accounts/{account}/credit. Only mounted in dev mode.
func (h *Handler) Credit(w http.ResponseWriter, r *http.Request) {
	var req creditRequest
	if !h.decode(w, r, &req) {
		return
	}
	account := accountParam(r)
	if err := h.registrar.Credit(r.Context(), account, req.Amount); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("account credited", zap.String("account", string(account)), zap.Uint64("amount", uint64(req.Amount)))
	w.WriteHeader(http.StatusNoContent)
}

// Pending handles GET /v1/pending.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	names, err := h.registrar.PendingResolution(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []model.Name{}
	}
	h.writeJSON(w, http.StatusOK, pendingResponse{Names: names})
}

// Totals handles GET /v1/ledger/totals.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.registrar.Totals(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, totals)
}

// Commitment handles POST /v1/commitments. The server never stores the
// request; wallets that cannot hash locally use it to seal a bid.
func (h *Handler) Commitment(w http.ResponseWriter, r *http.Request) {
	var req commitmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Bidder == "" {
		h.writeError(w, r, registrar.ErrInvalidAccount)
		return
	}
	mask, err := decodeMask(req.Mask)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, commitmentResponse{Commitment: registrar.HashBid(req.Amount, mask, req.Bidder)})
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (model.AccountID, bool) {
	account := r.Header.Get(AccountHeader)
	if account == "" {
		http.Error(w, "Missing "+AccountHeader+" header", http.StatusUnauthorized)
		return "", false
	}
	return model.AccountID(account), true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		msg = http.StatusText(code)
	}
	h.writeJSON(w, code, errorResponse{Error: msg, Kind: registrar.ErrorKind(err)})
}

func nameParam(r *http.Request) model.Name {
	return model.Name(chi.URLParam(r, "name"))
}

func accountParam(r *http.Request) model.AccountID {
	return model.AccountID(chi.URLParam(r, "account"))
}

func limitParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultHistoryLimit, true
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		http.Error(w, fmt.Sprintf("Invalid limit: %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return min(limit, maxHistoryLimit), true
}

func decodeMask(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("mask is required")
	}
	mask := base58.Decode(s)
	if len(mask) == 0 {
		return nil, fmt.Errorf("mask %q is not valid base58", s)
	}
	return mask, nil
}
