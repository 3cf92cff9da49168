package httpinterface

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/hashswap-network/hashswapd/internal/core/application"
)

// SwapHandler exposes the swap coordinator over a plain JSON HTTP interface.
type SwapHandler struct {
	swapSvc application.SwapService
}

// NewSwapHandler returns a new SwapHandler backed by the given service.
func NewSwapHandler(swapSvc application.SwapService) *SwapHandler {
	return &SwapHandler{swapSvc: swapSvc}
}

// Router returns the mux with all the routes of the daemon registered.
func (h *SwapHandler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/swap/quote", h.quoteHandler)
	mux.HandleFunc("/v1/swap/commit", h.commitHandler)
	mux.HandleFunc("/v1/swap/", h.getSwapHandler)
	mux.HandleFunc("/v1/swaps", h.listSwapsHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type quoteRequest struct {
	Amount json.Number `json:"amount"`
}

type quoteResponse struct {
	Id          string `json:"id"`
	Amount      uint64 `json:"amount"`
	SecretHash  string `json:"secretHash"`
	MakerPubkey string `json:"makerPubkey"`
	ExpiryTime  int64  `json:"expiryTime"`
}

func (h *SwapHandler) quoteHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var body quoteRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, application.ErrInvalidAmount)
		return
	}

	// The amount must be a positive integer number of satoshis; a fractional
	// or negative number is rejected before reaching the service.
	amount, err := body.Amount.Int64()
	if err != nil || amount <= 0 {
		writeError(w, application.ErrInvalidAmount)
		return
	}

	quote, err := h.swapSvc.IssueQuote(req.Context(), uint64(amount))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		Id:          quote.SwapId,
		Amount:      quote.Amount,
		SecretHash:  quote.SecretHash,
		MakerPubkey: quote.MakerPubkey,
		ExpiryTime:  quote.ExpiryTime,
	})
}

type commitRequest struct {
	SwapId         string `json:"swapId"`
	ClaimReference string `json:"claimReference"`
	PayoutAddress  string `json:"payoutAddress"`
}

type commitResponse struct {
	Success    bool   `json:"success"`
	PayoutTxid string `json:"payoutTxid"`
}

func (h *SwapHandler) commitHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var body commitRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}
	if body.SwapId == "" {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "swapId must not be empty")
		return
	}

	payoutTxid, err := h.swapSvc.CommitSwap(
		req.Context(), body.SwapId, body.ClaimReference, body.PayoutAddress,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, commitResponse{
		Success:    true,
		PayoutTxid: payoutTxid,
	})
}

func (h *SwapHandler) getSwapHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	swapId := strings.TrimPrefix(req.URL.Path, "/v1/swap/")
	if swapId == "" || strings.Contains(swapId, "/") {
		http.NotFound(w, req)
		return
	}

	info, err := h.swapSvc.GetSwap(req.Context(), swapId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newSwapView(*info))
}

func (h *SwapHandler) listSwapsHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	list, err := h.swapSvc.ListSwaps(req.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]swapView, 0, len(list))
	for _, info := range list {
		views = append(views, newSwapView(info))
	}
	writeJSON(w, http.StatusOK, views)
}

type swapView struct {
	Id             string `json:"id"`
	Amount         uint64 `json:"amount"`
	SecretHash     string `json:"secretHash"`
	MakerPubkey    string `json:"makerPubkey"`
	Status         string `json:"status"`
	ClaimReference string `json:"claimReference,omitempty"`
	PayoutTxid     string `json:"payoutTxid,omitempty"`
	PayoutAttempts uint32 `json:"payoutAttempts,omitempty"`
	CreationTime   int64  `json:"creationTime"`
	ExpiryTime     int64  `json:"expiryTime,omitempty"`
	SettlementTime int64  `json:"settlementTime,omitempty"`
}

func newSwapView(info application.SwapInfo) swapView {
	return swapView{
		Id:             info.SwapId,
		Amount:         info.Amount,
		SecretHash:     info.SecretHash,
		MakerPubkey:    info.MakerPubkey,
		Status:         info.Status,
		ClaimReference: info.ClaimReference,
		PayoutTxid:     info.PayoutTxid,
		PayoutAttempts: info.PayoutAttempts,
		CreationTime:   info.CreationTime,
		ExpiryTime:     info.ExpiryTime,
		SettlementTime: info.SettlementTime,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("failed to write http response")
	}
}
