package httpinterface

import (
	"net/http"

	"github.com/hashswap-network/hashswapd/internal/core/application"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	"invalid_amount":          http.StatusBadRequest,
	"invalid_address":         http.StatusBadRequest,
	"missing_claim_reference": http.StatusBadRequest,
	"amount_too_small":        http.StatusBadRequest,
	"swap_not_found":          http.StatusNotFound,
	"already_processed":       http.StatusConflict,
	"swap_expired":            http.StatusGone,
	"insufficient_liquidity":  http.StatusServiceUnavailable,
	"peer_unavailable":        http.StatusServiceUnavailable,
	"peer_rejected":           http.StatusBadGateway,
}

// writeError maps an application error to its HTTP status and stable machine
// code. Unmapped errors are returned as opaque internal errors so that no
// internal detail leaks to the caller.
func writeError(w http.ResponseWriter, err error) {
	code := application.ErrorCode(err)
	status, ok := statusByCode[code]
	message := err.Error()
	if !ok {
		status = http.StatusInternalServerError
		message = "unexpected internal error"
	}
	writeErrorCode(w, status, code, message)
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{
		Error: errorDetail{Code: code, Message: message},
	})
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeErrorCode(
		w, http.StatusMethodNotAllowed, "method_not_allowed",
		"method not allowed",
	)
}
