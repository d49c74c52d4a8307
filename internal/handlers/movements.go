package handlers

import (
	"encoding/json"
	"net/http"

	"bankledger/internal/httputil"

	"github.com/shopspring/decimal"
)

type transferRequest struct {
	Amount               *decimal.Decimal `json:"amount"`
	OriginAccountID      uint             `json:"originAccountId"`
	DestinationAccountID uint             `json:"destinationAccountId"`
}

type depositRequest struct {
	Amount               *decimal.Decimal `json:"amount"`
	DestinationAccountID uint             `json:"destinationAccountId"`
}

type withdrawRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	AccountID uint             `json:"accountId"`
}

type sumResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ListMovements serves the combined filter endpoint: operatorName, from
// and to are all optional and the matching query variant is chosen by
// the ledger engine.
func (h *Handler) ListMovements(w http.ResponseWriter, r *http.Request) {
	from, err := timeQuery(r, "from")
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := timeQuery(r, "to")
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid to date")
		return
	}

	page, err := h.ledger.ListFiltered(r.Context(), pageFromQuery(r), r.URL.Query().Get("operatorName"), from, to)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) GetMovementByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid movement id")
		return
	}

	movement, err := h.ledger.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movement)
}

func (h *Handler) ListMovementsByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := idParam(r, "accountID")
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	page, err := h.ledger.ListByAccount(r.Context(), pageFromQuery(r), accountID)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movement, err := h.ledger.Transfer(r.Context(), req.Amount, req.OriginAccountID, req.DestinationAccountID)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, movement)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movement, err := h.ledger.Deposit(r.Context(), req.Amount, req.DestinationAccountID)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, movement)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movement, err := h.ledger.Withdraw(r.Context(), req.Amount, req.AccountID)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, movement)
}

func (h *Handler) SumByPeriod(w http.ResponseWriter, r *http.Request) {
	from, err := timeQuery(r, "from")
	if err != nil || from == nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid or missing from date")
		return
	}
	to, err := timeQuery(r, "to")
	if err != nil || to == nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid or missing to date")
		return
	}

	total, err := h.ledger.SumAmountByPeriod(r.Context(), *from, *to)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sumResponse{Total: total})
}

func (h *Handler) SumByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := idParam(r, "accountID")
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	total, err := h.ledger.SumAmountByAccount(r.Context(), accountID)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sumResponse{Total: total})
}
