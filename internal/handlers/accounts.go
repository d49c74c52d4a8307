package handlers

import (
	"encoding/json"
	"net/http"

	"bankledger/internal/httputil"
)

type createAccountRequest struct {
	OwnerName string `json:"ownerName"`
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	page, err := h.accounts.ListAll(r.Context(), pageFromQuery(r))
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, account)
}

func (h *Handler) GetAccountByOwnerName(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.GetByOwnerName(r.Context(), r.URL.Query().Get("ownerName"))
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, account)
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accounts.Create(r.Context(), req.OwnerName)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, account)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
