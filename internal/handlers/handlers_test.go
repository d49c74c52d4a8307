package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bankledger/internal/accounts"
	"bankledger/internal/apperr"
	"bankledger/internal/handlers"
	"bankledger/internal/ledger"
	"bankledger/internal/logger"
	"bankledger/internal/models"
	"bankledger/internal/routes"
	"bankledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fakeAccountRepo struct {
	accounts map[uint]*models.Account
	nextID   uint
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uint) (*models.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperr.New(apperr.AccountNotFound, "account not found")
}

func (r *fakeAccountRepo) FindByOwnerName(_ context.Context, name string) (*models.Account, error) {
	for id := uint(1); id <= r.nextID; id++ {
		if a, ok := r.accounts[id]; ok {
			return a, nil
		}
	}
	return nil, apperr.New(apperr.AccountNotFound, "account not found for owner name "+name)
}

func (r *fakeAccountRepo) FindAll(_ context.Context, page store.PageRequest) (store.Page[models.Account], error) {
	var items []models.Account
	for id := uint(1); id <= r.nextID; id++ {
		if a, ok := r.accounts[id]; ok {
			items = append(items, *a)
		}
	}
	if len(items) == 0 {
		return store.Page[models.Account]{}, apperr.New(apperr.AccountNotFound, "no accounts found")
	}
	return store.Page[models.Account]{Items: items, TotalItems: int64(len(items)), Page: page.Page, Size: len(items)}, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, account *models.Account) error {
	if account.ID == 0 {
		r.nextID++
		account.ID = r.nextID
	}
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.accounts[id]; !ok {
		return apperr.New(apperr.AccountNotFound, "account not found")
	}
	delete(r.accounts, id)
	return nil
}

type fakeMovementRepo struct {
	movements []models.Movement
	nextID    uint
}

func (r *fakeMovementRepo) FindByID(_ context.Context, id uint) (*models.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.MovementNotFound, "movement not found")
}

func (r *fakeMovementRepo) Save(_ context.Context, movement *models.Movement) error {
	if movement.ID == 0 {
		r.nextID++
		movement.ID = r.nextID
	}
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id uint) error {
	return apperr.New(apperr.MovementNotFound, "movement not found")
}

func (r *fakeMovementRepo) FindAll(_ context.Context, page store.PageRequest) (store.Page[models.Movement], error) {
	if len(r.movements) == 0 {
		return store.Page[models.Movement]{}, apperr.New(apperr.MovementNotFound, "no movements found")
	}
	return store.Page[models.Movement]{Items: r.movements, TotalItems: int64(len(r.movements)), Page: page.Page, Size: len(r.movements)}, nil
}

func (r *fakeMovementRepo) FindByPeriod(ctx context.Context, page store.PageRequest, from, to time.Time) (store.Page[models.Movement], error) {
	return r.FindAll(ctx, page)
}

func (r *fakeMovementRepo) FindByOperator(ctx context.Context, page store.PageRequest, operatorName string) (store.Page[models.Movement], error) {
	return r.FindAll(ctx, page)
}

func (r *fakeMovementRepo) FindByOperatorAndPeriod(ctx context.Context, page store.PageRequest, operatorName string, from, to time.Time) (store.Page[models.Movement], error) {
	return r.FindAll(ctx, page)
}

func (r *fakeMovementRepo) FindByAccount(ctx context.Context, page store.PageRequest, accountID uint) (store.Page[models.Movement], error) {
	return r.FindAll(ctx, page)
}

func (r *fakeMovementRepo) SumByPeriod(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(func(models.Movement) bool { return true })
}

func (r *fakeMovementRepo) SumByAccount(_ context.Context, accountID uint) (decimal.Decimal, error) {
	return r.sum(func(m models.Movement) bool { return m.AccountID == accountID })
}

func (r *fakeMovementRepo) sum(match func(models.Movement) bool) (decimal.Decimal, error) {
	total := decimal.Zero
	matched := false
	for _, m := range r.movements {
		if !match(m) || m.Kind == models.KindDeposit {
			continue
		}
		matched = true
		total = total.Add(m.Amount)
	}
	if !matched {
		return decimal.Decimal{}, apperr.New(apperr.MovementNotFound, "no movements found")
	}
	return total, nil
}

type fakeUsers struct {
	user models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if email == f.user.Email {
		cp := f.user
		return &cp, nil
	}
	return nil, apperr.New(apperr.ValidationFailed, "user not found")
}

func newServer(t *testing.T) (*httptest.Server, *fakeMovementRepo) {
	t.Helper()
	logger.InitNop()

	accountRepo := &fakeAccountRepo{accounts: map[uint]*models.Account{
		1: {ID: 1, OwnerName: "Fulano"},
		2: {ID: 2, OwnerName: "Sicrano"},
	}, nextID: 2}
	movementRepo := &fakeMovementRepo{}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{user: models.User{Email: "admin@bankledger.local", Password: string(hash)}}

	accountSvc := accounts.NewService(accountRepo, zap.NewNop())
	ledgerSvc := ledger.NewService(movementRepo, accountRepo, zap.NewNop())
	h := handlers.New(accountSvc, ledgerSvc, users, testSecret)

	srv := httptest.NewServer(routes.New(h, testSecret))
	t.Cleanup(srv.Close)
	return srv, movementRepo
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	body := bytes.NewBufferString(`{"email":"admin@bankledger.local","password":"password123"}`)
	resp, err := http.Post(srv.URL+"/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out handlers.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func doJSON(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestAPIRequiresToken(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/api/movements")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv, _ := newServer(t)

	body := bytes.NewBufferString(`{"email":"admin@bankledger.local","password":"wrong"}`)
	resp, err := http.Post(srv.URL+"/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTransferEndpoint(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/movements/transfer", token,
		`{"amount":"50.00","originAccountId":1,"destinationAccountId":2}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movement models.Movement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movement))
	assert.Equal(t, models.KindTransfer, movement.Kind)
	assert.Equal(t, "Sicrano", movement.CounterpartyName)
	assert.Equal(t, uint(1), movement.Account.ID)
	assert.Equal(t, "50.00", movement.Amount.StringFixed(2))
}

func TestTransferUnknownAccountIs404(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/movements/transfer", token,
		`{"amount":"50.00","originAccountId":1,"destinationAccountId":99}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransferNegativeAmountIs400(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/movements/transfer", token,
		`{"amount":"-1.00","originAccountId":1,"destinationAccountId":2}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListMovementsEmptyIs404(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/movements", token, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAccountEmptyOwnerNameIs400(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/accounts", token, `{"ownerName":""}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSumByPeriodEndpoint(t *testing.T) {
	srv, movementRepo := newServer(t)
	token := login(t, srv)

	movementRepo.movements = []models.Movement{
		{ID: 1, Kind: models.KindDeposit, Amount: decimal.RequireFromString("100.00"), AccountID: 1},
		{ID: 2, Kind: models.KindWithdrawal, Amount: decimal.RequireFromString("30.00"), AccountID: 1},
		{ID: 3, Kind: models.KindTransfer, Amount: decimal.RequireFromString("20.00"), AccountID: 1},
	}
	movementRepo.nextID = 3

	resp := doJSON(t, http.MethodGet,
		srv.URL+"/api/movements/sum-by-period?from=2023-01-01T00:00:00Z&to=2023-12-31T23:59:59Z", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "50.00", out.Total.StringFixed(2))
}

func TestDeleteAccountMissingIs404(t *testing.T) {
	srv, _ := newServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/accounts/42", token, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
