package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/activity"
	"github.com/expense-daddy/backend/internal/application/usecase/backup"
	"github.com/expense-daddy/backend/internal/application/usecase/dashboard"
	"github.com/expense-daddy/backend/internal/application/usecase/expense"
	"github.com/expense-daddy/backend/internal/application/usecase/ledger"
	"github.com/expense-daddy/backend/internal/application/usecase/loan"
	"github.com/expense-daddy/backend/internal/application/usecase/profile"
	"github.com/expense-daddy/backend/internal/application/usecase/shopping"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

var errWriteFailed = errors.New("write failed")

// failingStore is a MemoryStore whose writes to failKey fail.
type failingStore struct {
	*persistence.MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if key == s.failKey {
		return errWriteFailed
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type testServer struct {
	engine *gin.Engine
	kv     *persistence.MemoryStore
}

func newTestServer(t *testing.T, failKey string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := persistence.NewMemoryStore()
	store := persistence.NewCollectionStore(&failingStore{MemoryStore: kv, failKey: failKey})
	clock := stubClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}

	activityRepo := persistence.NewActivityRepository(store, clock)
	historyRepo := persistence.NewBudgetHistoryRepository(store, clock)
	profileRepo := persistence.NewProfileRepository(store, historyRepo, activityRepo)
	expenseRepo := persistence.NewExpenseRepository(store, activityRepo, clock)
	loanRepo := persistence.NewLoanRepository(store, activityRepo, clock)
	fixedRepo := persistence.NewFixedExpenseRepository(store, activityRepo, clock)
	goalRepo := persistence.NewSavingsGoalRepository(store, activityRepo, clock)
	cardRepo := persistence.NewSavedCardRepository(store, activityRepo, clock)
	shoppingRepo := persistence.NewShoppingListRepository(store)

	refresh := ledger.NewRefreshUseCase(ledger.Repositories{
		Expenses:      expenseRepo,
		Loans:         loanRepo,
		FixedExpenses: fixedRepo,
		SavingsGoals:  goalRepo,
		SavedCards:    cardRepo,
		Activity:      activityRepo,
		BudgetHistory: historyRepo,
		ShoppingList:  shoppingRepo,
		Profile:       profileRepo,
	})

	expenseController := NewExpenseController(
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)
	loanController := NewLoanController(
		loan.NewListLoansUseCase(loanRepo),
		loan.NewCreateLoanUseCase(loanRepo),
		loan.NewUpdateLoanUseCase(loanRepo),
		loan.NewMarkLoanPaidUseCase(loanRepo, clock),
		loan.NewDeleteLoanUseCase(loanRepo),
	)
	profileController := NewProfileController(
		profile.NewGetProfileUseCase(profileRepo),
		profile.NewUpdateProfileUseCase(profileRepo),
		profile.NewListBudgetHistoryUseCase(historyRepo),
	)
	activityController := NewActivityController(activity.NewListActivityUseCase(activityRepo))
	shoppingController := NewShoppingListController(
		shopping.NewGetShoppingListUseCase(shoppingRepo),
		shopping.NewReplaceShoppingListUseCase(shoppingRepo),
	)
	dashboardController := NewDashboardController(
		dashboard.NewGetSummaryUseCase(refresh, clock),
		dashboard.NewGetCalendarUseCase(refresh, clock),
	)
	backupController := NewBackupController(
		backup.NewExportBackupUseCase(store, profileRepo, clock),
		backup.NewImportBackupUseCase(store),
		1<<16,
	)
	healthController := NewHealthController(store, "memory")

	r := gin.New()
	r.GET("/health", healthController.Check)
	r.GET("/expenses", expenseController.List)
	r.POST("/expenses", expenseController.Create)
	r.PATCH("/expenses/:id", expenseController.Update)
	r.DELETE("/expenses/:id", expenseController.Delete)
	r.POST("/loans", loanController.Create)
	r.PUT("/loans/:id/paid", loanController.MarkPaid)
	r.GET("/profile", profileController.Get)
	r.PATCH("/profile", profileController.Update)
	r.GET("/profile/budget-history", profileController.BudgetHistory)
	r.GET("/activity", activityController.List)
	r.GET("/shopping-list", shoppingController.Get)
	r.PUT("/shopping-list", shoppingController.Replace)
	r.GET("/dashboard/summary", dashboardController.Summary)
	r.GET("/dashboard/calendar", dashboardController.Calendar)
	r.GET("/backup/export", backupController.Export)
	r.POST("/backup/import", backupController.Import)

	return &testServer{engine: r, kv: kv}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestExpenseController_CRUD(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/expenses", `{"name":"Coffee","amount":4.5,"category":"Food","date":"2024-03-15T08:00:00.000Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID          string  `json:"id"`
		Amount      float64 `json:"amount"`
		ExpenseType string  `json:"expense_type"`
	}
	decode(t, w, &created)
	if created.ID == "" || created.Amount != 4.5 || created.ExpenseType != "daily" {
		t.Fatalf("unexpected created expense %+v", created)
	}
	if w.Header().Get(ActivityRecordedHeader) != "" {
		t.Errorf("activity header set on a fully recorded change")
	}

	w = s.do(t, http.MethodPatch, "/expenses/"+created.ID, `{"amount":6}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &created)
	if created.Amount != 6 {
		t.Errorf("updated amount = %v, want 6", created.Amount)
	}

	w = s.do(t, http.MethodGet, "/expenses?type=daily", "")
	var list struct {
		Expenses []json.RawMessage `json:"expenses"`
	}
	decode(t, w, &list)
	if len(list.Expenses) != 1 {
		t.Errorf("listed %d expenses, want 1", len(list.Expenses))
	}

	w = s.do(t, http.MethodDelete, "/expenses/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	w = s.do(t, http.MethodDelete, "/expenses/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("repeated delete status = %d", w.Code)
	}
}

func TestExpenseController_Errors(t *testing.T) {
	s := newTestServer(t, "")

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "negative amount",
			method:   http.MethodPost,
			path:     "/expenses",
			body:     `{"name":"Coffee","amount":-1,"date":"2024-03-15T08:00:00.000Z"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  string(domainerror.ErrCodeInvalidAmount),
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/expenses",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantErr:  string(domainerror.ErrCodeMissingRecordFields),
		},
		{
			name:     "unknown id on update",
			method:   http.MethodPatch,
			path:     "/expenses/missing",
			body:     `{"amount":3}`,
			wantCode: http.StatusNotFound,
			wantErr:  string(domainerror.ErrCodeRecordNotFound),
		},
		{
			name:     "unknown type filter",
			method:   http.MethodGet,
			path:     "/expenses?type=weekly",
			wantCode: http.StatusBadRequest,
			wantErr:  string(domainerror.ErrCodeInvalidExpenseType),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			var resp struct {
				Code string `json:"code"`
			}
			decode(t, w, &resp)
			if resp.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantErr)
			}
		})
	}
}

func TestExpenseController_ActivityNotRecorded(t *testing.T) {
	s := newTestServer(t, entity.CollectionActivityLog)

	w := s.do(t, http.MethodPost, "/expenses", `{"name":"Lunch","amount":12,"date":"2024-03-15T12:00:00.000Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get(ActivityRecordedHeader); got != "false" {
		t.Errorf("%s = %q, want \"false\"", ActivityRecordedHeader, got)
	}

	w = s.do(t, http.MethodGet, "/expenses", "")
	var list struct {
		Expenses []json.RawMessage `json:"expenses"`
	}
	decode(t, w, &list)
	if len(list.Expenses) != 1 {
		t.Errorf("expense not persisted: listed %d", len(list.Expenses))
	}
}

func TestExpenseController_StorageFailure(t *testing.T) {
	s := newTestServer(t, entity.CollectionExpenses)

	w := s.do(t, http.MethodPost, "/expenses", `{"name":"Lunch","amount":12,"date":"2024-03-15T12:00:00.000Z"}`)
	if w.Code < http.StatusInternalServerError {
		t.Fatalf("status = %d, want a 5xx (body %s)", w.Code, w.Body.String())
	}
}

func TestLoanController_MarkPaid(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/loans", `{"name":"Car","amount":1000,"date":"2024-03-01T00:00:00.000Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = s.do(t, http.MethodPut, "/loans/"+created.ID+"/paid", `{"is_paid":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("mark paid status = %d, body %s", w.Code, w.Body.String())
	}
	var paid struct {
		IsPaid   bool    `json:"is_paid"`
		PaidDate *string `json:"paid_date"`
	}
	decode(t, w, &paid)
	if !paid.IsPaid || paid.PaidDate == nil || *paid.PaidDate != "2024-03-15T10:00:00.000Z" {
		t.Errorf("unexpected paid loan %+v", paid)
	}

	w = s.do(t, http.MethodPut, "/loans/"+created.ID+"/paid", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing is_paid status = %d, want 400", w.Code)
	}
}

func TestProfileController(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodGet, "/profile", "")
	var prof struct {
		Name            string   `json:"name"`
		Currency        string   `json:"currency"`
		MonthlyBudget   float64  `json:"monthly_budget"`
		CurrencyOptions []string `json:"currency_options"`
	}
	decode(t, w, &prof)
	if prof.Name != "User" || prof.Currency != "$" || prof.MonthlyBudget != 0 {
		t.Errorf("unexpected default profile %+v", prof)
	}
	if len(prof.CurrencyOptions) == 0 {
		t.Error("currency options missing")
	}

	w = s.do(t, http.MethodPatch, "/profile", `{"monthly_budget":2500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPatch, "/profile", `{"daily_budget_target":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative daily target status = %d, want 400", w.Code)
	}

	w = s.do(t, http.MethodGet, "/profile/budget-history", "")
	var history struct {
		History []struct {
			Amount float64 `json:"amount"`
		} `json:"history"`
	}
	decode(t, w, &history)
	if len(history.History) != 1 || history.History[0].Amount != 2500 {
		t.Errorf("unexpected budget history %+v", history)
	}

	w = s.do(t, http.MethodGet, "/activity?limit=1", "")
	var log struct {
		Activity []struct {
			Type string `json:"type"`
		} `json:"activity"`
	}
	decode(t, w, &log)
	if len(log.Activity) != 1 || log.Activity[0].Type != string(entity.ActivityBudgetUpdated) {
		t.Errorf("unexpected activity %+v", log)
	}

	w = s.do(t, http.MethodGet, "/activity?limit=x", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", w.Code)
	}
}

func TestShoppingListController(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodGet, "/shopping-list", "")
	if strings.TrimSpace(w.Body.String()) != `{"items":[]}` {
		t.Errorf("empty list body = %s", w.Body.String())
	}

	w = s.do(t, http.MethodPut, "/shopping-list", `{"items":["milk"," ","eggs"]}`)
	var list struct {
		Items []string `json:"items"`
	}
	decode(t, w, &list)
	if len(list.Items) != 2 || list.Items[0] != "milk" || list.Items[1] != "eggs" {
		t.Errorf("items = %v", list.Items)
	}
}

func TestDashboardController(t *testing.T) {
	s := newTestServer(t, "")
	s.do(t, http.MethodPost, "/expenses", `{"name":"Coffee","amount":4.5,"category":"Food","date":"2024-03-15T08:00:00.000Z"}`)

	w := s.do(t, http.MethodGet, "/dashboard/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d, body %s", w.Code, w.Body.String())
	}
	var summary struct {
		Data struct {
			TodayTotal      float64 `json:"today_total"`
			RemainingBudget float64 `json:"remaining_budget"`
		} `json:"data"`
	}
	decode(t, w, &summary)
	if summary.Data.TodayTotal != 4.5 || summary.Data.RemainingBudget != -4.5 {
		t.Errorf("unexpected summary %+v", summary.Data)
	}

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{name: "current month", query: "", wantCode: http.StatusOK},
		{name: "explicit month", query: "?year=2024&month=2", wantCode: http.StatusOK},
		{name: "month out of range", query: "?year=2024&month=13", wantCode: http.StatusBadRequest},
		{name: "non numeric year", query: "?year=abc&month=2", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/dashboard/calendar"+tt.query, "")
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestBackupController_RoundTrip(t *testing.T) {
	s := newTestServer(t, "")
	s.do(t, http.MethodPost, "/expenses", `{"name":"Coffee","amount":4.5,"date":"2024-03-15T08:00:00.000Z"}`)

	w := s.do(t, http.MethodGet, "/backup/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "expensedaddy-backup-2024-03-15.json") {
		t.Errorf("Content-Disposition = %q", got)
	}
	exported := w.Body.Bytes()

	target := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodPost, "/backup/import", bytes.NewReader(exported))
	w = httptest.NewRecorder()
	target.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", w.Code, w.Body.String())
	}

	w = target.do(t, http.MethodGet, "/expenses", "")
	if !strings.Contains(w.Body.String(), "Coffee") {
		t.Errorf("imported expenses missing: %s", w.Body.String())
	}
}

func TestBackupController_ImportErrors(t *testing.T) {
	tests := []struct {
		name     string
		failKey  string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "other app",
			body:     `{"version":2,"appName":"OtherApp","expenses":[]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "Invalid backup file",
		},
		{
			name:     "empty body",
			body:     "",
			wantCode: http.StatusBadRequest,
			wantErr:  "Invalid backup file",
		},
		{
			name:     "too large",
			body:     `{"appName":"ExpenseDaddy","notes":"` + strings.Repeat("x", 1<<16) + `"}`,
			wantCode: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "partial import",
			failKey:  entity.CollectionLoans,
			body:     `{"version":2,"appName":"ExpenseDaddy","expenses":[],"loans":[]}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.failKey)
			req := httptest.NewRequest(http.MethodPost, "/backup/import", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantErr != "" && !strings.Contains(w.Body.String(), tt.wantErr) {
				t.Errorf("body %s does not mention %q", w.Body.String(), tt.wantErr)
			}
		})
	}
}

func TestHealthController(t *testing.T) {
	s := newTestServer(t, "")
	w := s.do(t, http.MethodGet, "/health", "")
	var resp HealthResponse
	decode(t, w, &resp)
	if resp.Status != "ok" || resp.Storage != "connected" || resp.Backend != "memory" {
		t.Errorf("unexpected health %+v", resp)
	}
}
