package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func newExpenseRepo() adapter.ExpenseRepository {
	store := persistence.NewCollectionStore(persistence.NewMemoryStore())
	clock := stubClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	return persistence.NewExpenseRepository(store, persistence.NewActivityRepository(store, clock), clock)
}

func TestCreateExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	monthly := entity.RecurringMonthly
	bogus := entity.RecurringType("yearly")

	tests := []struct {
		name     string
		input    CreateExpenseInput
		wantCode domainerror.RecordErrorCode
	}{
		{
			name:  "valid daily expense",
			input: CreateExpenseInput{Name: "Coffee", Amount: 4.5, Category: "Food", Date: "2024-03-15T10:00:00Z"},
		},
		{
			name:  "valid recurring expense",
			input: CreateExpenseInput{Name: "Gym", Amount: 30, Category: "Health", Date: "2024-03-15", IsRecurring: true, RecurringType: &monthly},
		},
		{
			name:     "zero amount",
			input:    CreateExpenseInput{Name: "Coffee", Amount: 0, Date: "2024-03-15"},
			wantCode: domainerror.ErrCodeInvalidAmount,
		},
		{
			name:     "negative amount",
			input:    CreateExpenseInput{Name: "Coffee", Amount: -1, Date: "2024-03-15"},
			wantCode: domainerror.ErrCodeInvalidAmount,
		},
		{
			name:     "missing name",
			input:    CreateExpenseInput{Name: "  ", Amount: 1, Date: "2024-03-15"},
			wantCode: domainerror.ErrCodeMissingName,
		},
		{
			name:     "invalid date",
			input:    CreateExpenseInput{Name: "Coffee", Amount: 1, Date: "15/03/2024"},
			wantCode: domainerror.ErrCodeInvalidDate,
		},
		{
			name:     "invalid expense type",
			input:    CreateExpenseInput{Name: "Coffee", Amount: 1, Date: "2024-03-15", ExpenseType: "weekly"},
			wantCode: domainerror.ErrCodeInvalidExpenseType,
		},
		{
			name:     "recurring without cadence",
			input:    CreateExpenseInput{Name: "Gym", Amount: 30, Date: "2024-03-15", IsRecurring: true},
			wantCode: domainerror.ErrCodeMissingRecurringType,
		},
		{
			name:     "unknown cadence",
			input:    CreateExpenseInput{Name: "Gym", Amount: 30, Date: "2024-03-15", IsRecurring: true, RecurringType: &bogus},
			wantCode: domainerror.ErrCodeInvalidRecurringType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateExpenseUseCase(newExpenseRepo())
			output, err := uc.Execute(ctx, tt.input)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if output.Expense.ID == "" {
					t.Error("expected generated id")
				}
				return
			}

			var recordErr *domainerror.RecordError
			if !errors.As(err, &recordErr) {
				t.Fatalf("expected RecordError, got %v", err)
			}
			if recordErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recordErr.Code)
			}
		})
	}
}

func TestCreateExpenseUseCase_Defaults(t *testing.T) {
	uc := NewCreateExpenseUseCase(newExpenseRepo())

	output, err := uc.Execute(context.Background(), CreateExpenseInput{Name: " Snack ", Amount: 2, Date: "2024-03-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Expense.Category != entity.DefaultCategoryName {
		t.Errorf("expected default category, got %q", output.Expense.Category)
	}
	if output.Expense.ExpenseType != entity.ExpenseTypeDaily {
		t.Errorf("expected daily, got %q", output.Expense.ExpenseType)
	}
	if output.Expense.Name != "Snack" {
		t.Errorf("expected trimmed name, got %q", output.Expense.Name)
	}
}

func TestUpdateAndDeleteExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newExpenseRepo()

	created, err := NewCreateExpenseUseCase(repo).Execute(ctx, CreateExpenseInput{Name: "Taxi", Amount: 20, Category: "Transport", Date: "2024-03-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("update does not re-validate amount", func(t *testing.T) {
		zero := 0.0
		output, err := NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ID: created.Expense.ID, Patch: entity.ExpensePatch{Amount: &zero}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Amount != 0 {
			t.Errorf("expected amount 0, got %v", output.Expense.Amount)
		}
	})

	t.Run("update of unknown id is not found", func(t *testing.T) {
		name := "x"
		_, err := NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ID: "missing", Patch: entity.ExpensePatch{Name: &name}})

		var recordErr *domainerror.RecordError
		if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeRecordNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("delete twice succeeds", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(repo)
		for i := 0; i < 2; i++ {
			output, err := uc.Execute(ctx, DeleteExpenseInput{ID: created.Expense.ID})
			if err != nil || !output.Success {
				t.Fatalf("delete #%d: %v", i+1, err)
			}
		}
	})
}

func TestListExpensesUseCase_FilterByType(t *testing.T) {
	ctx := context.Background()
	repo := newExpenseRepo()
	create := NewCreateExpenseUseCase(repo)

	_, _ = create.Execute(ctx, CreateExpenseInput{Name: "Coffee", Amount: 4.5, Date: "2024-03-15"})
	_, _ = create.Execute(ctx, CreateExpenseInput{Name: "Rent", Amount: 900, Date: "2024-03-01", ExpenseType: entity.ExpenseTypeFixed})

	daily := entity.ExpenseTypeDaily
	output, err := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{ExpenseType: &daily})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Expenses) != 1 || output.Expenses[0].Name != "Coffee" {
		t.Errorf("unexpected filter result: %+v", output.Expenses)
	}

	all, _ := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{})
	if len(all.Expenses) != 2 || all.Expenses[0].Name != "Rent" {
		t.Errorf("expected newest first, got %+v", all.Expenses)
	}
}
