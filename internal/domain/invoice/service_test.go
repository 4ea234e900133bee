package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func invoiceService(t *testing.T) (*InvoiceService, *MockInvoiceRepo) {
	t.Helper()

	mockRepo := NewMockInvoiceRepo(gomock.NewController(t))
	service := NewInvoiceService(mockRepo)
	service.now = func() time.Time { return fixedNow }

	return service, mockRepo
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	due := fixedNow.AddDate(0, 0, 14)

	t.Run("should create unpaid invoice with full outstanding", func(t *testing.T) {
		// given
		service, mockRepo := invoiceService(t)
		mockRepo.EXPECT().CreateInvoice(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv Invoice) error {
				assert.Equal(t, StatusUnpaid, inv.Status)
				assert.Equal(t, int64(12050), inv.Total)
				assert.Equal(t, int64(12050), inv.Outstanding)
				return nil
			})

		// when
		inv, err := service.CreateInvoice(ctx, NewInvoice{
			CustomerID: "CUST-1",
			Amount:     Money{Minor: 12050, Currency: "GBP"},
			DueDate:    due,
		})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, inv.ID)
		assert.Equal(t, "CUST-1", inv.CustomerID)
		assert.Equal(t, due, inv.DueDate)
		assert.Equal(t, fixedNow, inv.CreatedAt)
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		service, _ := invoiceService(t)

		_, err := service.CreateInvoice(ctx, NewInvoice{CustomerID: "CUST-1", Amount: Money{Currency: "GBP"}})

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestInvoiceService_GetInvoiceByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := Invoice{ID: "INV-1", CustomerID: "CUST-1", Status: StatusUnpaid}

	testCases := []struct {
		name          string
		mock          func(m *MockInvoiceRepo)
		expected      Invoice
		expectedError error
	}{
		{
			name: "should return invoice when found",
			mock: func(m *MockInvoiceRepo) {
				query, _ := NewInvoicesQueryBuilder().WithIDs("INV-1").Build()
				m.EXPECT().GetInvoices(ctx, query).Return([]Invoice{expected}, nil)
			},
			expected: expected,
		},
		{
			name: "should return ErrInvoiceNotFound when missing",
			mock: func(m *MockInvoiceRepo) {
				m.EXPECT().GetInvoices(ctx, gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "should wrap repository failure",
			mock: func(m *MockInvoiceRepo) {
				m.EXPECT().GetInvoices(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("get invoice: database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, mockRepo := invoiceService(t)
			tc.mock(mockRepo)

			// when
			result, err := service.GetInvoiceByID(ctx, "INV-1")

			// then
			assert.Equal(t, tc.expected, result)
			if tc.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.expectedError.Error())
			}
		})
	}
}

func TestInvoiceService_GetInvoices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should reject oversized page", func(t *testing.T) {
		service, _ := invoiceService(t)

		_, err := service.GetInvoices(ctx, InvoicesQuery{Pagination: &Pagination{Limit: MaxPageLimit + 1}})

		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("should pass filters to repository", func(t *testing.T) {
		// given
		service, mockRepo := invoiceService(t)
		query := InvoicesQuery{CustomerIDs: []string{"CUST-1"}, Statuses: []Status{StatusUnpaid}}
		mockRepo.EXPECT().GetInvoices(ctx, &query).Return([]Invoice{{ID: "INV-1"}}, nil)

		// when
		invoices, err := service.GetInvoices(ctx, query)

		// then
		require.NoError(t, err)
		assert.Len(t, invoices, 1)
	})
}

func TestInvoiceService_GetSettlements(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should return not found for unknown invoice", func(t *testing.T) {
		service, mockRepo := invoiceService(t)
		mockRepo.EXPECT().GetInvoices(ctx, gomock.Any()).Return(nil, nil)

		_, err := service.GetSettlements(ctx, "INV-404")

		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})

	t.Run("should list settlements", func(t *testing.T) {
		service, mockRepo := invoiceService(t)
		mockRepo.EXPECT().GetInvoices(ctx, gomock.Any()).Return([]Invoice{{ID: "INV-1"}}, nil)
		mockRepo.EXPECT().GetSettlements(ctx, "INV-1").Return([]Settlement{{ID: "S-1", InvoiceID: "INV-1"}}, nil)

		settlements, err := service.GetSettlements(ctx, "INV-1")

		require.NoError(t, err)
		assert.Len(t, settlements, 1)
	})
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	t.Parallel()

	service, mockRepo := invoiceService(t)
	mockRepo.EXPECT().MarkOverdue(context.Background(), fixedNow).Return(int64(3), nil)

	n, err := service.MarkOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
