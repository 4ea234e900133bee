package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutService_StartCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	req := CheckoutRequest{
		SuccessURL:    "https://billing.example.net/paid",
		CancelURL:     "https://billing.example.net/cancelled",
		CustomerEmail: "jo@example.net",
	}
	unpaid := Invoice{ID: "inv-1", CustomerID: "CUST-1", Total: 5000, Outstanding: 2500, Currency: "GBP", Status: StatusOverdue}

	testCases := []struct {
		name    string
		invoice *Invoice
		setup   func(g *MockCheckoutGateway)
		repoErr error
		req     CheckoutRequest
		want    CheckoutSession
		wantErr error
	}{
		{
			name:    "charges outstanding balance",
			invoice: &unpaid,
			req:     req,
			setup: func(g *MockCheckoutGateway) {
				g.EXPECT().CreateCheckoutSession(ctx, CheckoutSessionRequest{
					InvoiceID:     "inv-1",
					CustomerID:    "CUST-1",
					Amount:        Money{Minor: 2500, Currency: "GBP"},
					SuccessURL:    req.SuccessURL,
					CancelURL:     req.CancelURL,
					CustomerEmail: "jo@example.net",
				}).Return(CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil)
			},
			want: CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"},
		},
		{
			name:    "paid invoice is not payable",
			invoice: &Invoice{ID: "inv-1", Total: 5000, Status: StatusPaid},
			req:     req,
			wantErr: ErrInvoiceNotPayable,
		},
		{
			name:    "cancelled invoice is not payable",
			invoice: &Invoice{ID: "inv-1", Total: 5000, Outstanding: 5000, Status: StatusCancelled},
			req:     req,
			wantErr: ErrInvoiceNotPayable,
		},
		{
			name:    "unknown invoice",
			req:     req,
			wantErr: ErrInvoiceNotFound,
		},
		{
			name:    "relative success url",
			req:     CheckoutRequest{SuccessURL: "/paid", CancelURL: req.CancelURL},
			wantErr: ErrInvalidCheckout,
		},
		{
			name:    "missing cancel url",
			req:     CheckoutRequest{SuccessURL: req.SuccessURL},
			wantErr: ErrInvalidCheckout,
		},
		{
			name:    "gateway failure",
			invoice: &unpaid,
			req:     req,
			setup: func(g *MockCheckoutGateway) {
				g.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).Return(CheckoutSession{}, errors.New("stripe down"))
			},
			wantErr: ErrCheckoutFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := NewMockInvoiceRepo(ctrl)
			gateway := NewMockCheckoutGateway(ctrl)

			if !errors.Is(tc.wantErr, ErrInvalidCheckout) {
				var found []Invoice
				if tc.invoice != nil {
					found = []Invoice{*tc.invoice}
				}
				repo.EXPECT().GetInvoices(ctx, gomock.Any()).Return(found, nil)
			}
			if tc.setup != nil {
				tc.setup(gateway)
			}

			got, err := NewCheckoutService(repo, gateway).StartCheckout(ctx, "inv-1", tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvoice_Payable(t *testing.T) {
	t.Parallel()

	assert.True(t, Invoice{Status: StatusUnpaid, Outstanding: 1}.Payable())
	assert.True(t, Invoice{Status: StatusOverdue, Outstanding: 1}.Payable())
	assert.False(t, Invoice{Status: StatusUnpaid}.Payable())
	assert.False(t, Invoice{Status: StatusDraft, Outstanding: 1}.Payable())
	assert.False(t, Invoice{Status: StatusPaid, Outstanding: 1}.Payable())
}
