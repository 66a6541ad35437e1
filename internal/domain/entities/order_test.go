package entities

import "testing"

func TestPaymentStatusFromTransaction(t *testing.T) {
	cases := map[TransactionStatus]PaymentStatus{
		TransactionStatusApproved: PaymentStatusCompleted,
		TransactionStatusDeclined: PaymentStatusFailed,
		TransactionStatusError:    PaymentStatusFailed,
		TransactionStatusVoided:   PaymentStatusCancelled,
		TransactionStatusPending:  PaymentStatusProcessing,
		"SOMETHING_ELSE":          PaymentStatusProcessing,
	}
	for in, want := range cases {
		if got := PaymentStatusFromTransaction(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestPaymentStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentStatusPending, PaymentStatusProcessing, true},
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusProcessing, PaymentStatusPending, false},
		{PaymentStatusProcessing, PaymentStatusCompleted, true},
		{PaymentStatusCompleted, PaymentStatusProcessing, false},
		{PaymentStatusCompleted, PaymentStatusFailed, false},
		{PaymentStatusCompleted, PaymentStatusCompleted, true},
		{PaymentStatusCompleted, PaymentStatusRefunded, true},
		{PaymentStatusFailed, PaymentStatusCompleted, true},
		{PaymentStatusCancelled, PaymentStatusCompleted, true},
		{PaymentStatusCancelled, PaymentStatusProcessing, false},
		{PaymentStatusRefunded, PaymentStatusCompleted, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestOrder_TransactionID(t *testing.T) {
	o := Order{Gateway: GatewayPayPal, Metadata: map[string]interface{}{"paypalTransactionId": "5O190127TN364715T", "wompiTransactionId": "x"}}
	if got := o.TransactionID(); got != "5O190127TN364715T" {
		t.Fatalf("unexpected transaction id %q", got)
	}
	if got := (Order{Gateway: GatewayWompi}).TransactionID(); got != "" {
		t.Fatalf("expected empty transaction id, got %q", got)
	}
}
