package request

import (
	"errors"
	"testing"

	"energia_divinidad/internal/domain/entities"
)

func TestCheckoutRequest_ResolveAmount(t *testing.T) {
	cases := map[string]bool{
		"50000":  true,
		" 19.99": true,
		"0":      false,
		"-5":     false,
		"abc":    false,
		"":       false,
	}
	for in, ok := range cases {
		d, err := CheckoutRequest{Amount: in}.ResolveAmount()
		if ok && (err != nil || !d.IsPositive()) {
			t.Fatalf("%q: expected valid amount, got %v %v", in, d, err)
		}
		if !ok && !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q: expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestCheckoutRequest_Normalization(t *testing.T) {
	r := CheckoutRequest{Currency: " cop", PaymentMethod: "nequi ", Gateway: " ePayco"}
	if r.ResolveCurrency() != entities.CurrencyCOP {
		t.Fatalf("unexpected currency %q", r.ResolveCurrency())
	}
	if r.ResolvePaymentMethod() != entities.PaymentMethodNequi {
		t.Fatalf("unexpected method %q", r.ResolvePaymentMethod())
	}
	if r.ResolveGateway() != entities.GatewayEpayco {
		t.Fatalf("unexpected gateway %q", r.ResolveGateway())
	}
}

func TestRefundRequest_ResolveAmount(t *testing.T) {
	d, err := RefundRequest{}.ResolveAmount()
	if err != nil || !d.IsZero() {
		t.Fatalf("empty amount should mean full refund, got %v %v", d, err)
	}
	if _, err := (RefundRequest{Amount: "-1"}).ResolveAmount(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	d, err = RefundRequest{Amount: "20.50"}.ResolveAmount()
	if err != nil || d.String() != "20.5" {
		t.Fatalf("unexpected amount %v %v", d, err)
	}
}
