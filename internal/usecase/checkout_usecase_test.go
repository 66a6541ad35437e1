package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"energia_divinidad/internal/domain/entities"
	mock_interfaces "energia_divinidad/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var checkoutNow = time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)

func newCheckout(t *testing.T) (*CheckoutUseCase, *mock_interfaces.MockIGatewaySelector, *mock_interfaces.MockIOrderRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	selector := mock_interfaces.NewMockIGatewaySelector(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCheckoutUseCase(selector, orders, "https://energiaydivinidad.com/", nil)
	uc.now = func() time.Time { return checkoutNow }
	return uc, selector, orders, ctrl
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		Amount:        decimal.NewFromInt(50000),
		Currency:      entities.CurrencyCOP,
		PaymentMethod: entities.PaymentMethodCard,
		UserID:        "user-1",
		Customer:      entities.CustomerInfo{Email: " ana@example.com ", FullName: "Ana"},
	}
}

func TestCheckoutUseCase_CreateCheckout_Validation(t *testing.T) {
	uc := NewCheckoutUseCase(nil, nil, "", nil)

	in := validCheckoutInput()
	in.Amount = decimal.Zero
	if _, err := uc.CreateCheckout(context.Background(), in); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	in = validCheckoutInput()
	in.Currency = "MXN"
	if _, err := uc.CreateCheckout(context.Background(), in); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}

	in = validCheckoutInput()
	in.PaymentMethod = "CASH"
	if _, err := uc.CreateCheckout(context.Background(), in); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}

	in = validCheckoutInput()
	in.Customer.Email = "  "
	if _, err := uc.CreateCheckout(context.Background(), in); !errors.Is(err, ErrInvalidCustomer) {
		t.Fatalf("expected ErrInvalidCustomer, got %v", err)
	}
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	t.Run("selector gateway redirect", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayWompi).AnyTimes()
		gw.EXPECT().IsConfigured().Return(true)
		selector.EXPECT().GetGatewayForPayment(entities.PaymentMethodCard, entities.CurrencyCOP).Return(gw)

		var createdNumber string
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			if !strings.HasPrefix(o.OrderNumber, "ED-20261014-") || len(o.OrderNumber) != len("ED-20261014-")+8 {
				t.Fatalf("unexpected order number %q", o.OrderNumber)
			}
			if o.PaymentStatus != entities.PaymentStatusPending || o.CustomerEmail != "ana@example.com" || o.Gateway != entities.GatewayWompi {
				t.Fatalf("unexpected order %+v", o)
			}
			createdNumber = o.OrderNumber
			return o, nil
		})
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.CreatePaymentParams) (entities.CreatePaymentResult, error) {
			if p.OrderNumber != createdNumber {
				t.Fatalf("payment for %q, order is %q", p.OrderNumber, createdNumber)
			}
			if p.RedirectURL != "https://energiaydivinidad.com/pago/resultado?order="+createdNumber {
				t.Fatalf("unexpected redirect url %q", p.RedirectURL)
			}
			if p.WebhookURL != "https://energiaydivinidad.com/v1/webhooks/wompi" {
				t.Fatalf("unexpected webhook url %q", p.WebhookURL)
			}
			if p.Description != "Pedido "+createdNumber {
				t.Fatalf("unexpected description %q", p.Description)
			}
			return entities.CreatePaymentResult{Success: true, RedirectURL: "https://checkout.wompi.co/p/?x=1", Status: entities.TransactionStatusPending}, nil
		})
		orders.EXPECT().UpdatePayment(gomock.Any(), gomock.Any(), entities.PaymentStatusPending, gomock.Any()).
			DoAndReturn(func(_ context.Context, n string, s entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["wompiStatus"] != "PENDING" {
					t.Fatalf("unexpected metadata %+v", md)
				}
				if _, ok := md["wompiTransactionId"]; ok {
					t.Fatalf("no transaction id expected yet: %+v", md)
				}
				return entities.Order{OrderNumber: n, PaymentStatus: s, Metadata: md, Gateway: entities.GatewayWompi}, nil
			})

		res, err := uc.CreateCheckout(context.Background(), validCheckoutInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RedirectURL != "https://checkout.wompi.co/p/?x=1" || res.Order.OrderNumber != createdNumber {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("nequi push moves order to processing", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayNequi).AnyTimes()
		gw.EXPECT().IsConfigured().Return(true)
		selector.EXPECT().GetGatewayForPayment(entities.PaymentMethodNequi, entities.CurrencyCOP).Return(gw)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.CreatePaymentResult{Success: true, TransactionID: "nequi-tx-9", Status: entities.TransactionStatusPending, ProcessedImmediately: true}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), gomock.Any(), entities.PaymentStatusProcessing, gomock.Any()).
			DoAndReturn(func(_ context.Context, n string, s entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["nequiTransactionId"] != "nequi-tx-9" {
					t.Fatalf("unexpected metadata %+v", md)
				}
				return entities.Order{}, nil
			})

		in := validCheckoutInput()
		in.PaymentMethod = entities.PaymentMethodNequi
		in.Customer.Phone = "3001234567"
		res, err := uc.CreateCheckout(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.ProcessedImmediately || res.Order.PaymentStatus != entities.PaymentStatusProcessing || res.TransactionID != "nequi-tx-9" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("explicit gateway override", func(t *testing.T) {
		uc, selector, _, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayEpayco).AnyTimes()
		gw.EXPECT().IsConfigured().Return(false)
		selector.EXPECT().Get(entities.GatewayEpayco).Return(gw, true)

		in := validCheckoutInput()
		in.Gateway = entities.GatewayEpayco
		_, err := uc.CreateCheckout(context.Background(), in)
		if !errors.Is(err, ErrGatewayUnavailable) || !strings.Contains(err.Error(), "ePayco") {
			t.Fatalf("expected ErrGatewayUnavailable for ePayco, got %v", err)
		}
	})

	t.Run("unknown override", func(t *testing.T) {
		uc, selector, _, _ := newCheckout(t)
		selector.EXPECT().Get(entities.GatewayName("stripe")).Return(nil, false)

		in := validCheckoutInput()
		in.Gateway = "stripe"
		if _, err := uc.CreateCheckout(context.Background(), in); !errors.Is(err, ErrUnknownGateway) {
			t.Fatalf("expected ErrUnknownGateway, got %v", err)
		}
	})

	t.Run("provider failure leaves order pending", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayPayPal).AnyTimes()
		gw.EXPECT().IsConfigured().Return(true)
		selector.EXPECT().GetGatewayForPayment(gomock.Any(), gomock.Any()).Return(gw)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.CreatePaymentResult{Success: false, Error: "INSTRUMENT_DECLINED", ErrorCode: "INSTRUMENT_DECLINED"}, nil)

		in := validCheckoutInput()
		in.Currency = entities.CurrencyUSD
		res, err := uc.CreateCheckout(context.Background(), in)
		if !errors.Is(err, ErrPaymentCreationFailed) || !strings.Contains(err.Error(), "INSTRUMENT_DECLINED") {
			t.Fatalf("expected ErrPaymentCreationFailed, got %v", err)
		}
		if res.Order.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("order should stay pending, got %s", res.Order.PaymentStatus)
		}
	})

	t.Run("adapter validation error", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayWompi).AnyTimes()
		gw.EXPECT().IsConfigured().Return(true)
		selector.EXPECT().GetGatewayForPayment(gomock.Any(), gomock.Any()).Return(gw)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		adapterErr := errors.New("unsupported currency: Wompi does not support EUR")
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.CreatePaymentResult{}, adapterErr)

		in := validCheckoutInput()
		in.Currency = entities.CurrencyEUR
		_, err := uc.CreateCheckout(context.Background(), in)
		if !errors.Is(err, ErrPaymentRejected) || !errors.Is(err, adapterErr) {
			t.Fatalf("expected wrapped adapter error, got %v", err)
		}
	})
}

func completedPayPalOrder() entities.Order {
	return entities.Order{
		OrderNumber:   "ED-2",
		PaymentStatus: entities.PaymentStatusCompleted,
		Amount:        decimal.RequireFromString("120.00"),
		Currency:      entities.CurrencyUSD,
		Gateway:       entities.GatewayPayPal,
		Metadata: map[string]interface{}{
			"paypalTransactionId": "PP-ORDER-1",
			"paypalCaptureId":     "PP-CAPTURE-1",
		},
	}
}

func TestCheckoutUseCase_GetOrder(t *testing.T) {
	uc, _, orders, _ := newCheckout(t)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-404").Return(entities.Order{}, nil)

	if _, err := uc.GetOrder(context.Background(), "ED-404"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := uc.GetOrder(context.Background(), " "); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestCheckoutUseCase_ReconcileOrder(t *testing.T) {
	t.Run("applies polled status", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayNequi).AnyTimes()
		order := entities.Order{OrderNumber: "ED-3", PaymentStatus: entities.PaymentStatusProcessing, Gateway: entities.GatewayNequi,
			Metadata: map[string]interface{}{"nequiTransactionId": "nq-1"}}
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-3").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayNequi).Return(gw, true)
		gw.EXPECT().GetTransactionStatus(gomock.Any(), "nq-1").Return(entities.TransactionStatusResult{TransactionID: "nq-1", Status: entities.TransactionStatusDeclined}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-3", entities.PaymentStatusFailed, gomock.Any()).Return(entities.Order{}, nil)

		got, err := uc.ReconcileOrder(context.Background(), "ED-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusFailed || got.Metadata["nequiStatus"] != "DECLINED" {
			t.Fatalf("unexpected order %+v", got)
		}
	})

	t.Run("no transaction recorded", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-4").Return(entities.Order{OrderNumber: "ED-4", Gateway: entities.GatewayWompi}, nil)
		selector.EXPECT().Get(entities.GatewayWompi).Return(gw, true)

		if _, err := uc.ReconcileOrder(context.Background(), "ED-4"); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_ConfirmReturn(t *testing.T) {
	t.Run("captures paypal order", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockICapturableGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayPayPal).AnyTimes()
		order := entities.Order{OrderNumber: "ED-5", PaymentStatus: entities.PaymentStatusPending, Gateway: entities.GatewayPayPal,
			Metadata: map[string]interface{}{"paypalTransactionId": "PP-ORDER-5"}}
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-5").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)
		gw.EXPECT().CaptureOrder(gomock.Any(), "PP-ORDER-5").Return(entities.TransactionStatusResult{
			TransactionID: "PP-ORDER-5", Status: entities.TransactionStatusApproved, CaptureID: "PP-CAPTURE-5",
		}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-5", entities.PaymentStatusCompleted, gomock.Any()).
			DoAndReturn(func(_ context.Context, n string, s entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["paypalCaptureId"] != "PP-CAPTURE-5" {
					t.Fatalf("capture id not stored: %+v", md)
				}
				return entities.Order{OrderNumber: n, PaymentStatus: s, Metadata: md}, nil
			})

		got, err := uc.ConfirmReturn(context.Background(), "ED-5", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected status %s", got.PaymentStatus)
		}
	})

	t.Run("completed order is returned as is", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockICapturableGateway(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(completedPayPalOrder(), nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)

		got, err := uc.ConfirmReturn(context.Background(), "ED-2", "")
		if err != nil || got.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
	})
}

func TestCheckoutUseCase_ConfirmReturn_ReturnedTransaction(t *testing.T) {
	wompiOrder := func(number string) entities.Order {
		return entities.Order{OrderNumber: number, PaymentStatus: entities.PaymentStatusPending, Gateway: entities.GatewayWompi,
			Metadata: map[string]interface{}{"source": "web"}}
	}

	t.Run("wompi id from return url is verified and stored", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayWompi).AnyTimes()
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-6").Return(wompiOrder("ED-6"), nil)
		selector.EXPECT().Get(entities.GatewayWompi).Return(gw, true)
		gw.EXPECT().GetTransactionStatus(gomock.Any(), "15113-1760455800-71720").Return(entities.TransactionStatusResult{
			TransactionID: "15113-1760455800-71720", Status: entities.TransactionStatusApproved, NativeStatus: "APPROVED", Reference: "ED-6",
		}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-6", entities.PaymentStatusCompleted, gomock.Any()).
			DoAndReturn(func(_ context.Context, n string, s entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["wompiTransactionId"] != "15113-1760455800-71720" || md["source"] != "web" {
					t.Fatalf("transaction not recorded: %+v", md)
				}
				return entities.Order{OrderNumber: n, PaymentStatus: s, Gateway: entities.GatewayWompi, Metadata: md}, nil
			})

		got, err := uc.ConfirmReturn(context.Background(), "ED-6", " 15113-1760455800-71720 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusCompleted || got.TransactionID() != "15113-1760455800-71720" {
			t.Fatalf("unexpected order %+v", got)
		}
	})

	t.Run("epayco ref_payco of another order is rejected", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayEpayco).AnyTimes()
		order := wompiOrder("ED-7")
		order.Gateway = entities.GatewayEpayco
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-7").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayEpayco).Return(gw, true)
		gw.EXPECT().GetTransactionStatus(gomock.Any(), "98765").Return(entities.TransactionStatusResult{
			TransactionID: "98765", Status: entities.TransactionStatusApproved, Reference: "ED-OTHER",
		}, nil)

		if _, err := uc.ConfirmReturn(context.Background(), "ED-7", "98765"); !errors.Is(err, ErrTransactionMismatch) {
			t.Fatalf("expected ErrTransactionMismatch, got %v", err)
		}
	})

	t.Run("stored transaction wins over returned id", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayWompi).AnyTimes()
		order := wompiOrder("ED-8")
		order.Metadata["wompiTransactionId"] = "stored-tx"
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-8").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayWompi).Return(gw, true)
		gw.EXPECT().GetTransactionStatus(gomock.Any(), "stored-tx").Return(entities.TransactionStatusResult{
			TransactionID: "stored-tx", Status: entities.TransactionStatusPending, Reference: "ED-8",
		}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-8", entities.PaymentStatusPending, gomock.Any()).Return(entities.Order{}, nil)

		if _, err := uc.ConfirmReturn(context.Background(), "ED-8", "forged-tx"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no stored or returned transaction", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-9").Return(wompiOrder("ED-9"), nil)
		selector.EXPECT().Get(entities.GatewayWompi).Return(gw, true)

		if _, err := uc.ConfirmReturn(context.Background(), "ED-9", ""); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_RefundOrder(t *testing.T) {
	t.Run("full refund", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIRefundableGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayPayPal).AnyTimes()
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(completedPayPalOrder(), nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)
		gw.EXPECT().Refund(gomock.Any(), entities.RefundParams{TransactionID: "PP-CAPTURE-1", Currency: entities.CurrencyUSD, Reason: "cliente cancela"}).
			Return(entities.RefundResult{Success: true, RefundID: "RF-1", NativeStatus: "COMPLETED"}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-2", entities.PaymentStatusRefunded, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["paypalRefundId"] != "RF-1" || md["paypalRefundStatus"] != "COMPLETED" {
					t.Fatalf("unexpected metadata %+v", md)
				}
				return entities.Order{}, nil
			})

		got, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{Reason: "cliente cancela"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusRefunded {
			t.Fatalf("unexpected status %s", got.PaymentStatus)
		}
	})

	t.Run("partial refund keeps completed", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIRefundableGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayPayPal).AnyTimes()
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(completedPayPalOrder(), nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)
		gw.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.RefundResult{Success: true, RefundID: "RF-2", NativeStatus: "PENDING"}, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "ED-2", entities.PaymentStatusCompleted, gomock.Any()).Return(entities.Order{}, nil)

		got, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{Amount: decimal.NewFromInt(20)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected status %s", got.PaymentStatus)
		}
	})

	t.Run("gateway without refunds", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayWompi).AnyTimes()
		order := completedPayPalOrder()
		order.Gateway = entities.GatewayWompi
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayWompi).Return(gw, true)

		_, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{})
		if !errors.Is(err, ErrRefundNotSupported) || err.Error() != "Refunds not supported by Wompi" {
			t.Fatalf("expected refunds not supported by Wompi, got %v", err)
		}
	})

	t.Run("order not completed", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIRefundableGateway(ctrl)
		order := completedPayPalOrder()
		order.PaymentStatus = entities.PaymentStatusPending
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(order, nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)

		if _, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{}); !errors.Is(err, ErrOrderNotRefundable) {
			t.Fatalf("expected ErrOrderNotRefundable, got %v", err)
		}
	})

	t.Run("amount above order total", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIRefundableGateway(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(completedPayPalOrder(), nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)

		if _, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{Amount: decimal.NewFromInt(500)}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("provider rejects refund", func(t *testing.T) {
		uc, selector, orders, ctrl := newCheckout(t)
		gw := mock_interfaces.NewMockIRefundableGateway(ctrl)
		gw.EXPECT().Name().Return(entities.GatewayPayPal).AnyTimes()
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-2").Return(completedPayPalOrder(), nil)
		selector.EXPECT().Get(entities.GatewayPayPal).Return(gw, true)
		gw.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.RefundResult{Success: false, Error: "CAPTURE_FULLY_REFUNDED"}, nil)

		if _, err := uc.RefundOrder(context.Background(), "ED-2", RefundInput{}); !errors.Is(err, ErrRefundFailed) {
			t.Fatalf("expected ErrRefundFailed, got %v", err)
		}
	})
}
