package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The fee checkout uses it to charge the outstanding balance of an inscription fee.
//
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
