package request

import "encoding/json"

// CheckoutRequest wraps the Mercado Pago payment payload for a fee checkout.
//
// `mp_payload` is passed through to the provider; the amount and reference are
// always taken from the stored fee. A bare provider payload is accepted as well.
type CheckoutRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
