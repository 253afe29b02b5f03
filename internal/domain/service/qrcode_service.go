package service

import "github.com/shopspring/decimal"

// QRCodeService renders payment-request QR codes so a wallet can prefill a
// notified transfer for an item or an order.
type QRCodeService interface {
	// GeneratePaymentQR returns a PNG QR encoding the recipient component,
	// the transfer reference and the current price.
	GeneratePaymentQR(recipient string, reference string, amount decimal.Decimal) ([]byte, error)
}
