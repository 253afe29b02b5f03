// Package qrcode renders payment-request QR codes.
package qrcode

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"datadex/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PaymentRequest is the QR payload a wallet scans to prefill a notified
// transfer.
type PaymentRequest struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR generates a PNG QR encoding the recipient component,
// the transfer reference and the current price.
func (s *qrcodeService) GeneratePaymentQR(recipient string, reference string, amount decimal.Decimal) ([]byte, error) {
	data := PaymentRequest{
		Type:      "payment",
		Recipient: recipient,
		Reference: reference,
		Amount:    amount.String(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
