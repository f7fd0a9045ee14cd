package qrcode

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"cakehaven/config"
	"cakehaven/internal/domain/service"
)

const (
	orderPayloadPrefix = "cakehaven:order:"
	defaultSize        = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New builds the QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

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

// GenerateOrderQR renders the pickup code shown to the shop.
func (s *qrcodeService) GenerateOrderQR(orderNo string) ([]byte, error) {
	if strings.TrimSpace(orderNo) == "" {
		return nil, errors.New("order number is required")
	}

	qrCode, err := qrcode.New(orderPayloadPrefix+orderNo, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR returns the order number encoded by GenerateOrderQR.
func (s *qrcodeService) ParseOrderQR(content string) (string, error) {
	orderNo, ok := strings.CutPrefix(strings.TrimSpace(content), orderPayloadPrefix)
	if !ok {
		return "", errors.Errorf("invalid QR code payload: %q", content)
	}
	if orderNo == "" {
		return "", errors.New("QR code carries no order number")
	}

	return orderNo, nil
}
