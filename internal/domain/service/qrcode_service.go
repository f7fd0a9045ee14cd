package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code for picking up the order.
	GenerateOrderQR(orderNo string) ([]byte, error)

	// ParseOrderQR extracts the order number from scanned QR content.
	ParseOrderQR(content string) (string, error)
}
