package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateConnectQR renders the provider authorization URL as a QR code
	// so the link can be scanned from a companion device
	GenerateConnectQR(authURL string) ([]byte, error)
}
