package pairing

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Rendered QR size in pixels. Phones scan reliably from 200 up.
const qrSize = 200

// BuildURL returns the pairing URL a phone lands on after scanning the code.
func BuildURL(token, host string, port int) string {
	return fmt.Sprintf("http://%s:%d/remote?token=%s", host, port, token)
}

// RenderQR encodes url as a PNG QR code and returns it as a base64 data URL,
// so the caller can embed it directly without writing a file.
func RenderQR(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("pairing: encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
