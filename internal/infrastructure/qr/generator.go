package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// Generator renders check-in QR codes. The image is a pure function of the
// mobile number: it encodes the registrant's check-in URL and nothing else.
type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// CheckInURL builds the URL a scanned badge resolves to.
func (g *Generator) CheckInURL(mobile string) string {
	return fmt.Sprintf("%s/api/v1/employee/%s/check-in", g.baseURL, mobile)
}

// CheckInPNG renders the check-in URL as a PNG with medium error correction.
func (g *Generator) CheckInPNG(mobile string) ([]byte, error) {
	png, err := qrcode.Encode(g.CheckInURL(mobile), qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// CheckInBase64 renders the PNG and base64-encodes it for JSON transport.
func (g *Generator) CheckInBase64(mobile string) (string, error) {
	png, err := g.CheckInPNG(mobile)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
