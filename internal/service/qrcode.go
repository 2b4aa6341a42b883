package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

// DefaultQRGenerator encodes the public menu URL of a restaurant as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/restaurants/%s", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
