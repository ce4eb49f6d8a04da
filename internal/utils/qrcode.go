package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// GeneratePickupQR encode le numéro de commande en QR base64, prêt pour <img src="...">.
// Le QR est scanné à la boutique de l'académie pour le retrait sur place.
func GeneratePickupQR(orderNumber string) (string, error) {
	png, err := qrcode.Encode(orderNumber, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
