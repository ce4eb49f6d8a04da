package models

// CartItem représente une ligne du panier, stockée en JSON dans Redis
// sous la clé "cart:<owner>" (user_id ou session invité).
// Les montants sont en FCFA (pas de centimes).
type CartItem struct {
	ProductID   string `json:"product_id"`
	VariantID   string `json:"variant_id,omitempty"`
	Name        string `json:"name"`
	VariantName string `json:"variant_name,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CartTotal calcule le sous-total du panier
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}
