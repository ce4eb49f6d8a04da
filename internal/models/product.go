package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"` // FCFA
	Stock       int        `json:"stock"`
	SKU         string     `json:"sku"`
	Category    string     `json:"category"` // "maillots", "equipements", "accessoires"
	ImageURLs   []string   `json:"image_urls"`
	HasVariants bool       `json:"has_variants"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProductVariant — taille/couleur d'un produit (ex: maillot domicile, taille M)
type ProductVariant struct {
	ID        gocql.UUID `json:"id"`
	ProductID gocql.UUID `json:"product_id"`
	Name      string     `json:"name"`
	SKU       string     `json:"sku"`
	Price     int64      `json:"price"`
	Stock     int        `json:"stock"`
}
