package models

// Address est utilisée à la fois pour la livraison et la facturation
type Address struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// SavedAddress est une adresse enregistrée dans le carnet d'un utilisateur
type SavedAddress struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Label     string  `json:"label,omitempty"`
	Address   Address `json:"address"`
	IsDefault bool    `json:"is_default"`
}
