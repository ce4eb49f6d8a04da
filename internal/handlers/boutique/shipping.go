package boutique

import (
	"net/http"

	"academie_back_end/internal/checkout"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetShippingOptions retourne les méthodes de livraison et leurs coûts.
// Les tarifs sont une politique boutique, pas une configuration.
func GetShippingOptions(c *gin.Context) {
	options := []models.ShippingOption{
		{
			ID:            checkout.ShippingStandard,
			Name:          "Livraison Standard",
			Description:   "Livraison en 5-7 jours ouvrés, gratuite",
			Price:         checkout.ShippingCostStandard,
			EstimatedDays: 7,
		},
		{
			ID:            checkout.ShippingExpress,
			Name:          "Livraison Express",
			Description:   "Livraison en 2-3 jours ouvrés",
			Price:         checkout.ShippingCostExpress,
			EstimatedDays: 3,
		},
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}
