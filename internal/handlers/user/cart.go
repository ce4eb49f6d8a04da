package user

import (
	"net/http"

	"academie_back_end/internal/cache"
	"academie_back_end/internal/checkout"
	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

var cart checkout.RedisCart

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	items, err := cart.Items(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        items,
		"total_amount": models.CartTotal(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	var input struct {
		ProductID string `json:"product_id"`
		VariantID string `json:"variant_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	ctx := c.Request.Context()

	product, err := cache.GetProductFromCache(ctx, input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if !product.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit indisponible"})
		return
	}

	// 🔹 Création de la ligne, prix et nom figés au moment de l'ajout
	item := models.CartItem{
		ProductID: input.ProductID,
		Name:      product.Name,
		SKU:       product.SKU,
		Quantity:  input.Quantity,
		UnitPrice: product.Price,
	}
	if len(product.ImageURLs) > 0 {
		item.ImageURL = product.ImageURLs[0]
	}

	// Variante sélectionnée : prix et SKU de la variante font foi
	if input.VariantID != "" {
		variant, err := getVariant(c, input.ProductID, input.VariantID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variante introuvable"})
			return
		}
		item.VariantID = input.VariantID
		item.VariantName = variant.Name
		item.SKU = variant.SKU
		item.UnitPrice = variant.Price
	}

	items, err := cart.Items(ctx, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	// 🔁 Met à jour la ligne existante ou ajoute la nouvelle
	found := false
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].VariantID == item.VariantID {
			items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}

	if err := cart.Save(ctx, owner, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Produit ajouté au panier",
		"items":        items,
		"total_amount": models.CartTotal(items),
	})
}

//
// 🔁 PUT /api/cart/quantity
//
func UpdateCartQuantity(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	var input struct {
		ProductID string `json:"product_id"`
		VariantID string `json:"variant_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	items, err := cart.Items(ctx, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	updated := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == input.ProductID && item.VariantID == input.VariantID {
			if input.Quantity == 0 {
				continue // quantité 0 = suppression de la ligne
			}
			item.Quantity = input.Quantity
		}
		updated = append(updated, item)
	}

	if err := cart.Save(ctx, owner, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        updated,
		"total_amount": models.CartTotal(updated),
	})
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	productID := c.Param("productId")
	variantID := c.Query("variant_id")

	ctx := c.Request.Context()
	items, err := cart.Items(ctx, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	newItems := []models.CartItem{}
	for _, item := range items {
		if item.ProductID == productID && item.VariantID == variantID {
			continue
		}
		newItems = append(newItems, item)
	}

	if err := cart.Save(ctx, owner, newItems); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Produit supprimé du panier",
		"items":        newItems,
		"total_amount": models.CartTotal(newItems),
	})
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	if err := cart.Clear(c.Request.Context(), owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// getVariant charge une variante produit depuis ScyllaDB
func getVariant(c *gin.Context, productID, variantID string) (*models.ProductVariant, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, err
	}
	vid, err := uuid.Parse(variantID)
	if err != nil {
		return nil, err
	}

	var variant models.ProductVariant
	err = session.Query(
		`SELECT variant_id, product_id, name, sku, price, stock
		 FROM product_variants WHERE product_id = ? AND variant_id = ?`,
		gocql.UUID(pid), gocql.UUID(vid),
	).WithContext(c.Request.Context()).Scan(
		&variant.ID, &variant.ProductID, &variant.Name, &variant.SKU,
		&variant.Price, &variant.Stock,
	)
	if err != nil {
		return nil, err
	}
	return &variant, nil
}
