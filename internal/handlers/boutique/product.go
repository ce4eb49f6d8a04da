package boutique

import (
	"log"
	"net/http"
	"time"

	"academie_back_end/internal/cache"
	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// GET /api/boutique/products
func ListProducts(c *gin.Context) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	category := c.Query("category")

	iter := session.Query(
		`SELECT product_id, name, description, price, stock, sku, category,
			image_urls, has_variants, is_active, created_at, updated_at
		 FROM products`,
	).WithContext(c.Request.Context()).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.SKU, &p.Category,
		&p.ImageURLs, &p.HasVariants, &p.IsActive, &p.CreatedAt, &p.UpdatedAt) {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /api/boutique/products/:id
func GetProduct(c *gin.Context) {
	product, err := cache.GetProductFromCache(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	response := gin.H{"product": product}

	// Les variantes accompagnent toujours la fiche produit
	if product.HasVariants {
		variants, err := listVariants(c, product.ID)
		if err == nil {
			response["variants"] = variants
		}
	}

	c.JSON(http.StatusOK, response)
}

// GET /api/boutique/products/search?q=...
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// POST /api/admin/boutique/products
func CreateProduct(c *gin.Context) {
	var input struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		Price       int64    `json:"price" binding:"required"`
		Stock       int      `json:"stock"`
		SKU         string   `json:"sku"`
		Category    string   `json:"category" binding:"required"`
		ImageURLs   []string `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix invalide"})
		return
	}

	session, err := database.GetBoutiqueSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		SKU:         input.SKU,
		Category:    input.Category,
		ImageURLs:   input.ImageURLs,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Query(
		`INSERT INTO products (product_id, name, description, price, stock, sku, category,
			image_urls, has_variants, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.SKU, product.Category, product.ImageURLs, false, true, now, now,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	services.IndexProduct(product)

	log.Printf("✅ Produit créé: %s (%d FCFA)", product.Name, product.Price)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// PUT /api/admin/boutique/products/:id
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Price       *int64    `json:"price"`
		Stock       *int      `json:"stock"`
		Category    *string   `json:"category"`
		ImageURLs   *[]string `json:"image_urls"`
		IsActive    *bool     `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Relire l'existant puis réécrire la ligne complète
	product, err := cache.GetProductFromCache(c.Request.Context(), productID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.ImageURLs != nil {
		product.ImageURLs = *input.ImageURLs
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedAt = time.Now()

	session, err := database.GetBoutiqueSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		`UPDATE products SET name = ?, description = ?, price = ?, stock = ?, category = ?,
			image_urls = ?, is_active = ?, updated_at = ?
		 WHERE product_id = ?`,
		product.Name, product.Description, product.Price, product.Stock, product.Category,
		product.ImageURLs, product.IsActive, product.UpdatedAt, product.ID,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	cache.InvalidateProductCache(productID.String())
	services.IndexProduct(*product)

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DELETE /api/admin/boutique/products/:id
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetBoutiqueSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		`DELETE FROM products WHERE product_id = ?`, gocql.UUID(productID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	// La partition de variantes part avec le produit
	if err := session.Query(
		`DELETE FROM product_variants WHERE product_id = ?`, gocql.UUID(productID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		log.Printf("⚠️ Variantes du produit %s non supprimées: %v", productID, err)
	}

	cache.InvalidateProductCache(productID.String())
	services.RemoveFromIndex("products", productID.String())

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// listVariants charge les variantes d'un produit
func listVariants(c *gin.Context, productID gocql.UUID) ([]models.ProductVariant, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(
		`SELECT variant_id, product_id, name, sku, price, stock
		 FROM product_variants WHERE product_id = ?`, productID,
	).WithContext(c.Request.Context()).Iter()

	variants := []models.ProductVariant{}
	var v models.ProductVariant
	for iter.Scan(&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock) {
		variants = append(variants, v)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return variants, nil
}
