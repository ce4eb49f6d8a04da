package cache

import (
	"context"
	"encoding/json"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

const (
	ProductCacheTTL = 10 * time.Minute
	UserCacheTTL    = 5 * time.Minute
)

// GetProductFromCache récupère un produit depuis Redis ou ScyllaDB
func GetProductFromCache(ctx context.Context, productID string) (*models.Product, error) {
	key := "product:" + productID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var product models.Product
		if json.Unmarshal([]byte(data), &product) == nil {
			return &product, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = session.Query(`SELECT product_id, name, description, price, stock, sku, category,
			image_urls, has_variants, is_active, created_at, updated_at
		FROM products WHERE product_id = ?`, gocql.UUID(pid)).WithContext(ctx).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock,
		&product.SKU, &product.Category, &product.ImageURLs, &product.HasVariants,
		&product.IsActive, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(product)
	database.Redis.Set(ctx, key, jsonData, ProductCacheTTL)

	return &product, nil
}

// InvalidateProductCache invalide le cache d'un produit
func InvalidateProductCache(productID string) {
	database.Redis.Del(context.Background(), "product:"+productID)
}

// GetUserFromCache récupère un utilisateur depuis Redis ou ScyllaDB
func GetUserFromCache(ctx context.Context, userID string) (*models.User, error) {
	key := "user:" + userID

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var user models.User
	var id gocql.UUID
	err = session.Query(`SELECT user_id, email, first_name, last_name, phone, role, provider
		FROM users WHERE user_id = ?`, gocql.UUID(uid)).WithContext(ctx).Scan(
		&id, &user.Email, &user.FirstName, &user.LastName, &user.Phone, &user.Role, &user.Provider)
	if err != nil {
		return nil, err
	}
	user.ID = id.String()

	jsonData, _ := json.Marshal(user)
	database.Redis.Set(ctx, key, jsonData, UserCacheTTL)

	return &user, nil
}

// InvalidateUserCache invalide le cache d'un utilisateur
func InvalidateUserCache(userID string) {
	database.Redis.Del(context.Background(), "user:"+userID)
}
