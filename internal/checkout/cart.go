package checkout

import (
	"context"
	"encoding/json"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// CartTTL — durée de vie d'un panier dans Redis
const CartTTL = 30 * 24 * time.Hour

// RedisCart implémente CartStore au-dessus de Redis : le panier est une
// liste de CartItem sérialisée en JSON sous "cart:<owner>".
type RedisCart struct{}

func cartKey(owner string) string {
	return "cart:" + owner
}

func (RedisCart) Items(ctx context.Context, owner string) ([]models.CartItem, error) {
	data, err := database.Redis.Get(ctx, cartKey(owner)).Result()
	if err == redis.Nil || data == "" {
		// Clé absente = panier vide, pas une erreur
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c RedisCart) TotalAmount(ctx context.Context, owner string) (int64, error) {
	items, err := c.Items(ctx, owner)
	if err != nil {
		return 0, err
	}
	return models.CartTotal(items), nil
}

func (RedisCart) Save(ctx context.Context, owner string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := database.Redis.Set(ctx, cartKey(owner), data, CartTTL).Err(); err != nil {
		return err
	}
	// Notifie la synchro temps réel du panier
	database.Redis.Publish(ctx, cartKey(owner), "updated")
	return nil
}

func (RedisCart) Clear(ctx context.Context, owner string) error {
	if err := database.Redis.Del(ctx, cartKey(owner)).Err(); err != nil {
		return err
	}
	database.Redis.Publish(ctx, cartKey(owner), "cleared")
	return nil
}
