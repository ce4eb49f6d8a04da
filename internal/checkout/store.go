package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ScyllaOrderStore implémente OrderCreator sur le keyspace boutique.
// La clé d'idempotence est posée avec INSERT ... IF NOT EXISTS : une
// soumission dupliquée retrouve la commande déjà créée au lieu d'en
// créer une deuxième.
type ScyllaOrderStore struct{}

func (ScyllaOrderStore) CreateOrder(ctx context.Context, req OrderRequest) (*models.Order, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, fmt.Errorf("connexion base de données: %w", err)
	}

	orderID := gocql.TimeUUID()

	// Réserve la clé d'idempotence. Si elle existe déjà, la commande
	// correspondante a déjà été créée par un appel précédent.
	// MapScanCAS car un CAS refusé renvoie toutes les colonnes de la
	// ligne existante, pas seulement order_id.
	prev := make(map[string]interface{})
	applied, err := session.Query(
		`INSERT INTO order_idempotency (idempotency_key, order_id) VALUES (?, ?) IF NOT EXISTS`,
		req.IdempotencyKey, orderID,
	).WithContext(ctx).MapScanCAS(prev)
	if err != nil {
		return nil, fmt.Errorf("réservation clé idempotence: %w", err)
	}
	if !applied {
		existingID, ok := existingOrderID(prev)
		if !ok {
			if err := session.Query(
				`SELECT order_id FROM order_idempotency WHERE idempotency_key = ?`,
				req.IdempotencyKey,
			).WithContext(ctx).Scan(&existingID); err != nil {
				return nil, fmt.Errorf("clé idempotence déjà posée, commande introuvable: %w", err)
			}
		}
		return getOrderByID(ctx, session, existingID)
	}

	order := &models.Order{
		ID:             orderID,
		OrderNumber:    generateOrderNumber(),
		UserID:         req.UserID,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		GuestFirstName: req.GuestFirstName,
		GuestLastName:  req.GuestLastName,
		Subtotal:       req.Subtotal,
		ShippingCost:   req.ShippingCost,
		Total:          req.Total,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		ShippingAddr:   req.ShippingAddr,
		BillingAddr:    req.BillingAddr,
		Items:          req.Items,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now(),
	}

	shippingJSON, _ := json.Marshal(order.ShippingAddr)
	billingJSON, _ := json.Marshal(order.BillingAddr)
	itemsJSON, _ := json.Marshal(order.Items)

	err = session.Query(
		`INSERT INTO orders (order_id, order_number, user_id, guest_email, guest_phone,
			guest_first_name, guest_last_name, subtotal, shipping_cost, total,
			shipping_method, payment_method, shipping_address, billing_address,
			items, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OrderNumber, order.UserID, order.GuestEmail, order.GuestPhone,
		order.GuestFirstName, order.GuestLastName, order.Subtotal, order.ShippingCost, order.Total,
		order.ShippingMethod, order.PaymentMethod, string(shippingJSON), string(billingJSON),
		string(itemsJSON), order.Status, order.CreatedAt,
	).WithContext(ctx).Exec()
	if err != nil {
		return nil, fmt.Errorf("insertion commande: %w", err)
	}

	// Tables de lecture : par numéro et par utilisateur
	if err := session.Query(
		`INSERT INTO orders_by_number (order_number, order_id) VALUES (?, ?)`,
		order.OrderNumber, order.ID,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("insertion index commande: %w", err)
	}

	if order.UserID != "" {
		if err := session.Query(
			`INSERT INTO orders_by_user (user_id, created_at, order_id) VALUES (?, ?, ?)`,
			order.UserID, order.CreatedAt, order.ID,
		).WithContext(ctx).Exec(); err != nil {
			return nil, fmt.Errorf("insertion index utilisateur: %w", err)
		}
	}

	return order, nil
}

// existingOrderID extrait order_id de la ligne renvoyée par un CAS refusé
func existingOrderID(prev map[string]interface{}) (gocql.UUID, bool) {
	id, ok := prev["order_id"].(gocql.UUID)
	return id, ok
}

// GetOrderByID récupère une commande par son id
func GetOrderByID(ctx context.Context, orderID gocql.UUID) (*models.Order, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}
	return getOrderByID(ctx, session, orderID)
}

func getOrderByID(ctx context.Context, session *gocql.Session, orderID gocql.UUID) (*models.Order, error) {
	var (
		order                                models.Order
		shippingJSON, billingJSON, itemsJSON string
	)

	err := session.Query(
		`SELECT order_id, order_number, user_id, guest_email, guest_phone,
			guest_first_name, guest_last_name, subtotal, shipping_cost, total,
			shipping_method, payment_method, shipping_address, billing_address,
			items, status, created_at
		 FROM orders WHERE order_id = ?`, orderID,
	).WithContext(ctx).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.GuestEmail, &order.GuestPhone,
		&order.GuestFirstName, &order.GuestLastName, &order.Subtotal, &order.ShippingCost, &order.Total,
		&order.ShippingMethod, &order.PaymentMethod, &shippingJSON, &billingJSON,
		&itemsJSON, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("commande introuvable: %w", err)
	}

	_ = json.Unmarshal([]byte(shippingJSON), &order.ShippingAddr)
	_ = json.Unmarshal([]byte(billingJSON), &order.BillingAddr)
	_ = json.Unmarshal([]byte(itemsJSON), &order.Items)

	return &order, nil
}

// GetOrderByNumber récupère une commande par son numéro public
func GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}

	var orderID gocql.UUID
	err = session.Query(
		`SELECT order_id FROM orders_by_number WHERE order_number = ?`, orderNumber,
	).WithContext(ctx).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("commande introuvable: %w", err)
	}

	return getOrderByID(ctx, session, orderID)
}

// ListOrdersByUser retourne les commandes d'un utilisateur, les plus récentes d'abord
func ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(
		`SELECT order_id FROM orders_by_user WHERE user_id = ? ORDER BY created_at DESC`, userID,
	).WithContext(ctx).Iter()

	orders := []models.Order{}
	var orderID gocql.UUID
	for iter.Scan(&orderID) {
		order, err := getOrderByID(ctx, session, orderID)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus change le statut d'une commande (admin ou webhook paiement)
func UpdateOrderStatus(ctx context.Context, orderID gocql.UUID, status string) error {
	session, err := database.GetBoutiqueSession()
	if err != nil {
		return err
	}
	return session.Query(
		`UPDATE orders SET status = ? WHERE order_id = ?`, status, orderID,
	).WithContext(ctx).Exec()
}

// generateOrderNumber produit un numéro de commande lisible : ACA-20260115-7F3A2B
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ACA-%s-%s", time.Now().Format("20060102"), suffix)
}
