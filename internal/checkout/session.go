package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"academie_back_end/internal/database"
)

// SessionTTL — une session de commande abandonnée expire au bout de 2h
const SessionTTL = 2 * time.Hour

// ErrSessionNotFound — session inconnue ou expirée
var ErrSessionNotFound = errors.New("session de commande introuvable ou expirée")

func sessionKey(sessionID string) string {
	return "checkout:" + sessionID
}

// SaveSession persiste l'état du wizard dans Redis
func SaveSession(ctx context.Context, w *Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, sessionKey(w.SessionID), data, SessionTTL).Err()
}

// LoadSession recharge une session de commande depuis Redis
func LoadSession(ctx context.Context, sessionID string) (*Wizard, error) {
	data, err := database.Redis.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil || data == "" {
		return nil, ErrSessionNotFound
	}

	var w Wizard
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteSession supprime la session après soumission réussie
func DeleteSession(ctx context.Context, sessionID string) error {
	return database.Redis.Del(ctx, sessionKey(sessionID)).Err()
}
