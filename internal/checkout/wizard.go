package checkout

import (
	"time"

	"academie_back_end/internal/models"

	"github.com/google/uuid"
)

// Wizard est le contrôleur du parcours de commande : il tient l'étape
// courante, le brouillon, et la clé d'idempotence générée une seule fois
// par session (un appel réseau dupliqué ne peut pas créer deux commandes).
type Wizard struct {
	SessionID      string    `json:"session_id"`
	CurrentStep    int       `json:"current_step"`
	Draft          Draft     `json:"draft"`
	IdempotencyKey string    `json:"idempotency_key"`
	IsSubmitting   bool      `json:"is_submitting"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewWizard démarre une session de commande à l'étape 1
func NewWizard(user *models.User) *Wizard {
	return &Wizard{
		SessionID:      uuid.NewString(),
		CurrentStep:    1,
		Draft:          NewDraft(user),
		IdempotencyKey: uuid.NewString(),
		CreatedAt:      time.Now(),
	}
}

// Apply fait passer une action de brouillon par le réducteur
func (w *Wizard) Apply(a Action) {
	w.Draft = w.Draft.Apply(a)
}

// Next avance d'une étape si les champs requis de l'étape courante sont
// remplis. À l'étape 5 c'est un no-op : la soumission est l'action terminale.
func (w *Wizard) Next() error {
	if err := ValidateStep(w.CurrentStep, w.Draft); err != nil {
		return err
	}
	if w.CurrentStep < StepCount {
		w.CurrentStep++
	}
	return nil
}

// Prev recule d'une étape, no-op à l'étape 1. Aucune validation :
// on peut toujours revenir corriger.
func (w *Wizard) Prev() {
	if w.CurrentStep > 1 {
		w.CurrentStep--
	}
}
