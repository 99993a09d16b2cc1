package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelmsj/commandSystem/internal/infra"

	"github.com/rs/zerolog/log"
)

// EstoqueAlertWorker emails the back office whenever a product's on-hand
// quantity falls to or below its reorder threshold.
type EstoqueAlertWorker struct {
	mailer     *infra.Mailer
	alertEmail string
}

func NewEstoqueAlertWorker(mailer *infra.Mailer, alertEmail string) *EstoqueAlertWorker {
	return &EstoqueAlertWorker{mailer: mailer, alertEmail: alertEmail}
}

func (w *EstoqueAlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertaEstoquePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("estoque_alert_worker: invalid payload")
		return nil // malformed payloads never succeed on retry
	}
	if w.alertEmail == "" {
		log.Warn().Str("produto", payload.Nome).Msg("estoque_alert_worker: no alert email configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Estoque baixo: %s", payload.Nome)
	body := fmt.Sprintf(
		"O produto %s está com estoque baixo.\n\nEstoque atual: %d\nEstoque mínimo: %d\n",
		payload.Nome, payload.EstoqueAtual, payload.EstoqueMinimo,
	)
	if err := w.mailer.Send(w.alertEmail, subject, body); err != nil {
		log.Error().Err(err).Str("produto", payload.Nome).Msg("estoque_alert_worker: failed to send alert")
		return err
	}
	log.Info().Str("produto", payload.Nome).Int("estoque", payload.EstoqueAtual).Msg("estoque_alert_worker: alert sent")
	return nil
}
