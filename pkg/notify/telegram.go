package notify

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/openkita/finance/pkg/syncer"
)

// Telegram pings the operators' chat after a sync pass. Reconciliation never
// depends on it; failures are logged and dropped.
type Telegram struct {
	client   *req.Client
	apiToken string
	chatID   int64
}

func NewTelegram(
	apiToken string,
	chatID int64,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
		chatID:   chatID,
	}
}

func (t *Telegram) SyncCompleted(ctx context.Context, result *syncer.Result) {
	text := result.Summary()
	if result.Warnings > 0 {
		text += fmt.Sprintf("\n%d new warning(s) need review", result.Warnings)
	}

	if err := t.sendMessage(ctx, text); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send sync notification")
	}
}

func (t *Telegram) sendMessage(
	ctx context.Context,
	text string,
) error {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id": t.chatID,
			"text":    text,
		}).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/sendMessage", t.apiToken))

	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}
