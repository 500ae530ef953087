package telegram

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitryFreeLance/waterbot/internal/content"
	"github.com/DmitryFreeLance/waterbot/internal/media"
	"github.com/DmitryFreeLance/waterbot/internal/storage"
	"github.com/DmitryFreeLance/waterbot/internal/throttle"
)

// A second /start inside this window is a duplicated client-side
// submission and is dropped.
const doubleStartWindow = 2 * time.Second

type userStore interface {
	TouchStart(chatID int64, username string, now time.Time) error
	LastStartAt(chatID int64) (time.Time, error)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	store    userStore
	gate     *throttle.Gate
	cache    *media.Cache
	mediaDir string
	now      func() time.Time
}

func New(token, mediaDir string, store *storage.Store, gate *throttle.Gate, cache *media.Cache) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		s:        botAPISender{api: api},
		store:    store,
		gate:     gate,
		cache:    cache,
		mediaDir: mediaDir,
		now:      time.Now,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleMessage(update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}
	chatID := msg.Chat.ID

	if strings.TrimSpace(msg.Text) != "/start" {
		b.sendMenuPrompt(chatID, content.MenuPromptText)
		return
	}

	now := b.now()
	prev, err := b.store.LastStartAt(chatID)
	firstTime := err != nil
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		// Storage fault: deliver rather than silently drop the start.
		log.Printf("failed to read last start for chat %d: %v", chatID, err)
	}

	var username string
	if msg.From != nil {
		username = msg.From.UserName
	}
	if err := b.store.TouchStart(chatID, username, now); err != nil {
		log.Printf("failed to record start for chat %d: %v", chatID, err)
	}

	if !firstTime && now.Sub(prev) < doubleStartWindow {
		return
	}
	b.sendWelcome(chatID)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		b.answerCallback(cb.ID, "")
		return
	}
	chatID := cb.Message.Chat.ID

	// The ack must reach Telegram in every outcome, otherwise the client
	// shows a perpetual loading indicator on the pressed button.
	if !b.gate.Admit(chatID, cb.Data, b.now()) {
		b.answerCallback(cb.ID, content.ThrottleAnswerText)
		return
	}
	b.answerCallback(cb.ID, "")

	b.dispatch(chatID, content.ActionFromData(cb.Data))
}

func (b *Bot) dispatch(chatID int64, action content.Action) {
	switch action {
	case content.ActionBackToMenu:
		b.sendWelcome(chatID)
		return
	case content.ActionUnknown:
		b.sendMenuPrompt(chatID, content.UnknownCommandText)
		return
	}

	script, ok := content.ScriptFor(action)
	if !ok {
		b.sendMenuPrompt(chatID, content.UnknownCommandText)
		return
	}
	b.runScript(chatID, script)
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.s.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}
