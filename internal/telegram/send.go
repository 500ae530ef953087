package telegram

import (
	"log"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitryFreeLance/waterbot/internal/content"
	"github.com/DmitryFreeLance/waterbot/internal/media"
	"github.com/DmitryFreeLance/waterbot/internal/textsplit"
)

// Telegram hard limits; the message one keeps a margin under the real 4096.
const (
	maxMessageLen = 4000
	maxCaptionLen = 1024
)

// runScript delivers a section strictly in step order. A failed step is
// logged and abandoned; the remaining steps still run.
func (b *Bot) runScript(chatID int64, script content.Script) {
	for _, step := range script {
		b.runStep(chatID, step)
	}
}

func (b *Bot) runStep(chatID int64, step content.Step) {
	var kb *tgbotapi.InlineKeyboardMarkup
	if step.Home {
		home := content.BackToMenuKeyboard()
		kb = &home
	}
	switch step.Kind {
	case content.StepText:
		b.sendText(chatID, step.Body, step.Plain, kb)
	case content.StepPhoto:
		b.sendPhoto(chatID, step.File, step.Body, kb)
	case content.StepVideo:
		b.sendVideo(chatID, step.File, step.Body, kb)
	}
}

// sendWelcome delivers the single welcome message: photo, start text and
// the main menu. Used for the first /start, repeat starts and BACK_TO_MENU.
func (b *Bot) sendWelcome(chatID int64) {
	menu := content.MainMenuKeyboard()
	step := content.WelcomeStep()
	b.sendPhoto(chatID, step.File, step.Body, &menu)
}

func (b *Bot) sendMenuPrompt(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = content.MainMenuKeyboard()
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send menu prompt to chat %d: %v", chatID, err)
	}
}

// sendText splits long text into chunks; the keyboard goes only on the
// last chunk.
func (b *Bot) sendText(chatID int64, text string, plain bool, kb *tgbotapi.InlineKeyboardMarkup) {
	chunks := textsplit.Split(text, maxMessageLen)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if !plain {
			msg.ParseMode = tgbotapi.ModeHTML
		}
		if kb != nil && i == len(chunks)-1 {
			msg.ReplyMarkup = *kb
		}
		if _, err := b.s.Send(msg); err != nil {
			log.Printf("failed to send text to chat %d: %v", chatID, err)
		}
	}
}

// sendPhoto sends a photo by cached file_id when possible, uploading from
// the media directory otherwise. A caption over the limit continues as
// follow-up messages, and the keyboard moves to the last of them.
func (b *Bot) sendPhoto(chatID int64, file, caption string, kb *tgbotapi.InlineKeyboardMarkup) {
	first, rest := textsplit.SplitCaption(caption, maxCaptionLen)

	mediaKB := kb
	if rest != "" {
		mediaKB = nil
	}

	key := media.PhotoKey(file)
	fileID, cached := b.cache.Resolve(key)

	var photo tgbotapi.PhotoConfig
	if cached {
		photo = tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	} else {
		photo = tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(filepath.Join(b.mediaDir, file)))
	}
	if first != "" {
		photo.Caption = first
		photo.ParseMode = tgbotapi.ModeHTML
	}
	if mediaKB != nil {
		photo.ReplyMarkup = *mediaKB
	}

	sent, err := b.s.Send(photo)
	if err != nil {
		log.Printf("failed to send photo %s to chat %d: %v", file, chatID, err)
	} else if !cached && len(sent.Photo) > 0 {
		// Telegram returns several sizes; the last one is the largest.
		b.cache.Store(key, sent.Photo[len(sent.Photo)-1].FileID)
	}

	if rest != "" {
		b.sendText(chatID, rest, false, kb)
	}
}

// sendVideo mirrors sendPhoto for video files.
func (b *Bot) sendVideo(chatID int64, file, caption string, kb *tgbotapi.InlineKeyboardMarkup) {
	first, rest := textsplit.SplitCaption(caption, maxCaptionLen)

	mediaKB := kb
	if rest != "" {
		mediaKB = nil
	}

	key := media.VideoKey(file)
	fileID, cached := b.cache.Resolve(key)

	var video tgbotapi.VideoConfig
	if cached {
		video = tgbotapi.NewVideo(chatID, tgbotapi.FileID(fileID))
	} else {
		video = tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filepath.Join(b.mediaDir, file)))
	}
	if first != "" {
		video.Caption = first
		video.ParseMode = tgbotapi.ModeHTML
	}
	if mediaKB != nil {
		video.ReplyMarkup = *mediaKB
	}

	sent, err := b.s.Send(video)
	if err != nil {
		log.Printf("failed to send video %s to chat %d: %v", file, chatID, err)
	} else if !cached && sent.Video != nil {
		b.cache.Store(key, sent.Video.FileID)
	}

	if rest != "" {
		b.sendText(chatID, rest, false, kb)
	}
}
