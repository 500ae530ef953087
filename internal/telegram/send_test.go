package telegram

import (
	"errors"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitryFreeLance/waterbot/internal/content"
	"github.com/DmitryFreeLance/waterbot/internal/storage"
)

func TestLongCaptionOverflowsIntoFollowUps(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.dispatch(7, content.ActionReasons46)

	photos := fs.photos()
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	p := photos[0]
	if p.Caption == "" {
		t.Fatal("photo lost its caption")
	}
	if n := utf8.RuneCountInString(p.Caption); n > maxCaptionLen {
		t.Errorf("caption has %d chars, over the %d limit", n, maxCaptionLen)
	}
	if p.ReplyMarkup != nil {
		t.Error("menu button must defer to the caption overflow, not sit on the photo")
	}

	msgs := fs.messages()
	if len(msgs) == 0 {
		t.Fatal("caption overflow produced no follow-up messages")
	}
	for i, m := range msgs {
		if n := utf8.RuneCountInString(m.Text); n == 0 || n > maxMessageLen {
			t.Errorf("follow-up %d has %d chars", i, n)
		}
		_, hasKB := m.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		if last := i == len(msgs)-1; hasKB != last {
			t.Errorf("follow-up %d: keyboard=%v, must sit on the last chunk only", i, hasKB)
		}
	}
}

func TestShortCaptionKeepsButtonOnMedia(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.dispatch(7, content.ActionPromo)

	photos := fs.photos()
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	if _, ok := photos[0].ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); !ok {
		t.Error("fitting caption must keep the menu button on the media itself")
	}
	if len(fs.messages()) != 0 {
		t.Errorf("no follow-ups expected, got %d", len(fs.messages()))
	}
}

func TestVideoFileIDCachedAfterUpload(t *testing.T) {
	b, fs, st, _ := newTestBot(t)

	step := content.Step{Kind: content.StepVideo, File: "5.MP4", Body: "видео"}
	b.runStep(7, step)

	id, err := st.MediaFileID("video:5.MP4")
	if err != nil {
		t.Fatalf("file_id not cached after upload: %v", err)
	}
	if id != "video-id" {
		t.Errorf("cached %q, want video-id", id)
	}

	b.runStep(7, step)
	videos := 0
	for _, c := range fs.sent {
		if v, ok := c.(tgbotapi.VideoConfig); ok {
			videos++
			if videos == 2 {
				if want := tgbotapi.FileID("video-id"); v.File != want {
					t.Errorf("second send re-uploaded the file: %v", v.File)
				}
			}
		}
	}
	if videos != 2 {
		t.Fatalf("got %d video sends, want 2", videos)
	}
}

func TestFailedUploadIsNeverCached(t *testing.T) {
	b, fs, st, _ := newTestBot(t)
	fs.sendErr = errors.New("telegram: 429")

	b.runStep(7, content.Step{Kind: content.StepPhoto, File: "2.jpg", Body: "факты"})

	if _, err := st.MediaFileID("photo:2.jpg"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("failed upload left a cache entry: err=%v", err)
	}
}

func TestScriptContinuesPastFailedStep(t *testing.T) {
	b, fs, _, _ := newTestBot(t)
	fs.sendErr = errors.New("telegram: 500")

	script, ok := content.ScriptFor(content.ActionWaterFacts)
	if !ok {
		t.Fatal("water facts script missing")
	}
	b.runScript(7, script)

	if len(fs.sent) != len(script) {
		t.Fatalf("attempted %d sends for %d steps; a failed step must not abort the script", len(fs.sent), len(script))
	}
}

func TestEmptyCaptionSendsBareMedia(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.runStep(7, content.Step{Kind: content.StepPhoto, File: "14.jpg"})

	photos := fs.photos()
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	if photos[0].Caption != "" || photos[0].ParseMode != "" {
		t.Errorf("bare media must carry no caption: %+v", photos[0])
	}
	if len(fs.messages()) != 0 {
		t.Error("bare media produced follow-up messages")
	}
}
