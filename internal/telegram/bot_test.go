package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitryFreeLance/waterbot/internal/content"
	"github.com/DmitryFreeLance/waterbot/internal/media"
	"github.com/DmitryFreeLance/waterbot/internal/storage"
	"github.com/DmitryFreeLance/waterbot/internal/throttle"
)

type fakeSender struct {
	sent        []tgbotapi.Chattable
	requests    []tgbotapi.Chattable
	photoFileID string
	videoFileID string
	sendErr     error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	switch c.(type) {
	case tgbotapi.PhotoConfig:
		if f.photoFileID != "" {
			return tgbotapi.Message{Photo: []tgbotapi.PhotoSize{{FileID: "thumb"}, {FileID: f.photoFileID}}}, nil
		}
	case tgbotapi.VideoConfig:
		if f.videoFileID != "" {
			return tgbotapi.Message{Video: &tgbotapi.Video{FileID: f.videoFileID}}, nil
		}
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) photos() []tgbotapi.PhotoConfig {
	var out []tgbotapi.PhotoConfig
	for _, c := range f.sent {
		if p, ok := c.(tgbotapi.PhotoConfig); ok {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeSender) messages() []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestBot(t *testing.T) (*Bot, *fakeSender, *storage.Store, *fakeClock) {
	t.Helper()
	st, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:): %v", err)
	}
	t.Cleanup(func() { st.Close() })

	fs := &fakeSender{photoFileID: "photo-id", videoFileID: "video-id"}
	clk := &fakeClock{t: time.UnixMilli(1_700_000_000_000)}
	b := &Bot{
		s:        fs,
		store:    st,
		gate:     throttle.NewGate(st, 2*time.Second),
		cache:    media.NewCache(st),
		mediaDir: "media",
		now:      clk.Now,
	}
	return b, fs, st, clk
}

func startMsg(chatID int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: "/start",
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: chatID, UserName: "user"},
	}
}

func pressed(chatID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		Data:    data,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
	}
}

func TestFirstStartCreatesUserAndSendsOneWelcome(t *testing.T) {
	b, fs, st, clk := newTestBot(t)

	b.handleMessage(startMsg(42))

	if len(fs.sent) != 1 {
		t.Fatalf("sent %d messages, want exactly 1", len(fs.sent))
	}
	photos := fs.photos()
	if len(photos) != 1 {
		t.Fatalf("want the welcome photo, got %T", fs.sent[0])
	}
	p := photos[0]
	if p.Caption != content.StartText {
		t.Errorf("welcome caption mismatch")
	}
	if want := tgbotapi.FilePath("media/1.jpg"); p.File != want {
		t.Errorf("welcome uploaded from %v, want %v", p.File, want)
	}
	kb, ok := p.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok || len(kb.InlineKeyboard) != 9 {
		t.Errorf("welcome must carry the full nine-row menu, got %+v", p.ReplyMarkup)
	}

	u, err := st.User(42)
	if err != nil {
		t.Fatalf("user row not created: %v", err)
	}
	if !u.FirstStartAt.Equal(clk.t) || !u.LastStartAt.Equal(clk.t) {
		t.Errorf("first/last seen = %v/%v, want both %v", u.FirstStartAt, u.LastStartAt, clk.t)
	}
}

func TestSecondStartWithinWindowIsNoOp(t *testing.T) {
	b, fs, _, clk := newTestBot(t)

	b.handleMessage(startMsg(42))
	clk.t = clk.t.Add(500 * time.Millisecond)
	b.handleMessage(startMsg(42))

	if len(fs.sent) != 1 {
		t.Fatalf("double start re-sent content: %d messages", len(fs.sent))
	}

	clk.t = clk.t.Add(5 * time.Second)
	b.handleMessage(startMsg(42))
	if len(fs.photos()) != 2 {
		t.Fatalf("later repeat start must resend the welcome, got %d photos", len(fs.photos()))
	}
}

func TestWelcomePhotoUploadedOnceThenSentByFileID(t *testing.T) {
	b, fs, _, clk := newTestBot(t)

	b.handleMessage(startMsg(42))
	clk.t = clk.t.Add(time.Minute)
	b.handleMessage(startMsg(42))

	photos := fs.photos()
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	if want := tgbotapi.FileID("photo-id"); photos[1].File != want {
		t.Errorf("second welcome re-uploaded file: %v", photos[1].File)
	}
}

func TestOtherTextShowsMenuPrompt(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.handleMessage(&tgbotapi.Message{Text: "привет", Chat: &tgbotapi.Chat{ID: 42}})

	msgs := fs.messages()
	if len(msgs) != 1 || msgs[0].Text != content.MenuPromptText {
		t.Fatalf("want menu prompt, got %+v", fs.sent)
	}
	if _, ok := msgs[0].ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); !ok {
		t.Error("menu prompt carries no keyboard")
	}
}

func TestCallbackAlwaysAcknowledged(t *testing.T) {
	b, fs, _, clk := newTestBot(t)

	b.handleCallback(pressed(7, content.DataPromo))
	clk.t = clk.t.Add(500 * time.Millisecond)
	b.handleCallback(pressed(7, content.DataPromo))

	if len(fs.requests) != 2 {
		t.Fatalf("every callback must be answered, got %d acks for 2 presses", len(fs.requests))
	}
	first, ok := fs.requests[0].(tgbotapi.CallbackConfig)
	if !ok || first.Text != "" {
		t.Errorf("admitted press must get a plain ack, got %+v", fs.requests[0])
	}
	second, ok := fs.requests[1].(tgbotapi.CallbackConfig)
	if !ok || second.Text != content.ThrottleAnswerText {
		t.Errorf("throttled press must get the slow-down ack, got %+v", fs.requests[1])
	}
}

func TestThrottledCallbackDispatchesNothing(t *testing.T) {
	b, fs, _, clk := newTestBot(t)

	b.handleCallback(pressed(7, content.DataPromo))
	sentAfterFirst := len(fs.sent)
	if sentAfterFirst == 0 {
		t.Fatal("admitted press delivered no content")
	}

	clk.t = clk.t.Add(500 * time.Millisecond)
	b.handleCallback(pressed(7, content.DataPromo))
	if len(fs.sent) != sentAfterFirst {
		t.Fatalf("throttled press delivered content: %d -> %d messages", sentAfterFirst, len(fs.sent))
	}

	// Past the window the same press works again.
	clk.t = clk.t.Add(2 * time.Second)
	b.handleCallback(pressed(7, content.DataPromo))
	if len(fs.sent) == sentAfterFirst {
		t.Fatal("press after the window was not dispatched")
	}
}

func TestUnknownCallbackShowsMenu(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.handleCallback(pressed(7, "MENU_99_NOPE"))

	msgs := fs.messages()
	if len(msgs) != 1 || msgs[0].Text != content.UnknownCommandText {
		t.Fatalf("want unknown-command prompt, got %+v", fs.sent)
	}
}

func TestBackToMenuResendsWelcome(t *testing.T) {
	b, fs, _, _ := newTestBot(t)

	b.handleCallback(pressed(7, content.DataBackToMenu))

	photos := fs.photos()
	if len(photos) != 1 || photos[0].Caption != content.StartText {
		t.Fatalf("BACK_TO_MENU must resend the welcome, got %+v", fs.sent)
	}
}
