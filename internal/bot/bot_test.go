package bot

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 42},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(text)},
			},
		},
	}
}

func TestHandleUpdate_StartCommand(t *testing.T) {
	sender := &fakeSender{}
	pipeline, _ := newTestPipeline(t, sender, &fakeEngine{})
	b := &Bot{pipeline: pipeline}

	b.handleUpdate(context.Background(), commandUpdate("/start"))

	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}
	if sender.messages[0].Text != welcomeText {
		t.Errorf("reply = %q, expected the welcome text", sender.messages[0].Text)
	}
}

func TestHandleUpdate_UnknownCommandIgnored(t *testing.T) {
	sender := &fakeSender{}
	pipeline, _ := newTestPipeline(t, sender, &fakeEngine{})
	b := &Bot{pipeline: pipeline}

	b.handleUpdate(context.Background(), commandUpdate("/help"))

	// A dispatched job would run on its own goroutine; give it a moment to
	// prove nothing was dispatched.
	time.Sleep(50 * time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.messages) != 0 {
		t.Errorf("expected no reply to an unknown command, got %v", sender.messages)
	}
	if len(sender.edits) != 0 {
		t.Errorf("expected no status edits for an unknown command, got %v", sender.edits)
	}
}

func TestHandleUpdate_IgnoresNonText(t *testing.T) {
	sender := &fakeSender{}
	pipeline, _ := newTestPipeline(t, sender, &fakeEngine{})
	b := &Bot{pipeline: pipeline}

	b.handleUpdate(context.Background(), tgbotapi.Update{})
	b.handleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}},
	})

	time.Sleep(50 * time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.messages) != 0 {
		t.Errorf("expected no reply to a non-text update, got %v", sender.messages)
	}
}
