package notify

import (
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nba-postgame-bot/internal/domain"
)

type stubSender struct {
	sent    []tgbotapi.Chattable
	sendErr error
}

func (s *stubSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.sendErr
}

func TestNewTelegramDisabledWithoutToken(t *testing.T) {
	n, err := NewTelegram("", 123, nil)
	if err != nil {
		t.Fatalf("expected no error for empty token, got %v", err)
	}
	if n != nil {
		t.Fatal("expected nil notifier when token is empty")
	}
	// A nil notifier must be safe to use.
	n.NotifyRunReport(domain.RunReport{Games: 1})
}

func TestNotifyRunReportSendsSummary(t *testing.T) {
	sender := &stubSender{}
	n := &TelegramNotifier{sender: sender, chatID: -100}

	report := domain.NewRunReport("run-1", "20240102", []domain.Outcome{
		domain.Succeeded("g1", "th1", "l", "d"),
		domain.Skipped("g2", domain.SkipNoThread),
	})
	n.NotifyRunReport(report)

	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", sender.sent[0])
	}
	if msg.ChatID != -100 {
		t.Fatalf("expected chat id -100, got %d", msg.ChatID)
	}
	for _, want := range []string{"run-1", "20240102", "2 games", "1 posted", "1 skipped"} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("summary %q missing %q", msg.Text, want)
		}
	}
}

func TestNotifyRunReportEmptySlate(t *testing.T) {
	sender := &stubSender{}
	n := &TelegramNotifier{sender: sender, chatID: 1}

	n.NotifyRunReport(domain.NewRunReport("run-2", "20240103", nil))

	msg := sender.sent[0].(tgbotapi.MessageConfig)
	if !strings.Contains(msg.Text, "no games") {
		t.Fatalf("expected empty-slate wording, got %q", msg.Text)
	}
}

func TestNotifyRunReportSwallowsSendError(t *testing.T) {
	sender := &stubSender{sendErr: errors.New("flood wait")}
	n := &TelegramNotifier{sender: sender, chatID: 1}

	// Must not panic or propagate.
	n.NotifyRunReport(domain.RunReport{Games: 1})
}
