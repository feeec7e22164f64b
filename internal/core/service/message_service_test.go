package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clientdesk/portal/internal/core/domain"
)

type stubMessageRepo struct {
	messages []domain.Message
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	clone := *msg
	clone.ID = "msg_1"
	r.messages = append(r.messages, clone)
	return &clone, nil
}

func (r *stubMessageRepo) FindAll(_ context.Context) ([]domain.Message, error) {
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func TestMessageService_Send_Success(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, zerolog.Nop())

	msg, err := svc.Send(context.Background(), "client_1", "bob", "hello there")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if msg.ClientID != "client_1" || msg.Username != "bob" {
		t.Fatalf("identity not carried over: %+v", msg)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestMessageService_Send_EmptyContent(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, zerolog.Nop())

	if _, err := svc.Send(context.Background(), "client_1", "bob", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestMessageService_Send_ContentTooLong(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, zerolog.Nop())

	content := strings.Repeat("x", domain.MaxMessageLength+1)
	if _, err := svc.Send(context.Background(), "client_1", "bob", content); !errors.Is(err, domain.ErrMessageTooLong) {
		t.Fatalf("expected ErrMessageTooLong, got %v", err)
	}
}

func TestMessageService_Send_MaxLengthAccepted(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, zerolog.Nop())

	content := strings.Repeat("x", domain.MaxMessageLength)
	if _, err := svc.Send(context.Background(), "client_1", "bob", content); err != nil {
		t.Fatalf("send failed at exact limit: %v", err)
	}
}

func TestMessageService_Send_MultibyteCountedInCharacters(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, zerolog.Nop())

	// 400 characters but 1200 bytes; the limit counts characters
	content := strings.Repeat("日", 400)
	if _, err := svc.Send(context.Background(), "client_1", "bob", content); err != nil {
		t.Fatalf("multibyte message under the limit rejected: %v", err)
	}

	content = strings.Repeat("日", domain.MaxMessageLength+1)
	if _, err := svc.Send(context.Background(), "client_1", "bob", content); !errors.Is(err, domain.ErrMessageTooLong) {
		t.Fatalf("expected ErrMessageTooLong, got %v", err)
	}
}

func TestMessageService_List(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, zerolog.Nop())

	if _, err := svc.Send(context.Background(), "client_1", "bob", "first"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "first" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}
