package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

type messageService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

// NewMessageService returns a MessageService backed by the given repository.
func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) ports.MessageService {
	return &messageService{repo: repo, log: log}
}

func (s *messageService) Send(ctx context.Context, clientID, username, content string) (*domain.Message, error) {
	if content == "" {
		return nil, domain.ErrMissingFields
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	msg := &domain.Message{
		ClientID:  clientID,
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", clientID).Str("message_id", created.ID).Msg("message sent")
	return created, nil
}

func (s *messageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.FindAll(ctx)
}
