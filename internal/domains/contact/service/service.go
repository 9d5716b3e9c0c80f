package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"toolindex-backend/internal/domains/contact/model"
	"toolindex-backend/internal/domains/contact/repository"
	"toolindex-backend/internal/infrastructure/email"
	"toolindex-backend/internal/shared"
	"toolindex-backend/pkg/logger"
)

type ContactService interface {
	// Submit stores the message and queues an admin notification
	Submit(ctx context.Context, req model.SubmitContactRequest) (*model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	asynqClient *asynq.Client
}

func NewContactService(contactRepo repository.ContactRepository, asynqClient *asynq.Client) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		asynqClient: asynqClient,
	}
}

func (s *contactService) Submit(ctx context.Context, req model.SubmitContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Notification delivery rides the queue. The message itself is
	// already stored, so enqueue failure only delays the email.
	payload, err := json.Marshal(email.ContactNotificationData{
		MessageID: msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
	})
	if err == nil {
		task := asynq.NewTask(shared.TypeContactNotifyAdmin, payload)
		_, err = s.asynqClient.EnqueueContext(ctx, task, asynq.Queue("default"), asynq.MaxRetry(5))
	}
	if err != nil {
		logger.Warn("failed to enqueue contact notification", err, map[string]interface{}{
			"message_id": msg.ID.String(),
		})
	}

	return msg, nil
}
