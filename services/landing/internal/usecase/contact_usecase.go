package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"abq-api/pkg/logger"
	"abq-api/pkg/mailer"
	"abq-api/pkg/metrics"
	"abq-api/services/landing/internal/entity"

	"github.com/go-playground/validator/v10"
)

const sendTimeout = 15 * time.Second

type ContactUseCase interface {
	Send(ctx context.Context, msg entity.ContactMessage) error
}

type contactUseCase struct {
	sender    mailer.Sender
	recipient string
	validate  *validator.Validate
	metrics   *metrics.Manager
	logger    *logger.Logger
}

func NewContactUseCase(sender mailer.Sender, recipient string, metrics *metrics.Manager, logger *logger.Logger) ContactUseCase {
	return &contactUseCase{
		sender:    sender,
		recipient: recipient,
		validate:  newValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *contactUseCase) Send(ctx context.Context, msg entity.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := validateStruct(uc.validate, msg); err != nil {
		uc.metrics.ContactResult("invalid")
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	err := uc.sender.Send(ctx, mailer.Message{
		To:       []string{uc.recipient},
		Subject:  fmt.Sprintf("Novo contato pelo site: %s", msg.Name),
		BodyText: contactBody(msg),
	})
	if err != nil {
		uc.metrics.ContactResult("failed")
		uc.logger.Error("Failed to deliver contact message from %s: %v", msg.Name, err)
		return errors.Join(entity.ErrDeliveryFailed, err)
	}

	uc.metrics.ContactResult("sent")
	return nil
}

func contactBody(msg entity.ContactMessage) string {
	phone := msg.Phone
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf("Nome: %s\nTelefone: %s\n\nMensagem:\n%s\n", msg.Name, phone, msg.Message)
}
