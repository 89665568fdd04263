package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"abq-api/pkg/config"
	"abq-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	delay time.Duration
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	d.sent = append(d.sent, m...)
	return d.err
}

func newTestSender(d dialer) *smtpSender {
	return &smtpSender{from: "no-reply@example.com", dialer: d, log: logger.NewNop()}
}

func TestNewSMTPSender_RequiresHost(t *testing.T) {
	_, err := NewSMTPSender(&config.Config{SMTPPort: 587, SMTPSender: "a@b.c"}, logger.NewNop())
	assert.Error(t, err)

	s, err := NewSMTPSender(&config.Config{SMTPHost: "smtp", SMTPPort: 465, SMTPSender: "a@b.c", SMTPEncryption: "ssl"}, logger.NewNop())
	require.NoError(t, err)
	assert.True(t, s.(*smtpSender).dialer.(*gomail.Dialer).SSL)
}

func TestSend_Success(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)

	err := s.Send(context.Background(), Message{
		To:       []string{"sales@example.com"},
		Subject:  "Contato",
		BodyText: "hello",
	})

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"sales@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"no-reply@example.com"}, d.sent[0].GetHeader("From"))
}

func TestSend_DialerError(t *testing.T) {
	s := newTestSender(&fakeDialer{err: errors.New("connection refused")})

	err := s.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "x", BodyText: "y"})
	assert.ErrorContains(t, err, "failed to send email")
}

func TestSend_ContextCancelled(t *testing.T) {
	s := newTestSender(&fakeDialer{delay: 200 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Send(ctx, Message{To: []string{"a@b.c"}, Subject: "x", BodyText: "y"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSend_Validation(t *testing.T) {
	s := newTestSender(&fakeDialer{})

	assert.Error(t, s.Send(context.Background(), Message{Subject: "x", BodyText: "y"}))
	assert.Error(t, s.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "x"}))
}
