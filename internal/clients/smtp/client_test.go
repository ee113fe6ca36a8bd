package smtp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/careercrafter/backend/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	addr string
	from string
	to   []string
	msg  []byte
	err  error
}

func (m *mockSender) Send(addr string, from string, to []string, msg []byte) error {
	m.addr = addr
	m.from = from
	m.to = to
	m.msg = msg
	return m.err
}

func newTestClient(sender Sender) *Client {
	client := NewClient(config.MailConfig{
		Host: "mail.test",
		Port: 587,
		From: "no-reply@careercrafter.test",
	})
	client.SetSender(sender)
	return client
}

func Test_Send_ShouldBuildMessageWithHeaders(t *testing.T) {

	sender := &mockSender{}
	client := newTestClient(sender)

	err := client.Send(context.Background(), "someone@mail.test", "Hello", "Body text")
	require.NoError(t, err)

	assert.Equal(t, "mail.test:587", sender.addr)
	assert.Equal(t, "no-reply@careercrafter.test", sender.from)
	assert.Equal(t, []string{"someone@mail.test"}, sender.to)

	msg := string(sender.msg)
	assert.Contains(t, msg, "To: someone@mail.test\r\n")
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\nBody text"))
}

func Test_Send_WhenTransportFails_ShouldReturnError(t *testing.T) {

	sender := &mockSender{err: errors.New("connection refused")}
	client := newTestClient(sender)

	err := client.Send(context.Background(), "someone@mail.test", "Hello", "Body")
	assert.ErrorContains(t, err, "someone@mail.test")
	assert.ErrorContains(t, err, "connection refused")
}

func Test_Send_WhenContextCanceled_ShouldReturnContextError(t *testing.T) {

	client := newTestClient(&slowSender{delay: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := client.Send(ctx, "someone@mail.test", "Hello", "Body")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type slowSender struct {
	delay time.Duration
}

func (s *slowSender) Send(string, string, []string, []byte) error {
	time.Sleep(s.delay)
	return nil
}
