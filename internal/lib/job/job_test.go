package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type welcomeSenderStub struct {
	to, name string
	calls    int
	err      error
}

func (s *welcomeSenderStub) SendWelcomeEmail(to, name string) error {
	s.calls++
	s.to, s.name = to, name
	return s.err
}

func newTestJobService(sender WelcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, emailClient: sender}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("ann@x.com", "Ann")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var payload WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, WelcomeEmailPayload{To: "ann@x.com", Name: "Ann"}, payload)
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	sender := &welcomeSenderStub{}
	j := newTestJobService(sender)
	task, err := NewWelcomeEmailTask("ann@x.com", "Ann")
	require.NoError(t, err)

	require.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "ann@x.com", sender.to)
	assert.Equal(t, "Ann", sender.name)
}

func TestHandleWelcomeEmailTask_SendFailureIsRetried(t *testing.T) {
	sendErr := errors.New("resend unavailable")
	j := newTestJobService(&welcomeSenderStub{err: sendErr})
	task, err := NewWelcomeEmailTask("ann@x.com", "Ann")
	require.NoError(t, err)

	assert.ErrorIs(t, j.handleWelcomeEmailTask(context.Background(), task), sendErr)
}

func TestHandleWelcomeEmailTask_BadPayload(t *testing.T) {
	sender := &welcomeSenderStub{}
	j := newTestJobService(sender)

	err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))

	assert.ErrorContains(t, err, "failed to unmarshal welcome email payload")
	assert.Zero(t, sender.calls)
}

func TestHandleWelcomeEmailTask_NoClient(t *testing.T) {
	j := newTestJobService(nil)
	task, err := NewWelcomeEmailTask("ann@x.com", "Ann")
	require.NoError(t, err)

	assert.ErrorIs(t, j.handleWelcomeEmailTask(context.Background(), task), errNoEmailClient)
}
