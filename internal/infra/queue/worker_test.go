package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubNotifier struct {
	sent []string
	err  error
}

func (s *stubNotifier) SendClientWelcome(to, name, company string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestWorkerProcessSendsWelcome(t *testing.T) {
	notifier := &stubNotifier{}
	w := NewWorker(nil, notifier)

	err := w.process(ClientCreatedPayload{
		ClientID: "client-1",
		Name:     "Jane Doe",
		Company:  "Acme Corp",
		Email:    "jane@acme.test",
		Origin:   "direct",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"jane@acme.test"}, notifier.sent)
}

func TestWorkerProcessSkipsEmptyEmail(t *testing.T) {
	notifier := &stubNotifier{}
	w := NewWorker(nil, notifier)

	err := w.process(ClientCreatedPayload{ClientID: "client-1"})

	assert.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestWorkerProcessNilNotifier(t *testing.T) {
	w := NewWorker(nil, nil)

	err := w.process(ClientCreatedPayload{Email: "jane@acme.test"})

	assert.NoError(t, err)
}

func TestWorkerProcessPropagatesSendError(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("smtp down")}
	w := NewWorker(nil, notifier)

	err := w.process(ClientCreatedPayload{Email: "jane@acme.test", Name: "Jane"})

	assert.Error(t, err)
}
