package notify_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/notify"
)

func TestMain(m *testing.M) {
	logger.Init("debug")
	m.Run()
}

type countingSender struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *countingSender) Send(to, template string, data map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, to)
	return s.err
}

func (s *countingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// blockingSender signals when a delivery starts and holds it until released.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSender) Send(to, template string, data map[string]string) error {
	s.started <- struct{}{}
	<-s.release
	return nil
}

func TestServiceDeliversQueuedJobs(t *testing.T) {
	sender := &countingSender{}
	svc := notify.NewService(sender, 2, 8)

	svc.Notify("a@example.com", "tmpl", map[string]string{"k": "v"})
	svc.Notify("b@example.com", "tmpl", nil)
	svc.Close()

	assert.Equal(t, 2, sender.count())
}

func TestServiceSurvivesSenderFailures(t *testing.T) {
	sender := &countingSender{err: errors.New("smtp down")}
	svc := notify.NewService(sender, 1, 8)

	svc.Notify("a@example.com", "tmpl", nil)
	svc.Notify("b@example.com", "tmpl", nil)
	svc.Close()

	// Both deliveries are attempted even though each one fails.
	assert.Equal(t, 2, sender.count())
}

func TestServiceNeverBlocksTheCaller(t *testing.T) {
	sender := &blockingSender{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := notify.NewService(sender, 1, 1)

	// First job is held inside the worker, second one fills the queue.
	svc.Notify("a@example.com", "tmpl", nil)
	<-sender.started
	svc.Notify("b@example.com", "tmpl", nil)

	// With the queue full the next call must drop the job and return.
	done := make(chan struct{})
	go func() {
		svc.Notify("c@example.com", "tmpl", nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(sender.release)
	go func() {
		// Drain the start signal of the queued second job.
		<-sender.started
	}()
	svc.Close()
}

func TestServiceCloseIsIdempotent(t *testing.T) {
	svc := notify.NewService(&countingSender{}, 1, 1)
	svc.Close()
	assert.NotPanics(t, func() { svc.Close() })
}
