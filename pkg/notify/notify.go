package notify

import (
	"sync"

	"go-jobboard-backend/pkg/logger"
)

// Sender delivers a single rendered notification. *email.EmailService
// satisfies it.
type Sender interface {
	Send(to, template string, data map[string]string) error
}

type job struct {
	to       string
	template string
	data     map[string]string
}

// Service fans notification jobs out to a fixed pool of workers over a
// bounded queue. Notify never blocks: when the queue is full the job is
// dropped and logged.
type Service struct {
	sender Sender
	queue  chan job
	wg     sync.WaitGroup
	once   sync.Once
}

func NewService(sender Sender, workers, queueSize int) *Service {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	s := &Service{
		sender: sender,
		queue:  make(chan job, queueSize),
	}

	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker()
	}
	return s
}

func (s *Service) worker() {
	defer s.wg.Done()
	for j := range s.queue {
		if err := s.sender.Send(j.to, j.template, j.data); err != nil {
			logger.Log.Error("notification delivery failed",
				"template", j.template,
				"error", err.Error())
		}
	}
}

// Notify enqueues a notification for asynchronous delivery.
func (s *Service) Notify(destination, template string, data map[string]string) {
	select {
	case s.queue <- job{to: destination, template: template, data: data}:
	default:
		logger.Log.Warn("notification queue full, dropping message",
			"template", template)
	}
}

// Close stops accepting jobs and waits for in-flight deliveries to finish.
func (s *Service) Close() {
	s.once.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}
