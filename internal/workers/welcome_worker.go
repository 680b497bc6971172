package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"filehub-api/internal/queue"
	"filehub-api/internal/services"
)

// WelcomeSource is the consumer side of the welcome queue.
type WelcomeSource interface {
	DequeueWelcome(timeout time.Duration) (*queue.WelcomeJob, bool, error)
}

// WelcomeWorker greets newly registered users. There is no mail
// transport wired up, so the greeting goes to the log.
type WelcomeWorker struct {
	jobs  WelcomeSource
	users *services.UserService
}

func NewWelcomeWorker(jobs WelcomeSource, users *services.UserService) *WelcomeWorker {
	return &WelcomeWorker{jobs: jobs, users: users}
}

// Run processes jobs until ctx is cancelled.
func (w *WelcomeWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, found, err := w.jobs.DequeueWelcome(dequeueTimeout)
		if err != nil {
			log.Printf("welcome worker: dequeue failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if !found {
			continue
		}

		if err := w.Process(job); err != nil {
			log.Printf("welcome worker: job for user %s dropped: %v", job.UserID, err)
		}
	}
}

// Process looks the user up and logs the greeting.
func (w *WelcomeWorker) Process(job *queue.WelcomeJob) error {
	user, err := w.users.GetByID(job.UserID)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	log.Printf("Welcome %s!", user.Email)
	return nil
}
