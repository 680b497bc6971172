package queue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Redis list names. Producers push to the tail, workers pop from the
// head, so jobs are delivered oldest-first and survive restarts of
// both sides.
const (
	thumbnailList = "fileQueue"
	welcomeList   = "userQueue"
)

// ThumbnailJob asks a worker to generate the resized variants of an
// uploaded image.
type ThumbnailJob struct {
	FileID uuid.UUID `json:"fileId"`
	UserID uuid.UUID `json:"userId"`
}

// WelcomeJob asks a worker to greet a newly registered user.
type WelcomeJob struct {
	UserID uuid.UUID `json:"userId"`
}

// Broker is the transport the queue runs on.
type Broker interface {
	RPush(list string, payload []byte) error
	BLPop(list string, timeout time.Duration) ([]byte, bool, error)
}

// Queue is a durable work queue with an at-most-once delivery
// contract: a job acknowledged by neither side is lost, and a failed
// job is not redelivered.
type Queue struct {
	broker Broker
}

func New(broker Broker) *Queue {
	return &Queue{broker: broker}
}

// EnqueueThumbnail queues a thumbnail job for the given image record.
func (q *Queue) EnqueueThumbnail(fileID, userID uuid.UUID) error {
	payload, err := json.Marshal(ThumbnailJob{FileID: fileID, UserID: userID})
	if err != nil {
		return err
	}
	return q.broker.RPush(thumbnailList, payload)
}

// DequeueThumbnail pops the oldest thumbnail job, waiting up to
// timeout. The found flag is false when nothing was queued.
func (q *Queue) DequeueThumbnail(timeout time.Duration) (*ThumbnailJob, bool, error) {
	payload, found, err := q.broker.BLPop(thumbnailList, timeout)
	if err != nil || !found {
		return nil, false, err
	}
	var job ThumbnailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, false, err
	}
	return &job, true, nil
}

// EnqueueWelcome queues a welcome job for the given user.
func (q *Queue) EnqueueWelcome(userID uuid.UUID) error {
	payload, err := json.Marshal(WelcomeJob{UserID: userID})
	if err != nil {
		return err
	}
	return q.broker.RPush(welcomeList, payload)
}

// DequeueWelcome pops the oldest welcome job, waiting up to timeout.
func (q *Queue) DequeueWelcome(timeout time.Duration) (*WelcomeJob, bool, error) {
	payload, found, err := q.broker.BLPop(welcomeList, timeout)
	if err != nil || !found {
		return nil, false, err
	}
	var job WelcomeJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, false, err
	}
	return &job, true, nil
}
