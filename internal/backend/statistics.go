package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"axiselect.app/web/internal/channel"
)

// Recorder ships usage statistics to the platform off the request path.
// Events go through a buffered queue drained by one worker; every failure is
// logged and swallowed so telemetry can never block or break the
// registration flow. A full queue drops the event for the same reason.
type Recorder struct {
	client *Client
	log    *zap.Logger

	queue    chan statEvent
	done     chan struct{}
	stopOnce sync.Once
}

type statEvent struct {
	Action  string `json:"action"`
	Email   string `json:"email"`
	Channel string `json:"channel_code,omitempty"`
}

const (
	actionRegister     = "register"
	actionStartSession = "start_session"
	actionEndSession   = "end_session"

	statQueueDepth  = 64
	statSendTimeout = 5 * time.Second
)

// NewRecorder builds a Recorder and starts its worker. logger may be nil.
func NewRecorder(client *Client, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		client: client,
		log:    logger,
		queue:  make(chan statEvent, statQueueDepth),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

// RecordRegistration queues a registration event.
func (r *Recorder) RecordRegistration(email string, ch channel.Code) {
	r.enqueue(statEvent{Action: actionRegister, Email: email, Channel: string(ch)})
}

// StartSession queues a session-start event.
func (r *Recorder) StartSession(email string) {
	r.enqueue(statEvent{Action: actionStartSession, Email: email})
}

// EndSession queues a session-end event.
func (r *Recorder) EndSession(email string) {
	r.enqueue(statEvent{Action: actionEndSession, Email: email})
}

// Close stops accepting events and waits for the queue to drain.
func (r *Recorder) Close() {
	r.stopOnce.Do(func() { close(r.queue) })
	<-r.done
}

func (r *Recorder) enqueue(ev statEvent) {
	defer func() {
		// Sending on a closed queue after Close; telemetry loss is fine.
		_ = recover()
	}()
	select {
	case r.queue <- ev:
	default:
		r.log.Warn("statistics queue full, dropping event", zap.String("action", ev.Action))
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for ev := range r.queue {
		r.send(ev)
	}
}

func (r *Recorder) send(ev statEvent) {
	if r.client == nil || r.client.baseURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), statSendTimeout)
	defer cancel()

	payload, err := json.Marshal(ev)
	if err != nil {
		r.log.Warn("statistics marshal failed", zap.Error(err))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.functionURL("statistics"), bytes.NewReader(payload))
	if err != nil {
		r.log.Warn("statistics request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	r.client.authorize(req)

	resp, err := r.client.http.Do(req)
	if err != nil {
		r.log.Warn("statistics send failed", zap.String("action", ev.Action), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Warn("statistics rejected",
			zap.String("action", ev.Action),
			zap.Int("status", resp.StatusCode))
	}
}
