package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	// ChannelLinkedUserCreated is notified by a trigger on linked_users when a
	// token is stored, on first link and on re-link.
	ChannelLinkedUserCreated = "linked_user_created"
	reconnectInterval        = 5 * time.Second
	pingInterval             = 90 * time.Second
)

type linkNotification struct {
	ID int64 `json:"id"`
}

// HandlerFunc receives the id of a newly linked user.
type HandlerFunc func(ctx context.Context, linkedUserID int64)

// LinkListener calls a handler for each user linked while the daemon runs.
type LinkListener struct {
	connStr    string
	handle     HandlerFunc
	log        logrus.FieldLogger
	shutdownCh chan struct{}
	done       chan struct{}
}

func NewLinkListener(connStr string, handle HandlerFunc, log logrus.FieldLogger) *LinkListener {
	return &LinkListener{
		connStr:    connStr,
		handle:     handle,
		log:        log.WithField("component", "link_listener"),
		shutdownCh: make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (l *LinkListener) Start(ctx context.Context) {
	go l.listen(ctx)
	l.log.Info("Link listener started")
}

// Stop waits for the listening goroutine to exit.
func (l *LinkListener) Stop() {
	close(l.shutdownCh)
	<-l.done
	l.log.Info("Link listener stopped")
}

func (l *LinkListener) listen(ctx context.Context) {
	defer close(l.done)

	for {
		if l.stopped(ctx) {
			return
		}
		l.connectAndListen(ctx)

		select {
		case <-l.shutdownCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(reconnectInterval):
			l.log.Info("Reconnecting to PostgreSQL for notifications")
		}
	}
}

func (l *LinkListener) stopped(ctx context.Context) bool {
	select {
	case <-l.shutdownCh:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (l *LinkListener) connectAndListen(ctx context.Context) {
	pl := pq.NewListener(l.connStr, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			l.log.Debug("Connected to notification channel")
		case pq.ListenerEventDisconnected:
			l.log.WithError(err).Warn("Disconnected from notification channel")
		case pq.ListenerEventReconnected:
			l.log.Info("Reconnected to notification channel")
		case pq.ListenerEventConnectionAttemptFailed:
			l.log.WithError(err).Warn("Notification connection attempt failed")
		}
	})
	defer pl.Close()

	if err := pl.Listen(ChannelLinkedUserCreated); err != nil {
		l.log.WithError(err).Errorf("Failed to listen on channel %s", ChannelLinkedUserCreated)
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.shutdownCh:
			return
		case <-ctx.Done():
			return
		case n := <-pl.Notify:
			if n == nil {
				// connection lost
				return
			}
			l.dispatch(ctx, n.Extra)
		case <-ticker.C:
			go func() {
				if err := pl.Ping(); err != nil {
					l.log.WithError(err).Warn("Listener ping failed")
				}
			}()
		}
	}
}

func (l *LinkListener) dispatch(ctx context.Context, payload string) {
	id, err := parsePayload(payload)
	if err != nil {
		l.log.WithError(err).WithField("payload", payload).Warn("Failed to parse notification payload")
		return
	}
	l.log.WithField("linked_user_id", id).Info("Linked user created")
	l.handle(ctx, id)
}

func parsePayload(payload string) (int64, error) {
	var n linkNotification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return 0, err
	}
	return n.ID, nil
}
