package digest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/repository"
)

// Scheduler files a daily event digest as a notification so students see the
// day's calendar without asking.
type Scheduler struct {
	events        repository.EventRepo
	notifications repository.NotificationRepo
	logger        *log.Logger
	cron          *cron.Cron
	now           func() time.Time
}

// New creates a Scheduler. A nil now function uses the wall clock.
func New(events repository.EventRepo, notifications repository.NotificationRepo, logger *log.Logger, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		events:        events,
		notifications: notifications,
		logger:        logger,
		now:           now,
	}
}

// Start schedules the digest job with the given cron spec and begins the
// cron loop. Stop must be called to release it.
func (s *Scheduler) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.RunOnce(ctx); err != nil {
			s.logger.Printf("daily digest failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling daily digest: %w", err)
	}
	c.Start()
	s.cron = c
	s.logger.Printf("daily digest scheduled: %s", spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunOnce builds and files today's digest. Days without events file nothing.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := s.now()
	today := now.Format("2006-01-02")

	events, err := s.events.Query(ctx, domain.EventFilter{OnDate: today})
	if err != nil {
		return fmt.Errorf("querying today's events: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	err = s.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		Recipient: "all students",
		Message:   digestMessage(today, events),
		Status:    domain.NotificationSent,
		SentAt:    now.UTC(),
	})
	if err != nil {
		return fmt.Errorf("filing digest notification: %w", err)
	}
	return nil
}

func digestMessage(today string, events []*domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today's events (%s):", today)
	for _, e := range events {
		fmt.Fprintf(&b, " %s at %s in %s;", e.Title, e.Time, e.Location)
	}
	return strings.TrimSuffix(b.String(), ";")
}
