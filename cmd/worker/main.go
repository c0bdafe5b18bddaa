package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creator-crm/backend/internal/config"
	"github.com/creator-crm/backend/internal/db"
	"github.com/creator-crm/backend/internal/events"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/profileparser"
	"github.com/creator-crm/backend/internal/repositories"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	reminderRepo := repositories.NewReminderRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	publisher := events.NewRedisPublisher(rdb, log)
	parser := profileparser.NewParser(cfg.ProfileFetchTimeoutMS, cfg.ProfileFetchMaxRetries, log)

	log.Info("worker started")

	reminderTicker := time.NewTicker(cfg.ReminderSweepInterval)
	profileTicker := time.NewTicker(cfg.ProfileRefreshInterval)
	defer reminderTicker.Stop()
	defer profileTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reminderTicker.C:
			runReminderSweep(ctx, reminderRepo, publisher, log)
		case <-profileTicker.C:
			runFollowerRefresh(ctx, influencerRepo, auditRepo, parser, publisher, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runReminderSweep announces reminders whose expiration has passed and marks
// them notified so each fires once.
func runReminderSweep(ctx context.Context, reminderRepo *repositories.ReminderRepo, publisher events.Publisher, log *zap.Logger) {
	due, err := reminderRepo.GetDueUnnotified(ctx, time.Now())
	if err != nil {
		log.Error("failed to load due reminders", zap.Error(err))
		return
	}

	for _, reminder := range due {
		err := publisher.Publish(ctx, events.StreamCRM, events.Event{
			Type: events.EventReminderDue,
			Payload: map[string]any{
				"user_id":     reminder.UserID.String(),
				"reminder_id": reminder.ID.String(),
				"title":       reminder.Title,
				"type":        reminder.Type,
				"priority":    reminder.Priority,
			},
		})
		if err != nil {
			log.Error("failed to publish reminder event", zap.String("reminder_id", reminder.ID.String()), zap.Error(err))
			continue
		}
		if err := reminderRepo.MarkNotified(ctx, reminder.ID); err != nil {
			log.Error("failed to mark reminder notified", zap.String("reminder_id", reminder.ID.String()), zap.Error(err))
		}
	}
}

// runFollowerRefresh re-scrapes public pages for telegram influencers and
// stores updated follower counts.
func runFollowerRefresh(ctx context.Context, influencerRepo *repositories.InfluencerRepo, auditRepo *repositories.AuditRepo, parser *profileparser.Parser, publisher events.Publisher, log *zap.Logger) {
	influencers, err := influencerRepo.ListByPlatform(ctx, models.PlatformTelegram)
	if err != nil {
		log.Error("failed to list influencers for refresh", zap.Error(err))
		return
	}

	for _, influencer := range influencers {
		stats, err := parser.FetchProfile(ctx, influencer.Handle)
		if err != nil {
			log.Warn("profile fetch failed",
				zap.String("handle", influencer.Handle),
				zap.Error(err),
			)
			continue
		}
		if stats.Followers == nil || int64(*stats.Followers) == influencer.Followers {
			continue
		}

		if err := influencerRepo.UpdateFollowers(ctx, influencer.ID, int64(*stats.Followers)); err != nil {
			log.Error("failed to update followers", zap.String("handle", influencer.Handle), zap.Error(err))
			continue
		}

		id := influencer.ID
		_ = auditRepo.Log(ctx, models.AuditLog{
			ActorType:  "worker",
			Action:     "followers_refreshed",
			EntityType: "influencer",
			EntityID:   &id,
			Meta: map[string]any{
				"old_followers": influencer.Followers,
				"new_followers": *stats.Followers,
			},
		})
		_ = publisher.Publish(ctx, events.StreamCRM, events.Event{
			Type: events.EventFollowersRefreshed,
			Payload: map[string]any{
				"influencer_id": influencer.ID.String(),
				"followers":     *stats.Followers,
			},
		})

		time.Sleep(1 * time.Second) // rate limiting
	}
}
