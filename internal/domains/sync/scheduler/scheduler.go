package scheduler

import (
	"context"
	"fmt"

	"staysync/config"
	"staysync/internal/domains/sync/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler drives periodic syncs. Overlap protection lives in the sync
// tracker, so a tick that fires while a run is still going simply skips.
type Scheduler struct {
	cron *cron.Cron
	sync service.Sync
	cfg  *config.Config
}

func New(sync service.Sync, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		sync: sync,
		cfg:  cfg,
	}
}

func (s *Scheduler) Start() {
	if !s.cfg.Sync.Enable {
		log.Info().Msg("[scheduler] periodic sync disabled")

		return
	}

	spec := fmt.Sprintf("@every %dm", s.cfg.Sync.IntervalMinutes)

	_, err := s.cron.AddFunc(spec, func() {
		s.sync.RunAll(context.Background())
	})
	if err != nil {
		log.Error().Err(err).Str("spec", spec).Msg("[scheduler] failed to register sync job")

		return
	}

	s.cron.Start()
	log.Info().Str("spec", spec).Msg("[scheduler] periodic sync registered")
}

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("[scheduler] stopped")
}
