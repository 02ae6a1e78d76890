package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"portfolio-server/src/services"
	"portfolio-server/src/utils"
)

// historicalRefreshSpec runs the refresh once a day after US market
// close (UTC).
const historicalRefreshSpec = "0 22 * * *"

type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
}

func NewScheduledTask(cronSpec string, taskFunc func()) (*ScheduledTask, error) {
	c := cron.New()
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	close(s.cancel)
}

// NewHistoricalRefreshTask schedules the daily sweep that refetches
// price history for every held symbol.
func NewHistoricalRefreshTask(service services.HistoricalPriceServiceI, logger *logrus.Logger) (*ScheduledTask, error) {
	return NewScheduledTask(historicalRefreshSpec, func() {
		ctx := utils.WithLogger(context.Background(), logger)
		logger.Info("Starting scheduled historical price refresh")
		if err := service.RefreshAll(ctx); err != nil {
			logger.Warnf("Scheduled historical price refresh finished with errors: %v", err)
			return
		}
		logger.Info("Scheduled historical price refresh finished")
	})
}
