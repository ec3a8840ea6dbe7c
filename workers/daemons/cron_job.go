package daemons

import (
	"github.com/jasonlvhit/gocron"

	"fintrack/jobs"
	"fintrack/jobs/cron"
)

type CronJob struct {
	Jobs []jobs.Job
}

func NewCronJob() *CronJob {
	jobs := []jobs.Job{&cron.BalanceAuditJob{}}

	return &CronJob{Jobs: jobs}
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		gocron.Every(1).Day().At("03:00").Do(job.Process)
	}

	<-gocron.Start()
}
