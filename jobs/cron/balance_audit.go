package cron

import (
	"fintrack/config"
	"fintrack/models"
)

type BalanceAuditJob struct {
}

// Process sweeps every user and re-derives the cached balance from the
// ledger, repairing and reporting any drift. The per-user recomputation runs
// under the same row lock as the write path, so a sweep never races a live
// mutation.
func (j *BalanceAuditJob) Process() {
	var users []models.User

	if err := config.DataBase.Find(&users).Error; err != nil {
		config.Logger.Errorf("balance audit: listing users: %v", err)
		return
	}

	repaired := 0
	for _, user := range users {
		drift, err := models.RepairBalance(user.ID)
		if err != nil {
			config.Logger.Errorf("balance audit: user %d: %v", user.ID, err)
			continue
		}

		if !drift.IsZero() {
			repaired++
			config.Logger.Warnf("balance audit: user %d balance drifted by %s, repaired", user.ID, drift.String())
		}
	}

	config.Logger.Infof("balance audit: %d users checked, %d repaired", len(users), repaired)
}
