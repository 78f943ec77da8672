// Package jobs provides scheduled background tasks for the supply workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service needs.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Sweeps for non-terminal orders older than the overdue
// threshold and notifies the shopkeeper and supplying company of each.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueHandler, publisher, "0 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// The sweep schedule is a standard five-field cron expression taken from
// configuration, hourly by default.
package jobs
