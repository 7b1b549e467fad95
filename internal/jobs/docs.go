// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and call command handlers; they hold no business logic themselves.
//
// # Available Jobs
//
// 1. CartExpiryJob - deletes carts whose last mutation is older than the
// configured age (CART_EXPIRY_AGE), on the CART_EXPIRY_SCHEDULE schedule.
// It is only registered when CART_EXPIRY_SCHEDULE is set.
//
// # Usage
//
//	expiry := jobs.NewCartExpiryJob(expireHandler, "0 0 * * * *", 7*24*time.Hour, logger)
//	jobManager := jobs.NewJobManager(expiry)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing sweep is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
