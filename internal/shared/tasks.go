// Package shared holds the asynq task type names used by both the API
// (enqueue side) and the worker (handler side).
package shared

const (
	TypeContactNotifyAdmin = "contact:notify_admin"
	TypeWarmSitemap        = "seo:warm_sitemap"
)
