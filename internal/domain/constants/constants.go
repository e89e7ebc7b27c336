// Package constants holds identifiers shared between configuration and code.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Roles carried in the access token.
const (
	RoleTechnician = "technician"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// Scheduler job names, used in logs and by the manual trigger endpoint.
const (
	JobDailyNotifications = "daily"
	JobReminders          = "reminders"
	JobOverdueSweep       = "overdue"
	JobAutoReschedule     = "reschedule"
	JobDailySnapshot      = "snapshot"
)

// Event types published on the maintenance topic.
const (
	EventTaskAssigned = "maintenance.task.assigned"
)
