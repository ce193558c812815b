// Package lib holds integrations that do not belong to a single layer:
// background jobs (asynq on Redis) and transactional email (Resend).
package lib
