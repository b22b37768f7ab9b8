// Package notifications sends ntfy push notifications for batch lifecycle
// events. A noop implementation stands in when no topic is configured.
package notifications
