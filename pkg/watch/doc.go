// Package watch re-runs spec validation when a spec file changes and,
// optionally, on a cron schedule.
//
// File events come from fsnotify and are debounced so that one editor save
// produces one run. Schedules use robfig/cron standard expressions.
package watch
