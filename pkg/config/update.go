package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Store.Dir
	if s != "" {
		res = append(res, OptStoreDir(s))
	}
	if c.Store.LearnMode != "" {
		res = append(res, OptStoreLearnMode(string(c.Store.LearnMode)))
	}
	i = c.Store.WordsPerFile
	if i > 0 {
		res = append(res, OptStoreWordsPerFile(i))
	}

	s = c.Postgres.Host
	if s != "" {
		res = append(res, OptPostgresHost(s))
	}
	i = c.Postgres.Port
	if i > 0 {
		res = append(res, OptPostgresPort(i))
	}
	s = c.Postgres.User
	if s != "" {
		res = append(res, OptPostgresUser(s))
	}
	s = c.Postgres.Password
	if s != "" {
		res = append(res, OptPostgresPassword(s))
	}
	s = c.Postgres.Database
	if s != "" {
		res = append(res, OptPostgresDatabase(s))
	}
	s = c.Postgres.SSLMode
	if s != "" {
		res = append(res, OptPostgresSSLMode(s))
	}
	i = c.Postgres.BatchSize
	if i > 0 {
		res = append(res, OptPostgresBatchSize(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Postgres.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Store.LearnMode": {"mixed": s, "mostly_new": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		[]string{name, val, strings.Join(lines, "\n")},
	)
	return false
}
