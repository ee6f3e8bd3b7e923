// Package featureflags evaluates runtime feature flags from configuration.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

type flagKind int

const (
	kindOff flagKind = iota
	kindOn
	kindPercent
)

type flagValue struct {
	kind    flagKind
	percent int
}

// Manager evaluates feature flags defined in a simple key=value list.
// Example: "formatted_timestamps=on,new_feed=25%,legacy_dates=off"
// Values are parsed once at construction; lookups are plain map reads.
type Manager struct {
	flags map[string]flagValue
}

// NewManager creates a feature-flag manager from a comma-separated config string.
func NewManager(raw string) *Manager {
	out := make(map[string]flagValue)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := normalize(parts[0])
		value, ok := parseValue(normalize(parts[1]))
		if key == "" || !ok {
			continue
		}
		out[key] = value
	}

	return &Manager{flags: out}
}

// parseValue interprets a raw flag value. Supported forms:
// - on/true/1
// - off/false/0
// - N% (deterministic rollout, e.g. 25%)
func parseValue(raw string) (flagValue, bool) {
	switch raw {
	case "on", "true", "1":
		return flagValue{kind: kindOn}, true
	case "off", "false", "0":
		return flagValue{kind: kindOff}, true
	}
	if strings.HasSuffix(raw, "%") {
		pct, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
		if err != nil {
			return flagValue{}, false
		}
		return flagValue{kind: kindPercent, percent: pct}, true
	}
	return flagValue{}, false
}

// Enabled returns whether a flag is enabled for a given user. Percent
// rollouts bucket deterministically by flag name and user ID, so a user's
// experience is stable across requests.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}

	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value.kind {
	case kindOn:
		return true
	case kindOff:
		return false
	}

	if value.percent <= 0 {
		return false
	}
	if value.percent >= 100 {
		return true
	}
	if userID == 0 {
		return false
	}
	return rolloutBucket(name, userID) < value.percent
}

// Snapshot returns evaluated flag status for one user.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rolloutBucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%s:%d", normalize(name), userID)))
	return int(h.Sum32() % 100)
}
