package domain

import (
	"fmt"
	"strings"
)

// SyncConfig maps each sync group to its enabled state. Missing groups are disabled.
type SyncConfig map[SyncGroup]bool

// DefaultSyncConfig enables every group
func DefaultSyncConfig() SyncConfig {
	cfg := make(SyncConfig, len(AllGroups))
	for _, g := range AllGroups {
		cfg[g] = true
	}
	return cfg
}

// OnlyGroups returns a config with exactly the given groups enabled
func OnlyGroups(groups ...SyncGroup) SyncConfig {
	cfg := make(SyncConfig, len(AllGroups))
	for _, g := range AllGroups {
		cfg[g] = false
	}
	for _, g := range groups {
		cfg[g] = true
	}
	return cfg
}

// Enabled reports whether a group is turned on
func (c SyncConfig) Enabled(g SyncGroup) bool {
	return c[g]
}

// EnabledGroups returns the enabled groups in application order
func (c SyncConfig) EnabledGroups() []SyncGroup {
	var groups []SyncGroup
	for _, g := range AllGroups {
		if c[g] {
			groups = append(groups, g)
		}
	}
	return groups
}

// Clone returns an independent copy
func (c SyncConfig) Clone() SyncConfig {
	out := make(SyncConfig, len(c))
	for g, on := range c {
		out[g] = on
	}
	return out
}

// String renders the enabled groups as a comma-separated list
func (c SyncConfig) String() string {
	names := make([]string, 0, len(c))
	for _, g := range c.EnabledGroups() {
		names = append(names, string(g))
	}
	return strings.Join(names, ",")
}

// ParseGroupList parses a comma-separated list of group names
func ParseGroupList(s string) ([]SyncGroup, error) {
	var groups []SyncGroup
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		g, ok := ParseSyncGroup(part)
		if !ok {
			return nil, fmt.Errorf("unknown sync group: %s", part)
		}
		groups = append(groups, g)
	}
	return groups, nil
}
