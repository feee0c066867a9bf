package nodeconf

import (
	"fmt"
	"strings"
)

// Rule checks one semantic invariant of a Config.
// Check must not mutate cfg and returns nil when the invariant holds.
type Rule interface {
	Name() string
	Check(cfg *Config) *Violation
}

// RuleFunc is a function adapter for the Check half of Rule.
type RuleFunc func(cfg *Config) *Violation

type namedRule struct {
	name  string
	check RuleFunc
}

// NewRule wraps fn as a Rule called name.
func NewRule(name string, fn RuleFunc) Rule {
	return namedRule{name: name, check: fn}
}

func (r namedRule) Name() string { return r.name }

func (r namedRule) Check(cfg *Config) *Violation { return r.check(cfg) }

func semantic(format string, args ...any) *Violation {
	return &Violation{Category: CategorySemantics, Message: fmt.Sprintf(format, args...)}
}

// ArchivalTrieRetentionRule rejects non-archival nodes that explicitly disable trie changes.
// An unset SaveTrieChanges passes.
var ArchivalTrieRetentionRule = NewRule("archival_trie_retention", func(cfg *Config) *Violation {
	if save, ok := cfg.SaveTrieChanges.Get(); !cfg.Archive && ok && !save {
		return semantic("Configuration with archive = false and save_trie_changes = false is not supported " +
			"because non-archival nodes must save trie changes in order to do garbage collection.")
	}
	return nil
})

// MinProductionDelayRule requires min_block_production_delay <= max_block_production_delay.
var MinProductionDelayRule = NewRule("min_block_production_delay", func(cfg *Config) *Violation {
	c := cfg.Consensus
	if c.MinBlockProductionDelay > c.MaxBlockProductionDelay {
		return semantic("min_block_production_delay: %s is greater than max_block_production_delay: %s",
			c.MinBlockProductionDelay, c.MaxBlockProductionDelay)
	}
	return nil
})

// MinWaitDelayRule requires min_block_production_delay <= max_block_wait_delay.
var MinWaitDelayRule = NewRule("min_block_wait_delay", func(cfg *Config) *Violation {
	c := cfg.Consensus
	if c.MinBlockProductionDelay > c.MaxBlockWaitDelay {
		return semantic("min_block_production_delay: %s is greater than max_block_wait_delay: %s",
			c.MinBlockProductionDelay, c.MaxBlockWaitDelay)
	}
	return nil
})

// HeaderSyncRateRule rejects a zero expected header sync rate.
var HeaderSyncRateRule = NewRule("header_sync_rate", func(cfg *Config) *Violation {
	if cfg.Consensus.HeaderSyncExpectedHeightPerSecond == 0 {
		return semantic("consensus.header_sync_expected_height_per_second should not be 0")
	}
	return nil
})

// GCLimitsRule requires every gc limit to be positive.
var GCLimitsRule = NewRule("gc_limits", func(cfg *Config) *Violation {
	gc := cfg.GC
	limits := []struct {
		name  string
		value uint64
	}{
		{"gc_blocks_limit", gc.GCBlocksLimit},
		{"gc_fork_clean_step", gc.GCForkCleanStep},
		{"gc_num_epochs_to_keep", gc.GCNumEpochsToKeep},
	}

	var zero []string
	for _, l := range limits {
		if l.value == 0 {
			zero = append(zero, l.name)
		}
	}
	if len(zero) == 0 {
		return nil
	}

	return semantic("gc config values should all be greater than 0, but gc_blocks_limit is %d, "+
		"gc_fork_clean_step is %d, gc_num_epochs_to_keep is %d (zero: %s).",
		gc.GCBlocksLimit, gc.GCForkCleanStep, gc.GCNumEpochsToKeep, strings.Join(zero, ", "))
})

// DefaultRules returns the built-in rules in evaluation order.
// The order is part of the output contract.
func DefaultRules() []Rule {
	return []Rule{
		ArchivalTrieRetentionRule,
		MinProductionDelayRule,
		MinWaitDelayRule,
		HeaderSyncRateRule,
		GCLimitsRule,
	}
}
