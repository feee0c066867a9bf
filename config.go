package nodeconf

import "time"

// Config is the node runtime configuration as read from config.json.
// It is populated and schema-checked by the caller; this package only reads it.
type Config struct {
	// Archive keeps full historical state instead of pruning it.
	Archive bool `json:"archive" yaml:"archive" toml:"archive"`

	// SaveTrieChanges is tri-state: unset, explicit true, explicit false.
	// Non-archival nodes need trie changes for garbage collection.
	SaveTrieChanges Optional[bool] `json:"save_trie_changes" yaml:"save_trie_changes" toml:"save_trie_changes"`

	TrackedShards []uint64 `json:"tracked_shards" yaml:"tracked_shards" toml:"tracked_shards"`

	Consensus Consensus `json:"consensus" yaml:"consensus" toml:"consensus"`
	GC        GC        `json:"gc" yaml:"gc" toml:"gc"`
}

// Consensus holds block production and header sync timing.
type Consensus struct {
	MinBlockProductionDelay time.Duration `json:"min_block_production_delay" yaml:"min_block_production_delay" toml:"min_block_production_delay"`
	MaxBlockProductionDelay time.Duration `json:"max_block_production_delay" yaml:"max_block_production_delay" toml:"max_block_production_delay"`
	MaxBlockWaitDelay       time.Duration `json:"max_block_wait_delay" yaml:"max_block_wait_delay" toml:"max_block_wait_delay"`

	HeaderSyncExpectedHeightPerSecond uint64 `json:"header_sync_expected_height_per_second" yaml:"header_sync_expected_height_per_second" toml:"header_sync_expected_height_per_second"`
}

// GC holds garbage collection limits. All of them must be positive.
type GC struct {
	GCBlocksLimit     uint64 `json:"gc_blocks_limit" yaml:"gc_blocks_limit" toml:"gc_blocks_limit"`
	GCForkCleanStep   uint64 `json:"gc_fork_clean_step" yaml:"gc_fork_clean_step" toml:"gc_fork_clean_step"`
	GCNumEpochsToKeep uint64 `json:"gc_num_epochs_to_keep" yaml:"gc_num_epochs_to_keep" toml:"gc_num_epochs_to_keep"`
}
