// Package nodeconf checks the semantics of a node's runtime configuration.
//
// Quick Start:
//
//	cfg := loadConfigSomehow() // already parsed and schema-checked
//	if err := nodeconf.ValidateConfig(cfg); err != nil {
//	    log.Fatal(err) // one line per violation
//	}
//
// Every rule runs on every call; the returned *ValidationError lists all
// violations in rule order, each line prefixed with "config.json semantic issue: ".
// Add rules with NewValidator().WithRule, render outcomes for tooling with DumpReport.
//
// See example_test.go for detailed usage.
package nodeconf
