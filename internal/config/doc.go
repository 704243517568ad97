// Package config provides the demo's configuration: a single YAML file
// with the debounce duration and the cosmetic field settings.
//
// The file is optional; a missing file means defaults. Values can
// reference environment variables using $VAR or ${VAR} syntax:
//
//	debounce_ms: 3000
//	value: ${QUIET_INITIAL_VALUE}
//	label: Search
//
// Example usage:
//
//	manager := config.NewManager("quiet.yaml")
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//	cfg := manager.Get()
package config
