// SPDX-License-Identifier: MIT
// Package: dcpgen/config

// Package config loads dcpgen's run settings.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// DCPGEN_* environment variables. The merged result is checked with struct
// tags before use.
//
//	cfg, err := config.Load("dcpgen.yaml")
//	cat, err := cfg.Catalog()
package config
