// Package core defines the shared language of layerlint.
//
// This package contains:
//   - Severity levels and the RuleSetting value (severity plus options payload)
//   - The opaque Plugin handle carried by configuration layers
//   - The validation Policy shared by the composer and the import classifier
//   - Deep-copy helpers for nested configuration maps
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
