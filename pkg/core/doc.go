// Package core defines the shared vocabulary of lintpass: severities and the
// rule metadata DTO used by the CLI and renderers.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
