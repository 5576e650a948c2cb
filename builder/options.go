// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil functions);
//     constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, read-only configuration handed to every
// Constructor.
type builderConfig struct {
	idFn IDFn // index → vertex ID
}

// newBuilderConfig resolves opts over the defaults (decimal IDs).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix sets the ID scheme to PrefixIDFn(prefix).
// Example: WithIDPrefix("N") → "N0","N1",...
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn ("A", "B", ... "AA").
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
