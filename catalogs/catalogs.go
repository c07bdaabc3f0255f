// Package catalogs provides the bundled component pattern data, embedded at
// build time.
package catalogs

import _ "embed"

// PatternsJSON is the bundled design-pattern library.
//
//go:embed patterns/patterns.json
var PatternsJSON []byte
