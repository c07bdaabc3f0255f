package patterns

import (
	"fmt"
	"sync"

	"github.com/gnana997/uipatterns/catalogs"
)

var (
	defaultOnce sync.Once
	defaultQS   *QueryService
	defaultErr  error
)

// Default returns the QueryService over the bundled pattern library.
// The library is parsed and validated once, on first use, and is read-only
// for the life of the process; concurrent callers share the same value.
func Default() *QueryService {
	defaultOnce.Do(func() {
		qs, err := LoadAndQueryBytes(catalogs.PatternsJSON)
		if err != nil {
			defaultErr = err
			return
		}
		if errs := qs.Library.ValidateCanonical(); len(errs) > 0 {
			defaultErr = fmt.Errorf("bundled patterns incomplete: %v", errs)
			return
		}
		defaultQS = qs
	})
	if defaultErr != nil {
		// The bundled data is embedded at build time and covered by tests;
		// a failure here means the binary itself is broken.
		panic(fmt.Sprintf("patterns: load bundled library: %v", defaultErr))
	}
	return defaultQS
}

// GetComponentPattern returns a pattern from the bundled library.
func GetComponentPattern(name ComponentName) (*ComponentPattern, error) {
	return Default().GetComponentPattern(name)
}

// GetComponentStateStyles returns a state's style map from the bundled library.
func GetComponentStateStyles(component ComponentName, state ComponentState) (map[string]string, error) {
	return Default().GetComponentStateStyles(component, state)
}
