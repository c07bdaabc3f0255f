package patterns

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Library holds a full set of component design patterns.
type Library struct {
	Name     string             `json:"name"`
	Version  string             `json:"version"`
	Source   string             `json:"source,omitempty"`
	Patterns []ComponentPattern `json:"patterns"`
}

// LibraryIndex provides O(1) lookups into the library.
// Built during LoadFromBytes after validation passes.
type LibraryIndex struct {
	// PatternByName maps component name -> *ComponentPattern.
	PatternByName map[ComponentName]*ComponentPattern

	// PatternsByVariant maps variant -> patterns that support it.
	PatternsByVariant map[ComponentVariant][]*ComponentPattern
}

// Validate checks the library for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (l *Library) Validate() []error {
	var errs []error

	if l.Name == "" {
		errs = append(errs, fmt.Errorf("library name is required"))
	}
	if l.Version == "" {
		errs = append(errs, fmt.Errorf("library version is required"))
	}

	seen := make(map[ComponentName]bool, len(l.Patterns))

	for i, p := range l.Patterns {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("patterns[%d]: name is required", i))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("pattern %q: duplicate pattern name", p.Name))
			continue
		}
		seen[p.Name] = true

		if p.Description == "" {
			errs = append(errs, fmt.Errorf("pattern %q: description is required", p.Name))
		}

		errs = append(errs, validateAnatomy(p.Name, p.Anatomy)...)

		for _, v := range p.Variants {
			if !validVariants[v] {
				errs = append(errs, fmt.Errorf("pattern %q: unknown variant %q", p.Name, v))
			}
		}
		for _, s := range p.Sizes {
			if !validSizes[s] {
				errs = append(errs, fmt.Errorf("pattern %q: unknown size %q", p.Name, s))
			}
		}

		// The states map must be total: exactly the six canonical states.
		for _, s := range AllStates {
			if _, ok := p.States[s]; !ok {
				errs = append(errs, fmt.Errorf("pattern %q: missing state %q", p.Name, s))
			}
		}
		for s, ss := range p.States {
			if !validStates[s] {
				errs = append(errs, fmt.Errorf("pattern %q: unknown state %q", p.Name, s))
				continue
			}
			// A state may have no style changes, but the map itself must be
			// present so lookups return an empty mapping, never nil.
			if ss.Styles == nil {
				errs = append(errs, fmt.Errorf("pattern %q state %q: styles map is required (may be empty)", p.Name, s))
			}
		}

		if len(p.Accessibility.Keyboard) == 0 {
			errs = append(errs, fmt.Errorf("pattern %q: accessibility.keyboard must have at least one entry", p.Name))
		}
		if len(p.Accessibility.ScreenReader) == 0 {
			errs = append(errs, fmt.Errorf("pattern %q: accessibility.screen_reader must have at least one entry", p.Name))
		}
		if len(p.Accessibility.Focus) == 0 {
			errs = append(errs, fmt.Errorf("pattern %q: accessibility.focus must have at least one entry", p.Name))
		}

		if len(p.Usage.When) == 0 {
			errs = append(errs, fmt.Errorf("pattern %q: usage.when must have at least one entry", p.Name))
		}
	}

	return errs
}

// validateAnatomy checks that the part lists are coherent: structure is
// non-empty, required and optional are disjoint, and both only name parts
// that appear in structure.
func validateAnatomy(name ComponentName, a ComponentAnatomy) []error {
	var errs []error

	if len(a.Structure) == 0 {
		errs = append(errs, fmt.Errorf("pattern %q: anatomy.structure must have at least one part", name))
		return errs
	}

	parts := make(map[string]bool, len(a.Structure))
	for _, part := range a.Structure {
		if part == "" {
			errs = append(errs, fmt.Errorf("pattern %q: anatomy.structure contains an empty part name", name))
			continue
		}
		parts[part] = true
	}

	required := make(map[string]bool, len(a.Required))
	for _, part := range a.Required {
		if !parts[part] {
			errs = append(errs, fmt.Errorf("pattern %q: anatomy.required part %q is not in structure", name, part))
		}
		required[part] = true
	}
	for _, part := range a.Optional {
		if !parts[part] {
			errs = append(errs, fmt.Errorf("pattern %q: anatomy.optional part %q is not in structure", name, part))
		}
		if required[part] {
			errs = append(errs, fmt.Errorf("pattern %q: anatomy part %q is both required and optional", name, part))
		}
	}

	return errs
}

// ValidateCanonical reports an error for every canonical component name the
// library does not define. The bundled library must cover all of them;
// external libraries may define a subset.
func (l *Library) ValidateCanonical() []error {
	defined := make(map[ComponentName]bool, len(l.Patterns))
	for _, p := range l.Patterns {
		defined[p.Name] = true
	}

	var errs []error
	for _, name := range CanonicalNames {
		if !defined[name] {
			errs = append(errs, fmt.Errorf("library is missing canonical pattern %q", name))
		}
	}
	return errs
}

// BuildIndex creates lookup maps for fast access.
// Should be called after Validate() passes.
func (l *Library) BuildIndex() *LibraryIndex {
	idx := &LibraryIndex{
		PatternByName:     make(map[ComponentName]*ComponentPattern, len(l.Patterns)),
		PatternsByVariant: make(map[ComponentVariant][]*ComponentPattern),
	}

	for i := range l.Patterns {
		p := &l.Patterns[i]
		idx.PatternByName[p.Name] = p
		for _, v := range p.Variants {
			idx.PatternsByVariant[v] = append(idx.PatternsByVariant[v], p)
		}
	}

	return idx
}

// LoadFromFile loads a library from a JSON file, validates it, and builds the index.
func LoadFromFile(path string) (*Library, *LibraryIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read patterns file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a library from raw JSON bytes, validates it, and builds the index.
func LoadFromBytes(data []byte) (*Library, *LibraryIndex, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, nil, fmt.Errorf("failed to parse patterns JSON: %w", err)
	}

	if errs := lib.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("patterns validation failed: %w", errors.Join(errs...))
	}

	index := lib.BuildIndex()
	return &lib, index, nil
}
