package patterns

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPatternNotFound is returned when a component name is not in the library.
var ErrPatternNotFound = errors.New("pattern not found")

// ErrStateNotFound is returned when a state name is not one of the six
// canonical states.
var ErrStateNotFound = errors.New("state not found")

// PatternSearchResult holds a pattern match with the reason it matched.
type PatternSearchResult struct {
	Pattern     *ComponentPattern
	MatchReason string
}

// QueryService provides read-only query methods over a loaded library.
type QueryService struct {
	Library *Library
	Index   *LibraryIndex
}

// NewQueryService creates a QueryService from a validated library and its index.
func NewQueryService(lib *Library, idx *LibraryIndex) *QueryService {
	return &QueryService{Library: lib, Index: idx}
}

// LoadAndQuery loads a library from file and returns a ready-to-use QueryService.
func LoadAndQuery(path string) (*QueryService, error) {
	lib, idx, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(lib, idx), nil
}

// LoadAndQueryBytes loads a library from raw JSON bytes and returns a ready-to-use QueryService.
func LoadAndQueryBytes(data []byte) (*QueryService, error) {
	lib, idx, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	return NewQueryService(lib, idx), nil
}

// GetComponentPattern returns the pattern stored under name.
// Returns ErrPatternNotFound (wrapped) for any name outside the library.
// Callers must not mutate the returned pattern.
func (q *QueryService) GetComponentPattern(name ComponentName) (*ComponentPattern, error) {
	p, ok := q.Index.PatternByName[name]
	if !ok {
		return nil, fmt.Errorf("component %q: %w", name, ErrPatternNotFound)
	}
	return p, nil
}

// GetComponentStateStyles returns the style map for one component in one
// state. Every loaded pattern's states map is total over the six canonical
// states, so this only fails for an unknown component or state name.
func (q *QueryService) GetComponentStateStyles(component ComponentName, state ComponentState) (map[string]string, error) {
	p, err := q.GetComponentPattern(component)
	if err != nil {
		return nil, err
	}
	ss, ok := p.States[state]
	if !ok {
		return nil, fmt.Errorf("component %q state %q: %w", component, state, ErrStateNotFound)
	}
	return ss.Styles, nil
}

// GetStateStyle returns the full state entry (styles plus description) for
// one component in one state.
func (q *QueryService) GetStateStyle(component ComponentName, state ComponentState) (*StateStyle, error) {
	p, err := q.GetComponentPattern(component)
	if err != nil {
		return nil, err
	}
	ss, ok := p.States[state]
	if !ok {
		return nil, fmt.Errorf("component %q state %q: %w", component, state, ErrStateNotFound)
	}
	return &ss, nil
}

// GetAccessibility returns the accessibility requirements for one component.
func (q *QueryService) GetAccessibility(component ComponentName) (*AccessibilityRequirements, error) {
	p, err := q.GetComponentPattern(component)
	if err != nil {
		return nil, err
	}
	return &p.Accessibility, nil
}

// GetUsage returns the usage guidance for one component.
func (q *QueryService) GetUsage(component ComponentName) (*UsageGuidance, error) {
	p, err := q.GetComponentPattern(component)
	if err != nil {
		return nil, err
	}
	return &p.Usage, nil
}

// ListPatterns returns patterns filtered by keyword. Pass "" to return all.
// The keyword matches case-insensitively against pattern Name and Description.
func (q *QueryService) ListPatterns(keyword string) []ComponentPattern {
	keyword = strings.ToLower(keyword)
	result := make([]ComponentPattern, 0, len(q.Library.Patterns))

	for _, p := range q.Library.Patterns {
		if keyword != "" {
			nameLower := strings.ToLower(string(p.Name))
			descLower := strings.ToLower(p.Description)
			if !strings.Contains(nameLower, keyword) && !strings.Contains(descLower, keyword) {
				continue
			}
		}
		result = append(result, p)
	}

	return result
}

// ListByVariant returns the patterns that support the given variant.
func (q *QueryService) ListByVariant(variant ComponentVariant) []*ComponentPattern {
	return q.Index.PatternsByVariant[variant]
}

// SearchPatterns performs a case-insensitive search across pattern names,
// descriptions, anatomy part names, and usage guidance.
// Returns matching patterns with the reason for the match.
func (q *QueryService) SearchPatterns(query string) []PatternSearchResult {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	seen := make(map[ComponentName]bool)
	var results []PatternSearchResult

	for i := range q.Library.Patterns {
		p := &q.Library.Patterns[i]

		if strings.Contains(strings.ToLower(string(p.Name)), query) {
			if !seen[p.Name] {
				seen[p.Name] = true
				results = append(results, PatternSearchResult{Pattern: p, MatchReason: "name"})
			}
			continue
		}

		if strings.Contains(strings.ToLower(p.Description), query) {
			if !seen[p.Name] {
				seen[p.Name] = true
				results = append(results, PatternSearchResult{Pattern: p, MatchReason: "description"})
			}
			continue
		}

		for _, part := range p.Anatomy.Structure {
			if strings.Contains(strings.ToLower(part), query) {
				if !seen[p.Name] {
					seen[p.Name] = true
					results = append(results, PatternSearchResult{Pattern: p, MatchReason: "anatomy:" + part})
				}
				break
			}
		}

		if seen[p.Name] {
			continue
		}

		for _, guidance := range p.Usage.When {
			if strings.Contains(strings.ToLower(guidance), query) {
				if !seen[p.Name] {
					seen[p.Name] = true
					results = append(results, PatternSearchResult{Pattern: p, MatchReason: "usage"})
				}
				break
			}
		}
	}

	return results
}
