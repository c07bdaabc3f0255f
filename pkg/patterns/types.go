// Package patterns defines the component design-pattern catalog: a fixed set
// of UI component descriptions (anatomy, states, accessibility, usage) with
// O(1) lookup accessors over it.
package patterns

// ComponentName identifies one of the catalog's component types.
type ComponentName string

const (
	ComponentButton     ComponentName = "button"
	ComponentCard       ComponentName = "card"
	ComponentInput      ComponentName = "input"
	ComponentNavigation ComponentName = "navigation"
	ComponentToast      ComponentName = "toast"
	ComponentModal      ComponentName = "modal"
	ComponentLoading    ComponentName = "loading"
	ComponentEmptyState ComponentName = "emptyState"
)

// CanonicalNames lists the component names the bundled catalog must cover,
// in display order.
var CanonicalNames = []ComponentName{
	ComponentButton,
	ComponentCard,
	ComponentInput,
	ComponentNavigation,
	ComponentToast,
	ComponentModal,
	ComponentLoading,
	ComponentEmptyState,
}

// ComponentVariant is a visual emphasis variant a component may support.
type ComponentVariant string

const (
	VariantPrimary   ComponentVariant = "primary"
	VariantSecondary ComponentVariant = "secondary"
	VariantTertiary  ComponentVariant = "tertiary"
	VariantGhost     ComponentVariant = "ghost"
	VariantDanger    ComponentVariant = "danger"
)

// ComponentSize is a size option a component may support.
type ComponentSize string

const (
	SizeSmall  ComponentSize = "small"
	SizeMedium ComponentSize = "medium"
	SizeLarge  ComponentSize = "large"
)

// ComponentState is one of the six canonical interaction states every
// pattern documents.
type ComponentState string

const (
	StateDefault  ComponentState = "default"
	StateHover    ComponentState = "hover"
	StateActive   ComponentState = "active"
	StateDisabled ComponentState = "disabled"
	StateFocus    ComponentState = "focus"
	StateLoading  ComponentState = "loading"
)

// AllStates lists every canonical state. A pattern's States map must contain
// exactly these keys.
var AllStates = []ComponentState{
	StateDefault,
	StateHover,
	StateActive,
	StateDisabled,
	StateFocus,
	StateLoading,
}

var validVariants = map[ComponentVariant]bool{
	VariantPrimary:   true,
	VariantSecondary: true,
	VariantTertiary:  true,
	VariantGhost:     true,
	VariantDanger:    true,
}

var validSizes = map[ComponentSize]bool{
	SizeSmall:  true,
	SizeMedium: true,
	SizeLarge:  true,
}

var validStates = map[ComponentState]bool{
	StateDefault:  true,
	StateHover:    true,
	StateActive:   true,
	StateDisabled: true,
	StateFocus:    true,
	StateLoading:  true,
}

// ComponentPattern describes one UI component type: what it is made of, how
// it looks in each state, what accessibility rules apply, and when to use it.
type ComponentPattern struct {
	Name          ComponentName                 `json:"name"`
	Description   string                        `json:"description"`
	Anatomy       ComponentAnatomy              `json:"anatomy"`
	Variants      []ComponentVariant            `json:"variants,omitempty"`
	Sizes         []ComponentSize               `json:"sizes,omitempty"`
	States        map[ComponentState]StateStyle `json:"states"`
	Accessibility AccessibilityRequirements     `json:"accessibility"`
	Usage         UsageGuidance                 `json:"usage"`
	CodeExample   string                        `json:"code_example,omitempty"`
}

// ComponentAnatomy is the structural decomposition of a component into named
// parts. Required and Optional, when present, are disjoint subsets of
// Structure.
type ComponentAnatomy struct {
	Structure []string `json:"structure"`
	Required  []string `json:"required,omitempty"`
	Optional  []string `json:"optional,omitempty"`
	Slots     []string `json:"slots,omitempty"`
}

// StateStyle holds the style properties a component takes on in one state.
type StateStyle struct {
	Styles      map[string]string `json:"styles"`
	Description string            `json:"description"`
}

// AccessibilityRequirements collects the keyboard, screen-reader, and
// focus-management rules for a component.
type AccessibilityRequirements struct {
	Keyboard     []string  `json:"keyboard"`
	ScreenReader []string  `json:"screen_reader"`
	Focus        []string  `json:"focus"`
	Aria         *AriaSpec `json:"aria,omitempty"`
}

// AriaSpec lists expected ARIA roles and attribute values.
type AriaSpec struct {
	Roles      []string          `json:"roles,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// UsageGuidance tells authors when a component applies and when it does not.
type UsageGuidance struct {
	When     []string `json:"when"`
	WhenNot  []string `json:"when_not"`
	Examples []string `json:"examples,omitempty"`
}
