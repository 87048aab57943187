package arn

type componentKind uint8

const (
	componentNone componentKind = iota
	componentAny
	componentValue
)

// Component is one ARN field in one of three states: absent (the field
// was empty in the source text), the "*" wildcard, or a concrete value.
// The zero value is the absent state. Component is comparable; equality
// is structural over state and payload.
type Component[V comparable] struct {
	kind  componentKind
	value V
}

// Wildcard returns the "*" component.
func Wildcard[V comparable]() Component[V] {
	return Component[V]{kind: componentAny}
}

// ValueOf wraps a concrete value in a component.
func ValueOf[V comparable](v V) Component[V] {
	return Component[V]{kind: componentValue, value: v}
}

// IsNone reports whether the field is absent.
func (c Component[V]) IsNone() bool { return c.kind == componentNone }

// IsAny reports whether the field is the "*" wildcard.
func (c Component[V]) IsAny() bool { return c.kind == componentAny }

// Get returns the concrete value and whether one is present.
func (c Component[V]) Get() (V, bool) {
	return c.value, c.kind == componentValue
}

// render returns the segment text for the component.
func (c Component[V]) render(text func(V) string) string {
	switch c.kind {
	case componentAny:
		return "*"
	case componentValue:
		return text(c.value)
	}
	return ""
}

// matches reports whether c, treated as a pattern, accepts other. The
// wildcard accepts every state; absent and concrete fields accept only
// an identical field.
func (c Component[V]) matches(other Component[V]) bool {
	return c.kind == componentAny || c == other
}

// parseComponent maps a raw segment onto a component. The empty string
// and "*" are recognized before the payload parser runs, so a wildcard
// never reaches parse.
func parseComponent[V comparable](seg string, parse func(string) (V, error)) (Component[V], error) {
	switch seg {
	case "":
		return Component[V]{}, nil
	case "*":
		return Wildcard[V](), nil
	}
	v, err := parse(seg)
	if err != nil {
		return Component[V]{}, err
	}
	return ValueOf(v), nil
}
