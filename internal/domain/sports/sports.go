package sports

// Type is the closed enumeration of sports the catalog carries. Comparisons are
// exact and case-sensitive; tags are never user-typed.
type Type string

const (
	Football   Type = "football"
	Basketball Type = "basketball"
	Soccer     Type = "soccer"
	Tennis     Type = "tennis"
	Volleyball Type = "volleyball"
	Baseball   Type = "baseball"

	// All selects every sport in filters; it is never stored on an entity.
	All Type = "all"
)

var known = []Type{Football, Basketball, Soccer, Tennis, Volleyball, Baseball}

// List returns every concrete sport in declaration order.
func List() []Type {
	out := make([]Type, len(known))
	copy(out, known)
	return out
}

// Valid reports whether t is a concrete sport (All is not).
func Valid(t Type) bool {
	for _, k := range known {
		if k == t {
			return true
		}
	}
	return false
}

// Contains reports whether t is present in set.
func Contains(set []Type, t Type) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
