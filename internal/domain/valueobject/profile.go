// Package valueobject defines validated value types shared across the domain.
package valueobject

// Profile identifies who a record belongs to: a household member by name,
// the shared-household tag, or the "everyone" filter value.
type Profile string

const (
	// ProfileBoth is the filter value that matches every member.
	ProfileBoth Profile = "Ambos"

	// ProfileShared tags records owned by the household rather than a
	// single member. It matches any member-specific filter.
	ProfileShared Profile = "Casa"
)

// Matches reports whether a record tagged with profile p should be included
// when the given filter is selected. The "Ambos" filter matches everything;
// any other filter matches the exact member plus shared-household records.
func (p Profile) Matches(filter Profile) bool {
	if filter == ProfileBoth {
		return true
	}
	return p == filter || p == ProfileShared
}
