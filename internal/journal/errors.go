package journal

import "fmt"

// ProfileError reports a profile operation that could not be applied.
// The active scope is left untouched when one of these is returned.
type ProfileError struct {
	Op string
	ID string
}

func (e ProfileError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("profile %s failed", e.Op)
	}
	return fmt.Sprintf("profile %s: %q not found", e.Op, e.ID)
}
