package scaffold

import (
	"fmt"
	"sort"

	"github.com/evel-pig/create-admin-app/internal/npmname"
)

// ReservedNames collide with the app's own dependencies; npm refuses to
// install a package into a project of the same name.
var ReservedNames = []string{"react", "react-dom", "react-scripts"}

// NameError reports why a project name was rejected.
type NameError struct {
	Name     string
	Reasons  []string
	Reserved bool
}

// Error implements the error interface.
func (e *NameError) Error() string {
	if e.Reserved {
		return fmt.Sprintf("cannot create a project called %q because a dependency with the same name exists", e.Name)
	}
	return fmt.Sprintf("cannot create a project called %q because of npm naming restrictions", e.Name)
}

// ValidateName rejects names npm will not accept for new packages and names
// that shadow a dependency.
func ValidateName(name string) error {
	result := npmname.Validate(name)
	if !result.ValidForNewPackages {
		return &NameError{Name: name, Reasons: result.Problems()}
	}

	reserved := sortedReserved()
	for _, r := range reserved {
		if r == name {
			return &NameError{Name: name, Reasons: reserved, Reserved: true}
		}
	}
	return nil
}

func sortedReserved() []string {
	out := append([]string(nil), ReservedNames...)
	sort.Strings(out)
	return out
}
