// Package policy holds the authorization rule for mutating catalog resources.
package policy

// Owned is any resource with exactly one owning user.
type Owned interface {
	GetOwnerID() string
}

// CanMutate reports whether the acting user may update or delete the
// resource. The rule is strict ownership; reads are unrestricted and never
// pass through here.
func CanMutate(actorID string, resource Owned) bool {
	if actorID == "" {
		return false
	}
	return resource.GetOwnerID() == actorID
}
