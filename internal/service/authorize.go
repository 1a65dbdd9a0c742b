package service

// Action is a mutating operation against an owned resource.
type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
)

// Authorize decides whether principal may perform action on a resource
// owned by ownerID. A zero principal is an unauthenticated request and
// is rejected before ownership is even considered. Any authenticated
// user may create; update and delete require ownership.
func Authorize(principal uint, action Action, ownerID uint) error {
	if principal == 0 {
		return ErrNotAuthenticated
	}
	if action == ActionCreate {
		return nil
	}
	if principal != ownerID {
		return ErrNotAuthorized
	}
	return nil
}
