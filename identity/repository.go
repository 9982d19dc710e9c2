package identity

//go:generate counterfeiter . AccountRepository

// AccountRepository abstracts the identity database of the image being
// built, so the remapper can be tested against a fake and so the same
// remapping logic works whether the base image carries the shadow tool
// suite or not.
type AccountRepository interface {
	LookupAccount(name string) (Identity, error)
	LookupGroup(name string) (Group, error)
	GroupWithGIDExists(gid int) (bool, error)
	CreateGroup(name string, gid int) error
	UpdateAccount(name string, uid, gid int) error
}
