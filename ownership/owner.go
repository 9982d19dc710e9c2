package ownership

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/serversideup/permshift/identity"
)

// Owner is a resolved numeric uid:gid pair.
type Owner struct {
	UID int
	GID int
}

func (o Owner) String() string {
	return fmt.Sprintf("%d:%d", o.UID, o.GID)
}

type OwnerResolutionError struct {
	Spec   string
	Reason string
}

func (err OwnerResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve owner %q: %s", err.Spec, err.Reason)
}

// ResolveOwner turns a "uid:gid" or "user:group" spec into numeric ids.
// Name lookups go through the identity database of the image being built,
// not the host's.
func ResolveOwner(spec string, accounts identity.AccountRepository) (Owner, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Owner{}, OwnerResolutionError{Spec: spec, Reason: "expected <uid>:<gid> or <user>:<group>"}
	}

	uid, err := resolveUser(parts[0], accounts)
	if err != nil {
		return Owner{}, OwnerResolutionError{Spec: spec, Reason: err.Error()}
	}

	gid, err := resolveGroup(parts[1], accounts)
	if err != nil {
		return Owner{}, OwnerResolutionError{Spec: spec, Reason: err.Error()}
	}

	return Owner{UID: uid, GID: gid}, nil
}

func resolveUser(value string, accounts identity.AccountRepository) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		if id < 0 {
			return 0, fmt.Errorf("uid %d is negative", id)
		}
		return id, nil
	}

	account, err := accounts.LookupAccount(value)
	if err != nil {
		return 0, err
	}

	return account.UID, nil
}

func resolveGroup(value string, accounts identity.AccountRepository) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		if id < 0 {
			return 0, fmt.Errorf("gid %d is negative", id)
		}
		return id, nil
	}

	group, err := accounts.LookupGroup(value)
	if err != nil {
		return 0, err
	}

	return group.GID, nil
}
