package identity

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

// Remapper points an existing service account at a new uid:gid pair. It
// only rewrites identity records: files created under the old ids keep
// their numeric owner until set-file-permissions runs.
type Remapper struct {
	Accounts AccountRepository
}

func (r *Remapper) Remap(log lager.Logger, name string, uid, gid int) error {
	log = log.Session("remap", lager.Data{"account": name, "uid": uid, "gid": gid})
	log.Debug("start")
	defer log.Debug("end")

	if uid < 0 || gid < 0 {
		return InvalidIDError{Value: fmt.Sprintf("%d:%d", uid, gid)}
	}

	account, err := r.Accounts.LookupAccount(name)
	if err != nil {
		log.Error("lookup-account-failed", err)
		return err
	}

	if account.UID == uid && account.GID == gid {
		log.Info("already-mapped")
		return nil
	}

	gidTaken, err := r.Accounts.GroupWithGIDExists(gid)
	if err != nil {
		log.Error("lookup-gid-failed", err)
		return err
	}
	if !gidTaken {
		log.Info("creating-group", lager.Data{"group": name, "gid": gid})
		if err := r.Accounts.CreateGroup(name, gid); err != nil {
			log.Error("create-group-failed", err)
			return err
		}
	}

	if err := r.Accounts.UpdateAccount(name, uid, gid); err != nil {
		log.Error("update-account-failed", err)
		return err
	}

	return nil
}
