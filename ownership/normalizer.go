package ownership

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/serversideup/permshift/identity"
)

// Normalizer walks a service's profile of paths and brings their ownership
// and permission bits in line with the account the image will run as. It
// runs exactly once per build stage, before the final USER directive drops
// the privileged build identity.
type Normalizer struct {
	Root     string
	Profiles *ProfileTable
	Accounts identity.AccountRepository
	Chowner  Chowner
}

func (n *Normalizer) Normalize(log lager.Logger, ownerSpec, service string) error {
	log = log.Session("normalize", lager.Data{"owner": ownerSpec, "service": service})
	log.Debug("start")
	defer log.Debug("end")

	profile, err := n.Profiles.Lookup(service)
	if err != nil {
		log.Error("unknown-service", err)
		return err
	}

	owner, err := ResolveOwner(ownerSpec, n.Accounts)
	if err != nil {
		log.Error("resolve-owner-failed", err)
		return err
	}

	var result *multierror.Error
	for _, p := range profile.Paths {
		resolved := filepath.Join(n.Root, p.Path)

		if _, statErr := os.Lstat(resolved); os.IsNotExist(statErr) {
			// not every base image lays every service out identically
			log.Info("skipping-missing-path", lager.Data{"path": resolved})
			continue
		}

		log.Info("normalizing-path", lager.Data{"path": resolved, "resolved-owner": owner.String()})
		if chownErr := n.Chowner.RecursiveChown(resolved, owner, p.DirMode, p.FileMode); chownErr != nil {
			log.Error("normalize-path-failed", chownErr, lager.Data{"path": resolved, "required": p.Required})
			if p.Required {
				return chownErr
			}
			result = multierror.Append(result, chownErr)
		}
	}

	return result.ErrorOrNil()
}
