package permshiftcmd

import (
	"github.com/pkg/errors"

	"github.com/serversideup/permshift/identity"
	"github.com/serversideup/permshift/ownership"
)

// SetFilePermissionsCommand normalizes ownership and permission bits over a
// service's profile of paths so the service can start under the account the
// image will run as. It must run before the image's final USER directive
// drops the privileged build identity.
type SetFilePermissionsCommand struct {
	Logger LagerFlag

	Root     string `long:"root" default:"/" description:"Treat this directory as the root of the image filesystem."`
	Owner    string `long:"owner" required:"yes" description:"uid:gid pair or user:group names the service paths should belong to."`
	Service  string `long:"service" required:"yes" description:"Service whose profile of paths should be normalized."`
	Profiles string `long:"profiles" description:"Optional TOML file with additional or overriding service profiles."`
}

func (cmd *SetFilePermissionsCommand) Execute(args []string) error {
	log := cmd.Logger.Logger("set-file-permissions")

	profiles := ownership.BuiltinProfiles()
	if cmd.Profiles != "" {
		if err := profiles.LoadFile(cmd.Profiles); err != nil {
			return errors.Wrapf(err, "loading service profiles from %s", cmd.Profiles)
		}
	}

	normalizer := &ownership.Normalizer{
		Root:     cmd.Root,
		Profiles: profiles,
		Accounts: identity.NewEtcRepository(cmd.Root),
		Chowner:  &ownership.OSChowner{},
	}

	if err := normalizer.Normalize(log, cmd.Owner, cmd.Service); err != nil {
		return errors.Wrapf(err, "normalizing ownership for service %q", cmd.Service)
	}

	return nil
}
