package permshiftcmd

import (
	"code.cloudfoundry.org/commandrunner/linux_command_runner"
	"github.com/pkg/errors"

	"github.com/serversideup/permshift/identity"
)

// SetIDCommand points an existing service account at the uid:gid pair the
// image should run as. It only rewrites the identity database; running
// set-file-permissions afterwards brings file ownership in line.
type SetIDCommand struct {
	Logger LagerFlag

	Root           string `long:"root" default:"/" description:"Treat this directory as the root of the image filesystem."`
	UseShadowTools bool   `long:"use-shadow-tools" description:"Apply changes with groupmod/usermod instead of rewriting /etc/passwd directly."`

	Args struct {
		Account string `positional-arg-name:"account" required:"yes" description:"Name of the existing service account."`
		ID      string `positional-arg-name:"uid:gid" required:"yes" description:"Numeric ids the account should map to."`
	} `positional-args:"yes"`
}

func (cmd *SetIDCommand) Execute(args []string) error {
	log := cmd.Logger.Logger("set-id")

	uid, gid, err := identity.ParseIDPair(cmd.Args.ID)
	if err != nil {
		return err
	}

	remapper := &identity.Remapper{Accounts: cmd.accountRepository()}
	if err := remapper.Remap(log, cmd.Args.Account, uid, gid); err != nil {
		return errors.Wrapf(err, "remapping account %q to %d:%d", cmd.Args.Account, uid, gid)
	}

	return nil
}

func (cmd *SetIDCommand) accountRepository() identity.AccountRepository {
	if cmd.UseShadowTools {
		return identity.NewShadowToolsRepository(cmd.Root, linux_command_runner.New())
	}

	return identity.NewEtcRepository(cmd.Root)
}
