package identity

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"code.cloudfoundry.org/commandrunner"
)

const (
	groupmodPath = "/usr/sbin/groupmod"
	groupaddPath = "/usr/sbin/groupadd"
	usermodPath  = "/usr/sbin/usermod"

	// groupmod exits with this status when the named group does not exist
	groupmodGroupMissing = 6
)

// ShadowToolsRepository applies mutations with groupmod/groupadd/usermod so
// the shadow database stays consistent on base images that carry the shadow
// tool suite (Debian). Lookups still read the passwd and group files
// directly.
type ShadowToolsRepository struct {
	*EtcRepository

	CommandRunner commandrunner.CommandRunner
}

func NewShadowToolsRepository(root string, runner commandrunner.CommandRunner) *ShadowToolsRepository {
	return &ShadowToolsRepository{
		EtcRepository: NewEtcRepository(root),
		CommandRunner: runner,
	}
}

// CreateGroup prefers moving the existing group of the same name to the new
// gid, and creates one only when groupmod reports the group missing. Any
// other groupmod failure propagates as-is.
func (r *ShadowToolsRepository) CreateGroup(name string, gid int) error {
	err := r.run(exec.Command(groupmodPath, "--non-unique", "--gid", strconv.Itoa(gid), name), r.groupPath())
	if err == nil {
		return nil
	}
	if !exitedWith(err, groupmodGroupMissing) {
		return err
	}

	return r.run(exec.Command(groupaddPath, "--gid", strconv.Itoa(gid), name), r.groupPath())
}

func (r *ShadowToolsRepository) UpdateAccount(name string, uid, gid int) error {
	return r.run(exec.Command(
		usermodPath,
		"--non-unique",
		"--uid", strconv.Itoa(uid),
		"--gid", strconv.Itoa(gid),
		name,
	), r.passwdPath())
}

func (r *ShadowToolsRepository) run(cmd *exec.Cmd, target string) error {
	output := new(bytes.Buffer)
	cmd.Stdout = output
	cmd.Stderr = output

	err := r.CommandRunner.Run(cmd)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrPermission) || strings.Contains(output.String(), "Permission denied") {
		return PermissionError{Path: target, Err: fmt.Errorf("%s: %v. Output: %s", cmd.Path, err, output.String())}
	}

	return fmt.Errorf("error running %s: %w. Output: %s", cmd.Path, err, output.String())
}

func exitedWith(err error, status int) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == status
}
