package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontainers/runc/libcontainer/user"
)

// EtcRepository reads and rewrites <root>/etc/passwd and <root>/etc/group
// directly. It works on any base image, including ones without the shadow
// tool suite (Alpine).
type EtcRepository struct {
	Root string
}

func NewEtcRepository(root string) *EtcRepository {
	return &EtcRepository{Root: root}
}

func (r *EtcRepository) passwdPath() string {
	return filepath.Join(r.Root, "etc", "passwd")
}

func (r *EtcRepository) groupPath() string {
	return filepath.Join(r.Root, "etc", "group")
}

func (r *EtcRepository) LookupAccount(name string) (Identity, error) {
	users, err := user.ParsePasswdFileFilter(r.passwdPath(), func(u user.User) bool {
		return u.Name == name
	})
	if err != nil {
		return Identity{}, err
	}
	if len(users) == 0 {
		return Identity{}, AccountNotFoundError{Name: name}
	}

	return Identity{Name: users[0].Name, UID: users[0].Uid, GID: users[0].Gid}, nil
}

func (r *EtcRepository) LookupGroup(name string) (Group, error) {
	groups, err := user.ParseGroupFileFilter(r.groupPath(), func(g user.Group) bool {
		return g.Name == name
	})
	if err != nil {
		return Group{}, err
	}
	if len(groups) == 0 {
		return Group{}, GroupNotFoundError{Name: name}
	}

	return Group{Name: groups[0].Name, GID: groups[0].Gid}, nil
}

func (r *EtcRepository) GroupWithGIDExists(gid int) (bool, error) {
	groups, err := user.ParseGroupFileFilter(r.groupPath(), func(g user.Group) bool {
		return g.Gid == gid
	})
	if err != nil {
		return false, err
	}

	return len(groups) > 0, nil
}

// CreateGroup adds a group record, or points the existing record of the
// same name at the new gid. Pre-existing files keep their old numeric
// group owner either way.
func (r *EtcRepository) CreateGroup(name string, gid int) error {
	groups, err := user.ParseGroupFile(r.groupPath())
	if err != nil {
		return err
	}

	found := false
	for i, g := range groups {
		if g.Name == name {
			groups[i].Gid = gid
			found = true
		}
	}
	if !found {
		groups = append(groups, user.Group{Name: name, Pass: "x", Gid: gid})
	}

	return r.writeGroups(groups)
}

func (r *EtcRepository) UpdateAccount(name string, uid, gid int) error {
	users, err := user.ParsePasswdFile(r.passwdPath())
	if err != nil {
		return err
	}

	found := false
	for i, u := range users {
		if u.Name == name {
			users[i].Uid = uid
			users[i].Gid = gid
			found = true
		}
	}
	if !found {
		return AccountNotFoundError{Name: name}
	}

	return r.writeUsers(users)
}

func (r *EtcRepository) writeUsers(users []user.User) error {
	var content strings.Builder
	for _, u := range users {
		fmt.Fprintf(&content, "%s:%s:%d:%d:%s:%s:%s\n", u.Name, u.Pass, u.Uid, u.Gid, u.Gecos, u.Home, u.Shell)
	}

	return r.replaceFile(r.passwdPath(), content.String())
}

func (r *EtcRepository) writeGroups(groups []user.Group) error {
	var content strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&content, "%s:%s:%d:%s\n", g.Name, g.Pass, g.Gid, strings.Join(g.List, ","))
	}

	return r.replaceFile(r.groupPath(), content.String())
}

// replaceFile writes via a temp file in the same directory and renames it
// into place, so a failed build step never leaves a half-written identity
// database behind.
func (r *EtcRepository) replaceFile(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".")
	if err != nil {
		return asPermissionError(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return asPermissionError(path, err)
	}

	return nil
}

func asPermissionError(path string, err error) error {
	if os.IsPermission(err) {
		return PermissionError{Path: path, Err: err}
	}

	return err
}
