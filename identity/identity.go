package identity

import (
	"fmt"
	"strconv"
	"strings"
)

// Identity is a single account record in the identity database of the image
// under construction.
type Identity struct {
	Name string
	UID  int
	GID  int
}

// Group is a single group record.
type Group struct {
	Name string
	GID  int
}

type AccountNotFoundError struct {
	Name string
}

func (err AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %q does not exist in the identity database", err.Name)
}

type GroupNotFoundError struct {
	Name string
}

func (err GroupNotFoundError) Error() string {
	return fmt.Sprintf("group %q does not exist in the identity database", err.Name)
}

type InvalidIDError struct {
	Value string
}

func (err InvalidIDError) Error() string {
	return fmt.Sprintf("%q is not a valid non-negative id", err.Value)
}

type PermissionError struct {
	Path string
	Err  error
}

func (err PermissionError) Error() string {
	return fmt.Sprintf("insufficient privileges to modify %s: %s", err.Path, err.Err)
}

// ParseID parses a single non-negative numeric id.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		return 0, InvalidIDError{Value: value}
	}

	return id, nil
}

// ParseIDPair parses a "uid:gid" pair as supplied on the command line.
func ParseIDPair(pair string) (int, int, error) {
	parts := strings.Split(pair, ":")
	if len(parts) != 2 {
		return 0, 0, InvalidIDError{Value: pair}
	}

	uid, err := ParseID(parts[0])
	if err != nil {
		return 0, 0, err
	}

	gid, err := ParseID(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return uid, gid, nil
}
