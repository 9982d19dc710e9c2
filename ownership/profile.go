package ownership

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	configDirMode  = os.FileMode(0755)
	configFileMode = os.FileMode(0644)
	stateDirMode   = os.FileMode(0775)
	stateFileMode  = os.FileMode(0664)
)

// ProfilePath is one directory tree a service needs to own before it can
// start under an unprivileged account.
type ProfilePath struct {
	Path     string
	DirMode  os.FileMode
	FileMode os.FileMode

	// Required paths abort normalization on the first filesystem error;
	// errors under optional paths are collected instead. Both fail the
	// invocation.
	Required bool
}

// ServiceProfile is the ordered list of trees for one supported service.
type ServiceProfile struct {
	Service string
	Paths   []ProfilePath
}

type UnknownServiceError struct {
	Service string
}

func (err UnknownServiceError) Error() string {
	return fmt.Sprintf("no service profile registered for %q", err.Service)
}

type ProfileFormatError struct {
	Path   string
	Reason string
}

func (err ProfileFormatError) Error() string {
	return fmt.Sprintf("invalid service profile file %s: %s", err.Path, err.Reason)
}

// ProfileTable maps service names to their profiles. It is populated once
// at startup and read-only afterwards.
type ProfileTable struct {
	profiles map[string]ServiceProfile
}

func (t *ProfileTable) Lookup(service string) (ServiceProfile, error) {
	profile, ok := t.profiles[service]
	if !ok {
		return ServiceProfile{}, UnknownServiceError{Service: service}
	}

	return profile, nil
}

func configPath(path string, required bool) ProfilePath {
	return ProfilePath{Path: path, DirMode: configDirMode, FileMode: configFileMode, Required: required}
}

func statePath(path string) ProfilePath {
	return ProfilePath{Path: path, DirMode: stateDirMode, FileMode: stateFileMode}
}

// BuiltinProfiles covers the web and process servers the runtime images
// ship with. The document root is shared across all of them.
func BuiltinProfiles() *ProfileTable {
	return &ProfileTable{profiles: map[string]ServiceProfile{
		"nginx": {
			Service: "nginx",
			Paths: []ProfilePath{
				configPath("/etc/nginx", true),
				{Path: "/var/log/nginx", DirMode: stateDirMode, FileMode: stateFileMode, Required: true},
				statePath("/var/cache/nginx"),
				statePath("/var/lib/nginx"),
				statePath("/var/run/nginx"),
				configPath("/var/www/html", true),
			},
		},
		"apache": {
			Service: "apache",
			Paths: []ProfilePath{
				configPath("/etc/apache2", true),
				{Path: "/var/log/apache2", DirMode: stateDirMode, FileMode: stateFileMode, Required: true},
				statePath("/var/run/apache2"),
				statePath("/var/lock/apache2"),
				configPath("/var/www/html", true),
			},
		},
		"fpm": {
			Service: "fpm",
			Paths: []ProfilePath{
				configPath("/usr/local/etc/php", true),
				configPath("/usr/local/etc/php-fpm.d", true),
				statePath("/var/run/php-fpm"),
				statePath("/var/log/php-fpm"),
				configPath("/var/www/html", true),
			},
		},
		"unit": {
			Service: "unit",
			Paths: []ProfilePath{
				{Path: "/var/lib/unit", DirMode: stateDirMode, FileMode: stateFileMode, Required: true},
				statePath("/var/log/unit"),
				statePath("/var/run/unit"),
				configPath("/var/www/html", true),
			},
		},
		"caddy": {
			Service: "caddy",
			Paths: []ProfilePath{
				configPath("/etc/caddy", true),
				statePath("/config/caddy"),
				statePath("/data/caddy"),
				statePath("/var/log/caddy"),
				configPath("/var/www/html", true),
			},
		},
	}}
}

type profileFile struct {
	Profiles []struct {
		Service string `toml:"service"`
		Paths   []struct {
			Path     string `toml:"path"`
			DirMode  string `toml:"dir_mode"`
			FileMode string `toml:"file_mode"`
			Required bool   `toml:"required"`
		} `toml:"paths"`
	} `toml:"profiles"`
}

// LoadFile merges profiles from a TOML file into the table; a profile with
// an already-registered service name replaces the builtin one. Modes are
// octal strings ("0755") and default to the config masks when omitted.
func (t *ProfileTable) LoadFile(path string) error {
	var file profileFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return ProfileFormatError{Path: path, Reason: err.Error()}
	}

	for _, p := range file.Profiles {
		if p.Service == "" {
			return ProfileFormatError{Path: path, Reason: "profile without a service name"}
		}
		if len(p.Paths) == 0 {
			return ProfileFormatError{Path: path, Reason: fmt.Sprintf("profile %q declares no paths", p.Service)}
		}

		profile := ServiceProfile{Service: p.Service}
		for _, entry := range p.Paths {
			if !filepath.IsAbs(entry.Path) {
				return ProfileFormatError{Path: path, Reason: fmt.Sprintf("profile %q: path %q is not absolute", p.Service, entry.Path)}
			}

			dirMode, err := parseMode(entry.DirMode, configDirMode)
			if err != nil {
				return ProfileFormatError{Path: path, Reason: fmt.Sprintf("profile %q: %s", p.Service, err)}
			}
			fileMode, err := parseMode(entry.FileMode, configFileMode)
			if err != nil {
				return ProfileFormatError{Path: path, Reason: fmt.Sprintf("profile %q: %s", p.Service, err)}
			}

			profile.Paths = append(profile.Paths, ProfilePath{
				Path:     entry.Path,
				DirMode:  dirMode,
				FileMode: fileMode,
				Required: entry.Required,
			})
		}

		t.profiles[p.Service] = profile
	}

	return nil
}

func parseMode(value string, fallback os.FileMode) (os.FileMode, error) {
	if value == "" {
		return fallback, nil
	}

	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil || mode > 0777 {
		return 0, fmt.Errorf("%q is not an octal permission mask", value)
	}

	return os.FileMode(mode), nil
}
