package permshiftcmd_test

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/serversideup/permshift/identity"
	"github.com/serversideup/permshift/permshiftcmd"
)

// Exercises the two commands the way a Dockerfile build stage runs them:
// set-id first, then set-file-permissions against the remapped account.
var _ = Describe("Build step", func() {
	var root string

	BeforeEach(func() {
		root = tempImageRoot()

		Expect(os.MkdirAll(filepath.Join(root, "etc", "nginx", "conf.d"), 0700)).To(Succeed())
		writeFile(filepath.Join(root, "etc", "nginx", "nginx.conf"), "events {}\n")
		Expect(os.MkdirAll(filepath.Join(root, "var", "log", "nginx"), 0700)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(root, "var", "www", "html"), 0700)).To(Succeed())
		writeFile(filepath.Join(root, "var", "www", "html", "index.html"), "<html></html>\n")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	It("remaps the account and then hands it the service's paths", func() {
		setID := &permshiftcmd.SetIDCommand{Root: root}
		setID.Args.Account = "www-data"
		// targeting the suite's own ids keeps the chown step runnable
		// without CAP_CHOWN
		setID.Args.ID = fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid())
		Expect(setID.Execute(nil)).To(Succeed())

		setPerms := &permshiftcmd.SetFilePermissionsCommand{
			Root:    root,
			Owner:   "www-data:www-data",
			Service: "nginx",
		}
		Expect(setPerms.Execute(nil)).To(Succeed())

		accounts := identity.NewEtcRepository(root)
		account, err := accounts.LookupAccount("www-data")
		Expect(err).NotTo(HaveOccurred())
		Expect(account.UID).To(Equal(os.Getuid()))
		group, err := accounts.LookupGroup("www-data")
		Expect(err).NotTo(HaveOccurred())

		for _, path := range []string{
			filepath.Join(root, "etc", "nginx"),
			filepath.Join(root, "etc", "nginx", "conf.d"),
			filepath.Join(root, "etc", "nginx", "nginx.conf"),
			filepath.Join(root, "var", "log", "nginx"),
			filepath.Join(root, "var", "www", "html"),
			filepath.Join(root, "var", "www", "html", "index.html"),
		} {
			info, err := os.Lstat(path)
			Expect(err).NotTo(HaveOccurred())

			stat := info.Sys().(*syscall.Stat_t)
			Expect(int(stat.Uid)).To(Equal(account.UID), path)
			Expect(int(stat.Gid)).To(Equal(group.GID), path)
		}

		Expect(fileMode(filepath.Join(root, "etc", "nginx"))).To(Equal(os.FileMode(0755)))
		Expect(fileMode(filepath.Join(root, "etc", "nginx", "nginx.conf"))).To(Equal(os.FileMode(0644)))
		Expect(fileMode(filepath.Join(root, "var", "log", "nginx"))).To(Equal(os.FileMode(0775)))
	})
})

func fileMode(path string) os.FileMode {
	info, err := os.Lstat(path)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return info.Mode().Perm()
}
