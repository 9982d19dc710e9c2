package permshiftcmd_test

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/serversideup/permshift/permshiftcmd"
)

var _ = Describe("SetFilePermissionsCommand", func() {
	var (
		root string
		cmd  *permshiftcmd.SetFilePermissionsCommand
	)

	BeforeEach(func() {
		root = tempImageRoot()

		Expect(os.MkdirAll(filepath.Join(root, "etc", "nginx", "conf.d"), 0700)).To(Succeed())
		writeFile(filepath.Join(root, "etc", "nginx", "nginx.conf"), "events {}")
		Expect(os.MkdirAll(filepath.Join(root, "var", "log", "nginx"), 0700)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(root, "var", "www", "html"), 0700)).To(Succeed())

		// chowning to the current ids keeps the suite runnable without
		// CAP_CHOWN; name resolution is covered by the ownership package
		cmd = &permshiftcmd.SetFilePermissionsCommand{
			Root:    root,
			Owner:   fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
			Service: "nginx",
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	It("applies the profile's permission masks to the existing paths", func() {
		Expect(cmd.Execute(nil)).To(Succeed())

		info, err := os.Stat(filepath.Join(root, "etc", "nginx", "conf.d"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0755)))

		info, err = os.Stat(filepath.Join(root, "etc", "nginx", "nginx.conf"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0644)))

		info, err = os.Stat(filepath.Join(root, "var", "log", "nginx"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0775)))
	})

	Context("when the owner names cannot be resolved", func() {
		BeforeEach(func() {
			cmd.Owner = "ghost:ghost"
		})

		It("fails with a diagnostic naming the owner spec", func() {
			Expect(cmd.Execute(nil)).To(MatchError(ContainSubstring(`cannot resolve owner "ghost:ghost"`)))
		})
	})

	Context("when the service is unknown", func() {
		BeforeEach(func() {
			cmd.Service = "traefik"
		})

		It("fails without touching the filesystem", func() {
			before, err := os.Stat(filepath.Join(root, "etc", "nginx", "conf.d"))
			Expect(err).NotTo(HaveOccurred())

			Expect(cmd.Execute(nil)).To(MatchError(ContainSubstring(`no service profile registered for "traefik"`)))

			after, err := os.Stat(filepath.Join(root, "etc", "nginx", "conf.d"))
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Mode()).To(Equal(before.Mode()))
		})
	})

	Context("with a profile override file", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(filepath.Join(root, "srv", "app"), 0700)).To(Succeed())
			profilesPath := filepath.Join(root, "profiles.toml")
			writeFile(profilesPath, `
[[profiles]]
service = "app"

  [[profiles.paths]]
  path = "/srv/app"
  dir_mode = "0750"
  file_mode = "0640"
`)

			cmd.Service = "app"
			cmd.Profiles = profilesPath
		})

		It("normalizes the paths the override declares", func() {
			Expect(cmd.Execute(nil)).To(Succeed())

			info, err := os.Stat(filepath.Join(root, "srv", "app"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0750)))
		})
	})
})
