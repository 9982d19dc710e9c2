package identity_test

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"code.cloudfoundry.org/commandrunner/fake_command_runner"
	. "code.cloudfoundry.org/commandrunner/fake_command_runner/matchers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/serversideup/permshift/identity"
)

// exitWithStatus produces a real *exec.ExitError carrying the given code.
func exitWithStatus(status int) error {
	return exec.Command("/bin/sh", "-c", "exit "+strconv.Itoa(status)).Run()
}

var _ = Describe("ShadowToolsRepository", func() {
	var (
		root   string
		runner *fake_command_runner.FakeCommandRunner
		repo   *identity.ShadowToolsRepository
	)

	BeforeEach(func() {
		root = tempRootFS()
		writeEtcFile(root, "passwd", "www-data:x:33:33::/var/www:/usr/sbin/nologin\n")
		writeEtcFile(root, "group", "www-data:x:33:\n")

		runner = fake_command_runner.New()
		repo = identity.NewShadowToolsRepository(root, runner)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	It("looks accounts up from the image's passwd file", func() {
		account, err := repo.LookupAccount("www-data")
		Expect(err).NotTo(HaveOccurred())
		Expect(account).To(Equal(identity.Identity{Name: "www-data", UID: 33, GID: 33}))
	})

	Describe("UpdateAccount", func() {
		It("delegates to usermod", func() {
			Expect(repo.UpdateAccount("www-data", 1000, 1000)).To(Succeed())

			Expect(runner).To(HaveExecutedSerially(fake_command_runner.CommandSpec{
				Path: "/usr/sbin/usermod",
				Args: []string{"--non-unique", "--uid", "1000", "--gid", "1000", "www-data"},
			}))
		})

		Context("when usermod fails", func() {
			BeforeEach(func() {
				runner.WhenRunning(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/usermod",
				}, func(cmd *exec.Cmd) error {
					cmd.Stderr.Write([]byte("usermod: cannot lock /etc/passwd; try again later.\n"))
					return errors.New("exit status 1")
				})
			})

			It("surfaces the tool's output in the error", func() {
				err := repo.UpdateAccount("www-data", 1000, 1000)
				Expect(err).To(MatchError(ContainSubstring("usermod: cannot lock /etc/passwd")))
				Expect(err).NotTo(BeAssignableToTypeOf(identity.PermissionError{}))
			})
		})

		Context("when usermod is denied permission", func() {
			BeforeEach(func() {
				runner.WhenRunning(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/usermod",
				}, func(cmd *exec.Cmd) error {
					cmd.Stderr.Write([]byte("usermod: Permission denied.\nusermod: cannot lock /etc/passwd; try again later.\n"))
					return os.ErrPermission
				})
			})

			It("fails with PermissionError naming the passwd file", func() {
				err := repo.UpdateAccount("www-data", 1000, 1000)
				Expect(err).To(BeAssignableToTypeOf(identity.PermissionError{}))
				Expect(err).To(MatchError(ContainSubstring("etc/passwd")))
				Expect(err).To(MatchError(ContainSubstring("Permission denied")))
			})
		})
	})

	Describe("CreateGroup", func() {
		It("moves the existing group with groupmod", func() {
			Expect(repo.CreateGroup("www-data", 1000)).To(Succeed())

			Expect(runner).To(HaveExecutedSerially(fake_command_runner.CommandSpec{
				Path: "/usr/sbin/groupmod",
				Args: []string{"--non-unique", "--gid", "1000", "www-data"},
			}))
			Expect(runner).NotTo(HaveExecutedSerially(fake_command_runner.CommandSpec{
				Path: "/usr/sbin/groupadd",
			}))
		})

		Context("when groupmod reports the group missing", func() {
			BeforeEach(func() {
				runner.WhenRunning(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupmod",
				}, func(cmd *exec.Cmd) error {
					return exitWithStatus(6)
				})
			})

			It("falls back to groupadd", func() {
				Expect(repo.CreateGroup("app", 1000)).To(Succeed())

				Expect(runner).To(HaveExecutedSerially(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupadd",
					Args: []string{"--gid", "1000", "app"},
				}))
			})
		})

		Context("when groupmod fails for any other reason", func() {
			BeforeEach(func() {
				runner.WhenRunning(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupmod",
				}, func(cmd *exec.Cmd) error {
					cmd.Stderr.Write([]byte("groupmod: cannot lock /etc/group; try again later.\n"))
					return exitWithStatus(10)
				})
			})

			It("propagates the failure instead of masking it with groupadd", func() {
				err := repo.CreateGroup("www-data", 1000)
				Expect(err).To(MatchError(ContainSubstring("groupmod: cannot lock /etc/group")))

				Expect(runner).NotTo(HaveExecutedSerially(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupadd",
				}))
			})
		})

		Context("when groupmod is denied permission", func() {
			BeforeEach(func() {
				runner.WhenRunning(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupmod",
				}, func(cmd *exec.Cmd) error {
					cmd.Stderr.Write([]byte("groupmod: Permission denied.\n"))
					return errors.New("exit status 10")
				})
			})

			It("fails with PermissionError and does not try groupadd", func() {
				err := repo.CreateGroup("www-data", 1000)
				Expect(err).To(BeAssignableToTypeOf(identity.PermissionError{}))

				Expect(runner).NotTo(HaveExecutedSerially(fake_command_runner.CommandSpec{
					Path: "/usr/sbin/groupadd",
				}))
			})
		})
	})
})
