package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/smykla-skalski/packetguard/internal/config"
	"github.com/smykla-skalski/packetguard/pkg/config"
)

func writeGlobalConfig(homeDir, content string, mode os.FileMode) string {
	dir := filepath.Join(homeDir, internalconfig.GlobalConfigDir)
	Expect(os.MkdirAll(dir, 0o755)).To(Succeed())

	path := filepath.Join(dir, internalconfig.GlobalConfigFile)
	Expect(os.WriteFile(path, []byte(content), mode)).To(Succeed())
	Expect(os.Chmod(path, mode)).To(Succeed())

	return path
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		loader  *internalconfig.KoanfLoader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		loader = internalconfig.NewKoanfLoaderWithHome(homeDir)

		for _, key := range []string{"PACKETGUARD_LOG_FILE", "PACKETGUARD_LOG_LEVEL"} {
			if old, ok := os.LookupEnv(key); ok {
				Expect(os.Unsetenv(key)).To(Succeed())
				DeferCleanup(os.Setenv, key, old)
			}
		}
	})

	It("returns defaults with logging disabled", func() {
		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetLog().IsEnabled()).To(BeFalse())
		Expect(cfg.GetLog().Level).To(Equal(internalconfig.DefaultLogLevel))
	})

	It("reads the global TOML file", func() {
		writeGlobalConfig(homeDir, "[log]\nfile = \"/tmp/pg.log\"\nlevel = \"debug\"\n", 0o600)

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetLog().File).To(Equal("/tmp/pg.log"))
		Expect(cfg.GetLog().Level).To(Equal(config.LogLevel("debug")))
		Expect(cfg.GetLog().IsEnabled()).To(BeTrue())
	})

	It("expands ~/ in the log path", func() {
		writeGlobalConfig(homeDir, "[log]\nfile = \"~/logs/pg.log\"\n", 0o600)

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetLog().File).To(Equal(filepath.Join(homeDir, "logs", "pg.log")))
	})

	It("lets environment variables override the file", func() {
		writeGlobalConfig(homeDir, "[log]\nfile = \"/tmp/file.log\"\nlevel = \"debug\"\n", 0o600)
		setEnv("PACKETGUARD_LOG_FILE", "/tmp/env.log")
		setEnv("PACKETGUARD_LOG_LEVEL", "error")

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetLog().File).To(Equal("/tmp/env.log"))
		Expect(cfg.GetLog().Level).To(Equal(config.LogLevel("error")))
	})

	It("normalizes level names", func() {
		setEnv("PACKETGUARD_LOG_LEVEL", " DEBUG ")

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GetLog().Level).To(Equal(config.LogLevel("debug")))
	})

	It("rejects world-writable config files", func() {
		writeGlobalConfig(homeDir, "[log]\nlevel = \"debug\"\n", 0o666)

		_, err := loader.Load()

		Expect(errors.Is(err, internalconfig.ErrInvalidPermissions)).To(BeTrue())
	})

	It("rejects invalid TOML", func() {
		writeGlobalConfig(homeDir, "[log\nlevel = ", 0o600)

		_, err := loader.Load()

		Expect(err).To(HaveOccurred())
	})

	It("rejects unknown log levels", func() {
		setEnv("PACKETGUARD_LOG_LEVEL", "verbose")

		_, err := loader.Load()

		Expect(errors.Is(err, internalconfig.ErrInvalidConfig)).To(BeTrue())
	})

	It("points at ~/.packetguard/config.toml", func() {
		Expect(loader.GlobalConfigPath()).To(Equal(
			filepath.Join(homeDir, ".packetguard", "config.toml"),
		))
	})
})

var _ = Describe("Validator", func() {
	It("rejects a nil config", func() {
		err := internalconfig.NewValidator().Validate(nil)

		Expect(errors.Is(err, internalconfig.ErrInvalidConfig)).To(BeTrue())
	})

	It("accepts a config without a log section", func() {
		Expect(internalconfig.NewValidator().Validate(&config.Config{})).To(Succeed())
	})
})
