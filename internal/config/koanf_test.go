package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pkgConfig "github.com/smykla-skalski/benchtimer/pkg/config"
)

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		workDir string
		loader  *KoanfLoader
	)

	writeFile := func(path, content string, mode os.FileMode) {
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), mode)).To(Succeed())
		Expect(os.Chmod(path, mode)).To(Succeed())
	}

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = NewKoanfLoaderWithDirs(homeDir, workDir)
	})

	Context("with no files", func() {
		It("returns the defaults", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Version).To(Equal(pkgConfig.CurrentConfigVersion))
			Expect(cfg.Bench.Runs).To(Equal(DefaultRuns))
			Expect(cfg.Bench.Unit).To(Equal("ms"))
			Expect(cfg.Bench.Representation).To(Equal(pkgConfig.RepresentationFloat64))
			Expect(cfg.Report.Format).To(Equal(pkgConfig.FormatText))
			Expect(cfg.Report.Label).To(Equal(DefaultLabel))
			Expect(cfg.Report.Encoding).To(Equal("utf8"))
			Expect(cfg.Report.IsNewlineEnabled()).To(BeTrue())
			Expect(cfg.Log.Level).To(Equal("error"))
		})
	})

	Context("with layered sources", func() {
		BeforeEach(func() {
			writeFile(loader.GlobalConfigPath(), `
[bench]
runs = 5
unit = "us"

[report]
format = "table"
`, 0o600)

			writeFile(filepath.Join(workDir, ProjectConfigFileAlt), `
[bench]
unit = "ns"
representation = "int64"
`, 0o600)
		})

		It("lets the project override the global file and keeps unset fields", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Bench.Runs).To(Equal(5))
			Expect(cfg.Bench.Unit).To(Equal("ns"))
			Expect(cfg.Bench.Representation).To(Equal(pkgConfig.RepresentationInt64))
			Expect(cfg.Report.Format).To(Equal(pkgConfig.FormatTable))
			Expect(cfg.Report.Encoding).To(Equal("utf8"))
		})

		It("lets env vars override files", func() {
			GinkgoT().Setenv("BENCHTIMER_BENCH_RUNS", "9")
			GinkgoT().Setenv("BENCHTIMER_REPORT_NEWLINE", "false")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Bench.Runs).To(Equal(9))
			Expect(cfg.Report.IsNewlineEnabled()).To(BeFalse())
		})

		It("lets flags override everything", func() {
			GinkgoT().Setenv("BENCHTIMER_BENCH_RUNS", "9")

			cfg, err := loader.Load(map[string]any{
				"runs":    2,
				"unit":    "s",
				"format":  "json",
				"unknown": "ignored",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Bench.Runs).To(Equal(2))
			Expect(cfg.Bench.Unit).To(Equal("s"))
			Expect(cfg.Report.Format).To(Equal(pkgConfig.FormatJSON))
		})
	})

	It("prefers .benchtimer/config.toml over benchtimer.toml", func() {
		writeFile(filepath.Join(workDir, ProjectConfigDir, ProjectConfigFile), "[bench]\nruns = 3\n", 0o600)
		writeFile(filepath.Join(workDir, ProjectConfigFileAlt), "[bench]\nruns = 4\n", 0o600)

		Expect(loader.FindProjectConfigPath()).To(Equal(
			filepath.Join(workDir, ProjectConfigDir, ProjectConfigFile),
		))

		cfg, err := loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Bench.Runs).To(Equal(3))
	})

	It("reads an explicit config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "custom.toml")
		writeFile(path, "[report]\nlabel = \"t: \"\n", 0o600)

		cfg, err := loader.WithConfigFile(path).Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Report.Label).To(Equal("t: "))
	})

	It("fails when the explicit config file is missing", func() {
		_, err := loader.WithConfigFile(filepath.Join(workDir, "nope.toml")).Load(nil)
		Expect(err).To(HaveOccurred())
	})

	It("rejects world-writable files", func() {
		writeFile(filepath.Join(workDir, ProjectConfigFileAlt), "[bench]\nruns = 3\n", 0o666)

		_, err := loader.Load(nil)
		Expect(errors.Is(err, ErrInvalidPermissions)).To(BeTrue())
	})

	It("rejects malformed TOML", func() {
		writeFile(filepath.Join(workDir, ProjectConfigFileAlt), "[bench\n", 0o600)

		_, err := loader.Load(nil)
		Expect(err).To(HaveOccurred())
	})

	It("validates the merged result", func() {
		writeFile(filepath.Join(workDir, ProjectConfigFileAlt), "[bench]\nruns = 0\n", 0o600)

		_, err := loader.Load(nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())

		cfg, err := loader.LoadWithoutValidation(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Bench.Runs).To(BeZero())
	})

	It("decodes enum names from files and flags", func() {
		writeFile(filepath.Join(workDir, ProjectConfigFileAlt), "[report]\nformat = \"yaml\"\n", 0o600)

		cfg, err := loader.Load(map[string]any{"representation": "int64"})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Report.Format).To(Equal(pkgConfig.FormatYAML))
		Expect(cfg.Bench.Representation).To(Equal(pkgConfig.RepresentationInt64))
	})

	It("rejects unknown enum names", func() {
		_, err := loader.Load(map[string]any{"format": "csv"})
		Expect(err).To(MatchError(ContainSubstring("invalid format")))
	})

	It("reads a legacy ~/.benchtimer/config.toml when no XDG file exists", func() {
		writeFile(filepath.Join(homeDir, ".benchtimer", "config.toml"), "[bench]\nruns = 4\n", 0o600)

		cfg, err := loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Bench.Runs).To(Equal(4))

		writeFile(filepath.Join(homeDir, ".config", "benchtimer", "config.toml"), "[bench]\nruns = 6\n", 0o600)

		cfg, err = loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Bench.Runs).To(Equal(6))
	})

	It("reports whether a global config exists", func() {
		Expect(loader.HasGlobalConfig()).To(BeFalse())
		writeFile(loader.GlobalConfigPath(), "", 0o600)
		Expect(loader.HasGlobalConfig()).To(BeTrue())
	})
})

var _ = Describe("flagsToConfig", func() {
	It("nests known flags under their sections", func() {
		got := flagsToConfig(map[string]any{
			"runs":      3,
			"log-level": "debug",
			"color":     false,
		})

		Expect(got).To(Equal(map[string]any{
			"bench":  map[string]any{"runs": 3},
			"log":    map[string]any{"level": "debug"},
			"report": map[string]any{"color": false},
		}))
	})
})
