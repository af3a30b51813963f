package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	var (
		homeDir string
		workDir string
		writer  *Writer
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		writer = NewWriterWithDirs(homeDir, workDir)
	})

	It("writes a project config that loads back to the same values", func() {
		cfg := DefaultConfig()
		cfg.Bench.Runs = 4
		cfg.Bench.Unit = "us"

		path, err := writer.Write(TargetProject, cfg, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(workDir, ProjectConfigDir, ProjectConfigFile)))

		loaded, err := NewKoanfLoaderWithDirs(homeDir, workDir).Load(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Bench.Runs).To(Equal(4))
		Expect(loaded.Bench.Unit).To(Equal("us"))
	})

	It("starts the file with the schema directive", func() {
		path, err := writer.Write(TargetGlobal, DefaultConfig(), false)
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.SplitN(string(data), "\n", 2)[0]).To(HavePrefix("#:schema "))
		Expect(string(data)).To(ContainSubstring("[bench]"))
	})

	It("uses owner-only permissions", func() {
		path, err := writer.Write(TargetGlobal, DefaultConfig(), false)
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(ConfigFileMode)))

		dirInfo, err := os.Stat(filepath.Dir(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(dirInfo.Mode().Perm()).To(Equal(os.FileMode(ConfigDirMode)))
	})

	It("refuses to overwrite without force", func() {
		_, err := writer.Write(TargetProject, DefaultConfig(), false)
		Expect(err).NotTo(HaveOccurred())

		_, err = writer.Write(TargetProject, DefaultConfig(), false)
		Expect(errors.Is(err, ErrConfigExists)).To(BeTrue())

		_, err = writer.Write(TargetProject, DefaultConfig(), true)
		Expect(err).NotTo(HaveOccurred())
	})

	It("puts new global files under the XDG config dir", func() {
		Expect(writer.Path(TargetGlobal)).To(Equal(filepath.Join(homeDir, ".config", "benchtimer", "config.toml")))
	})

	It("overwrites an existing legacy global file in place", func() {
		legacy := filepath.Join(homeDir, ".benchtimer", "config.toml")
		Expect(os.MkdirAll(filepath.Dir(legacy), 0o700)).To(Succeed())
		Expect(os.WriteFile(legacy, []byte("version = 1\n"), 0o600)).To(Succeed())

		path, err := writer.Write(TargetGlobal, DefaultConfig(), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(legacy))

		entries, err := os.ReadDir(filepath.Dir(legacy))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("rejects a nil config", func() {
		err := WriteFile(filepath.Join(workDir, "x.toml"), nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})
})
