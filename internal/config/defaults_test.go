package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pkgConfig "github.com/smykla-skalski/benchtimer/pkg/config"
)

var _ = Describe("DefaultConfig", func() {
	It("populates every section", func() {
		cfg := DefaultConfig()

		Expect(cfg.Version).To(Equal(pkgConfig.CurrentConfigVersion))
		Expect(cfg.Bench).To(Equal(&pkgConfig.BenchConfig{
			Runs:           1,
			Unit:           "ms",
			Representation: pkgConfig.RepresentationFloat64,
		}))
		Expect(cfg.Report.Label).To(Equal("{command}: "))
		Expect(cfg.Report.IsColorEnabled()).To(BeTrue())
		Expect(cfg.Log.Level).To(Equal("error"))
	})

	It("agrees with the koanf defaults map", func() {
		m := defaultsToMap()

		bench, ok := m["bench"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(bench["runs"]).To(Equal(DefaultConfig().Bench.Runs))
		Expect(bench["unit"]).To(Equal(DefaultConfig().Bench.Unit))
	})
})
