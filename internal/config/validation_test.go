package config

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pkgConfig "github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

var _ = Describe("Validator", func() {
	var (
		v   *Validator
		cfg *pkgConfig.Config
	)

	BeforeEach(func() {
		v = NewValidator()
		cfg = DefaultConfig()
	})

	It("accepts the defaults", func() {
		Expect(v.Validate(cfg)).To(Succeed())
	})

	It("accepts an empty config", func() {
		Expect(v.Validate(&pkgConfig.Config{})).To(Succeed())
	})

	It("rejects nil", func() {
		Expect(errors.Is(v.Validate(nil), ErrInvalidConfig)).To(BeTrue())
	})

	DescribeTable("rejects invalid fields",
		func(mutate func(*pkgConfig.Config), cause error) {
			mutate(cfg)

			err := v.Validate(cfg)
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(errors.Is(err, cause)).To(BeTrue())
		},
		Entry("zero runs", func(c *pkgConfig.Config) { c.Bench.Runs = 0 }, ErrInvalidRuns),
		Entry("unknown unit", func(c *pkgConfig.Config) { c.Bench.Unit = "fortnight" }, period.ErrUnknownPeriod),
		Entry("bad representation", func(c *pkgConfig.Config) {
			c.Bench.Representation = pkgConfig.Representation(7)
		}, pkgConfig.ErrInvalidRepresentation),
		Entry("bad format", func(c *pkgConfig.Config) {
			c.Report.Format = pkgConfig.Format(9)
		}, pkgConfig.ErrInvalidFormat),
		Entry("unknown encoding", func(c *pkgConfig.Config) { c.Report.Encoding = "latin1" }, units.ErrUnknownEncoding),
		Entry("future version", func(c *pkgConfig.Config) { c.Version = 99 }, ErrUnsupportedVersion),
	)

	It("counts every failure", func() {
		cfg.Bench.Runs = -1
		cfg.Report.Encoding = "ebcdic"

		err := v.Validate(cfg)
		Expect(err).To(MatchError(ContainSubstring("2 invalid settings")))
	})
})
