package config_test

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/benchtimer/pkg/config"
)

var _ = Describe("Representation", func() {
	DescribeTable("ParseRepresentation",
		func(in string, want config.Representation) {
			got, err := config.ParseRepresentation(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("float64", "float64", config.RepresentationFloat64),
		Entry("int64", "int64", config.RepresentationInt64),
		Entry("upper case", "INT64", config.RepresentationInt64),
	)

	It("rejects unknown names", func() {
		_, err := config.ParseRepresentation("complex128")
		Expect(errors.Is(err, config.ErrInvalidRepresentation)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("float64"))
	})

	It("marshals as a string", func() {
		data, err := json.Marshal(config.RepresentationInt64)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"int64"`))
	})

	It("unmarshals from text", func() {
		var r config.Representation
		Expect(r.UnmarshalText([]byte("int64"))).To(Succeed())
		Expect(r).To(Equal(config.RepresentationInt64))
	})
})

var _ = Describe("Format", func() {
	DescribeTable("ParseFormat",
		func(in string, want config.Format) {
			got, err := config.ParseFormat(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("text", "text", config.FormatText),
		Entry("table", "table", config.FormatTable),
		Entry("json", "json", config.FormatJSON),
		Entry("yaml", "yaml", config.FormatYAML),
	)

	It("rejects unknown names", func() {
		_, err := config.ParseFormat("csv")
		Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
	})

	It("describes itself as a string enum", func() {
		s := config.FormatTable.JSONSchema()
		Expect(s.Type).To(Equal("string"))
		Expect(s.Enum).To(ConsistOf("text", "table", "json", "yaml"))
	})
})
