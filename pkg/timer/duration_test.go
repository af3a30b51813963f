package timer_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/timer"
)

var _ = Describe("Duration", func() {
	Describe("Convert", func() {
		It("truncates toward zero for integer targets", func() {
			d := timer.Duration[int64]{Count: -1500, Period: period.Milli}
			Expect(timer.Convert[int64](d, period.Second).Count).To(Equal(int64(-1)))
		})

		It("keeps fractions for float targets", func() {
			d := timer.Duration[int64]{Count: 1500, Period: period.Milli}
			Expect(timer.Convert[float64](d, period.Second).Count).To(BeNumerically("==", 1.5))
		})

		It("converts between custom periods exactly", func() {
			thirds := period.MustNew(1, 3)
			d := timer.Duration[int]{Count: 9, Period: thirds}

			Expect(timer.Convert[int](d, period.Second).Count).To(Equal(3))
		})

		It("changes only the representation when periods match", func() {
			d := timer.Duration[float64]{Count: 2.9, Period: period.Milli}
			out := timer.Convert[uint8](d, period.Period{Num: 2, Den: 2000})

			Expect(out.Count).To(Equal(uint8(2)))
		})
	})

	Describe("FromStd and Std", func() {
		It("round-trips through time.Duration", func() {
			d := timer.FromStd[float64](1500*time.Microsecond, period.Milli)
			Expect(d.Count).To(BeNumerically("==", 1.5))
			Expect(d.Std()).To(Equal(1500 * time.Microsecond))
		})

		It("reports seconds", func() {
			d := timer.Duration[int]{Count: 250, Period: period.Milli}
			Expect(d.Seconds()).To(BeNumerically("==", 0.25))
		})
	})

	Describe("Add", func() {
		It("rescales the other operand to the receiver's period", func() {
			a := timer.Duration[float64]{Count: 1, Period: period.Second}
			b := timer.Duration[float64]{Count: 500, Period: period.Milli}

			sum := a.Add(b)
			Expect(sum.Count).To(BeNumerically("==", 1.5))
			Expect(sum.Period).To(Equal(period.Second))
		})
	})

	Describe("Div", func() {
		It("divides the count", func() {
			d := timer.Duration[int64]{Count: 7, Period: period.Nano}
			Expect(d.Div(2).Count).To(Equal(int64(3)))
		})

		It("accepts a divisor wider than the representation", func() {
			Expect(timer.Duration[uint8]{Count: 200, Period: period.Milli}.Div(256).Count).To(Equal(uint8(0)))
			Expect(timer.Duration[int8]{Count: -100, Period: period.Milli}.Div(200).Count).To(Equal(int8(0)))
			Expect(timer.Duration[int8]{Count: 100, Period: period.Milli}.Div(50).Count).To(Equal(int8(2)))
		})
	})

	Describe("String", func() {
		DescribeTable("renders count and unit",
			func(s string, want string) {
				Expect(s).To(Equal(want))
			},
			Entry("float seconds", timer.Duration[float64]{Count: 1.5, Period: period.Second}.String(), "1.5s"),
			Entry("integer milliseconds", timer.Duration[int64]{Count: 100, Period: period.Milli}.String(), "100ms"),
			Entry("six significant digits", timer.Duration[float64]{Count: 1.23456789, Period: period.Micro}.String(), "1.23457us"),
			Entry("custom period has no suffix", timer.Duration[int]{Count: 4, Period: period.MustNew(1, 3)}.String(), "4"),
		)
	})
})

var _ = Describe("FormatCount", func() {
	DescribeTable("formats",
		func(got, want string) {
			Expect(got).To(Equal(want))
		},
		Entry("whole float", timer.FormatCount(100.0), "100"),
		Entry("small float", timer.FormatCount(1e-7), "1e-07"),
		Entry("negative int", timer.FormatCount(-5), "-5"),
		Entry("uint8", timer.FormatCount(uint8(200)), "200"),
		Entry("large uint64", timer.FormatCount(uint64(18_000_000_000_000_000_000)), "18000000000000000000"),
	)

	It("knows integral representations", func() {
		Expect(timer.IsIntegral[int32]()).To(BeTrue())
		Expect(timer.IsIntegral[float32]()).To(BeFalse())
	})
})
