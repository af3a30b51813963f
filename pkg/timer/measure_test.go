package timer_test

import (
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/timer"
)

var (
	errBoom = errors.New("boom")
	sink    int
)

var _ = Describe("Time", func() {
	var clock *manualClock

	BeforeEach(func() {
		clock = newManualClock()
	})

	It("calls the callable once and returns its duration", func() {
		calls := 0

		d, err := timer.Time[float64](period.Milli, func() error {
			calls++
			clock.Advance(42 * time.Millisecond)

			return nil
		}, timer.WithClock(clock))

		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(1))
		Expect(d.Count).To(BeNumerically("==", 42))
		Expect(d.Period).To(Equal(period.Milli))
	})

	It("returns the callable's error unchanged and no duration", func() {
		d, err := timer.Time[float64](period.Milli, func() error {
			clock.Advance(time.Second)

			return errBoom
		}, timer.WithClock(clock))

		Expect(err).To(BeIdenticalTo(errBoom))
		Expect(d).To(Equal(timer.Duration[float64]{}))
	})

	It("lets a panic escape", func() {
		Expect(func() {
			_, _ = timer.Time[float64](period.Second, func() error {
				panic("measured code panicked")
			})
		}).To(PanicWith("measured code panicked"))
	})

	It("captures arguments through the closure", func() {
		var got []int

		appendAll := func(xs ...int) { got = append(got, xs...) }

		_, err := timer.Time[int64](period.Nano, timer.Func(func() { appendAll(1, 2, 3) }))
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{1, 2, 3}))
	})

	Describe("Elapsed", func() {
		It("returns the tick count only", func() {
			n, err := timer.Elapsed[int](period.Micro, func() error {
				clock.Advance(1500 * time.Nanosecond)

				return nil
			}, timer.WithClock(clock))

			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})
	})
})

var _ = Describe("TimeResult", func() {
	var clock *manualClock

	BeforeEach(func() {
		clock = newManualClock()
	})

	It("returns the duration and the callable's result", func() {
		d, result, err := timer.TimeResult[int64](period.Milli, func() ([]int, error) {
			clock.Advance(7 * time.Millisecond)

			return make([]int, 3), nil
		}, timer.WithClock(clock))

		Expect(err).NotTo(HaveOccurred())
		Expect(d.Count).To(Equal(int64(7)))
		Expect(result).To(HaveLen(3))
	})

	It("propagates the error with zero duration and result", func() {
		d, result, err := timer.TimeResult[float64](period.Second, func() (string, error) {
			return "partial", errBoom
		}, timer.WithClock(clock))

		Expect(err).To(BeIdenticalTo(errBoom))
		Expect(d).To(Equal(timer.Duration[float64]{}))
		Expect(result).To(BeEmpty())
	})

	Describe("ElapsedResult", func() {
		It("returns the count and the result", func() {
			n, result, err := timer.ElapsedResult[float64](period.Second, func() (int, error) {
				clock.Advance(250 * time.Millisecond)

				return 9, nil
			}, timer.WithClock(clock))

			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically("==", 0.25))
			Expect(result).To(Equal(9))
		})
	})
})

var _ = Describe("Average", func() {
	var clock *manualClock

	// rampingWork takes i milliseconds on its i-th call.
	rampingWork := func(calls *int) func() error {
		return func() error {
			*calls++
			clock.Advance(time.Duration(*calls) * time.Millisecond)

			return nil
		}
	}

	BeforeEach(func() {
		clock = newManualClock()
	})

	DescribeTable("equals the sum of single measurements divided by count",
		func(count int) {
			calls := 0
			work := rampingWork(&calls)

			var sum float64

			for range count {
				d, err := timer.Time[float64](period.Milli, work, timer.WithClock(clock))
				Expect(err).NotTo(HaveOccurred())

				sum += d.Count
			}

			calls = 0

			avg, err := timer.Average[float64](period.Milli, count, work, timer.WithClock(clock))
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(count))
			Expect(avg).To(BeNumerically("~", sum/float64(count), 1e-9))
			Expect(avg).To(BeNumerically("~", float64(count+1)/2, 1e-9))
		},
		Entry("one run", 1),
		Entry("five runs", 5),
		Entry("fifty runs", 50),
	)

	It("truncates the mean in an integer representation", func() {
		calls := 0

		avg, err := timer.Average[int64](period.Milli, 2, rampingWork(&calls), timer.WithClock(clock))
		Expect(err).NotTo(HaveOccurred())
		Expect(avg).To(Equal(int64(1)))
	})

	// steadyWork takes step on every call.
	steadyWork := func(step time.Duration) func() error {
		return func() error {
			clock.Advance(step)

			return nil
		}
	}

	DescribeTable("stays exact when count or sum overflow a narrow representation",
		func(mean func() (int64, error), want int64) {
			got, err := mean()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("uint8 with 256 runs", func() (int64, error) {
			avg, err := timer.Average[uint8](period.Second, 256, steadyWork(time.Second), timer.WithClock(clock))

			return int64(avg), err
		}, int64(1)),
		Entry("int8 with 200 runs summing past 127", func() (int64, error) {
			avg, err := timer.Average[int8](period.Milli, 200, steadyWork(time.Millisecond), timer.WithClock(clock))

			return int64(avg), err
		}, int64(1)),
		Entry("int8 with 200 sub-tick runs", func() (int64, error) {
			avg, err := timer.Average[int8](period.Milli, 200, steadyWork(500*time.Microsecond), timer.WithClock(clock))

			return int64(avg), err
		}, int64(0)),
		Entry("uint16 with 70000 runs", func() (int64, error) {
			avg, err := timer.Average[uint16](period.Micro, 70_000, steadyWork(3*time.Microsecond), timer.WithClock(clock))

			return int64(avg), err
		}, int64(3)),
	)

	DescribeTable("rejects a non-positive count without calling the callable",
		func(count int) {
			calls := 0

			_, err := timer.Average[float64](period.Second, count, rampingWork(&calls))
			Expect(errors.Is(err, timer.ErrInvalidCount)).To(BeTrue())
			Expect(calls).To(BeZero())
		},
		Entry("zero", 0),
		Entry("negative", -3),
	)

	It("stops at the first failing run and returns its error", func() {
		calls := 0

		d, err := timer.AverageDuration[float64](period.Second, 10, func() error {
			calls++
			if calls == 3 {
				return errBoom
			}

			return nil
		})

		Expect(err).To(BeIdenticalTo(errBoom))
		Expect(calls).To(Equal(3))
		Expect(d).To(Equal(timer.Duration[float64]{}))
	})

	It("tags the mean with the requested period", func() {
		calls := 0

		d, err := timer.AverageDuration[float64](period.Micro, 4, rampingWork(&calls), timer.WithClock(clock))
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Period).To(Equal(period.Micro))
		Expect(d.Count).To(BeNumerically("==", 2500))
	})

	It("averages a busy loop on the system clock", func() {
		busy := timer.Func(func() {
			x := 0
			for i := range 200_000 {
				x += i
			}

			sink = x
		})

		avg, err := timer.Average[float64](period.Micro, 5, busy)
		Expect(err).NotTo(HaveOccurred())
		Expect(avg).To(BeNumerically(">", 0))
	})
})
