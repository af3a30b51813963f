package color_test

import (
	"bytes"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/benchtimer/internal/color"
)

func TestColor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Color Suite")
}

func env(pairs ...string) func(string) (string, bool) {
	m := map[string]string{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}

	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}

var _ = Describe("Allowed", func() {
	DescribeTable("reads the environment",
		func(flag bool, lookup func(string) (string, bool), want bool) {
			Expect(color.AllowedWith(flag, lookup)).To(Equal(want))
		},
		Entry("empty environment", false, env(), true),
		Entry("--no-color", true, env(), false),
		Entry("NO_COLOR set but empty", false, env("NO_COLOR", ""), false),
		Entry("NO_COLOR=1", false, env("NO_COLOR", "1"), false),
		Entry("CLICOLOR=0", false, env("CLICOLOR", "0"), false),
		Entry("CLICOLOR=1", false, env("CLICOLOR", "1"), true),
		Entry("TERM=dumb", false, env("TERM", "dumb"), false),
		Entry("TERM=xterm-256color", false, env("TERM", "xterm-256color"), true),
		Entry("--no-color beats CLICOLOR=1", true, env("CLICOLOR", "1"), false),
	)
})

var _ = Describe("Forced", func() {
	DescribeTable("reads FORCE_COLOR",
		func(lookup func(string) (string, bool), want bool) {
			Expect(color.ForcedWith(lookup)).To(Equal(want))
		},
		Entry("unset", env(), false),
		Entry("empty", env("FORCE_COLOR", ""), false),
		Entry("zero", env("FORCE_COLOR", "0"), false),
		Entry("one", env("FORCE_COLOR", "1"), true),
	)
})

var _ = Describe("IsTerminal", func() {
	It("is false for pipes, files and buffers", func() {
		r, w, err := os.Pipe()
		Expect(err).NotTo(HaveOccurred())

		defer r.Close()
		defer w.Close()

		f, err := os.CreateTemp(GinkgoT().TempDir(), "color-*")
		Expect(err).NotTo(HaveOccurred())

		defer f.Close()

		Expect(color.IsTerminal(w)).To(BeFalse())
		Expect(color.IsTerminal(f)).To(BeFalse())
		Expect(color.IsTerminal(&bytes.Buffer{})).To(BeFalse())
	})
})

var _ = Describe("Enabled", func() {
	It("honors FORCE_COLOR for buffers", func() {
		GinkgoT().Setenv("NO_COLOR", "")
		Expect(os.Unsetenv("NO_COLOR")).To(Succeed())
		GinkgoT().Setenv("CLICOLOR", "1")
		GinkgoT().Setenv("TERM", "xterm")

		GinkgoT().Setenv("FORCE_COLOR", "0")
		Expect(color.Enabled(&bytes.Buffer{}, false)).To(BeFalse())

		GinkgoT().Setenv("FORCE_COLOR", "1")
		Expect(color.Enabled(&bytes.Buffer{}, false)).To(BeTrue())
		Expect(color.Enabled(&bytes.Buffer{}, true)).To(BeFalse())
	})
})

var _ = Describe("NewTheme", func() {
	It("styles values when enabled", func() {
		theme := color.NewTheme(true)
		Expect(theme.Value.GetForeground()).NotTo(Equal(color.Theme{}.Value.GetForeground()))
		Expect(theme.Header.GetBold()).To(BeTrue())
		Expect(theme.Fail.GetBold()).To(BeTrue())
	})

	It("renders text unchanged when disabled", func() {
		theme := color.NewTheme(false)
		Expect(theme.Value.Render("1.5")).To(Equal("1.5"))
		Expect(theme.Command.Render("sleep 1")).To(Equal("sleep 1"))
		Expect(theme.Header.GetBold()).To(BeFalse())
	})
})
