// Package hostinfo describes the machine a benchmark ran on.
package hostinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"
)

// Info is a snapshot of the host. Zero fields mean the value was unavailable.
type Info struct {
	Hostname      string `json:"hostname,omitempty"      yaml:"hostname,omitempty"`
	OS            string `json:"os,omitempty"            yaml:"os,omitempty"`
	Platform      string `json:"platform,omitempty"      yaml:"platform,omitempty"`
	Kernel        string `json:"kernel,omitempty"        yaml:"kernel,omitempty"`
	Arch          string `json:"arch,omitempty"          yaml:"arch,omitempty"`
	CPUModel      string `json:"cpu_model,omitempty"     yaml:"cpu_model,omitempty"`
	LogicalCores  int    `json:"logical_cores,omitempty" yaml:"logical_cores,omitempty"`
	PhysicalCores int    `json:"physical_cores,omitempty" yaml:"physical_cores,omitempty"`
	MemoryTotal   uint64 `json:"memory_total,omitempty"  yaml:"memory_total,omitempty"`
}

// Collect gathers what it can. Probes run concurrently. A non-nil error lists
// the probes that failed; the returned Info is always usable.
func Collect(ctx context.Context) (*Info, error) {
	info := &Info{}

	var (
		g    errgroup.Group
		errs [5]error
	)

	g.Go(func() error {
		h, err := host.InfoWithContext(ctx)
		if err != nil {
			errs[0] = errors.Wrap(err, "reading host info")

			return nil
		}

		info.Hostname = h.Hostname
		info.OS = h.OS
		info.Platform = strings.TrimSpace(h.Platform + " " + h.PlatformVersion)
		info.Kernel = h.KernelVersion
		info.Arch = h.KernelArch

		return nil
	})

	g.Go(func() error {
		cpus, err := cpu.InfoWithContext(ctx)
		if err != nil {
			errs[1] = errors.Wrap(err, "reading cpu info")
		} else if len(cpus) > 0 {
			info.CPUModel = strings.TrimSpace(cpus[0].ModelName)
		}

		return nil
	})

	g.Go(func() error {
		n, err := cpu.CountsWithContext(ctx, true)
		if err != nil {
			errs[2] = errors.Wrap(err, "counting logical cores")
		} else {
			info.LogicalCores = n
		}

		return nil
	})

	g.Go(func() error {
		n, err := cpu.CountsWithContext(ctx, false)
		if err != nil {
			errs[3] = errors.Wrap(err, "counting physical cores")
		} else {
			info.PhysicalCores = n
		}

		return nil
	})

	g.Go(func() error {
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			errs[4] = errors.Wrap(err, "reading memory info")
		} else {
			info.MemoryTotal = vm.Total
		}

		return nil
	})

	// Probes never fail the group: a failed probe must not cancel or hide
	// the others, so each records its own error and all of them are joined.
	_ = g.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		return info, err
	}

	return info, nil
}

// Summary renders the snapshot as one line, skipping unknown parts.
func (i *Info) Summary() string {
	if i == nil {
		return ""
	}

	var parts []string

	if i.Hostname != "" {
		parts = append(parts, i.Hostname)
	}

	switch {
	case i.Platform != "" && i.Arch != "":
		parts = append(parts, fmt.Sprintf("%s (%s)", i.Platform, i.Arch))
	case i.Platform != "":
		parts = append(parts, i.Platform)
	case i.OS != "":
		parts = append(parts, i.OS)
	}

	if i.CPUModel != "" {
		parts = append(parts, i.CPUModel)
	}

	if i.LogicalCores > 0 {
		cores := fmt.Sprintf("%d threads", i.LogicalCores)
		if i.PhysicalCores > 0 {
			cores = fmt.Sprintf("%d cores/%d threads", i.PhysicalCores, i.LogicalCores)
		}

		parts = append(parts, cores)
	}

	if i.MemoryTotal > 0 {
		parts = append(parts, humanize.IBytes(i.MemoryTotal)+" RAM")
	}

	return strings.Join(parts, ", ")
}
