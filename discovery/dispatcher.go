package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"hostscan/collector"
	"hostscan/models"
	"hostscan/report"

	"github.com/fatih/color"
)

// ErrUnknownMode is returned for any selector outside the named modes
var ErrUnknownMode = errors.New("unknown discovery mode")

// Mode selects which collectors a run invokes
type Mode string

const (
	ModeSystem  Mode = "system"
	ModeProcess Mode = "process"
	ModeTop     Mode = "top"
	ModeDisk    Mode = "disk"
	ModeNetwork Mode = "network"
	ModeAll     Mode = "all"
)

// Modes lists every accepted selector
var Modes = []Mode{ModeSystem, ModeProcess, ModeTop, ModeDisk, ModeNetwork, ModeAll}

// File name prefixes per mode
const (
	PrefixSystem  = "systeminfo"
	PrefixProcess = "processinfo"
	PrefixTop     = "topinfo"
	PrefixDisk    = "diskinfo"
	PrefixNetwork = "netinfo"
)

func (m Mode) String() string { return string(m) }

// ParseMode validates s against the accepted selectors
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q, must be one of %s", ErrUnknownMode, s, ModeNames())
}

// ModeNames joins the accepted selectors for help text
func ModeNames() string {
	names := make([]string, 0, len(Modes))
	for _, m := range Modes {
		names = append(names, string(m))
	}
	return strings.Join(names, "|")
}

// Result describes one file written by a run
type Result struct {
	Mode    Mode
	Path    string
	Records int
	Skipped int
}

type stepOutput struct {
	one     models.Record
	records []models.Record
	skipped int
}

type step struct {
	mode    Mode
	banner  string
	prefix  string
	fields  []string
	collect func(ctx context.Context, facts *models.SystemFacts) (stepOutput, error)
}

// Dispatcher runs the collector and writer pairs behind a mode
type Dispatcher struct {
	collector *collector.Collector
	writer    *report.Writer
	out       io.Writer
	logger    *slog.Logger
}

func New(c *collector.Collector, w *report.Writer, out io.Writer, logger *slog.Logger) *Dispatcher {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{collector: c, writer: w, out: out, logger: logger}
}

// Run executes mode. The base system facts are read first and any failure
// there aborts the run. In ModeAll every step runs even if an earlier one
// failed; a network failure is only reported, other failures are joined into
// the returned error.
func (d *Dispatcher) Run(ctx context.Context, mode Mode) ([]Result, error) {
	steps := d.stepsFor(mode)
	if steps == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	d.banner("Getting base system information")
	facts, err := d.collector.System(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get base system information: %w", err)
	}

	var (
		results []Result
		errs    []error
	)
	for _, s := range steps {
		res, err := d.runStep(ctx, s, facts)
		if err == nil {
			results = append(results, res)
			continue
		}

		if mode != ModeAll {
			return results, err
		}
		if errors.Is(err, collector.ErrElevatedPrivilege) {
			color.New(color.FgYellow).Fprintf(d.out, "Error: %v\n", collector.ErrElevatedPrivilege)
			d.logger.Warn("network discovery failed", slog.Any("error", err))
			continue
		}
		d.logger.Error("discovery step failed", slog.String("mode", s.mode.String()), slog.Any("error", err))
		errs = append(errs, fmt.Errorf("%s: %w", s.mode, err))
	}

	return results, errors.Join(errs...)
}

func (d *Dispatcher) runStep(ctx context.Context, s step, facts *models.SystemFacts) (Result, error) {
	if s.banner != "" {
		d.banner(s.banner)
	}
	output, err := s.collect(ctx, facts)
	if err != nil {
		return Result{}, err
	}

	path := d.writer.Path(s.prefix, facts.Node)
	if output.one != nil {
		err = d.writer.WriteOne(path, s.fields, output.one)
		output.records = []models.Record{output.one}
	} else {
		err = d.writer.WriteAll(path, s.fields, output.records)
	}
	if err != nil {
		return Result{}, err
	}

	d.logger.Info("discovery written",
		slog.String("mode", s.mode.String()),
		slog.String("path", path),
		slog.Int("records", len(output.records)),
		slog.Int("skipped", output.skipped))

	return Result{Mode: s.mode, Path: path, Records: len(output.records), Skipped: output.skipped}, nil
}

func (d *Dispatcher) banner(msg string) {
	color.New(color.FgCyan).Fprintf(d.out, "*** %s ***\n", msg)
}

// stepsFor returns nil for a mode outside Modes
func (d *Dispatcher) stepsFor(mode Mode) []step {
	system := step{
		mode:   ModeSystem,
		prefix: PrefixSystem,
		fields: models.SystemFields,
		collect: func(_ context.Context, facts *models.SystemFacts) (stepOutput, error) {
			return stepOutput{one: facts}, nil
		},
	}
	process := step{
		mode:   ModeProcess,
		banner: "Create a list of all running processes",
		prefix: PrefixProcess,
		fields: models.ProcessFields,
		collect: func(ctx context.Context, _ *models.SystemFacts) (stepOutput, error) {
			recs, skipped := d.collector.Processes(ctx)
			return stepOutput{records: models.Records(recs), skipped: len(skipped)}, nil
		},
	}
	top := step{
		mode:   ModeTop,
		banner: fmt.Sprintf("Top %d process with highest memory usage", collector.TopLimit),
		prefix: PrefixTop,
		fields: models.TopMemoryFields,
		collect: func(ctx context.Context, _ *models.SystemFacts) (stepOutput, error) {
			recs, skipped := d.collector.TopMemory(ctx)
			return stepOutput{records: models.Records(recs), skipped: len(skipped)}, nil
		},
	}
	disk := step{
		mode:   ModeDisk,
		banner: "Getting disk information",
		prefix: PrefixDisk,
		fields: models.DiskFields,
		collect: func(ctx context.Context, _ *models.SystemFacts) (stepOutput, error) {
			recs, skipped, err := d.collector.Disks(ctx)
			if err != nil {
				return stepOutput{}, err
			}
			return stepOutput{records: models.Records(recs), skipped: len(skipped)}, nil
		},
	}
	network := step{
		mode:   ModeNetwork,
		banner: "Getting network information",
		prefix: PrefixNetwork,
		fields: models.NetworkFields,
		collect: func(ctx context.Context, _ *models.SystemFacts) (stepOutput, error) {
			recs, skipped, err := d.collector.Connections(ctx)
			if err != nil {
				return stepOutput{}, err
			}
			return stepOutput{records: models.Records(recs), skipped: len(skipped)}, nil
		},
	}

	switch mode {
	case ModeSystem:
		return []step{system}
	case ModeProcess:
		return []step{process}
	case ModeTop:
		return []step{top}
	case ModeDisk:
		return []step{disk}
	case ModeNetwork:
		return []step{network}
	case ModeAll:
		return []step{system, process, top, disk, network}
	default:
		return nil
	}
}
