package diag

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/symsolve/internal/jast"
)

// Reporter collects diagnostics. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report is a single diagnostic entry.
type Report struct {
	Phase   ReportPhase `yaml:"phase"`
	Rule    Rule        `yaml:"rule"`
	Node    string      `yaml:"node"`
	Span    jast.Span   `yaml:"-"`
	Message string      `yaml:"message"`
}

// ReportPhase marks the checker pass that produced a report.
type ReportPhase int

const (
	reportPhaseInvalid ReportPhase = iota
	ReportUses                     // name uses
	ReportDeclarations             // local declarations
)

func (p ReportPhase) String() string {
	switch p {
	case ReportUses:
		return "uses"
	case ReportDeclarations:
		return "declarations"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

func (p ReportPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a reporter that sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a diagnostic for the node under the bound phase.
func (rp *ReporterPhase) Report(rule Rule, message string, node *jast.Node) {
	rp.parent.Report(Report{
		Phase:   rp.phase,
		Rule:    rule,
		Node:    node.String(),
		Span:    node.Span(),
		Message: message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// PrintSummary prints all collected reports in a compact, human-readable form.
func (r *Reporter) PrintSummary(w io.Writer) error {
	for _, rep := range r.Reports() {
		if _, err := fmt.Fprintf(w, "[%s] %s: %s (%s)\n", rep.Phase, rep.Rule, rep.Message, rep.Node); err != nil {
			return fmt.Errorf("print report: %w", err)
		}
	}

	return nil
}

// WriteYAML writes all collected reports as a YAML list.
func (r *Reporter) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Reports()); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush reports: %w", err)
	}

	return nil
}
