package querycatalog

import (
	"context"
	"fmt"
	"io"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/metrics"
)

// Backend runs one query spec against the live store. It returns nil when
// the query succeeds, an error wrapping ErrFailedPrecondition (ideally an
// *IndexMissingError) when the index is missing, and any other error when
// the store could not be reached.
type Backend interface {
	Check(ctx context.Context, spec QuerySpec) error
}

type Outcome int

const (
	Ready Outcome = iota
	IndexMissing
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Ready:
		return "ready"
	case IndexMissing:
		return "index_missing"
	default:
		return "failed"
	}
}

type Result struct {
	Spec       QuerySpec
	Outcome    Outcome
	URLs       []string
	Statements []string
	Err        error
}

type Report struct {
	Results []Result
}

// OK is true when every spec is Ready.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Outcome != Ready {
			return false
		}
	}
	return true
}

func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

type Verifier struct {
	backend Backend
	specs   []QuerySpec
	metrics *metrics.Metrics
}

// NewVerifier checks specs, or the whole catalog when none are given.
func NewVerifier(backend Backend, m *metrics.Metrics, specs ...QuerySpec) *Verifier {
	if len(specs) == 0 {
		specs = Catalog()
	}
	return &Verifier{backend: backend, specs: specs, metrics: m}
}

// Verify checks every spec in order. A failing spec never stops the run.
func (v *Verifier) Verify(ctx context.Context) Report {
	report := Report{Results: make([]Result, 0, len(v.specs))}
	for _, spec := range v.specs {
		res := v.check(ctx, spec)
		v.metrics.ObserveCatalogCheck(spec.Name, res.Outcome.String())
		report.Results = append(report.Results, res)
	}
	return report
}

func (v *Verifier) check(ctx context.Context, spec QuerySpec) Result {
	err := v.backend.Check(ctx, spec)
	if err == nil {
		logger.Debugf(ctx, "query %s is ready", spec.Name)
		return Result{Spec: spec, Outcome: Ready}
	}
	if missing, ok := asIndexMissing(spec, err); ok {
		logger.Warnf(ctx, "query %s has no matching index", spec.Name)
		return Result{
			Spec:       spec,
			Outcome:    IndexMissing,
			URLs:       missing.URLs,
			Statements: missing.Statements,
			Err:        err,
		}
	}
	logger.Errorf(ctx, "query %s could not be verified: %v", spec.Name, err)
	return Result{Spec: spec, Outcome: Failed, Err: err}
}

// Print writes a human-readable summary for operators.
func (r Report) Print(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		switch res.Outcome {
		case Ready:
			_, err = fmt.Fprintf(w, "✅  %-26s %s\n", res.Spec.Name, res.Spec)
		case IndexMissing:
			_, err = fmt.Fprintf(w, "❌  %-26s %s\n", res.Spec.Name, res.Spec)
			for _, stmt := range res.Statements {
				if err == nil {
					_, err = fmt.Fprintf(w, "      run:  %s;\n", stmt)
				}
			}
			for _, u := range res.URLs {
				if err == nil {
					_, err = fmt.Fprintf(w, "      open: %s\n", u)
				}
			}
		default:
			_, err = fmt.Fprintf(w, "⚠️  %-26s %s\n      error: %v\n", res.Spec.Name, res.Spec, res.Err)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d ready, %d missing, %d failed\n", r.Count(Ready), r.Count(IndexMissing), r.Count(Failed))
	return err
}
