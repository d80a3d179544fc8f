package rewriter

import (
	"fmt"

	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/walker"
)

// Phase is one full post-order walk of the document applying a fixed list
// of rules to every schema.
type Phase int

const (
	// PhaseLocal applies local simplifications: literal folding, composite
	// collapse, map and enum normalization, null substitution.
	PhaseLocal Phase = iota
	// PhaseRestructure rewrites maps and unions into shapes with named
	// fields. It expects PhaseLocal output.
	PhaseRestructure
	// PhaseAnnotate tags mutually exclusive property groups.
	PhaseAnnotate
)

// DefaultPhases is the pipeline order used by Rewrite.
var DefaultPhases = []Phase{PhaseLocal, PhaseRestructure, PhaseAnnotate}

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLocal:
		return "local"
	case PhaseRestructure:
		return "restructure"
	case PhaseAnnotate:
		return "annotate"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// rule rewrites one schema in place. It returns a description of what it
// changed and whether it changed anything.
type rule struct {
	kind  RewriteType
	apply func(r *run, wc *walker.WalkContext, s *parser.Schema) (string, bool)
}

// rules returns the phase's rules in execution order. Later rules see the
// output of earlier ones on the same node.
func (p Phase) rules() []rule {
	switch p {
	case PhaseLocal:
		return []rule{
			{RewriteConstToEnum, (*run).constToEnum},
			{RewriteArrayDedup, (*run).arrayDedup},
			{RewriteCollapseComposite, (*run).collapseComposites},
			{RewriteAnyAdditionalProperties, (*run).anyAdditionalProperties},
			{RewriteEnumDedup, (*run).enumDedup},
			{RewriteNullType, (*run).nullType},
			{RewriteRedundantUnion, (*run).redundantUnion},
		}
	case PhaseRestructure:
		return []rule{
			{RewriteSingleMap, (*run).singleMap},
			{RewriteTitledAdditionalProperties, (*run).titledAdditionalProperties},
			{RewriteOneOfExclusive, (*run).oneOfExclusive},
		}
	case PhaseAnnotate:
		return []rule{
			{RewriteOneOfAnnotation, (*run).oneOfAnnotation},
		}
	}
	return nil
}

// run holds the state of one pipeline invocation. Nothing in it outlives
// the call to RewritePhases.
type run struct {
	cfg    *Rewriter
	doc    *parser.Document
	result *RewriteResult
	log    parser.Logger

	// generated maps a single-map value type to the component generated
	// for it.
	generated map[*parser.Schema]string
	// generatedNames holds the component names this run created.
	generatedNames map[string]bool

	injector *Injector
}

func newRun(cfg *Rewriter, doc *parser.Document) *run {
	log := cfg.Logger
	if log == nil {
		log = parser.NopLogger{}
	}
	r := &run{
		cfg: cfg,
		doc: doc,
		result: &RewriteResult{
			Document: doc,
			Rewrites: make([]Rewrite, 0),
		},
		log:            log,
		generated:      make(map[*parser.Schema]string),
		generatedNames: make(map[string]bool),
	}
	r.injector = NewInjector(doc)
	r.injector.DefaultWrapperKey = cfg.wrapperKey()
	r.injector.Logger = log
	return r
}

func (r *run) runPhase(p Phase) error {
	rules := p.rules()
	if rules == nil {
		return &oaserrors.ConfigError{Option: "phase", Value: int(p), Message: "unknown phase"}
	}
	enabled := rules[:0:0]
	for _, ru := range rules {
		if r.cfg.isEnabled(ru.kind) {
			enabled = append(enabled, ru)
		}
	}

	before := len(r.result.Rewrites)
	log := r.log.With("phase", p.String())
	log.Debug("phase start", "rules", len(enabled))

	err := walker.Walk(r.doc,
		walker.WithSchemaPostHandler(func(wc *walker.WalkContext, s *parser.Schema) {
			for _, ru := range enabled {
				if desc, ok := ru.apply(r, wc, s); ok {
					r.record(ru.kind, wc.JSONPointer, desc)
				}
			}
		}),
		walker.WithSchemaSkippedHandler(func(wc *walker.WalkContext, reason string, _ *parser.Schema) {
			if reason == "depth" {
				r.diagnose(SeverityWarning, "", wc.JSONPointer, "schema nested too deeply; not rewritten", nil)
			}
		}),
	)
	if err != nil {
		return err
	}

	log.Debug("phase end", "rewrites", len(r.result.Rewrites)-before)
	return nil
}

func (r *run) record(kind RewriteType, path, desc string) {
	r.result.Rewrites = append(r.result.Rewrites, Rewrite{
		Type:        kind,
		Path:        path,
		Description: desc,
	})
	r.log.Debug("rewrite applied", "rule", string(kind), "path", path)
}

func (r *run) diagnose(sev Severity, kind RewriteType, path, msg string, err error) {
	r.result.Diagnostics = append(r.result.Diagnostics, Diagnostic{
		Path:     path,
		Rule:     string(kind),
		Message:  msg,
		Severity: sev,
		Err:      err,
	})
	switch sev {
	case SeverityError:
		r.log.Warn(msg, "rule", string(kind), "path", path, "error", err)
	default:
		r.log.Debug(msg, "rule", string(kind), "path", path, "error", err)
	}
}

// resolve follows one reference level. A failure is recorded as a warning
// and reported as !ok so the caller skips its rewrite.
func (r *run) resolve(kind RewriteType, path string, s *parser.Schema) (*parser.Schema, bool) {
	target, err := r.doc.ResolveSchema(s)
	if err != nil {
		r.diagnose(SeverityWarning, kind, path, "unresolvable reference; rewrite skipped", err)
		return nil, false
	}
	return target, true
}
