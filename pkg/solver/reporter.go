package solver

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Reporter receives human-readable deductions ("breadcrumbs") as the engine
// works. It also owns the id-to-name maps used to render them.
//
// Breadcrumb wording is for people, not programs: it is not a stable
// interface and tests must not match on it. Propagators check Enabled
// before building a message, so a disabled reporter costs nothing.
type Reporter interface {
	VariableName(v Variable) string
	ConstraintName(id ConstraintID) string
	Emit(message string)
	Enabled() bool
}

// NopReporter discards everything. It is the reporter to use when the host
// only wants the verdict.
type NopReporter struct{}

// VariableName returns a positional placeholder name.
func (NopReporter) VariableName(v Variable) string { return "v" + strconv.Itoa(v) }

// ConstraintName returns a positional placeholder name.
func (NopReporter) ConstraintName(id ConstraintID) string { return "c" + strconv.Itoa(id) }

// Emit discards the message.
func (NopReporter) Emit(string) {}

// Enabled always reports false, so propagators skip message construction.
func (NopReporter) Enabled() bool { return false }

// TraceReporter renders breadcrumbs with host-supplied names and hands each
// message to a sink. Missing names fall back to positional placeholders, so
// a partially-filled table is fine.
type TraceReporter struct {
	VariableNames   []string
	ConstraintNames []string
	Sink            func(message string)
}

// NewTraceReporter returns a reporter that forwards messages to sink.
// A nil sink disables the reporter.
func NewTraceReporter(variableNames, constraintNames []string, sink func(string)) *TraceReporter {
	return &TraceReporter{
		VariableNames:   variableNames,
		ConstraintNames: constraintNames,
		Sink:            sink,
	}
}

// CollectSink appends every message to *dst.
func CollectSink(dst *[]string) func(string) {
	return func(message string) { *dst = append(*dst, message) }
}

// LogSink emits every message as a debug event on logger.
func LogSink(logger zerolog.Logger) func(string) {
	return func(message string) { logger.Debug().Msg(message) }
}

// VariableName returns the host-supplied name for v.
func (r *TraceReporter) VariableName(v Variable) string {
	if v >= 0 && v < len(r.VariableNames) {
		return r.VariableNames[v]
	}
	return "v" + strconv.Itoa(v)
}

// ConstraintName returns the host-supplied name for id.
func (r *TraceReporter) ConstraintName(id ConstraintID) string {
	if id >= 0 && id < len(r.ConstraintNames) {
		return r.ConstraintNames[id]
	}
	return "c" + strconv.Itoa(id)
}

// Emit forwards the message to the sink.
func (r *TraceReporter) Emit(message string) {
	if r.Sink != nil {
		r.Sink(message)
	}
}

// Enabled reports whether a sink is attached.
func (r *TraceReporter) Enabled() bool { return r.Sink != nil }
