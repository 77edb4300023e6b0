// Package report defines the result sink contract every dataflow
// analysis reports through, and a default human-readable sink.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/labm1997/monoflow/cfg"
	"github.com/labm1997/monoflow/dataflow"
	"github.com/labm1997/monoflow/internal/fset"
)

// Sink receives one Report call per label once a solve has reached its
// fixpoint. Report has no return value: a sink that performs I/O is
// responsible for handling its own errors, per the framework's
// treatment of sink invocations as infallible best-effort.
type Sink[F any] interface {
	Report(label cfg.Label, entry, exit F)
}

// Emit drives sink with the entry/exit fact sets of res, once per label
// in labels, visited in ascending label order. The order is this
// function's own choice for reproducible output; the underlying
// analysis result is set-valued and order-independent.
func Emit[F any](res dataflow.Result[F], labels []cfg.Label, sink Sink[F]) {
	sorted := append([]cfg.Label(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, l := range sorted {
		sink.Report(l, res.Entry[l], res.Exit[l])
	}
}

// Printer is the default Sink: it writes one "label: entry -> exit"
// line per label to an underlying io.Writer, building the line with a
// bytes.Buffer rather than repeated string concatenation.
//
// Printer's fact type is always *fset.Set[T], since that is the only
// fact representation this module's analyses produce; a caller who
// wants to report some other fact type implements Sink[F] directly.
type Printer[T comparable] struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter[T comparable](w io.Writer) *Printer[T] { return &Printer[T]{w: w} }

// Report writes one line describing label's entry and exit fact sets.
func (p *Printer[T]) Report(label cfg.Label, entry, exit *fset.Set[T]) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d: %v -> %v\n", label, entry.Items(), exit.Items())
	buf.WriteTo(p.w)
}
