package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"weak"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/eventsink"
	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/library"
	"github.com/specialistvlad/graphflow/internal/message"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/schema"
)

// worker is one member of the pool. It never holds the Library strongly.
type worker struct {
	id      int
	library weak.Pointer[library.Library]
	d       *dispatcher
}

// loop is the core processing loop for a single concurrent worker.
func (w *worker) loop(ctx context.Context) {
	logger := ctxlog.FromContext(ctx).With("workerID", w.id)
	logger.Debug("Worker started.")
	defer logger.Debug("Worker finished.")

	for {
		msg := <-w.d.queue
		w.d.metrics.QueueDepth(len(w.d.queue))
		switch m := msg.(type) {
		case message.Shutdown:
			return
		case message.Instruction:
			if !w.handle(ctx, logger, m) {
				return
			}
		default:
			logger.Error("Unknown message type dropped.", "type", fmt.Sprintf("%T", msg))
		}
	}
}

// outcome is what handle reports to the journal, metrics and run counters.
type outcome struct {
	kind  journal.Outcome
	fired []string
	err   error
}

// handle processes one instruction. It returns false when the worker must
// stop because the Library is gone.
func (w *worker) handle(ctx context.Context, logger *slog.Logger, m message.Instruction) bool {
	run := w.d.run(m.Context.RunID)
	if run == nil {
		logger.Warn("Instruction for unknown run dropped.", "run_id", m.Context.RunID, "hook", m.Hook())
		return true
	}
	defer run.release()

	node := m.Context.Node
	logger = logger.With("run_id", run.ID(), "hook", m.Hook())
	start := time.Now()
	res := w.process(ctx, logger, run, m)
	w.record(ctx, logger, run, node, m.Command, res, time.Since(start))
	return !errors.Is(res.err, errLibraryGone)
}

var errLibraryGone = errors.New("library released")

func (w *worker) process(ctx context.Context, logger *slog.Logger, run *Run, m message.Instruction) outcome {
	if run.Cancelled() {
		return outcome{kind: journal.OutcomeDropped, err: context.Canceled}
	}

	lib := w.library.Value()
	if lib == nil {
		logger.Warn("Library released; worker stopping.")
		return outcome{kind: journal.OutcomeDropped, err: errLibraryGone}
	}

	node := m.Context.Node
	template := node.TemplateID()
	if _, err := lib.Command(template, m.Command); err != nil {
		logger.Error("Malformed instruction dropped.", "error", err)
		return outcome{kind: journal.OutcomeDropped, err: err}
	}
	proc, ok := w.d.router.Route(template)
	if !ok {
		logger.Error("No processor registered for template; instruction dropped.", "template", template)
		return outcome{kind: journal.OutcomeDropped, err: errors.New("no processor for template " + string(template))}
	}

	if !processor.IsReentrant(proc) {
		unlock := run.lock(node.Key())
		defer unlock()
	}

	logger.Debug("Worker picked up instruction.")
	eval := newEvaluation(run.ID(), m.Context.Graph, w.d.router, w.d.out)
	fired, err := proc.Execute(ctx, eval.request(node), m.Command)
	switch {
	case errors.Is(err, processor.ErrSkip):
		logger.Warn("Instruction skipped.", "error", err)
		return outcome{kind: journal.OutcomeSkipped, err: err}
	case err != nil:
		logger.Error("Instruction failed.", "error", err)
		return outcome{kind: journal.OutcomeFailed, err: err}
	}

	return outcome{kind: journal.OutcomeExecuted, fired: w.routeEvents(ctx, logger, lib, run, m, fired)}
}

// routeEvents enqueues one Instruction per downstream Command of every
// fired Event and returns the events that were routed.
func (w *worker) routeEvents(ctx context.Context, logger *slog.Logger, lib *library.Library, run *Run, m message.Instruction, fired []schema.PropertyID) []string {
	node := m.Context.Node
	g := m.Context.Graph
	routed := make([]string, 0, len(fired))

	for _, id := range fired {
		ref, err := lib.Event(node.TemplateID(), id)
		if err != nil {
			logger.Error("Processor fired an undeclared event; ignored.", "event", id, "error", err)
			continue
		}
		hook := graph.NewHook(node, ref.Property)
		targets := g.Edges().Outputs(hook)
		targetKeys := make([]string, 0, len(targets))
		for _, t := range targets {
			if !t.Property.IsCommand() {
				continue
			}
			target, ok := g.Node(t.Instance)
			if !ok {
				logger.Error("Edge target missing from graph; ignored.", "target", t.String())
				continue
			}
			run.add(1)
			w.d.route(run, message.Instruction{
				Context: message.Context{RunID: run.ID(), Graph: g, Node: target},
				Command: t.Property.ID(),
			})
			targetKeys = append(targetKeys, t.String())
		}

		logger.Debug("Event routed.", "event", hook.String(), "targets", targetKeys)
		w.d.metrics.EventFired(string(node.TemplateID()), string(id))
		w.d.sink.Publish(ctx, eventsink.Event{
			RunID:    run.ID(),
			Instance: node.Key(),
			Template: string(node.TemplateID()),
			Event:    string(id),
			Targets:  targetKeys,
			At:       time.Now(),
		})
		routed = append(routed, string(id))
	}
	return routed
}

func (w *worker) record(ctx context.Context, logger *slog.Logger, run *Run, node *graph.PlacedNode, command schema.PropertyID, res outcome, took time.Duration) {
	switch res.kind {
	case journal.OutcomeExecuted:
		run.executed.Add(1)
	case journal.OutcomeSkipped:
		run.skipped.Add(1)
	case journal.OutcomeDropped:
		run.dropped.Add(1)
	case journal.OutcomeFailed:
		run.failed.Add(1)
	}
	w.d.metrics.Instruction(string(node.TemplateID()), string(res.kind), took)

	entry := journal.Entry{
		RunID:    run.ID(),
		Instance: node.Key(),
		Template: string(node.TemplateID()),
		Command:  string(command),
		Outcome:  res.kind,
		Fired:    res.fired,
		At:       time.Now().UTC(),
	}
	if res.err != nil {
		entry.Error = res.err.Error()
	}
	if err := w.d.journal.Append(ctx, entry); err != nil {
		logger.Warn("Journal append failed.", "error", err)
	}
}
