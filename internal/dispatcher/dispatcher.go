package dispatcher

import (
	"context"
	"time"

	"github.com/google/uuid"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/model"
	pkgLog "delete-on-check/pkg/log"
)

// Start registers with both notifiers and runs the event loop until ctx is done
// or Stop is called.
func (d *Dispatcher) Start(ctx context.Context, saved FileSavedNotifier, edited BufferEditedNotifier) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return ErrAlreadyStarted
	}
	d.running = true
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	stop, done := d.stop, d.done

	// Subscribed under mu so a concurrent Stop always sees the unsubscribers.
	d.unsubs = []func(){
		saved.OnFileSaved(d.fileSaved),
		edited.OnBufferEdited(d.bufferEdited),
	}
	d.mu.Unlock()

	go d.loop(ctx, stop, done)

	d.l.Infof(ctx, "dispatcher: started (delay %s)", d.delay)
	return nil
}

// Stop deregisters both callbacks, cancels pending deferred checks and waits for
// the loop to exit. Queued events that have not run yet are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	unsubs := d.unsubs
	d.unsubs = nil
	for t := range d.timers {
		t.Stop()
	}
	d.timers = map[*time.Timer]struct{}{}
	d.queue = nil
	close(d.stop)
	done := d.done
	d.mu.Unlock()

	for _, u := range unsubs {
		if u != nil {
			u()
		}
	}
	<-done
}

func (d *Dispatcher) fileSaved(ctx context.Context, path, content string) {
	d.post(task{kind: taskFileSaved, ctx: ctx, ev: d.newEvent(model.EventFileSaved, path, content)})
}

func (d *Dispatcher) bufferEdited(ctx context.Context, path string) {
	d.post(task{kind: taskBufferEdited, ctx: ctx, ev: d.newEvent(model.EventBufferEdited, path, "")})
}

func (d *Dispatcher) newEvent(kind model.EventKind, path, content string) model.Event {
	return model.Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		Path:    path,
		Content: content,
		At:      d.now(),
	}
}

// post never blocks, so host callbacks (including ones fired by our own edits
// from inside the loop) are safe.
func (d *Dispatcher) post(t task) {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, t)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) loop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			go d.Stop()
			<-stop
			return
		case <-stop:
			return
		case <-d.wake:
		}

		for {
			t, ok := d.next()
			if !ok {
				break
			}
			d.handle(t)
		}
	}
}

func (d *Dispatcher) next() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running || len(d.queue) == 0 {
		return task{}, false
	}
	t := d.queue[0]
	d.queue[0] = task{}
	d.queue = d.queue[1:]
	return t, true
}

func (d *Dispatcher) handle(t task) {
	ctx := t.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = pkgLog.WithTraceID(context.WithoutCancel(ctx), t.ev.ID)

	switch t.kind {
	case taskFileSaved:
		d.handleFileSaved(ctx, t.ev)
	case taskBufferEdited:
		d.handleBufferEdited(ctx, t.ev)
	case taskDeferredCheck:
		d.runDeferredCheck(ctx, t.ev)
	}
}

func (d *Dispatcher) handleFileSaved(ctx context.Context, ev model.Event) {
	if !checklist.IsEnabled(ev.Content) {
		return
	}

	if active, ok := d.host.ActiveDocumentPath(); ok && active == ev.Path {
		if buf, ok := d.host.ActiveBuffer(); ok {
			if n := d.editor.ApplyChecked(ctx, buf); n > 0 {
				d.l.Infof(ctx, "dispatcher: removed %d checked task(s) from open buffer %s", n, ev.Path)
			}
			return
		}
	}

	if _, err := d.files.Rewrite(ctx, ev.Path, ev.Content); err != nil {
		d.l.Errorf(ctx, "dispatcher: rewrite %s failed: %v", ev.Path, err)
	}
}

func (d *Dispatcher) handleBufferEdited(ctx context.Context, ev model.Event) {
	// Edits only count while some document is focused; the edited buffer need not
	// be the focused one.
	if _, ok := d.host.ActiveDocumentPath(); !ok {
		return
	}
	buf, ok := d.host.Buffer(ev.Path)
	if !ok || !checklist.IsEnabled(buf.Value()) {
		return
	}

	// The timer carries only the path; content is read again when it fires.
	d.schedule(model.Event{ID: ev.ID, Kind: ev.Kind, Path: ev.Path, At: ev.At})
}

func (d *Dispatcher) schedule(ev model.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, t)
		d.mu.Unlock()
		d.post(task{kind: taskDeferredCheck, ev: ev})
	})
	d.timers[t] = struct{}{}
}

func (d *Dispatcher) runDeferredCheck(ctx context.Context, ev model.Event) {
	buf, ok := d.host.Buffer(ev.Path)
	if !ok {
		return
	}
	if !checklist.IsEnabled(buf.Value()) {
		return
	}
	if n := d.editor.ApplyChecked(ctx, buf); n > 0 {
		d.l.Infof(ctx, "dispatcher: removed %d checked task(s) from %s", n, ev.Path)
	}
}
