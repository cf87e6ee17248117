package workspace

import (
	"context"
	"sort"

	"delete-on-check/internal/editor"
	"delete-on-check/internal/model"
	"delete-on-check/internal/vault"
)

// Open loads path from the vault into a buffer. Opening an open document is a no-op.
func (w *Workspace) Open(ctx context.Context, path string) (model.Document, error) {
	p, err := vault.Clean(path)
	if err != nil {
		return model.Document{}, err
	}

	w.mu.RLock()
	doc, ok := w.docs[p]
	w.mu.RUnlock()
	if ok {
		return w.snapshot(doc), nil
	}

	content, err := w.store.Read(ctx, p)
	if err != nil {
		return model.Document{}, err
	}

	w.mu.Lock()
	if doc, ok = w.docs[p]; !ok {
		buf := editor.NewBuffer(content)
		doc = &document{path: p, buf: buf, savedRev: buf.Revision()}
		w.docs[p] = doc
	}
	w.mu.Unlock()

	w.l.Infof(ctx, "workspace: opened %s", p)
	return w.snapshot(doc), nil
}

// Activate makes path the active document, opening it first if needed.
func (w *Workspace) Activate(ctx context.Context, path string) (model.Document, error) {
	doc, err := w.Open(ctx, path)
	if err != nil {
		return model.Document{}, err
	}

	w.mu.Lock()
	_, stillOpen := w.docs[doc.Path]
	if stillOpen {
		w.active = doc.Path
	}
	w.mu.Unlock()
	if !stillOpen {
		return model.Document{}, ErrNotOpen
	}

	doc.Active = true
	return doc, nil
}

// Close drops the buffer without saving. Closing the active document leaves no
// document active.
func (w *Workspace) Close(ctx context.Context, path string) error {
	p, err := vault.Clean(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.docs[p]; !ok {
		return ErrNotOpen
	}
	delete(w.docs, p)
	if w.active == p {
		w.active = ""
	}
	return nil
}

// Edit replaces the text between from and to in an open document.
func (w *Workspace) Edit(ctx context.Context, path string, from, to model.Position, text string) (model.Document, error) {
	buf, err := w.tracked(path)
	if err != nil {
		return model.Document{}, err
	}
	buf.replaceRange(ctx, from, to, text)
	return w.Document(buf.path)
}

// SetContent replaces the whole buffer of an open document.
func (w *Workspace) SetContent(ctx context.Context, path, text string) (model.Document, error) {
	buf, err := w.tracked(path)
	if err != nil {
		return model.Document{}, err
	}
	buf.SetValue(text)
	w.notifyEdited(ctx, buf.path)
	return w.Document(buf.path)
}

// Save persists an open document's buffer.
func (w *Workspace) Save(ctx context.Context, path string) (model.Document, error) {
	doc, err := w.lookup(path)
	if err != nil {
		return model.Document{}, err
	}

	rev := doc.buf.Revision()
	if err := w.store.Write(ctx, doc.path, doc.buf.Value()); err != nil {
		return model.Document{}, err
	}

	w.mu.Lock()
	doc.savedRev = rev
	w.mu.Unlock()

	w.l.Infof(ctx, "workspace: saved %s", doc.path)
	return w.snapshot(doc), nil
}

// Document returns the current state of an open document.
func (w *Workspace) Document(path string) (model.Document, error) {
	doc, err := w.lookup(path)
	if err != nil {
		return model.Document{}, err
	}
	return w.snapshot(doc), nil
}

// Documents lists open documents by path.
func (w *Workspace) Documents() []model.Document {
	w.mu.RLock()
	docs := make([]*document, 0, len(w.docs))
	for _, d := range w.docs {
		docs = append(docs, d)
	}
	w.mu.RUnlock()

	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, w.snapshot(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ActiveDocument returns the state of the active document.
func (w *Workspace) ActiveDocument() (model.Document, error) {
	path, ok := w.ActiveDocumentPath()
	if !ok {
		return model.Document{}, ErrNoActiveDocument
	}
	return w.Document(path)
}

func (w *Workspace) ActiveDocumentPath() (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active, w.active != ""
}

func (w *Workspace) ActiveBuffer() (editor.Buffer, bool) {
	path, ok := w.ActiveDocumentPath()
	if !ok {
		return nil, false
	}
	return w.Buffer(path)
}

func (w *Workspace) Buffer(path string) (editor.Buffer, bool) {
	buf, err := w.tracked(path)
	if err != nil {
		return nil, false
	}
	return buf, true
}

func (w *Workspace) tracked(path string) (trackedBuffer, error) {
	doc, err := w.lookup(path)
	if err != nil {
		return trackedBuffer{}, err
	}
	return trackedBuffer{TextBuffer: doc.buf, path: doc.path, ws: w}, nil
}

func (w *Workspace) lookup(path string) (*document, error) {
	p, err := vault.Clean(path)
	if err != nil {
		return nil, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.docs[p]
	if !ok {
		return nil, ErrNotOpen
	}
	return doc, nil
}

func (w *Workspace) snapshot(doc *document) model.Document {
	w.mu.RLock()
	active := w.active == doc.path
	saved := doc.savedRev
	w.mu.RUnlock()

	return model.Document{
		Path:    doc.path,
		Content: doc.buf.Value(),
		Active:  active,
		Dirty:   doc.buf.Revision() != saved,
	}
}
