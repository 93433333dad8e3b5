package game

// LineID identifies one visual line segment owned by the renderer.
type LineID int

// LineRenderer is the drawing surface the tracker pushes line segments to.
// Implementations must tolerate ids they no longer know about.
type LineRenderer interface {
	DrawLine(from, to Point) LineID
	MoveLine(id LineID, to Point)
	DestroyLine(id LineID)
}

type nopRenderer struct{}

func (nopRenderer) DrawLine(from, to Point) LineID { return 0 }
func (nopRenderer) MoveLine(id LineID, to Point)   {}
func (nopRenderer) DestroyLine(id LineID)          {}

// Connection is a completed link between two endpoints. Correctness is
// judged only at check time, never at draw time.
type Connection struct {
	Start *Endpoint
	End   *Endpoint
	Line  LineID
}

type pendingLine struct {
	start *Endpoint
	line  LineID
}

// Tracker manages at most one in-progress drag line plus the set of
// completed connections. Each endpoint appears in at most one connection.
// Every operation is a defensive no-op on invalid or missing references:
// spurious input events must never fault the session.
type Tracker struct {
	renderer    LineRenderer
	pending     *pendingLine
	connections []Connection
}

func NewTracker(renderer LineRenderer) *Tracker {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Tracker{renderer: renderer}
}

// BeginLine starts a new in-progress line anchored at the start endpoint,
// discarding any pending unfinished line first.
func (t *Tracker) BeginLine(start *Endpoint) {
	if start == nil {
		return
	}
	if t.pending != nil {
		t.renderer.DestroyLine(t.pending.line)
		t.pending = nil
	}
	line := t.renderer.DrawLine(start.Anchor, start.Anchor)
	t.pending = &pendingLine{start: start, line: line}
}

// UpdateLine moves the free end of the in-progress line to the cursor.
func (t *Tracker) UpdateLine(to Point) {
	if t.pending == nil {
		return
	}
	t.renderer.MoveLine(t.pending.line, to)
}

// TryComplete finalizes the in-progress line onto the target endpoint. It
// fails when no line is pending, the target is missing, the target is the
// line's own start, or the target is already connected. On failure the
// pending line stays alive; EndLine decides its fate when the gesture ends.
func (t *Tracker) TryComplete(target *Endpoint) bool {
	if t.pending == nil || target == nil {
		return false
	}
	if target == t.pending.start {
		return false
	}
	if t.IsConnected(target) {
		return false
	}
	t.renderer.MoveLine(t.pending.line, target.Anchor)
	t.connections = append(t.connections, Connection{
		Start: t.pending.start,
		End:   target,
		Line:  t.pending.line,
	})
	t.pending = nil
	return true
}

// EndLine is called when the drag gesture ends regardless of outcome. A
// line already finalized by TryComplete is left alone; anything still
// pending is destroyed.
func (t *Tracker) EndLine() {
	if t.pending == nil {
		return
	}
	t.renderer.DestroyLine(t.pending.line)
	t.pending = nil
}

// BreakConnection removes the connection the endpoint participates in, if
// any, and destroys its line.
func (t *Tracker) BreakConnection(ep *Endpoint) bool {
	if ep == nil {
		return false
	}
	for i, conn := range t.connections {
		if conn.Start != ep && conn.End != ep {
			continue
		}
		t.renderer.DestroyLine(conn.Line)
		t.connections = append(t.connections[:i], t.connections[i+1:]...)
		return true
	}
	return false
}

func (t *Tracker) IsConnected(ep *Endpoint) bool {
	if ep == nil {
		return false
	}
	for _, conn := range t.connections {
		if conn.Start == ep || conn.End == ep {
			return true
		}
	}
	return false
}

func (t *Tracker) Count() int {
	return len(t.connections)
}

func (t *Tracker) Connections() []Connection {
	conns := make([]Connection, len(t.connections))
	copy(conns, t.connections)
	return conns
}

// ClearAll destroys every completed connection. A pending in-progress line
// is untouched; callers clear at round boundaries where none should exist.
func (t *Tracker) ClearAll() {
	for _, conn := range t.connections {
		t.renderer.DestroyLine(conn.Line)
	}
	t.connections = nil
}
