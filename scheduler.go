package spirograph

// Scheduler is the host's frame-scheduling primitive: after RequestFrame the
// host must call Session.Frame once, before its next repaint.
//
// The animator never requests a second frame while one is pending, so a
// Scheduler does not need to deduplicate.
type Scheduler interface {
	RequestFrame()
}

// SchedulerFunc adapts an ordinary function to Scheduler.
type SchedulerFunc func()

// RequestFrame implements Scheduler.
func (f SchedulerFunc) RequestFrame() { f() }

// FrameQueue is a Scheduler for hosts without a display loop, such as
// tests and the headless renderer. It counts requested frames; the host
// drains it with Next.
type FrameQueue struct {
	pending   int
	requested int
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame() {
	q.pending++
	q.requested++
}

// Next consumes one pending frame and reports whether there was one.
func (q *FrameQueue) Next() bool {
	if q.pending == 0 {
		return false
	}
	q.pending--
	return true
}

// Pending returns the number of frames requested but not yet consumed.
func (q *FrameQueue) Pending() int { return q.pending }

// Requested returns the total number of frames ever requested.
func (q *FrameQueue) Requested() int { return q.requested }
