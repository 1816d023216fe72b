// Package engine implements the playback and scrobbling state machine.
//
// The engine owns the current track pointer and a duration-based countdown
// for the loaded album. It reports "now playing" at each track start and
// scrobbles a track only when it plays to its natural end, or when the user
// skips forward, which deliberately counts as a completed play. Manual stop,
// previous, and direct selection abandon the current track without
// scrobbling.
package engine

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/scrobl/vinyl/internal/album"
	"github.com/scrobl/vinyl/internal/errmsg"
)

// ErrNoAlbumLoaded is returned when playback is commanded with no tracks.
var ErrNoAlbumLoaded = errors.New("no album loaded")

// closeTimeout bounds the wait for in-flight scrobble calls on shutdown.
const closeTimeout = 2 * time.Second

// ScrobbleClient submits listening activity to the scrobble service. Both
// calls are best-effort: the engine reports failures and moves on.
type ScrobbleClient interface {
	UpdateNowPlaying(t album.Track) error
	Scrobble(t album.Track, ts time.Time) error
}

// Engine is the playback state machine. All state is owned here and mutated
// under a single lock; timer callbacks and commands serialize on it.
type Engine struct {
	mu sync.RWMutex

	scrobbler ScrobbleClient
	sched     Scheduler
	now       func() time.Time
	log       *zap.Logger

	tracks  *album.TrackList
	current int
	playing bool
	elapsed int // whole seconds into the current track

	completion Handle // one-shot, fires handleTrackEnd
	ticker     Handle // recurring 1s progress tick
	arm        uint64 // bumped on every start/stop; timer callbacks carry the value they were armed with

	subs   []*Subscription
	subsMu sync.RWMutex

	calls  sync.WaitGroup // in-flight fire-and-forget service calls
	closed bool
}

// New creates an engine reporting to the given scrobble client.
func New(scrobbler ScrobbleClient, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		scrobbler: scrobbler,
		sched:     NewScheduler(),
		now:       time.Now,
		log:       log,
	}
}

// LoadAlbum replaces the current track list and resets the engine to the
// first track, stopped. An interrupted track is abandoned, not scrobbled.
func (e *Engine) LoadAlbum(tracks *album.TrackList) error {
	if tracks.Len() == 0 {
		return album.ErrEmptyAlbum
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.stateLocked()
	if e.playing {
		e.stopLocked()
	}
	e.tracks = tracks
	e.current = 0
	e.elapsed = 0

	if prev == StateIdle {
		e.publishState(StateIdle, StateStopped)
	}
	t, err := tracks.At(0)
	if err != nil {
		return err
	}
	e.publishTrack(t, 0, false)
	e.log.Info("album loaded",
		zap.String("album", t.Album),
		zap.String("artist", t.Artist),
		zap.Int("tracks", tracks.Len()))
	return nil
}

// Toggle starts playback when stopped and stops it when playing.
func (e *Engine) Toggle() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tracks.Len() == 0 {
		return ErrNoAlbumLoaded
	}
	if e.playing {
		e.stopLocked()
	} else {
		e.startLocked()
	}
	return nil
}

// Stop halts the countdown without advancing. No scrobble is emitted: a
// manual stop means the track was abandoned.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playing {
		e.stopLocked()
	}
}

// Next skips to the next track. While playing this counts as a completed
// play of the current track: it scrobbles and advances exactly as if the
// completion timer had fired. While stopped it is a no-op.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tracks.Len() == 0 {
		return ErrNoAlbumLoaded
	}
	if !e.playing {
		return nil
	}
	e.trackEndLocked()
	return nil
}

// Previous moves to the previous track, wrapping to the last. It never
// scrobbles; playback stops if it was running.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tracks.Len() == 0 {
		return ErrNoAlbumLoaded
	}
	if e.playing {
		e.stopLocked()
	}
	e.current--
	if e.current < 0 {
		e.current = e.tracks.Len() - 1
	}
	t, err := e.tracks.At(e.current)
	if err != nil {
		return err
	}
	e.publishTrack(t, e.current, false)
	return nil
}

// Select jumps to the track at index i without starting playback. It never
// scrobbles; playback stops if it was running. Fails without state change
// when i is out of range.
func (e *Engine) Select(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tracks.Len() == 0 {
		return ErrNoAlbumLoaded
	}
	t, err := e.tracks.At(i)
	if err != nil {
		return err
	}
	if e.playing {
		e.stopLocked()
	}
	e.current = i
	e.publishTrack(t, i, false)
	return nil
}

// startLocked begins the countdown for the current track: now-playing
// update, completion timer, 1s progress tick. Any timers armed for a prior
// track are cancelled first, and the arm counter is bumped so a prior timer
// that already fired and is blocked on the lock dies on the arm check
// instead of acting on the new track.
func (e *Engine) startLocked() {
	e.cancelTimersLocked()

	t, err := e.tracks.At(e.current)
	if err != nil {
		return
	}
	wasPlaying := e.playing
	e.playing = true
	e.elapsed = 0

	e.notifyNowPlaying(t)

	e.arm++
	arm := e.arm
	e.completion = e.sched.AfterFunc(time.Duration(t.DurationSeconds)*time.Second, func() { e.handleTrackEnd(arm) })
	e.ticker = e.sched.Every(time.Second, func() { e.tick(arm) })

	if !wasPlaying {
		e.publishState(StateStopped, StatePlaying)
	}
	e.publishTrack(t, e.current, true)
	e.publishProgress(0, t.DurationSeconds)
	e.log.Info("playback started",
		zap.String("track", t.Title),
		zap.Int("duration_seconds", t.DurationSeconds))
}

// stopLocked cancels both timers and resets the countdown. After it
// returns, a completion timer that already fired is neutralized by the
// arm check in handleTrackEnd.
func (e *Engine) stopLocked() {
	wasPlaying := e.playing
	e.cancelTimersLocked()
	e.arm++
	e.playing = false
	e.elapsed = 0

	if wasPlaying {
		e.publishState(StatePlaying, StateStopped)
		if t, err := e.tracks.At(e.current); err == nil {
			e.publishTrack(t, e.current, false)
		}
		e.log.Info("playback stopped")
	}
}

// handleTrackEnd fires when the completion timer elapses. A cancelled timer
// can still fire concurrently with a command; it then blocks on the lock and
// arrives here after the engine has moved on, possibly to another track that
// is itself playing. The arm check settles that race: only the timer from
// the current arming may act.
func (e *Engine) handleTrackEnd(arm uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if arm != e.arm {
		return
	}
	e.trackEndLocked()
}

// trackEndLocked treats the current track as a completed play: scrobble,
// then advance. On the last track the album ends instead of wrapping into
// another playthrough.
func (e *Engine) trackEndLocked() {
	if !e.playing {
		return
	}
	t, err := e.tracks.At(e.current)
	if err != nil {
		return
	}

	e.notifyScrobble(t, e.now())

	last := e.current == e.tracks.Len()-1
	e.current = (e.current + 1) % e.tracks.Len()
	if last {
		e.stopLocked()
		e.publishAlbumEnded()
		e.log.Info("end of album", zap.String("album", t.Album))
		return
	}
	e.startLocked()
}

// tick advances the elapsed counter and reports progress. The arm check
// keeps a stale tick from a superseded ticker off the new track's counter.
func (e *Engine) tick(arm uint64) {
	e.mu.Lock()
	if arm != e.arm || !e.playing {
		e.mu.Unlock()
		return
	}
	t, err := e.tracks.At(e.current)
	if err != nil {
		e.mu.Unlock()
		return
	}
	if e.elapsed < t.DurationSeconds {
		e.elapsed++
	}
	elapsed, total := e.elapsed, t.DurationSeconds
	e.mu.Unlock()

	e.publishProgress(elapsed, total)
}

func (e *Engine) cancelTimersLocked() {
	if e.completion != nil {
		e.completion.Stop()
		e.completion = nil
	}
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

// notifyNowPlaying reports the track as playing, off the engine's
// control flow. Failures are logged and published, never fatal.
func (e *Engine) notifyNowPlaying(t album.Track) {
	if e.scrobbler == nil {
		return
	}
	e.calls.Add(1)
	go func() {
		defer e.calls.Done()
		if err := e.scrobbler.UpdateNowPlaying(t); err != nil {
			e.log.Warn("now playing update failed",
				zap.String("artist", t.Artist),
				zap.String("track", t.Title),
				zap.Error(err))
			e.publishError(errmsg.OpNowPlaying, err)
		}
	}()
}

// notifyScrobble records a completed play, off the engine's control flow.
func (e *Engine) notifyScrobble(t album.Track, ts time.Time) {
	if e.scrobbler == nil {
		return
	}
	e.calls.Add(1)
	go func() {
		defer e.calls.Done()
		if err := e.scrobbler.Scrobble(t, ts); err != nil {
			e.log.Warn("scrobble failed",
				zap.String("artist", t.Artist),
				zap.String("track", t.Title),
				zap.Error(err))
			e.publishError(errmsg.OpScrobble, err)
			return
		}
		e.log.Info("scrobbled",
			zap.String("artist", t.Artist),
			zap.String("track", t.Title))
	}()
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	switch {
	case e.tracks.Len() == 0:
		return StateIdle
	case e.playing:
		return StatePlaying
	default:
		return StateStopped
	}
}

// IsPlaying reports whether a countdown is running.
func (e *Engine) IsPlaying() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.playing
}

// CurrentIndex returns the current track index, or -1 with no album.
func (e *Engine) CurrentIndex() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.tracks.Len() == 0 {
		return -1
	}
	return e.current
}

// CurrentTrack returns the current track, or nil with no album.
func (e *Engine) CurrentTrack() *album.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, err := e.tracks.At(e.current)
	if err != nil {
		return nil
	}
	return &t
}

// Tracks returns a copy of the loaded track list.
func (e *Engine) Tracks() []album.Track {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tracks.Tracks()
}

// Elapsed returns whole seconds into the current track.
func (e *Engine) Elapsed() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.elapsed
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	e.subs = append(e.subs, sub)
	return sub
}

// Close cancels all timers, waits (bounded) for in-flight service calls,
// and closes subscriptions.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.cancelTimersLocked()
	e.playing = false
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.calls.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(closeTimeout):
		// Do not hang on a slow scrobble endpoint.
		e.log.Warn("timed out waiting for in-flight service calls")
	}

	e.subsMu.Lock()
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	e.subsMu.Unlock()
	return nil
}

func (e *Engine) publishState(prev, cur State) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (e *Engine) publishTrack(t album.Track, index int, playing bool) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendTrack(TrackChange{Track: t, Index: index, Playing: playing})
	}
}

func (e *Engine) publishProgress(elapsed, total int) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendProgress(Progress{Elapsed: elapsed, Total: total})
	}
}

func (e *Engine) publishAlbumEnded() {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendAlbumEnded()
	}
}

func (e *Engine) publishError(op errmsg.Op, err error) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		sub.sendError(ErrorEvent{Op: op, Err: err})
	}
}
