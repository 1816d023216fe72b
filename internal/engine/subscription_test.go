package engine

import (
	"testing"

	"github.com/scrobl/vinyl/internal/album"
)

func TestSubscription_NonBlockingSend(t *testing.T) {
	sub := newSubscription()

	// Fill past the buffer; sends must drop rather than block.
	for i := range eventBufferSize * 2 {
		sub.sendProgress(Progress{Elapsed: i, Total: 100})
	}

	received := 0
	for {
		select {
		case <-sub.Progressed:
			received++
		default:
			if received != eventBufferSize {
				t.Errorf("received %d events, want %d (overflow dropped)", received, eventBufferSize)
			}
			return
		}
	}
}

func TestSubscription_Close(t *testing.T) {
	sub := newSubscription()
	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Error("Done should be closed")
	}
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	e := New(nil, nil)
	sub := e.Subscribe()

	e.publishTrack(trackListForSub(t), 0, true)

	select {
	case tc := <-sub.TrackChanged:
		if tc.Track.Title != "Only" || !tc.Playing {
			t.Errorf("TrackChanged = %+v", tc)
		}
	default:
		t.Error("expected buffered TrackChanged event")
	}
}

func trackListForSub(t *testing.T) album.Track {
	t.Helper()
	l := trackList(t, "Only")
	tr, err := l.At(0)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}
