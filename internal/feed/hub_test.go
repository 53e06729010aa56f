package feed

import (
	"testing"
	"time"

	"arsipku/internal/model"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	ev := model.Event{Type: model.EventInsert, Table: model.TableArchives}
	h.Publish(ev)

	for i, ch := range []<-chan model.Event{ch1, ch2} {
		select {
		case got := <-ch:
			if got.Type != model.EventInsert || got.Table != model.TableArchives {
				t.Errorf("subscriber %d got %+v", i, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive the event", i)
		}
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()

	cancel()
	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}
	if h.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d after cancel, want 0", h.Subscribers())
	}

	// Second cancel is a no-op.
	cancel()

	// Publishing to no subscribers is fine.
	h.Publish(model.Event{Type: model.EventDelete, Table: model.TableClassifications})
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe() // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			h.Publish(model.Event{Type: model.EventUpdate, Table: model.TableArchives})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
