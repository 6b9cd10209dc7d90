package filter

import (
	"errors"
	"reflect"
	"testing"

	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/pkg/model"
)

func newBroker(t *testing.T) *Broker {
	t.Helper()
	store, err := dataset.NewStore(dataset.Sample())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	return NewBroker(store)
}

func TestInitialSelectionIsAll(t *testing.T) {
	b := newBroker(t)

	if b.Selection() != model.AllRegions {
		t.Fatalf("Selection() = %q", b.Selection())
	}
	if got := b.CurrentRegion(); got != model.AllRegionsDescriptor() {
		t.Fatalf("CurrentRegion() = %+v", got)
	}
}

func TestSetRegionNotifiesInSubscriptionOrder(t *testing.T) {
	b := newBroker(t)

	var calls []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		b.Subscribe(func(d model.RegionDescriptor) error {
			calls = append(calls, name+":"+d.ID)
			return nil
		})
	}

	if err := b.SetRegion("reg2"); err != nil {
		t.Fatalf("SetRegion error: %v", err)
	}

	want := []string{"first:reg2", "second:reg2", "third:reg2"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if got := b.CurrentRegion(); got.Label != "Jawa" || got.Code != "REG 2" {
		t.Fatalf("CurrentRegion() = %+v", got)
	}
}

func TestSetRegionIsIdempotent(t *testing.T) {
	b := newBroker(t)

	count := 0
	b.Subscribe(func(model.RegionDescriptor) error {
		count++
		return nil
	})

	for i := 0; i < 2; i++ {
		if err := b.SetRegion("reg1"); err != nil {
			t.Fatalf("SetRegion error: %v", err)
		}
	}
	if count != 1 {
		t.Fatalf("notified %d times, want 1", count)
	}

	// The initial selection is already "all"
	fresh := newBroker(t)
	fresh.Subscribe(func(model.RegionDescriptor) error {
		t.Fatalf("unexpected notification")
		return nil
	})
	if err := fresh.SetRegion(model.AllRegions); err != nil {
		t.Fatalf("SetRegion(all) error: %v", err)
	}
}

func TestSetRegionRejectsUnknownRegion(t *testing.T) {
	b := newBroker(t)
	b.Subscribe(func(model.RegionDescriptor) error {
		t.Fatalf("unexpected notification")
		return nil
	})

	err := b.SetRegion("unknown_region")
	var ire *InvalidRegionError
	if !errors.As(err, &ire) {
		t.Fatalf("SetRegion error = %v, want InvalidRegionError", err)
	}
	if ire.Selection != "unknown_region" {
		t.Fatalf("InvalidRegionError selection = %q", ire.Selection)
	}
	if b.Selection() != model.AllRegions {
		t.Fatalf("selection changed to %q", b.Selection())
	}
}

func TestSetRegionStopsOnListenerError(t *testing.T) {
	b := newBroker(t)
	boom := errors.New("boom")

	b.Subscribe(func(model.RegionDescriptor) error { return boom })
	called := false
	b.Subscribe(func(model.RegionDescriptor) error {
		called = true
		return nil
	})

	err := b.SetRegion("reg4")
	if !errors.Is(err, boom) {
		t.Fatalf("SetRegion error = %v, want wrapped boom", err)
	}
	if called {
		t.Fatalf("second listener ran after failure")
	}
}

func TestSubscriptionRemove(t *testing.T) {
	b := newBroker(t)

	var calls []string
	first := b.Subscribe(func(model.RegionDescriptor) error {
		calls = append(calls, "first")
		return nil
	})
	b.Subscribe(func(model.RegionDescriptor) error {
		calls = append(calls, "second")
		return nil
	})

	first.Remove()
	first.Remove()

	if b.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", b.Subscribers())
	}
	if err := b.SetRegion("reg5"); err != nil {
		t.Fatalf("SetRegion error: %v", err)
	}
	if !reflect.DeepEqual(calls, []string{"second"}) {
		t.Fatalf("calls = %v", calls)
	}
}

func TestListenerMayUnsubscribeDuringNotification(t *testing.T) {
	b := newBroker(t)

	count := 0
	var sub *Subscription
	sub = b.Subscribe(func(model.RegionDescriptor) error {
		count++
		sub.Remove()
		return nil
	})
	b.Subscribe(func(model.RegionDescriptor) error {
		count++
		return nil
	})

	if err := b.SetRegion("reg1"); err != nil {
		t.Fatalf("SetRegion error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if err := b.SetRegion("reg2"); err != nil {
		t.Fatalf("SetRegion error: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}
