package filter

import (
	"fmt"

	"ghost-dashboard/pkg/model"
)

// InvalidRegionError is returned when a selection is neither AllRegions nor a known region
type InvalidRegionError struct {
	Selection string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid region %q", e.Selection)
}

// RegionSource resolves region ids
type RegionSource interface {
	Region(id string) (model.Region, error)
}

// Listener is notified with the new selection after every change
type Listener func(model.RegionDescriptor) error

// Broker holds the active region filter and notifies subscribers when it changes.
// It is not safe for concurrent use; the owner must serialise calls.
type Broker struct {
	regions     RegionSource
	selection   string
	subscribers []*Subscription
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	broker   *Broker
	listener Listener
}

// NewBroker creates a broker whose selection starts at AllRegions
func NewBroker(regions RegionSource) *Broker {
	return &Broker{
		regions:   regions,
		selection: model.AllRegions,
	}
}

// Describe resolves a selection into the descriptor subscribers receive
func (b *Broker) Describe(selection string) (model.RegionDescriptor, error) {
	if selection == model.AllRegions {
		return model.AllRegionsDescriptor(), nil
	}
	region, err := b.regions.Region(selection)
	if err != nil {
		return model.RegionDescriptor{}, &InvalidRegionError{Selection: selection}
	}
	return region.Descriptor(), nil
}

// SetRegion changes the selection and notifies subscribers in subscription order.
// Setting the current selection again does nothing. An invalid selection leaves
// the state untouched. The first listener error stops the notification pass and
// is returned.
func (b *Broker) SetRegion(selection string) error {
	desc, err := b.Describe(selection)
	if err != nil {
		return err
	}
	if selection == b.selection {
		return nil
	}

	b.selection = selection

	// Snapshot so listeners may subscribe or unsubscribe during the pass
	subs := append([]*Subscription(nil), b.subscribers...)
	for _, sub := range subs {
		if err := sub.listener(desc); err != nil {
			return fmt.Errorf("notify region %s: %w", selection, err)
		}
	}
	return nil
}

// Subscribe registers a listener for selection changes
func (b *Broker) Subscribe(listener Listener) *Subscription {
	sub := &Subscription{broker: b, listener: listener}
	b.subscribers = append(b.subscribers, sub)
	return sub
}

// Selection returns the current selection id
func (b *Broker) Selection() string {
	return b.selection
}

// CurrentRegion returns the descriptor of the current selection
func (b *Broker) CurrentRegion() model.RegionDescriptor {
	desc, err := b.Describe(b.selection)
	if err != nil {
		// The selection is only ever set after validation
		panic(err)
	}
	return desc
}

// Subscribers returns the number of registered listeners
func (b *Broker) Subscribers() int {
	return len(b.subscribers)
}

// Remove detaches the subscription. Removing twice is a no-op.
func (s *Subscription) Remove() {
	if s.broker == nil {
		return
	}
	subs := s.broker.subscribers
	for i, sub := range subs {
		if sub == s {
			s.broker.subscribers = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	s.broker = nil
}
