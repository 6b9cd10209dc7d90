package dashboard

import (
	"log"
	"sync"

	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/internal/filter"
	"ghost-dashboard/internal/render"
	"ghost-dashboard/internal/surface"
	"ghost-dashboard/pkg/model"
)

// Display is a render surface whose state can be read back
type Display interface {
	render.Surface
	Snapshot() surface.Snapshot
}

// Dashboard wires the region filter to the views of one dashboard session.
// Events are serialised so each one runs to completion before the next starts.
type Dashboard struct {
	mu            sync.Mutex
	store         *dataset.Store
	display       Display
	broker        *filter.Broker
	subscriptions []*filter.Subscription
}

// New builds the dashboard and renders every view for AllRegions
func New(store *dataset.Store, display Display) (*Dashboard, error) {
	d := &Dashboard{
		store:   store,
		display: display,
		broker:  filter.NewBroker(store),
	}

	if err := render.NewSummary(store, display).Render(model.AllRegions); err != nil {
		return nil, err
	}

	views := []render.Renderer{
		render.NewSegmentTable(store, display),
		render.NewOrderTable(store, display),
		render.NewMarkers(store, display),
		render.NewActiveRegion(d.broker, display),
	}
	for _, v := range views {
		if err := v.Render(d.broker.Selection()); err != nil {
			return nil, err
		}
		d.subscriptions = append(d.subscriptions, d.broker.Subscribe(render.Listener(v)))
	}

	return d, nil
}

// SelectRegion applies a region button click
func (d *Dashboard) SelectRegion(regionID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.broker.Selection()
	if err := d.broker.SetRegion(regionID); err != nil {
		log.Printf("Error selecting region %q: %v", regionID, err)
		return err
	}
	if prev != regionID {
		log.Printf("Region filter changed: %s -> %s", prev, regionID)
	}
	return nil
}

// Selection returns the active region filter
func (d *Dashboard) Selection() model.RegionDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.broker.CurrentRegion()
}

// State returns what the display currently shows
func (d *Dashboard) State() model.DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.display.Snapshot()
	return model.DashboardState{
		Region:  d.broker.CurrentRegion(),
		Texts:   snap.Texts,
		Tables:  snap.Tables,
		Markers: snap.Markers,
	}
}

// LocationDetail applies a marker click
func (d *Dashboard) LocationDetail(name string) (model.LocationDetail, error) {
	return d.store.LocationDetail(name)
}

// Close detaches the views from the filter
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subscriptions {
		sub.Remove()
	}
	d.subscriptions = nil
}
