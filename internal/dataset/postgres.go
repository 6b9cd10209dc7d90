package dataset

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ghost-dashboard/pkg/model"
)

// Schema creates the tables LoadPostgres reads from
const Schema = `
CREATE TABLE IF NOT EXISTS regions (
    position   INTEGER NOT NULL,
    id         TEXT PRIMARY KEY,
    code       TEXT NOT NULL,
    name       TEXT NOT NULL,
    color      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS locations (
    position   INTEGER NOT NULL,
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    region_id  TEXT NOT NULL REFERENCES regions(id),
    category   TEXT NOT NULL,
    map_left   TEXT NOT NULL,
    map_top    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS segmentation (
    position    INTEGER NOT NULL,
    segment     TEXT NOT NULL,
    period      TEXT NOT NULL,
    region_id   TEXT NOT NULL REFERENCES regions(id),
    sub_unit    TEXT NOT NULL,
    order_count INTEGER NOT NULL CHECK (order_count >= 0),
    status      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    position     INTEGER NOT NULL,
    id           TEXT PRIMARY KEY,
    customer     TEXT NOT NULL,
    service_type TEXT NOT NULL,
    region_id    TEXT NOT NULL REFERENCES regions(id),
    status       TEXT NOT NULL,
    progress     INTEGER NOT NULL CHECK (progress BETWEEN 0 AND 100)
);

CREATE TABLE IF NOT EXISTS dashboard_summary (
    total_locations  INTEGER NOT NULL,
    total_customers  INTEGER NOT NULL,
    total_services   INTEGER NOT NULL,
    growth_locations DOUBLE PRECISION NOT NULL,
    growth_customers DOUBLE PRECISION NOT NULL,
    growth_services  DOUBLE PRECISION NOT NULL
);
`

type locationRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	RegionID string `db:"region_id"`
	Category string `db:"category"`
	MapLeft  string `db:"map_left"`
	MapTop   string `db:"map_top"`
}

type summaryRow struct {
	TotalLocations  int     `db:"total_locations"`
	TotalCustomers  int     `db:"total_customers"`
	TotalServices   int     `db:"total_services"`
	GrowthLocations float64 `db:"growth_locations"`
	GrowthCustomers float64 `db:"growth_customers"`
	GrowthServices  float64 `db:"growth_services"`
}

// LoadPostgres reads a dataset from the database.
// Rows keep the order of their position column. The result is not validated;
// pass it to NewStore.
func LoadPostgres(ctx context.Context, db *sqlx.DB) (Dataset, error) {
	var ds Dataset

	var summary summaryRow
	err := db.GetContext(ctx, &summary, `
        SELECT total_locations, total_customers, total_services,
               growth_locations, growth_customers, growth_services
        FROM dashboard_summary
        LIMIT 1
    `)
	if err != nil {
		return Dataset{}, fmt.Errorf("error loading summary: %w", err)
	}
	ds.Summary = model.Summary{
		TotalLocations: summary.TotalLocations,
		TotalCustomers: summary.TotalCustomers,
		TotalServices:  summary.TotalServices,
		Growth: model.Growth{
			Locations: summary.GrowthLocations,
			Customers: summary.GrowthCustomers,
			Services:  summary.GrowthServices,
		},
	}

	err = db.SelectContext(ctx, &ds.Regions, "SELECT id, code, name, color FROM regions ORDER BY position")
	if err != nil {
		return Dataset{}, fmt.Errorf("error loading regions: %w", err)
	}

	var locations []locationRow
	err = db.SelectContext(ctx, &locations, `
        SELECT id, name, region_id, category, map_left, map_top
        FROM locations
        ORDER BY position
    `)
	if err != nil {
		return Dataset{}, fmt.Errorf("error loading locations: %w", err)
	}
	for _, l := range locations {
		ds.Locations = append(ds.Locations, model.Location{
			ID:       l.ID,
			Name:     l.Name,
			RegionID: l.RegionID,
			Category: model.LocationCategory(l.Category),
			Position: model.MapPosition{Left: l.MapLeft, Top: l.MapTop},
		})
	}

	err = db.SelectContext(ctx, &ds.Segmentation, `
        SELECT segment, period, region_id, sub_unit, order_count, status
        FROM segmentation
        ORDER BY position
    `)
	if err != nil {
		return Dataset{}, fmt.Errorf("error loading segmentation: %w", err)
	}

	err = db.SelectContext(ctx, &ds.Orders, `
        SELECT id, customer, service_type, region_id, status, progress
        FROM orders
        ORDER BY position
    `)
	if err != nil {
		return Dataset{}, fmt.Errorf("error loading orders: %w", err)
	}

	return ds, nil
}
