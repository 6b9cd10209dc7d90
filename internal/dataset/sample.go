package dataset

import "ghost-dashboard/pkg/model"

// Sample returns the built-in mock dataset
func Sample() Dataset {
	return Dataset{
		Summary: model.Summary{
			TotalLocations: 1247,
			TotalCustomers: 856,
			TotalServices:  2841,
			Growth: model.Growth{
				Locations: 12,
				Customers: 8.5,
				Services:  23,
			},
		},
		Regions: []model.Region{
			{ID: "reg1", Code: "REG 1", Name: "Sumatera", Color: "#f87171"},
			{ID: "reg2", Code: "REG 2", Name: "Jawa", Color: "#60a5fa"},
			{ID: "reg4", Code: "REG 4", Name: "Kalimantan", Color: "#fbbf24"},
			{ID: "reg5", Code: "REG 5", Name: "Bali", Color: "#c084fc"},
		},
		Locations: []model.Location{
			{ID: "jkt", Name: "Jakarta", RegionID: "reg2", Category: model.CategoryHeadquarters, Position: model.MapPosition{Left: "52%", Top: "68%"}},
			{ID: "mdn", Name: "Medan", RegionID: "reg1", Category: model.CategoryBranch, Position: model.MapPosition{Left: "25%", Top: "20%"}},
			{ID: "plm", Name: "Palembang", RegionID: "reg1", Category: model.CategoryBranch, Position: model.MapPosition{Left: "30%", Top: "50%"}},
			{ID: "bdg", Name: "Bandung", RegionID: "reg2", Category: model.CategoryBranch, Position: model.MapPosition{Left: "48%", Top: "72%"}},
			{ID: "sby", Name: "Surabaya", RegionID: "reg2", Category: model.CategoryBranch, Position: model.MapPosition{Left: "65%", Top: "70%"}},
			{ID: "dps", Name: "Denpasar", RegionID: "reg5", Category: model.CategoryBranch, Position: model.MapPosition{Left: "75%", Top: "78%"}},
			{ID: "bpn", Name: "Balikpapan", RegionID: "reg4", Category: model.CategoryBranch, Position: model.MapPosition{Left: "70%", Top: "40%"}},
			{ID: "mks", Name: "Makassar", RegionID: "reg4", Category: model.CategoryBranch, Position: model.MapPosition{Left: "80%", Top: "60%"}},
		},
		Segmentation: []model.SegmentationRecord{
			{Segment: model.SegmentEnterprise, Period: "Jan 2024", RegionID: "reg2", SubUnit: "Jakarta Pusat", OrderCount: 24, Status: model.StatusActive},
			{Segment: model.SegmentEnterprise, Period: "Jan 2024", RegionID: "reg1", SubUnit: "Medan", OrderCount: 18, Status: model.StatusActive},
			{Segment: model.SegmentEnterprise, Period: "Feb 2024", RegionID: "reg4", SubUnit: "Balikpapan", OrderCount: 12, Status: model.StatusPending},
			{Segment: model.SegmentSME, Period: "Jan 2024", RegionID: "reg2", SubUnit: "Bandung", OrderCount: 45, Status: model.StatusActive},
			{Segment: model.SegmentSME, Period: "Jan 2024", RegionID: "reg5", SubUnit: "Denpasar", OrderCount: 32, Status: model.StatusActive},
			{Segment: model.SegmentSME, Period: "Feb 2024", RegionID: "reg2", SubUnit: "Surabaya", OrderCount: 38, Status: model.StatusActive},
			{Segment: model.SegmentGovernment, Period: "Jan 2024", RegionID: "reg2", SubUnit: "Jakarta Selatan", OrderCount: 15, Status: model.StatusActive},
			{Segment: model.SegmentGovernment, Period: "Feb 2024", RegionID: "reg1", SubUnit: "Palembang", OrderCount: 8, Status: model.StatusInProgress},
			{Segment: model.SegmentGovernment, Period: "Feb 2024", RegionID: "reg4", SubUnit: "Samarinda", OrderCount: 6, Status: model.StatusInProgress},
		},
		Orders: []model.OrderRecord{
			{ID: "ORD-2024-001", Customer: "PT Maju Jaya", ServiceType: "SD-WAN Hybrid", RegionID: "reg2", Status: model.StatusInProgress, Progress: 75},
			{ID: "ORD-2024-002", Customer: "CV Sukses Bersama", ServiceType: "SD-WAN Basic", RegionID: "reg1", Status: model.StatusPending, Progress: 25},
			{ID: "ORD-2024-003", Customer: "PT Digital Nusantara", ServiceType: "SD-WAN Enterprise", RegionID: "reg2", Status: model.StatusActive, Progress: 100},
			{ID: "ORD-2024-004", Customer: "Kementerian XYZ", ServiceType: "SD-WAN Government", RegionID: "reg2", Status: model.StatusInProgress, Progress: 60},
			{ID: "ORD-2024-005", Customer: "PT Borneo Mining", ServiceType: "SD-WAN Hybrid", RegionID: "reg4", Status: model.StatusPending, Progress: 10},
		},
	}
}
