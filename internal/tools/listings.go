package tools

// Sample data for the stateless constant generators. These tools exist to
// give the model concrete context to talk about; none of them reads a real
// data source.

var sampleListings = []map[string]any{
	{
		"id":        "BP-1001",
		"address":   "412 Bluebonnet Lane",
		"city":      "Austin",
		"price":     450000.0,
		"bedrooms":  3,
		"bathrooms": 2,
		"sqft":      1850,
		"type":      "single_family",
	},
	{
		"id":        "BP-1002",
		"address":   "88 Mockingbird Court",
		"city":      "Dallas",
		"price":     385000.0,
		"bedrooms":  2,
		"bathrooms": 2,
		"sqft":      1320,
		"type":      "condo",
	},
	{
		"id":        "BP-1003",
		"address":   "2301 Heights Boulevard",
		"city":      "Houston",
		"price":     615000.0,
		"bedrooms":  4,
		"bathrooms": 3,
		"sqft":      2640,
		"type":      "single_family",
	},
}

var servicedAreaList = []string{
	"Austin", "Dallas", "Houston", "San Antonio", "Miami", "Denver",
}

func searchProperties(_ Input) Result {
	return Result{
		"properties": sampleListings,
		"count":      len(sampleListings),
	}
}

func propertyDetails(_ Input) Result {
	return Result{
		"property": map[string]any{
			"id":           "BP-1001",
			"address":      "412 Bluebonnet Lane",
			"city":         "Austin",
			"price":        450000.0,
			"bedrooms":     3,
			"bathrooms":    2,
			"sqft":         1850,
			"type":         "single_family",
			"year_built":   2014,
			"lot_sqft":     6200,
			"hoa_monthly":  45.0,
			"description":  "Updated single-family home near the Mueller district with an open floor plan and a shaded backyard.",
			"listing_date": "2025-07-18",
		},
	}
}

// chatHistory is intentionally empty: chat history is not persisted.
func chatHistory(in Input) Result {
	return Result{
		"session_id": in.SessionID,
		"messages":   []map[string]any{},
		"count":      0,
	}
}

func savedProperties(in Input) Result {
	saved := []map[string]any{sampleListings[0], sampleListings[1]}
	return Result{
		"user_id": in.UserID,
		"saved":   saved,
		"count":   len(saved),
	}
}

func servicedAreas(_ Input) Result {
	return Result{
		"areas": servicedAreaList,
		"count": len(servicedAreaList),
	}
}
