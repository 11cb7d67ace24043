package services

// USDA-derived nutrition reference data. Protein is grams per 100g of the
// prepared food; portion grams reflect common served sizes.
func catalogData() []*CatalogEntry {
	return []*CatalogEntry{
		{
			ID:             "chicken_breast",
			Name:           "Chicken Breast",
			Category:       "protein",
			ProteinPer100g: 31.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 120, Description: "4oz serving"},
				{Name: "medium", Grams: 150, Description: "5oz serving"},
				{Name: "large", Grams: 180, Description: "6oz serving"},
				{Name: "extra_large", Grams: 240, Description: "8oz serving"},
			},
			PrepModifiers: map[string]float64{
				"grilled": 1.0,
				"baked":   1.0,
				"fried":   0.9, // breading/oil displaces some protein by weight
				"boiled":  1.0,
				"roasted": 1.0,
			},
			VisualCues: []string{"white meat", "lean", "palm-sized", "thick slice"},
			Keywords:   []string{"chicken", "breast", "poultry", "white meat"},
		},
		{
			ID:             "chicken_thigh",
			Name:           "Chicken Thigh",
			Category:       "protein",
			ProteinPer100g: 26.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 100, Description: "1 small thigh"},
				{Name: "medium", Grams: 130, Description: "1 medium thigh"},
				{Name: "large", Grams: 160, Description: "1 large thigh"},
			},
			PrepModifiers: map[string]float64{
				"grilled": 1.0,
				"baked":   1.0,
				"fried":   0.9,
				"roasted": 1.0,
			},
			VisualCues: []string{"darker meat", "bone-in or boneless", "triangular shape"},
			Keywords:   []string{"chicken", "thigh", "dark meat"},
		},
		{
			ID:             "beef_steak",
			Name:           "Beef Steak",
			Category:       "protein",
			ProteinPer100g: 26.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 150, Description: "5oz steak"},
				{Name: "medium", Grams: 200, Description: "7oz steak"},
				{Name: "large", Grams: 280, Description: "10oz steak"},
			},
			PrepModifiers: map[string]float64{
				"grilled":    1.0,
				"pan_seared": 1.0,
				"broiled":    1.0,
				"well_done":  0.95,
			},
			VisualCues: []string{"red meat", "thick cut", "grill marks", "marbled"},
			Keywords:   []string{"beef", "steak", "sirloin", "ribeye", "filet"},
		},
		{
			ID:             "ground_beef",
			Name:           "Ground Beef",
			Category:       "protein",
			ProteinPer100g: 25.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 100, Description: "1/4 lb patty"},
				{Name: "medium", Grams: 150, Description: "1/3 lb serving"},
				{Name: "large", Grams: 200, Description: "1/2 lb serving"},
			},
			PrepModifiers: map[string]float64{
				"grilled":   1.0,
				"pan_fried": 0.95,
				"baked":     1.0,
			},
			VisualCues: []string{"crumbled", "patty shape", "browned"},
			Keywords:   []string{"ground beef", "hamburger", "meatball", "patty"},
		},
		{
			ID:             "salmon",
			Name:           "Salmon",
			Category:       "protein",
			ProteinPer100g: 25.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 120, Description: "4oz fillet"},
				{Name: "medium", Grams: 150, Description: "5oz fillet"},
				{Name: "large", Grams: 180, Description: "6oz fillet"},
			},
			PrepModifiers: map[string]float64{
				"grilled":    1.0,
				"baked":      1.0,
				"pan_seared": 1.0,
				"smoked":     1.1, // moisture loss concentrates protein
			},
			VisualCues: []string{"pink/orange flesh", "flaky", "skin on/off", "fillet shape"},
			Keywords:   []string{"salmon", "fish", "fillet", "pink fish"},
		},
		{
			ID:             "tuna",
			Name:           "Tuna",
			Category:       "protein",
			ProteinPer100g: 30.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 120, Description: "4oz serving"},
				{Name: "medium", Grams: 150, Description: "5oz serving"},
				{Name: "large", Grams: 180, Description: "6oz serving"},
			},
			PrepModifiers: map[string]float64{
				"grilled":      1.0,
				"seared":       1.0,
				"canned_water": 0.9,
				"canned_oil":   0.85,
			},
			VisualCues: []string{"dark red/pink", "meaty texture", "steak-like"},
			Keywords:   []string{"tuna", "ahi", "yellowfin", "fish steak"},
		},
		{
			ID:             "tofu",
			Name:           "Tofu",
			Category:       "protein",
			ProteinPer100g: 8.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "Small cube (3oz)"},
				{Name: "medium", Grams: 120, Description: "Medium serving (4oz)"},
				{Name: "large", Grams: 150, Description: "Large serving (5oz)"},
			},
			PrepModifiers: map[string]float64{
				"raw":     1.0,
				"grilled": 1.0,
				"fried":   1.0,
				"baked":   1.0,
			},
			VisualCues: []string{"white/beige", "cube shape", "soft texture"},
			Keywords:   []string{"tofu", "bean curd", "soy"},
		},
		{
			ID:             "tempeh",
			Name:           "Tempeh",
			Category:       "protein",
			ProteinPer100g: 19.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "Small slice (3oz)"},
				{Name: "medium", Grams: 100, Description: "Medium slice (3.5oz)"},
				{Name: "large", Grams: 120, Description: "Large slice (4oz)"},
			},
			PrepModifiers: map[string]float64{
				"steamed": 1.0,
				"grilled": 1.0,
				"fried":   1.0,
			},
			VisualCues: []string{"nutty texture", "rectangular block", "visible beans"},
			Keywords:   []string{"tempeh", "fermented soy"},
		},
		{
			ID:             "eggs",
			Name:           "Eggs",
			Category:       "protein",
			ProteinPer100g: 13.0,
			Portions: []NamedPortion{
				{Name: "one_egg", Grams: 50, Description: "1 large egg"},
				{Name: "two_eggs", Grams: 100, Description: "2 large eggs"},
				{Name: "three_eggs", Grams: 150, Description: "3 large eggs"},
			},
			PrepModifiers: map[string]float64{
				"scrambled": 1.0,
				"fried":     1.0,
				"boiled":    1.0,
				"poached":   1.0,
				"omelet":    1.0,
			},
			VisualCues: []string{"yellow yolk", "white protein", "oval shape"},
			Keywords:   []string{"egg", "scrambled", "fried", "boiled", "omelet"},
		},
		{
			ID:             "greek_yogurt",
			Name:           "Greek Yogurt",
			Category:       "protein",
			ProteinPer100g: 10.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 170, Description: "6oz container"},
				{Name: "medium", Grams: 227, Description: "8oz serving"},
				{Name: "large", Grams: 340, Description: "12oz serving"},
			},
			PrepModifiers: map[string]float64{
				"plain":    1.0,
				"flavored": 0.9,
			},
			VisualCues: []string{"thick creamy texture", "white", "bowl or container"},
			Keywords:   []string{"yogurt", "greek yogurt", "dairy"},
		},
		{
			ID:             "white_rice",
			Name:           "White Rice",
			Category:       "carbohydrate",
			ProteinPer100g: 2.7,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/3 cup cooked"},
				{Name: "medium", Grams: 150, Description: "2/3 cup cooked"},
				{Name: "large", Grams: 200, Description: "1 cup cooked"},
			},
			PrepModifiers: map[string]float64{
				"steamed": 1.0,
				"boiled":  1.0,
				"fried":   1.0,
			},
			VisualCues: []string{"small white grains", "fluffy texture", "individual grains"},
			Keywords:   []string{"rice", "white rice", "grain", "steamed rice"},
		},
		{
			ID:             "brown_rice",
			Name:           "Brown Rice",
			Category:       "carbohydrate",
			ProteinPer100g: 3.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/3 cup cooked"},
				{Name: "medium", Grams: 150, Description: "2/3 cup cooked"},
				{Name: "large", Grams: 200, Description: "1 cup cooked"},
			},
			PrepModifiers: map[string]float64{
				"steamed": 1.0,
				"boiled":  1.0,
				"fried":   1.0,
			},
			VisualCues: []string{"brown grains", "nuttier appearance", "individual grains"},
			Keywords:   []string{"brown rice", "whole grain rice", "grain"},
		},
		{
			ID:             "quinoa",
			Name:           "Quinoa",
			Category:       "carbohydrate",
			ProteinPer100g: 4.4,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/3 cup cooked"},
				{Name: "medium", Grams: 150, Description: "2/3 cup cooked"},
				{Name: "large", Grams: 200, Description: "1 cup cooked"},
			},
			PrepModifiers: map[string]float64{
				"steamed": 1.0,
				"boiled":  1.0,
			},
			VisualCues: []string{"small round grains", "light colored", "fluffy"},
			Keywords:   []string{"quinoa", "grain", "superfood"},
		},
		{
			ID:             "broccoli",
			Name:           "Broccoli",
			Category:       "vegetable",
			ProteinPer100g: 2.8,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/2 cup"},
				{Name: "medium", Grams: 150, Description: "1 cup"},
				{Name: "large", Grams: 200, Description: "1.5 cups"},
			},
			PrepModifiers: map[string]float64{
				"steamed":    1.0,
				"raw":        1.0,
				"roasted":    1.0,
				"stir_fried": 1.0,
			},
			VisualCues: []string{"green florets", "tree-like structure", "stems"},
			Keywords:   []string{"broccoli", "green vegetable", "florets"},
		},
		{
			ID:             "spinach",
			Name:           "Spinach",
			Category:       "vegetable",
			ProteinPer100g: 2.9,
			Portions: []NamedPortion{
				{Name: "small", Grams: 30, Description: "1 cup raw"},
				{Name: "medium", Grams: 60, Description: "2 cups raw"},
				{Name: "large", Grams: 100, Description: "Large salad portion"},
			},
			PrepModifiers: map[string]float64{
				"raw":     1.0,
				"sauteed": 1.0,
				"steamed": 1.0,
			},
			VisualCues: []string{"dark green leaves", "leafy", "wilted when cooked"},
			Keywords:   []string{"spinach", "leafy greens", "salad"},
		},
		{
			ID:             "black_beans",
			Name:           "Black Beans",
			Category:       "legume",
			ProteinPer100g: 9.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/3 cup"},
				{Name: "medium", Grams: 120, Description: "1/2 cup"},
				{Name: "large", Grams: 180, Description: "3/4 cup"},
			},
			PrepModifiers: map[string]float64{
				"cooked": 1.0,
				"canned": 0.95,
			},
			VisualCues: []string{"small black oval beans", "individual beans visible"},
			Keywords:   []string{"black beans", "beans", "legumes"},
		},
		{
			ID:             "chickpeas",
			Name:           "Chickpeas",
			Category:       "legume",
			ProteinPer100g: 8.0,
			Portions: []NamedPortion{
				{Name: "small", Grams: 80, Description: "1/3 cup"},
				{Name: "medium", Grams: 120, Description: "1/2 cup"},
				{Name: "large", Grams: 180, Description: "3/4 cup"},
			},
			PrepModifiers: map[string]float64{
				"cooked":  1.0,
				"canned":  0.95,
				"roasted": 1.1,
			},
			VisualCues: []string{"round beige beans", "bumpy texture"},
			Keywords:   []string{"chickpeas", "garbanzo beans", "hummus base"},
		},
	}
}
