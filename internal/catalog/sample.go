package catalog

// sampleMenu is the built-in catalog menu-cli falls back to when no data
// file is available at the default path.
var sampleMenu = []MenuItem{
	{Name: "chef special mushroom soup", Processed: []string{
		"raw sliced chicken", "well-done steak", "sliced carrot", "raw sliced mushroom", "raw sliced potato",
	}},
	{Name: "grilled veggie platter", Processed: []string{
		"sliced zucchini", "sliced bell pepper", "sliced eggplant", "olive oil drizzle", "sea salt",
	}},
	{Name: "spicy chicken tacos", Processed: []string{
		"shredded chicken", "chopped onion", "chopped cilantro", "sliced jalapeño", "warm tortilla",
	}},
	{Name: "classic beef burger", Processed: []string{
		"medium beef patty", "sliced tomato", "sliced onion", "leaf lettuce", "toasted bun",
	}},
	{Name: "margherita pizza", Processed: []string{
		"rolled pizza dough", "tomato sauce", "fresh mozzarella slices", "basil leaves", "olive oil drizzle",
	}},
	{Name: "soba noodle salad", Processed: []string{
		"boiled soba noodles", "julienned cucumber", "julienned carrot", "toasted sesame", "soy-sesame dressing",
	}},
	{Name: "butter garlic prawns", Processed: []string{
		"cleaned prawns", "minced garlic", "melted butter", "chopped parsley", "lemon wedge",
	}},
	{Name: "caesar salad", Processed: []string{
		"chopped romaine", "croutons", "shaved parmesan", "caesar dressing", "lemon wedge",
	}},
	{Name: "vegan buddha bowl", Processed: []string{
		"steamed quinoa", "roasted chickpeas", "sliced avocado", "steamed broccoli", "tahini drizzle",
	}},
	{Name: "fish and chips", Processed: []string{
		"battered white fish", "thick-cut fries", "lemon wedge", "tartar sauce", "sea salt",
	}},
}

// Sample returns a fresh copy of the built-in ten-item menu. Callers may
// mutate the result freely.
func Sample() *Catalog {
	c := &Catalog{Items: make([]*MenuItem, len(sampleMenu))}
	for i, it := range sampleMenu {
		c.Items[i] = &MenuItem{
			Name:      it.Name,
			Processed: append([]string(nil), it.Processed...),
		}
	}
	return c
}
