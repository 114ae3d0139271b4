package catalog

// Seed data for the demo storefront. The records below are the entire
// catalog; they are created once and never mutated at runtime.

var seedCategories = []string{
	"Pottery", "Textiles", "Metalware", "Carpets", "Woodwork", "Paintings", "Jewelry",
}

var seedProducts = []Product{
	{
		ID:          "1",
		Name:        "Jaipur Blue Pottery Vase",
		Seller:      "Rajasthan Blue Pottery Co.",
		Artisan:     "Master Ramesh Kumhar",
		Price:       1450,
		Rating:      4.8,
		Reviews:     23,
		Category:    "Pottery",
		Description: "Exquisite handcrafted blue pottery vase from Jaipur with traditional white floral patterns. Made using the ancient technique passed down through generations.",
		Stock:       15,
		IsNew:       true,
	},
	{
		ID:          "2",
		Name:        "Kashmir Pashmina Shawl",
		Seller:      "Kashmir Valley Weavers",
		Artisan:     "Ustad Abdul Gani",
		Price:       3200,
		Rating:      4.9,
		Reviews:     45,
		Category:    "Textiles",
		Description: "Luxurious hand-woven Pashmina shawl from Kashmir featuring intricate paisley patterns in golden saffron hues.",
		Stock:       8,
		IsTrending:  true,
	},
	{
		ID:          "3",
		Name:        "Traditional Brass Diya Set",
		Seller:      "Moradabad Metal Crafts",
		Artisan:     "Craftsman Mohd. Salim",
		Price:       650,
		Rating:      4.7,
		Reviews:     67,
		Category:    "Metalware",
		Description: "Set of 5 handcrafted brass diyas with intricate engravings, perfect for festivals and religious ceremonies.",
		Stock:       32,
		IsNew:       true,
	},
	{
		ID:          "4",
		Name:        "Handwoven Agra Carpet",
		Seller:      "Agra Carpet House",
		Artisan:     "Master Weaver Ashok",
		Price:       12500,
		Rating:      4.6,
		Reviews:     12,
		Category:    "Carpets",
		Description: "Premium handwoven carpet with traditional Persian motifs in rich burgundy and gold, crafted over 6 months.",
		Stock:       3,
		IsPremium:   true,
	},
	{
		ID:          "5",
		Name:        "Sheesham Wood Jewelry Box",
		Seller:      "Saharanpur Wood Works",
		Artisan:     "Craftsman Vikram Singh",
		Price:       2100,
		Rating:      4.5,
		Reviews:     34,
		Category:    "Woodwork",
		Description: "Elegant jewelry box crafted from premium Sheesham wood with mother-of-pearl inlay work in traditional floral patterns.",
		Stock:       18,
		IsTrending:  true,
	},
	{
		ID:          "6",
		Name:        "Madhubani Folk Art Painting",
		Seller:      "Bihar Folk Art Collective",
		Artisan:     "Artist Sita Devi",
		Price:       850,
		Rating:      4.8,
		Reviews:     28,
		Category:    "Paintings",
		Description: "Authentic Madhubani painting depicting peacocks and nature motifs, hand-painted using natural colors on handmade paper.",
		Stock:       12,
		IsNew:       true,
	},
	{
		ID:          "7",
		Name:        "Banarasi Silk Saree",
		Seller:      "Varanasi Silk Emporium",
		Artisan:     "Master Weaver Rajesh Kumar",
		Price:       8500,
		Rating:      4.9,
		Reviews:     56,
		Category:    "Textiles",
		Description: "Luxurious Banarasi silk saree with intricate zari work and traditional motifs. Perfect for weddings and special occasions.",
		Stock:       6,
		IsPremium:   true,
	},
	{
		ID:          "8",
		Name:        "Copper Water Pot Set",
		Seller:      "Rajasthan Copper Works",
		Artisan:     "Craftsman Deepak Sharma",
		Price:       1200,
		Rating:      4.6,
		Reviews:     42,
		Category:    "Metalware",
		Description: "Traditional copper water pot set with hammered finish. Known for its health benefits and traditional craftsmanship.",
		Stock:       25,
		IsNew:       true,
	},
	{
		ID:          "9",
		Name:        "Handwoven Jute Bags",
		Seller:      "Eco Craft Collective",
		Artisan:     "Artisan Priya Mehta",
		Price:       450,
		Rating:      4.4,
		Reviews:     38,
		Category:    "Textiles",
		Description: "Eco-friendly handwoven jute bags with traditional patterns. Perfect for daily use and sustainable living.",
		Stock:       50,
		IsTrending:  true,
	},
	{
		ID:          "10",
		Name:        "Marble Inlay Table",
		Seller:      "Agra Marble Works",
		Artisan:     "Master Craftsman Ahmed Ali",
		Price:       18500,
		Rating:      4.7,
		Reviews:     19,
		Category:    "Woodwork",
		Description: "Exquisite marble inlay table with intricate floral patterns. A masterpiece of traditional Indian craftsmanship.",
		Stock:       2,
		IsPremium:   true,
	},
	{
		ID:          "11",
		Name:        "Terracotta Wall Hanging",
		Seller:      "Bengal Pottery Studio",
		Artisan:     "Artist Sunita Das",
		Price:       750,
		Rating:      4.5,
		Reviews:     31,
		Category:    "Pottery",
		Description: "Beautiful terracotta wall hanging with traditional Bengali motifs. Hand-molded and painted with natural colors.",
		Stock:       20,
		IsNew:       true,
	},
	{
		ID:          "12",
		Name:        "Silver Filigree Earrings",
		Seller:      "Cuttack Silver Crafts",
		Artisan:     "Master Silversmith Bijay Kumar",
		Price:       2800,
		Rating:      4.8,
		Reviews:     47,
		Category:    "Jewelry",
		Description: "Delicate silver filigree earrings with traditional Odisha designs. Handcrafted using ancient techniques.",
		Stock:       15,
		IsTrending:  true,
	},
}

var seedReviews = []Review{
	{
		ID:        "1",
		ProductID: "1",
		User:      "Priya Sharma",
		Rating:    5,
		Comment:   "Absolutely beautiful vase! The craftsmanship is incredible and it looks stunning in my living room.",
		Date:      "2024-01-15",
	},
	{
		ID:        "2",
		ProductID: "1",
		User:      "Rajesh Kumar",
		Rating:    4,
		Comment:   "Good quality pottery. Arrived well-packaged and exactly as described.",
		Date:      "2024-01-10",
	},
}

var seedStories = []ArtisanStory{
	{
		Name:       "Master Ramesh Kumhar",
		Craft:      "Blue Pottery",
		Location:   "Jaipur, Rajasthan",
		Experience: "25 years",
		Story:      "Third generation blue pottery artisan keeping alive the 300-year-old tradition.",
	},
	{
		Name:       "Ustad Abdul Gani",
		Craft:      "Pashmina Weaving",
		Location:   "Srinagar, Kashmir",
		Experience: "35 years",
		Story:      "Master weaver known for creating the finest Pashmina shawls using traditional handloom techniques.",
	},
}
