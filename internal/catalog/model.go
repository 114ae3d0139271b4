package catalog

// Product is an immutable catalog record. Prices are whole rupees, so plain
// int arithmetic stays exact. The promotional flags are advisory and not
// mutually exclusive.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Seller      string  `json:"seller"`
	Artisan     string  `json:"artisan"`
	Price       int     `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	IsNew       bool    `json:"is_new,omitempty"`
	IsTrending  bool    `json:"is_trending,omitempty"`
	IsPremium   bool    `json:"is_premium,omitempty"`
}

// Review is a buyer review attached to a product.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	User      string `json:"user"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// ArtisanStory is the background blurb shown on the about page.
type ArtisanStory struct {
	Name       string `json:"name"`
	Craft      string `json:"craft"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	Story      string `json:"story"`
}
