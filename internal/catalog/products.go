package catalog

import (
	"strings"

	"github.com/hunkymanie/shoply/internal/model"
)

// Products is the static fashion catalog.
var Products = []model.Product{
	// Women's Clothing
	{
		ID:          "1",
		Name:        "Luxe Silk Blend Midi Dress",
		Description: "Elevate your wardrobe with this sophisticated silk blend midi dress. Featuring a flattering A-line silhouette, this dress drapes beautifully on the body while maintaining structure. The subtle sheen of the silk blend fabric adds an elegant touch perfect for boardroom meetings or evening cocktails. Complete with a hidden back zipper and lined interior for comfort and longevity.",
		Price:       168.00,
		Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Midnight Black", "Deep Navy", "Champagne"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Brand:       "Atelier Luna",
		Rating:      4.8,
		ReviewCount: 47,
		Tags:        []string{"dress", "silk", "formal", "midi", "luxury"},
		IsNew:       true,
	},
	{
		ID:          "2",
		Name:        "Heritage Cashmere Turtleneck",
		Description: "Crafted from 100% pure cashmere sourced from the highlands of Mongolia, this turtleneck represents the pinnacle of luxury knitwear. The ultra-soft 12-gauge knit provides exceptional warmth without bulk, while the relaxed fit ensures comfort throughout the day. Features reinforced seams and a timeless design that transcends seasons.",
		Price:       245.00,
		SalePrice:   196.00,
		Image:       "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Oatmeal", "Charcoal", "Camel", "Ivory"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Brand:       "Meridian Cashmere",
		Rating:      4.9,
		ReviewCount: 83,
		Tags:        []string{"cashmere", "turtleneck", "luxury", "winter", "knitwear"},
		IsSale:      true,
	},
	{
		ID:          "3",
		Name:        "Italian Leather Ankle Boots",
		Description: "Handcrafted in Florence from premium Italian leather, these ankle boots combine traditional craftsmanship with contemporary design. The subtle block heel provides comfortable elevation while the supple leather ensures a perfect fit that improves with wear. Features a side zipper for easy on-off and a cushioned leather insole for all-day comfort.",
		Price:       298.00,
		Image:       "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=500&h=500&fit=crop",
		Category:    "Shoes",
		InStock:     true,
		Colors:      []string{"Black", "Cognac Brown", "Deep Burgundy"},
		Sizes:       []string{"6", "6.5", "7", "7.5", "8", "8.5", "9", "9.5", "10"},
		Brand:       "Firenze Footwear",
		Rating:      4.7,
		ReviewCount: 62,
		Tags:        []string{"boots", "leather", "italian", "ankle", "handcrafted"},
	},
	{
		ID:          "4",
		Name:        "Tailored Blazer with Gold Buttons",
		Description: "A modern interpretation of the classic blazer, tailored to perfection in a premium wool blend. The structured shoulders and nipped waist create a flattering silhouette, while the signature gold-tone buttons add a touch of sophistication. Fully lined with functional pockets and working buttonholes on the sleeves.",
		Price:       285.00,
		Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Navy Blue", "Classic Black", "Camel"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Brand:       "Savile & Co",
		Rating:      4.6,
		ReviewCount: 34,
		Tags:        []string{"blazer", "tailored", "professional", "wool", "formal"},
	},
	{
		ID:          "5",
		Name:        "High-Rise Wide Leg Trousers",
		Description: "Inspired by 1970s sophistication, these high-rise wide leg trousers create an effortlessly chic silhouette. Cut from a luxurious ponte fabric that maintains its shape while providing comfort and movement. Features a flat front design, side zip closure, and a flowing wide leg that elongates the figure.",
		Price:       145.00,
		Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Black", "Cream", "Forest Green"},
		Sizes:       []string{"24", "26", "28", "30", "32", "34"},
		Brand:       "Studio Moderne",
		Rating:      4.5,
		ReviewCount: 28,
		Tags:        []string{"trousers", "wide-leg", "high-rise", "70s", "sophisticated"},
	},

	// Men's Clothing
	{
		ID:          "6",
		Name:        "Merino Wool V-Neck Sweater",
		Description: "Exceptional merino wool sweater that embodies timeless masculine elegance. The fine-gauge knit provides superior temperature regulation and softness against the skin. Classic V-neck design with ribbed trim at the collar, cuffs, and hem. Perfect for layering over dress shirts or wearing solo with jeans.",
		Price:       128.00,
		Image:       "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500&h=500&fit=crop",
		Category:    "Men's Clothing",
		InStock:     true,
		Colors:      []string{"Charcoal Gray", "Navy Blue", "Burgundy", "Forest Green"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Brand:       "Highlands Wool",
		Rating:      4.7,
		ReviewCount: 56,
		Tags:        []string{"sweater", "merino", "v-neck", "wool", "classic"},
	},
	{
		ID:          "7",
		Name:        "Selvedge Denim Straight Jeans",
		Description: "Premium Japanese selvedge denim crafted on vintage shuttle looms for authentic character and durability. The 14oz weight provides substantial feel while maintaining comfort through thoughtful construction. Features a classic straight leg cut, contrast stitching, and copper rivets at stress points. Designed to age beautifully with wear.",
		Price:       195.00,
		Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
		Category:    "Men's Clothing",
		InStock:     true,
		Colors:      []string{"Raw Indigo", "One Wash"},
		Sizes:       []string{"30", "31", "32", "33", "34", "36", "38"},
		Brand:       "Heritage Denim Co",
		Rating:      4.8,
		ReviewCount: 41,
		Tags:        []string{"jeans", "selvedge", "denim", "japanese", "straight"},
		IsNew:       true,
	},
	{
		ID:          "8",
		Name:        "Luxury Oxford Dress Shirt",
		Description: "Meticulously crafted from 100% two-fold cotton with a subtle royal oxford weave. The spread collar and barrel cuffs create a refined silhouette perfect for business or formal occasions. Features mother-of-pearl buttons, single-needle stitching, and a curved hem that works beautifully tucked or untucked.",
		Price:       89.00,
		Image:       "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500&h=500&fit=crop",
		Category:    "Men's Clothing",
		InStock:     true,
		Colors:      []string{"Pure White", "Light Blue", "Pale Pink"},
		Sizes:       []string{"14.5", "15", "15.5", "16", "16.5", "17", "17.5"},
		Brand:       "Bespoke Brothers",
		Rating:      4.9,
		ReviewCount: 78,
		Tags:        []string{"shirt", "oxford", "dress", "formal", "cotton"},
	},

	// Accessories
	{
		ID:          "9",
		Name:        "Silk Scarf with Hand-Rolled Edges",
		Description: "Exquisite silk twill scarf featuring an original botanical print inspired by English gardens. Each piece is carefully printed using traditional techniques and finished with hand-rolled edges for the ultimate luxury touch. Versatile styling options make this an essential accessory for any sophisticated wardrobe.",
		Price:       98.00,
		Image:       "https://images.unsplash.com/photo-1601762603339-fd61e28b698d?w=500&h=500&fit=crop",
		Category:    "Accessories",
		InStock:     true,
		Colors:      []string{"Botanical Green", "Midnight Navy", "Vintage Rose"},
		Sizes:       []string{"90cm x 90cm"},
		Brand:       "Maison Écharpe",
		Rating:      4.6,
		ReviewCount: 23,
		Tags:        []string{"scarf", "silk", "botanical", "luxury", "hand-rolled"},
	},
	{
		ID:          "10",
		Name:        "Minimalist Leather Crossbody Bag",
		Description: "Clean-lined crossbody bag crafted from vegetable-tanned leather that develops a beautiful patina over time. The minimalist design features a magnetic closure, interior pocket, and adjustable strap. Perfect size for essentials while maintaining an elegant silhouette. Handcrafted by artisans using traditional techniques.",
		Price:       165.00,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
		Category:    "Accessories",
		InStock:     true,
		Colors:      []string{"Tan", "Black", "Deep Brown"},
		Sizes:       []string{"One Size"},
		Brand:       "Artisan Leather Co",
		Rating:      4.8,
		ReviewCount: 35,
		Tags:        []string{"bag", "crossbody", "leather", "minimalist", "handcrafted"},
	},

	// Jewelry
	{
		ID:          "11",
		Name:        "Delicate Gold Chain Necklace",
		Description: "Timeless 14k gold chain necklace featuring delicate curb links for subtle elegance. Each link is carefully soldered and polished to perfection. The versatile length works beautifully alone or layered with other pieces. Includes a secure lobster clasp and comes in a luxury gift box.",
		Price:       125.00,
		Image:       "https://images.unsplash.com/photo-1602751584552-8ba73aad10e1?w=500&h=500&fit=crop",
		Category:    "Jewelry",
		InStock:     true,
		Colors:      []string{"14k Gold", "Rose Gold"},
		Sizes:       []string{`16"`, `18"`, `20"`},
		Brand:       "Aurelius Fine Jewelry",
		Rating:      4.9,
		ReviewCount: 67,
		Tags:        []string{"necklace", "gold", "chain", "14k", "delicate"},
	},
	{
		ID:          "12",
		Name:        "Statement Pearl Drop Earrings",
		Description: "Elegant freshwater pearl drop earrings that add sophistication to any ensemble. Each baroque pearl is unique in shape and luster, suspended from 14k gold ear wires. The organic beauty of the pearls creates movement and catches light beautifully. Perfect for special occasions or elevating everyday looks.",
		Price:       89.00,
		Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500&h=500&fit=crop",
		Category:    "Jewelry",
		InStock:     true,
		Colors:      []string{"White Pearl", "Cream Pearl"},
		Sizes:       []string{"One Size"},
		Brand:       "Oceanic Pearls",
		Rating:      4.7,
		ReviewCount: 29,
		Tags:        []string{"earrings", "pearl", "drop", "freshwater", "gold"},
	},

	// Summer essentials
	{
		ID:          "13",
		Name:        "Linen Blend Relaxed Shirt",
		Description: "Breezy linen blend shirt perfect for warm weather styling. The relaxed fit and breathable fabric ensure comfort during the hottest days, while the classic collar and button-front design maintain a polished appearance. Features functional chest pocket and mother-of-pearl buttons.",
		Price:       78.00,
		Image:       "https://images.unsplash.com/photo-1564257577-6a2a0722b8b8?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"White", "Sage Green", "Dusty Pink"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Brand:       "Coastal Comfort",
		Rating:      4.4,
		ReviewCount: 33,
		Tags:        []string{"shirt", "linen", "summer", "relaxed", "breathable"},
	},
	{
		ID:          "14",
		Name:        "Woven Straw Sun Hat",
		Description: "Handwoven straw sun hat providing style and sun protection. The wide brim creates flattering shadows while the adjustable inner band ensures a perfect fit. Features a grosgrain ribbon band and packable design for travel. Essential for beach days, garden parties, or any outdoor adventure.",
		Price:       52.00,
		Image:       "https://images.unsplash.com/photo-1521369909029-2afed882baee?w=500&h=500&fit=crop",
		Category:    "Accessories",
		InStock:     true,
		Colors:      []string{"Natural Straw", "Black Band"},
		Sizes:       []string{"Small", "Medium", "Large"},
		Brand:       "Sunbrim Artisans",
		Rating:      4.5,
		ReviewCount: 18,
		Tags:        []string{"hat", "straw", "sun protection", "woven", "summer"},
	},

	// Sale items
	{
		ID:          "15",
		Name:        "Vintage-Inspired Denim Jacket",
		Description: "Classic denim jacket with vintage-inspired wash and authentic details. Features contrast stitching, chest pockets with button flaps, and a slightly cropped silhouette. The medium-weight denim is pre-washed for softness and comfort. A timeless piece that works with everything from dresses to jeans.",
		Price:       89.00,
		SalePrice:   62.30,
		Image:       "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Medium Wash", "Dark Wash"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Brand:       "Vintage Revival",
		Rating:      4.3,
		ReviewCount: 24,
		Tags:        []string{"jacket", "denim", "vintage", "cropped", "classic"},
		IsSale:      true,
	},
	{
		ID:          "16",
		Name:        "Ribbed Knit Cardigan",
		Description: "Cozy ribbed knit cardigan in a soft wool blend. The open-front design and relaxed fit make it perfect for layering over tanks, tees, or dresses. Features dropped shoulders and side pockets for a casual yet put-together look. Available in versatile neutral tones.",
		Price:       95.00,
		SalePrice:   66.50,
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop",
		Category:    "Women's Clothing",
		InStock:     true,
		Colors:      []string{"Oatmeal", "Charcoal", "Dusty Rose"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Brand:       "Knit & Cozy",
		Rating:      4.6,
		ReviewCount: 41,
		Tags:        []string{"cardigan", "knit", "wool", "cozy", "layering"},
		IsSale:      true,
	},
}

// ByID returns the product with the given id, or nil.
func ByID(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// ByCategory returns products whose category contains the given string,
// case-insensitive.
func ByCategory(products []model.Product, category string) []model.Product {
	category = strings.ToLower(category)
	var out []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Category), category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products matching the query against name, description,
// tags, and brand.
func Search(products []model.Product, query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}
	var out []model.Product
	for _, p := range products {
		if matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns products flagged as new or on sale.
func Featured(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.IsNew || p.IsSale {
			out = append(out, p)
		}
	}
	return out
}

// SaleItems returns products flagged as on sale.
func SaleItems(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.IsSale {
			out = append(out, p)
		}
	}
	return out
}

// NewArrivals returns products flagged as new.
func NewArrivals(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}
