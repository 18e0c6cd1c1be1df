package catalog

type categoryData struct {
	name     string
	products []Product
}

var categoryOrder = []string{"t-shirts", "hoodies", "mugs", "caps"}

var colorCodes = map[string]string{
	"White":          "#FFFFFF",
	"Black":          "#000000",
	"Navy":           "#1a365d",
	"Red":            "#dc2626",
	"Forest Green":   "#228B22",
	"Heather Grey":   "#9ca3af",
	"Grey":           "#6b7280",
	"Charcoal":       "#374151",
	"Maroon":         "#7f1d1d",
	"Khaki":          "#c4b097",
	"Sport Grey":     "#6b7280",
	"French Navy":    "#1e3a5f",
	"Desert Dust":    "#d4c4b0",
	"Black/White":    "#000000",
	"Navy/White":     "#1a365d",
	"Charcoal/White": "#374151",
}

var categories = map[string]categoryData{
	"t-shirts": {
		name: "T-Shirts",
		products: []Product{
			{
				ID:          71,
				Title:       "Unisex Staple T-Shirt | Bella + Canvas 3001",
				Description: "This classic unisex jersey short sleeve tee fits like a well-loved favorite. Soft cotton and quality print make for a great staple piece.",
				Type:        "T-SHIRT",
				Brand:       "Bella + Canvas",
				Image:       "/white-unisex-t-shirt-product-photo.jpg",
				ColorImages: map[string]string{
					"White":        "/white-plain-t-shirt-front-view-product-photo.jpg",
					"Black":        "/black-plain-t-shirt-front-view-product-photo.jpg",
					"Navy":         "/navy-blue-plain-t-shirt-front-view-product-photo.jpg",
					"Red":          "/red-plain-t-shirt-front-view-product-photo.jpg",
					"Forest Green": "/forest-green-plain-t-shirt-front-view-product-phot.jpg",
					"Heather Grey": "/heather-grey-plain-t-shirt-front-view-product-phot.jpg",
				},
				BasePrice: 799,
				Colors:    []string{"White", "Black", "Navy", "Red", "Forest Green", "Heather Grey"},
				Sizes:     []string{"S", "M", "L", "XL", "2XL", "3XL"},
			},
			{
				ID:          145,
				Title:       "Unisex Premium T-Shirt | Bella + Canvas 3001",
				Description: "Premium quality t-shirt with a modern fit. Perfect for custom designs and everyday wear.",
				Type:        "T-SHIRT",
				Brand:       "Bella + Canvas",
				Image:       "/premium-black-t-shirt-product-photo.jpg",
				ColorImages: map[string]string{
					"White":    "/white-premium-t-shirt-front-view-product-photo.jpg",
					"Black":    "/black-premium-t-shirt-front-view-product-photo.jpg",
					"Navy":     "/navy-blue-premium-t-shirt-front-view-product-photo.jpg",
					"Charcoal": "/charcoal-grey-premium-t-shirt-front-view-product-p.jpg",
					"Maroon":   "/maroon-premium-t-shirt-front-view-product-photo.jpg",
				},
				BasePrice: 899,
				Colors:    []string{"White", "Black", "Navy", "Charcoal", "Maroon"},
				Sizes:     []string{"S", "M", "L", "XL", "2XL"},
			},
			{
				ID:          380,
				Title:       "Unisex Organic Cotton T-Shirt",
				Description: "Eco-friendly organic cotton t-shirt. Sustainable fashion meets quality printing.",
				Type:        "T-SHIRT",
				Brand:       "Stanley/Stella",
				Image:       "/organic-cotton-t-shirt-eco-friendly.jpg",
				ColorImages: map[string]string{
					"White":       "/white-organic-cotton-t-shirt-front-view.jpg",
					"Black":       "/black-organic-cotton-t-shirt-front-view.jpg",
					"French Navy": "/french-navy-organic-cotton-t-shirt-front-view.jpg",
					"Desert Dust": "/desert-dust-beige-organic-cotton-t-shirt-front-vie.jpg",
				},
				BasePrice: 1099,
				Colors:    []string{"White", "Black", "French Navy", "Desert Dust"},
				Sizes:     []string{"XS", "S", "M", "L", "XL", "2XL"},
			},
		},
	},
	"hoodies": {
		name: "Hoodies",
		products: []Product{
			{
				ID:          146,
				Title:       "Unisex Heavy Blend Hoodie | Gildan 18500",
				Description: "A cozy blend of cotton and polyester that keeps you warm and looks great with your custom design.",
				Type:        "HOODIE",
				Brand:       "Gildan",
				Image:       "/black-hoodie-sweatshirt-product-photo.jpg",
				ColorImages: map[string]string{
					"White":        "/white-heavy-blend-hoodie-front-view.jpg",
					"Black":        "/black-heavy-blend-hoodie-front-view.jpg",
					"Navy":         "/navy-heavy-blend-hoodie-front-view.jpg",
					"Sport Grey":   "/sport-grey-heavy-blend-hoodie-front-view.jpg",
					"Maroon":       "/maroon-heavy-blend-hoodie-front-view.jpg",
					"Forest Green": "/forest-green-heavy-blend-hoodie-front-view.jpg",
				},
				BasePrice: 1999,
				Colors:    []string{"White", "Black", "Navy", "Sport Grey", "Maroon", "Forest Green"},
				Sizes:     []string{"S", "M", "L", "XL", "2XL", "3XL"},
			},
			{
				ID:          293,
				Title:       "Premium Pullover Hoodie | Bella + Canvas 3719",
				Description: "Ultra-soft fleece hoodie with a modern fit. Perfect for custom artwork.",
				Type:        "HOODIE",
				Brand:       "Bella + Canvas",
				Image:       "/grey-premium-pullover-hoodie.jpg",
				ColorImages: map[string]string{
					"White":        "/white-premium-pullover-hoodie-front-view.jpg",
					"Black":        "/black-premium-pullover-hoodie-front-view.jpg",
					"Heather Grey": "/heather-grey-premium-pullover-hoodie-front-view.jpg",
					"Navy":         "/navy-premium-pullover-hoodie-front-view.jpg",
				},
				BasePrice: 2499,
				Colors:    []string{"White", "Black", "Heather Grey", "Navy"},
				Sizes:     []string{"S", "M", "L", "XL", "2XL"},
			},
			{
				ID:          381,
				Title:       "Zip-Up Hoodie | Independent Trading",
				Description: "Classic zip-up hoodie with front pockets. Great for layering.",
				Type:        "HOODIE",
				Brand:       "Independent Trading",
				Image:       "/zip-up-hoodie-navy-blue.jpg",
				ColorImages: map[string]string{
					"Black":        "/black-zip-up-hoodie-front-view.jpg",
					"Navy":         "/navy-zip-up-hoodie-front-view.jpg",
					"Charcoal":     "/charcoal-zip-up-hoodie-front-view.jpg",
					"Heather Grey": "/heather-grey-zip-up-hoodie-front-view.jpg",
				},
				BasePrice: 2299,
				Colors:    []string{"Black", "Navy", "Charcoal", "Heather Grey"},
				Sizes:     []string{"S", "M", "L", "XL", "2XL"},
			},
		},
	},
	"mugs": {
		name: "Mugs",
		products: []Product{
			{
				ID:          19,
				Title:       "White Glossy Mug 11oz",
				Description: "Classic ceramic mug with a glossy finish. Dishwasher and microwave safe.",
				Type:        "MUG",
				Brand:       "Generic",
				Image:       "/white-ceramic-coffee-mug.jpg",
				ColorImages: map[string]string{
					"White": "/white-glossy-mug-11oz-front-view.jpg",
				},
				BasePrice: 599,
				Colors:    []string{"White"},
				Sizes:     []string{"11oz"},
			},
			{
				ID:          218,
				Title:       "White Glossy Mug 15oz",
				Description: "Larger ceramic mug for those who need more coffee. Vibrant print quality.",
				Type:        "MUG",
				Brand:       "Generic",
				Image:       "/large-white-ceramic-mug-15oz.jpg",
				ColorImages: map[string]string{
					"White": "/white-glossy-mug-15oz-front-view.jpg",
				},
				BasePrice: 699,
				Colors:    []string{"White"},
				Sizes:     []string{"15oz"},
			},
			{
				ID:          383,
				Title:       "Black Mug 11oz",
				Description: "Sleek black ceramic mug. Stand out with your design on a dark background.",
				Type:        "MUG",
				Brand:       "Generic",
				Image:       "/black-ceramic-coffee-mug.jpg",
				ColorImages: map[string]string{
					"Black": "/black-glossy-mug-11oz-front-view.jpg",
				},
				BasePrice: 699,
				Colors:    []string{"Black"},
				Sizes:     []string{"11oz"},
			},
		},
	},
	"caps": {
		name: "Caps & Hats",
		products: []Product{
			{
				ID:          206,
				Title:       "Dad Hat | Yupoong 6245CM",
				Description: "Classic low-profile dad hat with adjustable strap. Embroidered design.",
				Type:        "HAT",
				Brand:       "Yupoong",
				Image:       "/dad-hat-baseball-cap-khaki.jpg",
				ColorImages: map[string]string{
					"White": "/placeholder.svg?height=600&width=600",
					"Black": "/placeholder.svg?height=600&width=600",
					"Navy":  "/placeholder.svg?height=600&width=600",
					"Khaki": "/placeholder.svg?height=600&width=600",
					"Red":   "/placeholder.svg?height=600&width=600",
				},
				BasePrice: 1299,
				Colors:    []string{"White", "Black", "Navy", "Khaki", "Red"},
				Sizes:     []string{"One Size"},
			},
			{
				ID:          376,
				Title:       "Snapback Hat | Yupoong 6089M",
				Description: "Flat bill snapback with structured crown. Bold embroidery options.",
				Type:        "HAT",
				Brand:       "Yupoong",
				Image:       "/snapback-hat-flat-bill-black.jpg",
				ColorImages: map[string]string{
					"Black": "/placeholder.svg?height=600&width=600",
					"Navy":  "/placeholder.svg?height=600&width=600",
					"Red":   "/placeholder.svg?height=600&width=600",
					"Grey":  "/placeholder.svg?height=600&width=600",
				},
				BasePrice: 1499,
				Colors:    []string{"Black", "Navy", "Red", "Grey"},
				Sizes:     []string{"One Size"},
			},
			{
				ID:          439,
				Title:       "Trucker Cap | Richardson 112",
				Description: "Classic trucker style with mesh back. Breathable and stylish.",
				Type:        "HAT",
				Brand:       "Richardson",
				Image:       "/trucker-cap-mesh-back.jpg",
				ColorImages: map[string]string{
					"Black/White":    "/placeholder.svg?height=600&width=600",
					"Navy/White":     "/placeholder.svg?height=600&width=600",
					"Charcoal/White": "/placeholder.svg?height=600&width=600",
				},
				BasePrice: 1399,
				Colors:    []string{"Black/White", "Navy/White", "Charcoal/White"},
				Sizes:     []string{"One Size"},
			},
		},
	},
}
