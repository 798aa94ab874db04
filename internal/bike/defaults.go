package bike

// defaultCatalog is the stock fleet seeded into an empty database. It
// mirrors the catalog the frontend used to keep in browser storage before
// the server became the catalog authority.
var defaultCatalog = []Bike{
	{
		Name:         "Royal Enfield Classic",
		Type:         TypeGear,
		PricePerHour: 300,
		Image:        "https://images.unsplash.com/photo-1605008634123-2e8bee8a4a54?q=80&w=800&auto=format&fit=crop",
		Description:  "Iconic vintage style bike with thumping 350cc engine",
	},
	{
		Name:         "Royal Enfield GT 650",
		Type:         TypeGear,
		PricePerHour: 400,
		Image:        "https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?q=80&w=800&auto=format&fit=crop",
		Description:  "Premium twin-cylinder cafe racer with 650cc power",
	},
	{
		Name:         "Honda Scooty",
		Type:         TypeNonGear,
		PricePerHour: 80,
		Image:        "https://images.unsplash.com/photo-1571068316344-75bc76f77890?q=80&w=800&auto=format&fit=crop",
		Description:  "Lightweight and easy-to-ride scooter for city commuting",
	},
	{
		Name:         "Hero Splendor",
		Type:         TypeGear,
		PricePerHour: 120,
		Image:        "https://images.unsplash.com/photo-1558649092-b3b93e2c8c0a?q=80&w=800&auto=format&fit=crop",
		Description:  "Most trusted commuter bike with excellent mileage",
	},
	{
		Name:         "Bajaj NS 200",
		Type:         TypeGear,
		PricePerHour: 250,
		Image:        "https://images.unsplash.com/photo-1609630875171-b1321377ee65?q=80&w=800&auto=format&fit=crop",
		Description:  "Sporty naked bike with powerful 200cc engine",
	},
	{
		Name:         "TVS Scooty Pep+",
		Type:         TypeNonGear,
		PricePerHour: 70,
		Image:        "https://images.unsplash.com/photo-1525609004556-c46c7d6cf023?q=80&w=800&auto=format&fit=crop",
		Description:  "Affordable and reliable scooter perfect for daily use",
	},
	{
		Name:         "Honda Activa",
		Type:         TypeNonGear,
		PricePerHour: 100,
		Image:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?q=80&w=800&auto=format&fit=crop",
		Description:  "India's most popular automatic scooter with great comfort",
	},
	{
		Name:         "Ola Electric S1",
		Type:         TypeNonGear,
		PricePerHour: 150,
		Image:        "https://images.unsplash.com/photo-1609630875143-3a4b3f7b2b00?q=80&w=800&auto=format&fit=crop",
		Description:  "Modern electric scooter with smart features and zero emissions",
	},
}

// legacyImageByName maps bike names to their web images. Earlier releases
// stored local placeholder paths (e.g. /images/all-bikes.jpg) in admin-saved
// catalogs; rows still carrying those paths are rewritten on startup.
var legacyImageByName = func() map[string]string {
	m := make(map[string]string, len(defaultCatalog))
	for _, b := range defaultCatalog {
		m[b.Name] = b.Image
	}
	return m
}()
