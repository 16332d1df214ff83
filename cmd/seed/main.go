// Command seed wipes and repopulates the database with the launch catalog:
// one admin account, four collections, five categories, a set of pieces and
// the initial testimonials.
package main

import (
	"os"

	"alienic/internal/config"
	"alienic/internal/database"
	"alienic/internal/domain"
	"alienic/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if err := run(db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed complete")
}

func run(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&domain.Notification{},
			&domain.Testimonial{},
			&domain.OrderProduct{},
			&domain.Order{},
			&domain.ProductImage{},
			&domain.Product{},
			&domain.Collection{},
			&domain.ContactMessage{},
			&domain.Category{},
			&domain.AdminUser{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if err := seedAdmin(tx); err != nil {
			return err
		}

		collections, err := seedCollections(tx)
		if err != nil {
			return err
		}
		categories, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if err := seedProducts(tx, collections, categories); err != nil {
			return err
		}
		return seedTestimonials(tx)
	})
}

func seedAdmin(tx *gorm.DB) error {
	email := envOr("ADMIN_EMAIL", "admin@alienic.studio")
	password := envOr("ADMIN_PASSWORD", "admin")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &domain.AdminUser{Email: email, HashedPassword: string(hash)}
	if err := tx.Create(admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("admin user created")
	return nil
}

func seedCollections(tx *gorm.DB) (map[string]string, error) {
	collections := []domain.Collection{
		{
			Slug:        "oxidized-relics",
			Title:       "Oxidized Relics",
			Subtitle:    "Collection I — 2024",
			Description: "The first collection drew from the beauty of decay. Silver pieces intentionally aged to carry the weight of time, each relic bearing the marks of a deliberate transformation, as if unearthed from a forgotten shrine.",
			Mood:        domain.StringList{"Ancient", "Weathered", "Sacred"},
			Order:       1,
		},
		{
			Slug:        "void-geometry",
			Title:       "Void Geometry",
			Subtitle:    "Collection II — 2024",
			Description: "Where sharp angles meet organic curves. This collection explores the tension between precision and chaos. Geometric forms that seem to fold in on themselves, creating portals to the void.",
			Mood:        domain.StringList{"Futuristic", "Minimal", "Dark"},
			Order:       2,
		},
		{
			Slug:        "matte-shadows",
			Title:       "Matte Shadows",
			Subtitle:    "Collection III — 2025",
			Description: "An exploration of darkness itself. Black-on-black textured metalwork that absorbs light and demands touch. These pieces exist in the space between visibility and void.",
			Mood:        domain.StringList{"Mysterious", "Tactile", "Heavy"},
			Order:       3,
		},
		{
			Slug:        "stellar-fragments",
			Title:       "Stellar Fragments",
			Subtitle:    "Collection IV — 2025",
			Description: "Inspired by the remnants of collapsed stars. Each piece captures the paradox of cosmic violence and beauty, raw metal surfaces that catch light like distant nebulae.",
			Mood:        domain.StringList{"Cosmic", "Raw", "Luminous"},
			Order:       4,
		},
	}

	ids := make(map[string]string, len(collections))
	for i := range collections {
		if err := tx.Create(&collections[i]).Error; err != nil {
			return nil, err
		}
		ids[collections[i].Slug] = collections[i].ID
	}
	return ids, nil
}

func seedCategories(tx *gorm.DB) (map[string]string, error) {
	categories := []domain.Category{
		{Name: "Pendants", Slug: "pendants", Description: "Hanging jewelry pieces worn on chains or cords"},
		{Name: "Rings", Slug: "rings", Description: "Statement rings and everyday pieces crafted with precision"},
		{Name: "Chains", Slug: "chains", Description: "Metal chains and leather strands"},
		{Name: "One of One", Slug: "one-of-one", Description: "Unique, limited edition pieces"},
		{Name: "Other", Slug: "other", Description: "Miscellaneous jewelry items"},
	}

	ids := make(map[string]string, len(categories))
	for i := range categories {
		if err := tx.Create(&categories[i]).Error; err != nil {
			return nil, err
		}
		ids[categories[i].Slug] = categories[i].ID
	}
	return ids, nil
}

func seedProducts(tx *gorm.DB, collections, categories map[string]string) error {
	ref := func(m map[string]string, key string) *string {
		id := m[key]
		return &id
	}

	products := []domain.Product{
		{
			Slug:         "the-void-pendant",
			Name:         "The Void Pendant",
			CategoryID:   ref(categories, "pendants"),
			Price:        "$85",
			PriceNumeric: 85,
			Material:     "Oxidized Sterling Silver",
			CollectionID: ref(collections, "oxidized-relics"),
			Story:        "Born from the silence between stars. This pendant captures the gravitational pull of absence. Handforged and darkened through controlled oxidation.",
			IsFeatured:   true,
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "stellar-fragment-ring",
			Name:         "Stellar Fragment Ring",
			CategoryID:   ref(categories, "rings"),
			Price:        "$120",
			PriceNumeric: 120,
			Material:     "Matte Black Steel",
			CollectionID: ref(collections, "void-geometry"),
			Story:        "A fractured piece of cosmic geometry, wrapped around your finger like a promise from another dimension. The angular surfaces catch light in unexpected ways.",
			IsFeatured:   true,
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "the-beacon",
			Name:         "The Beacon",
			CategoryID:   ref(categories, "pendants"),
			Price:        "$95",
			PriceNumeric: 95,
			Material:     "Brushed Silver, Black Cord",
			CollectionID: ref(collections, "matte-shadows"),
			Story:        "A four-pointed star that serves as a guide through the darkness. Both compass and talisman, a reminder that light persists even in the deepest void.",
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "chain-of-whispers",
			Name:         "Chain of Whispers",
			CategoryID:   ref(categories, "chains"),
			Price:        "$65",
			PriceNumeric: 65,
			Material:     "Oxidized Silver Links",
			CollectionID: ref(collections, "oxidized-relics"),
			Story:        "Each link forged separately, carrying its own imperfections like whispered secrets. Designed to age with you, growing darker and more characterful with wear.",
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "relic-of-the-fallen-star",
			Name:         "Relic of the Fallen Star",
			CategoryID:   ref(categories, "one-of-one"),
			Price:        "$250",
			PriceNumeric: 250,
			Material:     "Mixed Metals, Meteorite Fragment",
			CollectionID: ref(collections, "stellar-fragments"),
			Story:        "The crown jewel of the collection. A mixed-metal sculpture pendant incorporating a genuine meteorite fragment. Utterly unique, never to be replicated.",
			IsFeatured:   true,
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "obsidian-band",
			Name:         "Obsidian Band",
			CategoryID:   ref(categories, "rings"),
			Price:        "$90",
			PriceNumeric: 90,
			Material:     "Matte Black Titanium",
			CollectionID: ref(collections, "matte-shadows"),
			Story:        "A ring that absorbs light. The matte black titanium surface is treated to resist fingerprints and shine, a permanent shadow wrapping your finger.",
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "eclipse-pendant",
			Name:         "Eclipse Pendant",
			CategoryID:   ref(categories, "pendants"),
			Price:        "$110",
			PriceNumeric: 110,
			Material:     "Oxidized Silver with Moonstone",
			CollectionID: ref(collections, "stellar-fragments"),
			Story:        "A celestial alignment captured in metal. The moonstone centerpiece shifts between light and shadow, mirroring the dance of celestial bodies.",
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
		{
			Slug:         "void-chain",
			Name:         "Void Chain",
			CategoryID:   ref(categories, "chains"),
			Price:        "$75",
			PriceNumeric: 75,
			Material:     "Matte Black Steel Links",
			CollectionID: ref(collections, "void-geometry"),
			Story:        "Geometric links that form a chain of negative space. Each link is precisely cut to create voids within the structure.",
			IsAvailable:  true,
			Status:       domain.ProductActive,
		},
	}

	for i := range products {
		if err := tx.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(tx *gorm.DB) error {
	testimonials := []domain.Testimonial{
		{Name: "Mara V.", Location: "Berlin, Germany", Rating: 5, Text: "The piece arrived wrapped in black tissue like a relic from another world. You can feel the intention in every curve and edge.", Source: "Manual", Status: domain.TestimonialApproved, ShowOnHomepage: true},
		{Name: "Kai S.", Location: "Portland, USA", Rating: 5, Text: "I've never owned anything that felt so deliberately crafted. The oxidation gives it this living quality, like it's still transforming.", Source: "Manual", Status: domain.TestimonialApproved, ShowOnHomepage: true},
		{Name: "Lena R.", Location: "Stockholm, Sweden", Rating: 5, Text: "More than jewelry. Strangers stop me to ask about it. It feels like wearing a secret.", Source: "Manual", Status: domain.TestimonialApproved, ShowOnHomepage: true},
		{Name: "Dmitri K.", Location: "Moscow, Russia", Rating: 4, Text: "The craftsmanship is undeniable. Each surface tells a story of the hands that shaped it.", Source: "Manual", Status: domain.TestimonialApproved},
		{Name: "Anya T.", Location: "Tokyo, Japan", Rating: 5, Text: "I commissioned a custom piece and the entire process felt sacred, from the initial conversation to the moment I unwrapped it.", Source: "Manual", Status: domain.TestimonialApproved},
		{Name: "Sol M.", Location: "Buenos Aires, Argentina", Rating: 5, Text: "The Relic of the Fallen Star is extraordinary. Knowing there's actual meteorite in the piece makes it feel like carrying a fragment of the universe.", Source: "Manual", Status: domain.TestimonialApproved},
		{Name: "Alex K.", Location: "London, UK", Rating: 5, Text: "Absolutely stunning piece. The attention to detail is remarkable. Can't wait to add more to my collection.", Source: "Form", Status: domain.TestimonialPending},
		{Name: "Sofia M.", Location: "Barcelona, Spain", Rating: 5, Text: "The Void Chain is everything I hoped for and more. It's become a daily essential.", Source: "Form", Status: domain.TestimonialPending},
	}

	for i := range testimonials {
		if err := tx.Create(&testimonials[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
