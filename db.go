package main

import (
	"image/color"
	"os"
	"strings"

	"biosite/models"
	"biosite/pkg/imagedata"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	dsn := os.Getenv("DB_DSN")

	var dial gorm.Dialector
	switch driver {
	case "", "postgres":
		if dsn == "" {
			logger.Fatal().Msg("DB_DSN is not set. Provide a Postgres DSN or set DB_DRIVER=sqlite.")
		}
		dial = postgres.Open(dsn)
	case "sqlite":
		if dsn == "" {
			dsn = "biosite.db"
		}
		dial = sqlite.Open(dsn)
	default:
		logger.Fatal().Str("driver", driver).Msg("unsupported DB_DRIVER")
	}

	var err error
	db, err = gorm.Open(dial, &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block the other
		if err := db.AutoMigrate(&models.Account{}); err != nil {
			logger.Warn().Err(err).Msg("migration warning (accounts)")
		}
		if err := db.AutoMigrate(&models.Profile{}); err != nil {
			logger.Warn().Err(err).Msg("migration warning (profiles)")
		}
	}
	seedDB()
}

// seedDB makes a fresh install usable: one admin account to log in with and
// one fully populated placeholder profile so the site is never empty.
// Both steps are idempotent.
func seedDB() {
	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	if accounts == 0 {
		email := os.Getenv("ADMIN_EMAIL")
		if email == "" {
			email = "admin@example.com"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("failed to hash admin password")
			return
		}
		if err := db.Create(&models.Account{Email: email, PasswordHash: hash}).Error; err != nil {
			logger.Error().Err(err).Msg("failed to seed admin account")
		} else {
			logger.Info().Str("email", email).Msg("seeded default admin account")
		}
	}

	var profiles int64
	db.Model(&models.Profile{}).Count(&profiles)
	if profiles == 0 {
		p := defaultProfile()
		if err := db.Create(&p).Error; err != nil {
			logger.Error().Err(err).Msg("failed to seed default profile")
		} else {
			logger.Info().Msg("seeded default profile")
		}
	}
}

// seedPlaceholder renders a solid-color inline PNG for the default profile.
// Images are embedded in the document, so even the seed content must be
// self-contained rather than pointing at files that do not exist.
func seedPlaceholder(width, height int, c color.Color) string {
	img, err := imagedata.PlaceholderPNG(width, height, c)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to render placeholder image")
		return ""
	}
	return img
}

func defaultProfile() models.Profile {
	accent := color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}
	dark := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	return models.Profile{
		Name:         "John Doe",
		Description:  "Welcome to my personal profile! I'm a passionate web developer with expertise in creating responsive and user-friendly websites. Feel free to browse through my work and get in touch if you'd like to collaborate.",
		ProfileImage: seedPlaceholder(600, 600, accent),
		LogoImage:    seedPlaceholder(200, 200, dark),

		BackgroundColor:      "#ffffff",
		TextColor:            "#333333",
		AccentColor:          "#4f46e5",
		GalleryBgColor:       "#f9fafb",
		ServicesBgColor:      "#ffffff",
		ServicesTextColor:    "#333333",
		ServicesCardColor:    "#f9fafb",
		ProductsBgColor:      "#f9fafb",
		ProductsTextColor:    "#333333",
		ProductsCardColor:    "#ffffff",
		BlogBgColor:          "#ffffff",
		BlogTextColor:        "#333333",
		BlogCardColor:        "#f9fafb",
		FaqBgColor:           "#ffffff",
		FaqTextColor:         "#333333",
		FaqCardColor:         "#ffffff",
		ContactBgColor:       "#f9fafb",
		ContactInfoTextColor: "#333333",
		ContactInfoCardColor: "#ffffff",

		ServicesSectionTitle: "My Services",
		ProductsSectionTitle: "My Products",
		BlogSectionTitle:     "Latest Blog Posts",
		GallerySectionTitle:  "My Gallery",
		InfoSectionTitle:     "Contact Information",
		FaqSectionTitle:      "Frequently Asked Questions",
		ContactSectionTitle:  "Contact Me",

		SectionOrder: []string{
			"links-section",
			"services-section",
			"products-section",
			"blog-section",
			"gallery-section",
			"info-section",
			"faq-section",
			"contact-section",
		},
		CustomCode:      "",
		ShowContactForm: true,
		ContactEmail:    "admin@example.com",

		Links: []models.Link{
			{ID: uuid.NewString(), Text: "GitHub", URL: "https://github.com", Icon: "github"},
			{ID: uuid.NewString(), Text: "LinkedIn", URL: "https://linkedin.com", Icon: "linkedin"},
		},
		Services: []models.Service{
			{ID: uuid.NewString(), Title: "Web Development", Description: "Custom websites and web applications built with the latest technologies.", Icon: "code"},
			{ID: uuid.NewString(), Title: "UI/UX Design", Description: "User-friendly interfaces that provide a great user experience.", Icon: "paint-brush"},
			{ID: uuid.NewString(), Title: "Mobile Apps", Description: "Native and cross-platform mobile applications for iOS and Android.", Icon: "mobile"},
		},
		Products: []models.Product{
			{ID: uuid.NewString(), Title: "Premium Website Template", Description: "A responsive website template with modern design and features.", Price: "$99", ButtonText: "Buy Now", Icon: "desktop"},
			{ID: uuid.NewString(), Title: "SEO Optimization Package", Description: "Comprehensive SEO optimization to improve your website's visibility.", Price: "$199", ButtonText: "Learn More", Icon: "search"},
		},
		BlogPosts: []models.BlogPost{
			{ID: uuid.NewString(), Title: "Getting Started with Web Development", Date: "January 15, 2023", Excerpt: "Learn the basics of web development and how to get started.", Content: "Web development is an exciting field that combines creativity and technical skills. In this post, we'll explore the fundamentals of web development and provide resources for beginners."},
			{ID: uuid.NewString(), Title: "The Importance of Responsive Design", Date: "February 10, 2023", Excerpt: "Why responsive design is crucial for modern websites.", Content: "In today's mobile-first world, responsive design is no longer optional. This post explains why responsive design matters and how to implement it effectively."},
		},
		ContactInfo: []models.ContactInfo{
			{ID: uuid.NewString(), Title: "Email", Value: "contact@example.com", Type: "email", Icon: "envelope"},
			{ID: uuid.NewString(), Title: "Phone", Value: "+1 (555) 123-4567", Type: "phone", Icon: "phone"},
			{ID: uuid.NewString(), Title: "Address", Value: "123 Main Street, City, Country", Type: "text", Icon: "map-marker-alt"},
		},
		Faqs: []models.Faq{
			{ID: uuid.NewString(), Question: "What services do you offer?", Answer: "I offer web development, UI/UX design, and mobile app development services."},
			{ID: uuid.NewString(), Question: "How can I contact you?", Answer: "You can use the contact form on this page or email me directly at contact@example.com."},
		},
		Blocks: []models.Block{},
		GalleryImages: []string{
			seedPlaceholder(800, 600, color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}),
			seedPlaceholder(800, 600, color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}),
			seedPlaceholder(800, 600, color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}),
		},
	}
}
