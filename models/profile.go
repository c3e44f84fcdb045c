package models

import "time"

// Profile is the singleton aggregate holding all site content. The nested
// collections are stored as JSON columns so the whole document is read and
// written as one row, and elements are addressed by array index on the wire.
// Every element also carries a generated id so clients can correlate entries
// across mutations; the index remains the routing contract.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text;not null" json:"description"`
	ProfileImage string `gorm:"type:text;not null" json:"profileImage"`
	LogoImage    string `gorm:"type:text;not null" json:"logoImage"`

	BackgroundColor      string `gorm:"size:32" json:"backgroundColor"`
	TextColor            string `gorm:"size:32" json:"textColor"`
	AccentColor          string `gorm:"size:32" json:"accentColor"`
	GalleryBgColor       string `gorm:"size:32" json:"galleryBgColor"`
	ServicesBgColor      string `gorm:"size:32" json:"servicesBgColor"`
	ServicesTextColor    string `gorm:"size:32" json:"servicesTextColor"`
	ServicesCardColor    string `gorm:"size:32" json:"servicesCardColor"`
	ProductsBgColor      string `gorm:"size:32" json:"productsBgColor"`
	ProductsTextColor    string `gorm:"size:32" json:"productsTextColor"`
	ProductsCardColor    string `gorm:"size:32" json:"productsCardColor"`
	BlogBgColor          string `gorm:"size:32" json:"blogBgColor"`
	BlogTextColor        string `gorm:"size:32" json:"blogTextColor"`
	BlogCardColor        string `gorm:"size:32" json:"blogCardColor"`
	FaqBgColor           string `gorm:"size:32" json:"faqBgColor"`
	FaqTextColor         string `gorm:"size:32" json:"faqTextColor"`
	FaqCardColor         string `gorm:"size:32" json:"faqCardColor"`
	ContactBgColor       string `gorm:"size:32" json:"contactBgColor"`
	ContactInfoTextColor string `gorm:"size:32" json:"contactInfoTextColor"`
	ContactInfoCardColor string `gorm:"size:32" json:"contactInfoCardColor"`

	ServicesSectionTitle string `gorm:"size:255" json:"servicesSectionTitle"`
	ProductsSectionTitle string `gorm:"size:255" json:"productsSectionTitle"`
	BlogSectionTitle     string `gorm:"size:255" json:"blogSectionTitle"`
	GallerySectionTitle  string `gorm:"size:255" json:"gallerySectionTitle"`
	InfoSectionTitle     string `gorm:"size:255" json:"infoSectionTitle"`
	FaqSectionTitle      string `gorm:"size:255" json:"faqSectionTitle"`
	ContactSectionTitle  string `gorm:"size:255" json:"contactSectionTitle"`

	SectionOrder    []string `gorm:"serializer:json" json:"sectionOrder"`
	CustomCode      string   `gorm:"type:text" json:"customCode"`
	ShowContactForm bool     `gorm:"default:true" json:"showContactForm"`
	ContactEmail    string   `gorm:"size:255" json:"contactEmail"`

	Links         []Link        `gorm:"serializer:json" json:"links"`
	Services      []Service     `gorm:"serializer:json" json:"services"`
	Products      []Product     `gorm:"serializer:json" json:"products"`
	BlogPosts     []BlogPost    `gorm:"serializer:json" json:"blogPosts"`
	ContactInfo   []ContactInfo `gorm:"serializer:json" json:"contactInfo"`
	Faqs          []Faq         `gorm:"serializer:json" json:"faqs"`
	Blocks        []Block       `gorm:"serializer:json" json:"blocks"`
	GalleryImages []string      `gorm:"serializer:json" json:"galleryImages"`
}

// Link is an external link button on the landing page.
type Link struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Service is an entry in the services section.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Product is a sellable item. Image and icon are mutually exclusive
// presentation choices; uploading an image clears the icon.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ButtonText  string `json:"buttonText"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// BlogPost is a dated article. Date is a display string, not a timestamp.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt,omitempty"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// ContactInfoTypes are the accepted values for ContactInfo.Type.
var ContactInfoTypes = []string{"text", "email", "phone", "link"}

// ContactInfo is a single row in the contact information section.
type ContactInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
}

// Faq is a question/answer pair.
type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Block is a free-form content section with its own colors.
type Block struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
	Image      string `json:"image,omitempty"`
	BgColor    string `json:"bgColor"`
	TextColor  string `json:"textColor"`
}
