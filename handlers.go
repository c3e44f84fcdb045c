package main

import (
	"fmt"
	"net/http"
	"strings"

	"biosite/pkg/imagedata"
	"biosite/pkg/mailer"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/api/login", loginHandler)
	r.GET("/api/profile", getProfileHandler)
	r.POST("/api/contact", contactHandler)

	authGroup := r.Group("/api")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.PUT("/profile", updateProfileHandler)
	authGroup.PUT("/logo", updateLogoHandler)
	authGroup.POST("/gallery", uploadGalleryHandler)
	authGroup.DELETE("/gallery/:index", deleteGalleryImageHandler)
	registerSubResources(authGroup)
}

// Error responses are always {message, error?} with the mapped status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func respondErrorDetail(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{"message": message, "error": err.Error()})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	acct, err := Authenticate(req.Email, req.Password)
	if err != nil {
		// Same body for unknown email and wrong password.
		respondError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	token, err := issueToken(acct)
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func getProfileHandler(c *gin.Context) {
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// profileUpdateRequest uses pointer fields so each one is tri-state: absent
// (nil, leave untouched), set to a value, or explicitly cleared where the
// field allows it. Form tags cover multipart requests carrying a new
// profile image alongside scalar fields.
type profileUpdateRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`

	BackgroundColor      *string `json:"backgroundColor" form:"backgroundColor"`
	TextColor            *string `json:"textColor" form:"textColor"`
	AccentColor          *string `json:"accentColor" form:"accentColor"`
	GalleryBgColor       *string `json:"galleryBgColor" form:"galleryBgColor"`
	ServicesBgColor      *string `json:"servicesBgColor" form:"servicesBgColor"`
	ServicesTextColor    *string `json:"servicesTextColor" form:"servicesTextColor"`
	ServicesCardColor    *string `json:"servicesCardColor" form:"servicesCardColor"`
	ProductsBgColor      *string `json:"productsBgColor" form:"productsBgColor"`
	ProductsTextColor    *string `json:"productsTextColor" form:"productsTextColor"`
	ProductsCardColor    *string `json:"productsCardColor" form:"productsCardColor"`
	BlogBgColor          *string `json:"blogBgColor" form:"blogBgColor"`
	BlogTextColor        *string `json:"blogTextColor" form:"blogTextColor"`
	BlogCardColor        *string `json:"blogCardColor" form:"blogCardColor"`
	FaqBgColor           *string `json:"faqBgColor" form:"faqBgColor"`
	FaqTextColor         *string `json:"faqTextColor" form:"faqTextColor"`
	FaqCardColor         *string `json:"faqCardColor" form:"faqCardColor"`
	ContactBgColor       *string `json:"contactBgColor" form:"contactBgColor"`
	ContactInfoTextColor *string `json:"contactInfoTextColor" form:"contactInfoTextColor"`
	ContactInfoCardColor *string `json:"contactInfoCardColor" form:"contactInfoCardColor"`

	ServicesSectionTitle *string `json:"servicesSectionTitle" form:"servicesSectionTitle"`
	ProductsSectionTitle *string `json:"productsSectionTitle" form:"productsSectionTitle"`
	BlogSectionTitle     *string `json:"blogSectionTitle" form:"blogSectionTitle"`
	GallerySectionTitle  *string `json:"gallerySectionTitle" form:"gallerySectionTitle"`
	InfoSectionTitle     *string `json:"infoSectionTitle" form:"infoSectionTitle"`
	FaqSectionTitle      *string `json:"faqSectionTitle" form:"faqSectionTitle"`
	ContactSectionTitle  *string `json:"contactSectionTitle" form:"contactSectionTitle"`

	SectionOrder    *[]string `json:"sectionOrder" form:"sectionOrder"`
	CustomCode      *string   `json:"customCode" form:"customCode"`
	ShowContactForm *bool     `json:"showContactForm" form:"showContactForm"`
	ContactEmail    *string   `json:"contactEmail" form:"contactEmail"`
}

func updateProfileHandler(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErrorDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}

	fields := []stringField{
		{&profile.Name, req.Name, "name", false},
		{&profile.Description, req.Description, "description", false},
		{&profile.BackgroundColor, req.BackgroundColor, "backgroundColor", false},
		{&profile.TextColor, req.TextColor, "textColor", false},
		{&profile.AccentColor, req.AccentColor, "accentColor", false},
		{&profile.GalleryBgColor, req.GalleryBgColor, "galleryBgColor", false},
		{&profile.ServicesBgColor, req.ServicesBgColor, "servicesBgColor", false},
		{&profile.ServicesTextColor, req.ServicesTextColor, "servicesTextColor", false},
		{&profile.ServicesCardColor, req.ServicesCardColor, "servicesCardColor", false},
		{&profile.ProductsBgColor, req.ProductsBgColor, "productsBgColor", false},
		{&profile.ProductsTextColor, req.ProductsTextColor, "productsTextColor", false},
		{&profile.ProductsCardColor, req.ProductsCardColor, "productsCardColor", false},
		{&profile.BlogBgColor, req.BlogBgColor, "blogBgColor", false},
		{&profile.BlogTextColor, req.BlogTextColor, "blogTextColor", false},
		{&profile.BlogCardColor, req.BlogCardColor, "blogCardColor", false},
		{&profile.FaqBgColor, req.FaqBgColor, "faqBgColor", false},
		{&profile.FaqTextColor, req.FaqTextColor, "faqTextColor", false},
		{&profile.FaqCardColor, req.FaqCardColor, "faqCardColor", false},
		{&profile.ContactBgColor, req.ContactBgColor, "contactBgColor", false},
		{&profile.ContactInfoTextColor, req.ContactInfoTextColor, "contactInfoTextColor", false},
		{&profile.ContactInfoCardColor, req.ContactInfoCardColor, "contactInfoCardColor", false},
		{&profile.ServicesSectionTitle, req.ServicesSectionTitle, "servicesSectionTitle", false},
		{&profile.ProductsSectionTitle, req.ProductsSectionTitle, "productsSectionTitle", false},
		{&profile.BlogSectionTitle, req.BlogSectionTitle, "blogSectionTitle", false},
		{&profile.GallerySectionTitle, req.GallerySectionTitle, "gallerySectionTitle", false},
		{&profile.InfoSectionTitle, req.InfoSectionTitle, "infoSectionTitle", false},
		{&profile.FaqSectionTitle, req.FaqSectionTitle, "faqSectionTitle", false},
		{&profile.ContactSectionTitle, req.ContactSectionTitle, "contactSectionTitle", false},
		{&profile.CustomCode, req.CustomCode, "customCode", true},
		{&profile.ContactEmail, req.ContactEmail, "contactEmail", true},
	}
	if err := applyStringFields(fields); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ShowContactForm != nil {
		profile.ShowContactForm = *req.ShowContactForm
	}
	if req.SectionOrder != nil {
		profile.SectionOrder = normalizeSectionOrder(*req.SectionOrder)
	}

	img, err := formImage(c, "profileImage")
	if err != nil {
		respondErrorDetail(c, http.StatusBadRequest, "File upload error", err)
		return
	}
	if img != "" {
		profile.ProfileImage = img
	}

	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}

// normalizeSectionOrder accepts either a real array or the single
// comma-separated string form submitted by HTML forms.
func normalizeSectionOrder(order []string) []string {
	if len(order) == 1 && strings.Contains(order[0], ",") {
		parts := strings.Split(order[0], ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return order
}

func updateLogoHandler(c *gin.Context) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	img, err := formImage(c, "logoImage")
	if err != nil {
		respondErrorDetail(c, http.StatusBadRequest, "File upload error", err)
		return
	}
	if img != "" {
		profile.LogoImage = img
	}
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logo updated successfully", "profile": profile})
}

func contactHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
		respondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	if !profile.ShowContactForm {
		respondError(c, http.StatusForbidden, "Contact form is disabled")
		return
	}

	toEmail := profile.ContactEmail
	if toEmail == "" {
		toEmail = "admin@example.com"
	}
	msg := mailer.Message{
		From:    "Custom Web Contact Form",
		ReplyTo: req.Email,
		To:      toEmail,
		Subject: fmt.Sprintf("New contact from %s", req.Name),
		Body: fmt.Sprintf(
			"<h1>New Contact Message</h1><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
			req.Name, req.Email, req.Message,
		),
	}
	if err := relay.Send(c.Request.Context(), msg); err != nil {
		logger.Error().Err(err).Msg("contact relay failed")
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

func uploadGalleryHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondErrorDetail(c, http.StatusBadRequest, "File upload error", err)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "No images were successfully processed")
		return
	}
	if len(files) > imagedata.MaxGalleryFiles {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Too many files (max %d)", imagedata.MaxGalleryFiles))
		return
	}
	uploaded := make([]string, 0, len(files))
	for _, fh := range files {
		encoded, err := imagedata.FromFileHeader(fh)
		if err != nil {
			respondErrorDetail(c, http.StatusBadRequest, "File upload error", err)
			return
		}
		uploaded = append(uploaded, encoded)
	}

	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	profile.GalleryImages = append(profile.GalleryImages, uploaded...)
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Images uploaded successfully", "images": uploaded, "profile": profile})
}

func deleteGalleryImageHandler(c *gin.Context) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	i, ok := parseIndex(c, len(profile.GalleryImages), "image")
	if !ok {
		return
	}
	profile.GalleryImages = append(profile.GalleryImages[:i], profile.GalleryImages[i+1:]...)
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully", "profile": profile})
}
