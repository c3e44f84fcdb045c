package main

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"biosite/models"
	"biosite/pkg/imagedata"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// subResource is one CRUD family over a nested collection of the profile.
// The seven families share the whole request lifecycle (auth is handled by
// the route group, index validation, locking, persistence, response
// envelope); only field validation and partial-update rules differ, and
// those live in build/apply.
type subResource[T any] struct {
	name  string // route segment, e.g. "blogPosts"
	noun  string // for index errors, e.g. "blog post"
	title string // for messages, e.g. "Blog post"
	key   string // singular response key, e.g. "blogPost"
	items func(*models.Profile) *[]T
	// build validates required fields and applies defaults for create;
	// apply does the tri-state partial update.
	build func(*gin.Context) (T, error)
	apply func(*gin.Context, *T) error
}

func registerSubResources(g *gin.RouterGroup) {
	registerSubResource(g, linksResource())
	registerSubResource(g, servicesResource())
	registerSubResource(g, productsResource())
	registerSubResource(g, blogPostsResource())
	registerSubResource(g, contactInfoResource())
	registerSubResource(g, faqsResource())
	registerSubResource(g, blocksResource())
}

func registerSubResource[T any](g *gin.RouterGroup, r subResource[T]) {
	g.POST("/"+r.name, r.create)
	g.PUT("/"+r.name+"/:index", r.update)
	g.DELETE("/"+r.name+"/:index", r.remove)
}

// create appends the new element, so its position is always the previous
// collection length.
func (r subResource[T]) create(c *gin.Context) {
	item, err := r.build(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	list := r.items(profile)
	*list = append(*list, item)
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": r.title + " added successfully",
		r.key:     item,
		"profile": profile,
	})
}

func (r subResource[T]) update(c *gin.Context) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	list := r.items(profile)
	i, ok := parseIndex(c, len(*list), r.noun)
	if !ok {
		return
	}
	if err := r.apply(c, &(*list)[i]); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": r.title + " updated successfully",
		r.key:     (*list)[i],
		"profile": profile,
	})
}

func (r subResource[T]) remove(c *gin.Context) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profile, ok := loadProfile(c)
	if !ok {
		return
	}
	list := r.items(profile)
	i, ok := parseIndex(c, len(*list), r.noun)
	if !ok {
		return
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	if !persistProfile(c, profile) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": r.title + " deleted successfully",
		"profile": profile,
	})
}

// parseIndex validates the :index path parameter against the current
// collection length. Elements have no stable routing identity, so this is
// the entire addressing contract.
func parseIndex(c *gin.Context, length int, noun string) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= length {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s index", noun))
		return 0, false
	}
	return i, true
}

// stringField pairs a profile/element field with its request value.
// nil src means the client omitted the field. Clearable fields accept an
// explicit "" to wipe the stored value; for the rest an explicit empty
// value is a validation error rather than a silent skip.
type stringField struct {
	dst       *string
	src       *string
	name      string
	clearable bool
}

func applyStringFields(fields []stringField) error {
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if !f.clearable && strings.TrimSpace(*f.src) == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
		*f.dst = *f.src
	}
	return nil
}

func requiredField(v *string, name string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return *v, nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// formImage returns the inline-encoded upload for field when the request is
// multipart and carries one. Plain JSON requests bypass ingestion entirely.
func formImage(c *gin.Context, field string) (string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return "", nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	return imagedata.FromFileHeader(fh)
}

// ---- links ----

type linkRequest struct {
	Text *string `json:"text" form:"text"`
	URL  *string `json:"url" form:"url"`
	Icon *string `json:"icon" form:"icon"`
}

func linksResource() subResource[models.Link] {
	return subResource[models.Link]{
		name:  "links",
		noun:  "link",
		title: "Link",
		key:   "link",
		items: func(p *models.Profile) *[]models.Link { return &p.Links },
		build: func(c *gin.Context) (models.Link, error) {
			var req linkRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.Link{}, err
			}
			text, err := requiredField(req.Text, "text")
			if err != nil {
				return models.Link{}, err
			}
			url, err := requiredField(req.URL, "url")
			if err != nil {
				return models.Link{}, err
			}
			return models.Link{
				ID:   uuid.NewString(),
				Text: text,
				URL:  url,
				Icon: orDefault(req.Icon, "link"),
			}, nil
		},
		apply: func(c *gin.Context, l *models.Link) error {
			var req linkRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			return applyStringFields([]stringField{
				{&l.Text, req.Text, "text", false},
				{&l.URL, req.URL, "url", false},
				{&l.Icon, req.Icon, "icon", false},
			})
		},
	}
}

// ---- services ----

type serviceRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Icon        *string `json:"icon" form:"icon"`
}

func servicesResource() subResource[models.Service] {
	return subResource[models.Service]{
		name:  "services",
		noun:  "service",
		title: "Service",
		key:   "service",
		items: func(p *models.Profile) *[]models.Service { return &p.Services },
		build: func(c *gin.Context) (models.Service, error) {
			var req serviceRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.Service{}, err
			}
			title, err := requiredField(req.Title, "title")
			if err != nil {
				return models.Service{}, err
			}
			description, err := requiredField(req.Description, "description")
			if err != nil {
				return models.Service{}, err
			}
			return models.Service{
				ID:          uuid.NewString(),
				Title:       title,
				Description: description,
				Icon:        orDefault(req.Icon, "star"),
			}, nil
		},
		apply: func(c *gin.Context, s *models.Service) error {
			var req serviceRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			return applyStringFields([]stringField{
				{&s.Title, req.Title, "title", false},
				{&s.Description, req.Description, "description", false},
				{&s.Icon, req.Icon, "icon", false},
			})
		},
	}
}

// ---- products ----

type productRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Price       *string `json:"price" form:"price"`
	ButtonText  *string `json:"buttonText" form:"buttonText"`
	URL         *string `json:"url" form:"url"`
	Icon        *string `json:"icon" form:"icon"`
}

func productsResource() subResource[models.Product] {
	return subResource[models.Product]{
		name:  "products",
		noun:  "product",
		title: "Product",
		key:   "product",
		items: func(p *models.Profile) *[]models.Product { return &p.Products },
		build: func(c *gin.Context) (models.Product, error) {
			var req productRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.Product{}, err
			}
			title, err := requiredField(req.Title, "title")
			if err != nil {
				return models.Product{}, err
			}
			description, err := requiredField(req.Description, "description")
			if err != nil {
				return models.Product{}, err
			}
			price, err := requiredField(req.Price, "price")
			if err != nil {
				return models.Product{}, err
			}
			product := models.Product{
				ID:          uuid.NewString(),
				Title:       title,
				Description: description,
				Price:       price,
				ButtonText:  orDefault(req.ButtonText, "Learn More"),
			}
			if req.URL != nil {
				product.URL = *req.URL
			}
			if req.Icon != nil {
				product.Icon = *req.Icon
			}
			img, err := formImage(c, "productImage")
			if err != nil {
				return models.Product{}, err
			}
			if img != "" {
				product.Image = img
			}
			return product, nil
		},
		apply: func(c *gin.Context, p *models.Product) error {
			var req productRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			if err := applyStringFields([]stringField{
				{&p.Title, req.Title, "title", false},
				{&p.Description, req.Description, "description", false},
				{&p.Price, req.Price, "price", false},
				{&p.ButtonText, req.ButtonText, "buttonText", false},
				{&p.URL, req.URL, "url", true},
				{&p.Icon, req.Icon, "icon", true},
			}); err != nil {
				return err
			}
			img, err := formImage(c, "productImage")
			if err != nil {
				return err
			}
			if img != "" {
				// Image and icon are mutually exclusive presentation choices.
				p.Image = img
				p.Icon = ""
			}
			return nil
		},
	}
}

// ---- blog posts ----

type blogPostRequest struct {
	Title   *string `json:"title" form:"title"`
	Date    *string `json:"date" form:"date"`
	Excerpt *string `json:"excerpt" form:"excerpt"`
	Content *string `json:"content" form:"content"`
}

func blogPostsResource() subResource[models.BlogPost] {
	return subResource[models.BlogPost]{
		name:  "blogPosts",
		noun:  "blog post",
		title: "Blog post",
		key:   "blogPost",
		items: func(p *models.Profile) *[]models.BlogPost { return &p.BlogPosts },
		build: func(c *gin.Context) (models.BlogPost, error) {
			var req blogPostRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.BlogPost{}, err
			}
			title, err := requiredField(req.Title, "title")
			if err != nil {
				return models.BlogPost{}, err
			}
			content, err := requiredField(req.Content, "content")
			if err != nil {
				return models.BlogPost{}, err
			}
			post := models.BlogPost{
				ID:      uuid.NewString(),
				Title:   title,
				Date:    orDefault(req.Date, time.Now().Format("January 2, 2006")),
				Content: content,
			}
			if req.Excerpt != nil {
				post.Excerpt = *req.Excerpt
			}
			img, err := formImage(c, "blogPostImage")
			if err != nil {
				return models.BlogPost{}, err
			}
			if img != "" {
				post.Image = img
			}
			return post, nil
		},
		apply: func(c *gin.Context, b *models.BlogPost) error {
			var req blogPostRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			if err := applyStringFields([]stringField{
				{&b.Title, req.Title, "title", false},
				{&b.Date, req.Date, "date", false},
				{&b.Content, req.Content, "content", false},
				{&b.Excerpt, req.Excerpt, "excerpt", true},
			}); err != nil {
				return err
			}
			img, err := formImage(c, "blogPostImage")
			if err != nil {
				return err
			}
			if img != "" {
				b.Image = img
			}
			return nil
		},
	}
}

// ---- contact info ----

type contactInfoRequest struct {
	Title *string `json:"title" form:"title"`
	Value *string `json:"value" form:"value"`
	Type  *string `json:"type" form:"type"`
	Icon  *string `json:"icon" form:"icon"`
}

func validContactType(v string) error {
	if !slices.Contains(models.ContactInfoTypes, v) {
		return fmt.Errorf("type must be one of %s", strings.Join(models.ContactInfoTypes, ", "))
	}
	return nil
}

func contactInfoResource() subResource[models.ContactInfo] {
	return subResource[models.ContactInfo]{
		name:  "contactInfo",
		noun:  "contact info",
		title: "Contact info",
		key:   "contactInfo",
		items: func(p *models.Profile) *[]models.ContactInfo { return &p.ContactInfo },
		build: func(c *gin.Context) (models.ContactInfo, error) {
			var req contactInfoRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.ContactInfo{}, err
			}
			title, err := requiredField(req.Title, "title")
			if err != nil {
				return models.ContactInfo{}, err
			}
			value, err := requiredField(req.Value, "value")
			if err != nil {
				return models.ContactInfo{}, err
			}
			typ := orDefault(req.Type, "text")
			if err := validContactType(typ); err != nil {
				return models.ContactInfo{}, err
			}
			return models.ContactInfo{
				ID:    uuid.NewString(),
				Title: title,
				Value: value,
				Type:  typ,
				Icon:  orDefault(req.Icon, "envelope"),
			}, nil
		},
		apply: func(c *gin.Context, ci *models.ContactInfo) error {
			var req contactInfoRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			if req.Type != nil {
				if err := validContactType(*req.Type); err != nil {
					return err
				}
			}
			return applyStringFields([]stringField{
				{&ci.Title, req.Title, "title", false},
				{&ci.Value, req.Value, "value", false},
				{&ci.Type, req.Type, "type", false},
				{&ci.Icon, req.Icon, "icon", false},
			})
		},
	}
}

// ---- faqs ----

type faqRequest struct {
	Question *string `json:"question" form:"question"`
	Answer   *string `json:"answer" form:"answer"`
}

func faqsResource() subResource[models.Faq] {
	return subResource[models.Faq]{
		name:  "faqs",
		noun:  "FAQ",
		title: "FAQ",
		key:   "faq",
		items: func(p *models.Profile) *[]models.Faq { return &p.Faqs },
		build: func(c *gin.Context) (models.Faq, error) {
			var req faqRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.Faq{}, err
			}
			question, err := requiredField(req.Question, "question")
			if err != nil {
				return models.Faq{}, err
			}
			answer, err := requiredField(req.Answer, "answer")
			if err != nil {
				return models.Faq{}, err
			}
			return models.Faq{ID: uuid.NewString(), Question: question, Answer: answer}, nil
		},
		apply: func(c *gin.Context, f *models.Faq) error {
			var req faqRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			return applyStringFields([]stringField{
				{&f.Question, req.Question, "question", false},
				{&f.Answer, req.Answer, "answer", false},
			})
		},
	}
}

// ---- blocks ----

type blockRequest struct {
	Title      *string `json:"title" form:"title"`
	Text       *string `json:"text" form:"text"`
	ButtonText *string `json:"buttonText" form:"buttonText"`
	ButtonURL  *string `json:"buttonUrl" form:"buttonUrl"`
	BgColor    *string `json:"bgColor" form:"bgColor"`
	TextColor  *string `json:"textColor" form:"textColor"`
}

func blocksResource() subResource[models.Block] {
	return subResource[models.Block]{
		name:  "blocks",
		noun:  "block",
		title: "Block",
		key:   "block",
		items: func(p *models.Profile) *[]models.Block { return &p.Blocks },
		build: func(c *gin.Context) (models.Block, error) {
			var req blockRequest
			if err := c.ShouldBind(&req); err != nil {
				return models.Block{}, err
			}
			title, err := requiredField(req.Title, "title")
			if err != nil {
				return models.Block{}, err
			}
			text, err := requiredField(req.Text, "text")
			if err != nil {
				return models.Block{}, err
			}
			block := models.Block{
				ID:        uuid.NewString(),
				Title:     title,
				Text:      text,
				BgColor:   orDefault(req.BgColor, "#ffffff"),
				TextColor: orDefault(req.TextColor, "#333333"),
			}
			if req.ButtonText != nil {
				block.ButtonText = *req.ButtonText
			}
			if req.ButtonURL != nil {
				block.ButtonURL = *req.ButtonURL
			}
			img, err := formImage(c, "blockImage")
			if err != nil {
				return models.Block{}, err
			}
			if img != "" {
				block.Image = img
			}
			return block, nil
		},
		apply: func(c *gin.Context, b *models.Block) error {
			var req blockRequest
			if err := c.ShouldBind(&req); err != nil {
				return err
			}
			if err := applyStringFields([]stringField{
				{&b.Title, req.Title, "title", false},
				{&b.Text, req.Text, "text", false},
				{&b.ButtonText, req.ButtonText, "buttonText", true},
				{&b.ButtonURL, req.ButtonURL, "buttonUrl", true},
				{&b.BgColor, req.BgColor, "bgColor", false},
				{&b.TextColor, req.TextColor, "textColor", false},
			}); err != nil {
				return err
			}
			img, err := formImage(c, "blockImage")
			if err != nil {
				return err
			}
			if img != "" {
				b.Image = img
			}
			return nil
		},
	}
}
