package domain

import (
	"github.com/shopspring/decimal"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

// Document type tags as used by the content store.
const (
	DocTypeProduct       = "product"
	DocTypeCategory      = "category"
	DocTypeHomePage      = "homePage"
	DocTypeAboutPage     = "aboutPage"
	DocTypeStoreSettings = "storeSettings"
)

// LocalizedText carries both supported translations of one text field.
type LocalizedText struct {
	EN string `json:"en" bson:"en"`
	NL string `json:"nl" bson:"nl"`
}

// In returns the translation for the given locale, falling back to the first
// available translation in declared preference order (en, nl).
func (t LocalizedText) In(locale i18n.Locale) string {
	if locale == i18n.LocaleNL && t.NL != "" {
		return t.NL
	}
	if t.EN != "" {
		return t.EN
	}
	return t.NL
}

// IsEmpty reports whether no translation is present at all.
func (t LocalizedText) IsEmpty() bool {
	return t.EN == "" && t.NL == ""
}

type Slug struct {
	Current string `json:"current" bson:"current"`
}

type Image struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

type SEO struct {
	MetaTitle       LocalizedText `json:"metaTitle"`
	MetaDescription LocalizedText `json:"metaDescription"`
}

// CategoryRef is the resolved category reference embedded in a product.
type CategoryRef struct {
	Name LocalizedText `json:"categoryName"`
	Slug Slug          `json:"slug"`
}

// Product is one catalog entry. Price is optional; absence means
// "price on request". ItemNumber is the stable default ordering key.
type Product struct {
	ID          string           `json:"_id"`
	ItemNumber  string           `json:"itemNumber"`
	Name        LocalizedText    `json:"productName"`
	Slug        Slug             `json:"slug"`
	Images      []Image          `json:"productImages,omitempty"`
	Description LocalizedText    `json:"description"`
	Category    *CategoryRef     `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsAvailable bool             `json:"isAvailable"`
	SEO         *SEO             `json:"seo,omitempty"`
}

type Category struct {
	ID           string        `json:"_id"`
	Name         LocalizedText `json:"categoryName"`
	Slug         Slug          `json:"slug"`
	Description  LocalizedText `json:"description"`
	Image        *Image        `json:"categoryImage,omitempty"`
	ProductCount int           `json:"productCount"`
	SEO          *SEO          `json:"seo,omitempty"`
}

type HeroSlide struct {
	Image       *Image        `json:"backgroundImage,omitempty"`
	MobileImage *Image        `json:"mobileImage,omitempty"`
	Heading     LocalizedText `json:"heading"`
	BodyText    LocalizedText `json:"bodyText"`
	ButtonText  LocalizedText `json:"buttonText"`
	ButtonLink  string        `json:"buttonLink"`
}

type TrustBadge struct {
	Icon        string        `json:"icon"`
	Text        LocalizedText `json:"text"`
	Description LocalizedText `json:"description"`
}

type StoreSection struct {
	Image       *Image `json:"storeImage,omitempty"`
	Address     string `json:"address"`
	Timings     string `json:"timings"`
	ContactInfo string `json:"contactInfo"`
}

type HomePage struct {
	ID             string        `json:"_id"`
	Title          string        `json:"title"`
	HeroSlides     []HeroSlide   `json:"heroSlides,omitempty"`
	WelcomeHeading LocalizedText `json:"welcomeHeading"`
	WelcomeBody    LocalizedText `json:"welcomeBody"`
	TrustBadges    []TrustBadge  `json:"trustBadges,omitempty"`
	StoreSection   *StoreSection `json:"storeSection,omitempty"`
	SEO            *SEO          `json:"seo,omitempty"`
}

type AboutValue struct {
	Title       LocalizedText `json:"valueTitle"`
	Description LocalizedText `json:"valueDescription"`
}

type AboutImpact struct {
	Statistic string        `json:"impactStatistic"`
	Label     LocalizedText `json:"impactLabel"`
}

type AboutPage struct {
	ID              string          `json:"_id"`
	Heading         LocalizedText   `json:"heading"`
	Introduction    LocalizedText   `json:"introduction"`
	HeroImage       *Image          `json:"heroImage,omitempty"`
	StoryHeading    LocalizedText   `json:"storyHeading"`
	StoryContent    LocalizedText   `json:"storyContent"`
	ValuesHeading   LocalizedText   `json:"valuesHeading"`
	ValuesSubhead   LocalizedText   `json:"valuesSubheading"`
	Values          []AboutValue    `json:"valuesList,omitempty"`
	ImpactHeading   LocalizedText   `json:"impactHeading"`
	ImpactSubhead   LocalizedText   `json:"impactSubheading"`
	Impact          []AboutImpact   `json:"impactList,omitempty"`
	OfferHeading    LocalizedText   `json:"offerHeading"`
	OfferImage      *Image          `json:"offerImage,omitempty"`
	Offers          []LocalizedText `json:"offerList,omitempty"`
	VisitHeading    LocalizedText   `json:"visitHeading"`
	VisitText       LocalizedText   `json:"visitText"`
	SEO             *SEO            `json:"seo,omitempty"`
}

type StoreSettings struct {
	ID             string        `json:"_id"`
	Title          string        `json:"title"`
	Address        LocalizedText `json:"address"`
	Timings        LocalizedText `json:"timings"`
	PhoneMain      string        `json:"phoneMain"`
	PhoneSecondary string        `json:"phoneSecondary"`
	Email          string        `json:"email"`
	Image          *Image        `json:"storeImage,omitempty"`
}
