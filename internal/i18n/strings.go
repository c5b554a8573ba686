package i18n

// UI chrome strings. Content text comes from the content store; these cover
// the fixed storefront furniture only.
var translations = map[string]map[Locale]string{
	"nav.home":           {LocaleEN: "Home", LocaleNL: "Home"},
	"nav.categories":     {LocaleEN: "Collections", LocaleNL: "Collecties"},
	"nav.about":          {LocaleEN: "About", LocaleNL: "Over ons"},
	"nav.contact":        {LocaleEN: "Contact", LocaleNL: "Contact"},
	"search.placeholder": {LocaleEN: "Search products...", LocaleNL: "Zoek producten..."},
	"search.title":       {LocaleEN: "Search", LocaleNL: "Zoeken"},
	"search.noResults":   {LocaleEN: "No products found", LocaleNL: "Geen producten gevonden"},
	"search.filteredBy":  {LocaleEN: "filtered by", LocaleNL: "gefilterd op"},
	"sort.label":         {LocaleEN: "Sort by", LocaleNL: "Sorteer op"},
	"sort.featured":      {LocaleEN: "Featured", LocaleNL: "Uitgelicht"},
	"sort.nameAsc":       {LocaleEN: "Name (A-Z)", LocaleNL: "Naam (A-Z)"},
	"sort.priceAsc":      {LocaleEN: "Price (low to high)", LocaleNL: "Prijs (laag naar hoog)"},
	"sort.priceDesc":     {LocaleEN: "Price (high to low)", LocaleNL: "Prijs (hoog naar laag)"},
	"product.enquire":    {LocaleEN: "Enquire on WhatsApp", LocaleNL: "Vraag via WhatsApp"},
	"product.onRequest":  {LocaleEN: "Price on request", LocaleNL: "Prijs op aanvraag"},
	"product.available":  {LocaleEN: "Available for pickup", LocaleNL: "Beschikbaar voor afhalen"},
	"product.itemNumber": {LocaleEN: "Item number", LocaleNL: "Artikelnummer"},
	"contact.address":    {LocaleEN: "Address", LocaleNL: "Adres"},
	"contact.hours":      {LocaleEN: "Opening hours", LocaleNL: "Openingstijden"},
	"contact.phone":      {LocaleEN: "Phone", LocaleNL: "Telefoon"},
	"contact.email":      {LocaleEN: "Email", LocaleNL: "E-mail"},
	"footer.rights":      {LocaleEN: "All rights reserved", LocaleNL: "Alle rechten voorbehouden"},
}

// T returns the UI string for a key, falling back to the default locale, then
// to the key itself so a missing entry stays visible instead of blank.
func T(locale Locale, key string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if s, ok := entry[locale]; ok && s != "" {
		return s
	}
	return entry[DefaultLocale]
}
