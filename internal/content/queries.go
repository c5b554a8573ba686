package content

// GROQ projections. Every translatable field is fetched in both locales at
// once; image assets resolve to their url.

const productProjection = `{
  _id,
  itemNumber,
  productName { en, nl },
  slug,
  "productImages": productImages[] { "url": asset->url, alt },
  description { en, nl },
  category-> { categoryName { en, nl }, slug },
  price,
  isAvailable,
  seo { metaTitle { en, nl }, metaDescription { en, nl } }
}`

const categoryProjection = `{
  _id,
  categoryName { en, nl },
  slug,
  description { en, nl },
  "categoryImage": categoryImage { "url": asset->url, alt },
  "productCount": count(*[_type == "product" && references(^._id)]),
  seo { metaTitle { en, nl }, metaDescription { en, nl } }
}`

const (
	queryAllProducts        = `*[_type == "product"] | order(itemNumber asc) ` + productProjection
	queryProductsByCategory = `*[_type == "product" && category->slug.current == $categorySlug] | order(itemNumber asc) ` + productProjection
	queryProductBySlug      = `*[_type == "product" && slug.current == $slug][0] ` + productProjection

	queryAllCategories  = `*[_type == "category"] | order(categoryName.en asc) ` + categoryProjection
	queryCategoryBySlug = `*[_type == "category" && slug.current == $slug][0] ` + categoryProjection

	queryCategorySlugByID = `*[_type == "category" && _id == $id][0].slug.current`

	queryHomePage = `*[_type == "homePage"][0] {
  _id,
  title,
  heroSlides[] {
    "backgroundImage": backgroundImage { "url": asset->url, alt },
    "mobileImage": mobileImage { "url": asset->url, alt },
    heading { en, nl },
    bodyText { en, nl },
    buttonText { en, nl },
    buttonLink
  },
  welcomeHeading { en, nl },
  welcomeBody { en, nl },
  trustBadges[] { icon, text { en, nl }, description { en, nl } },
  storeSection { "storeImage": storeImage { "url": asset->url, alt }, address, timings, contactInfo },
  seo { metaTitle { en, nl }, metaDescription { en, nl } }
}`

	queryAboutPage = `*[_type == "aboutPage"][0] {
  _id,
  heading { en, nl },
  introduction { en, nl },
  "heroImage": heroImage { "url": asset->url, alt },
  storyHeading { en, nl },
  storyContent { en, nl },
  valuesHeading { en, nl },
  valuesSubheading { en, nl },
  valuesList[] { valueTitle { en, nl }, valueDescription { en, nl } },
  impactHeading { en, nl },
  impactSubheading { en, nl },
  impactList[] { impactStatistic, impactLabel { en, nl } },
  offerHeading { en, nl },
  "offerImage": offerImage { "url": asset->url, alt },
  offerList[] { en, nl },
  visitHeading { en, nl },
  visitText { en, nl },
  seo { metaTitle { en, nl }, metaDescription { en, nl } }
}`

	queryStoreSettings = `*[_type == "storeSettings"][0] {
  _id,
  title,
  address { en, nl },
  timings { en, nl },
  phoneMain,
  phoneSecondary,
  email,
  "storeImage": storeImage { "url": asset->url, alt }
}`
)
