package cms

// GROQ queries for every access pattern of the content graph. Each listing
// query repeats the same eligibility predicate: a defined slug and a
// publication timestamp at or before $now. $now is supplied by the caller so
// one request evaluates every filter against a single instant.

const postFields = `{
  _id,
  title,
  "slug": slug.current,
  excerpt,
  publishedAt,
  stage,
  format,
  "coverImage": coverImage.asset->url,
  body,
  nextStep,
  seo,
  "theme": theme->{_id, title, "slug": slug.current, description, rank},
  "interests": interests[]->{_id, title, "slug": slug.current, description},
  "authors": authors[]->{_id, name, "slug": slug.current, role, "image": image.asset->url, bio, website, linkedin},
  personas
}`

const publishedFilter = `defined(slug.current) && publishedAt <= $now`

const (
	QueryPostBySlug = `*[_type == "post" && slug.current == $slug && ` + publishedFilter + `][0]` + postFields

	QueryPostsByTheme = `*[_type == "post" && theme->slug.current == $slug && ` + publishedFilter + `] | order(publishedAt desc)` + postFields

	QueryPostsByInterest = `*[_type == "post" && $slug in interests[]->slug.current && ` + publishedFilter + `] | order(publishedAt desc)` + postFields

	QueryPostsByStage = `*[_type == "post" && stage == $stage && ` + publishedFilter + `] | order(publishedAt desc)` + postFields

	QueryPostsByPersona = `*[_type == "post" && $persona in personas && ` + publishedFilter + `] | order(publishedAt desc)` + postFields

	QueryPostsByAuthor = `*[_type == "post" && $slug in authors[]->slug.current && ` + publishedFilter + `] | order(publishedAt desc)` + postFields

	// Candidates share the source post's primary theme or at least one
	// interest. No relevance weighting between the two axes and no tie-break
	// beyond publishedAt; the CMS is the sort authority.
	QueryRelatedPosts = `*[_type == "post" && _id != $id && ` + publishedFilter + ` && (theme->slug.current == $themeSlug || count(interests[@->slug.current in $interestSlugs]) > 0)] | order(publishedAt desc)[0...$limit]` + postFields

	QueryAllPublishedPosts = `*[_type == "post" && ` + publishedFilter + `] | order(publishedAt desc){"slug": slug.current, publishedAt}`

	QueryThemeBySlug = `*[_type == "theme" && slug.current == $slug][0]{_id, title, "slug": slug.current, description, rank}`

	QueryAllThemes = `*[_type == "theme"] | order(coalesce(rank, 9999) asc, title asc){_id, title, "slug": slug.current, description, rank}`

	QueryInterestBySlug = `*[_type == "interest" && slug.current == $slug][0]{_id, title, "slug": slug.current, description}`

	QueryAllInterests = `*[_type == "interest"] | order(title asc){_id, title, "slug": slug.current, description}`

	QueryAuthorBySlug = `*[_type == "author" && slug.current == $slug][0]{_id, name, "slug": slug.current, role, "image": image.asset->url, bio, website, linkedin}`

	QuerySeriesBySlug = `*[_type == "series" && slug.current == $slug][0]{_id, title, "slug": slug.current, description, "heroImage": heroImage.asset->url, "posts": posts[]->` + postFields + `}`
)
