package cms

// snapshotQuery aggregates every content family into a single round trip so a
// page render costs one CMS request regardless of locale.
const snapshotQuery = `{
  "global": *[_type == "globalSettings"][0],
  "navigation": *[_type == "navigation"][0],
  "home": *[_type == "homePage"][0],
  "pages": *[_type == "pageContent"],
  "services": *[_type == "service"] | order(order asc, _createdAt asc),
  "solutions": *[_type == "solution"] | order(order asc, _createdAt asc),
  "packages": *[_type == "package"] | order(displayOrder asc, _createdAt asc),
  "portfolio": *[_type == "portfolioProject"] | order(displayOrder asc, _createdAt asc),
  "faq": *[_type == "faqItem"] | order(displayOrder asc, _createdAt asc)
}`
