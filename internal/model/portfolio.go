package model

// CaseStudy is a single portfolio entry. Slug is unique and URL-stable.
type CaseStudy struct {
	Slug         string   `json:"slug"`
	Title        Text     `json:"title"`
	Teaser       Text     `json:"teaser"`
	Year         Scalar   `json:"year"`
	Duration     Text     `json:"duration"`
	Client       Text     `json:"client"`
	Role         Text     `json:"role"`
	Tags         []string `json:"tags,omitempty"`
	Confidential bool     `json:"confidential,omitempty"`
	WIP          bool     `json:"wip,omitempty"`
	URL          string   `json:"url,omitempty"`
	Sections     []Block  `json:"sections,omitempty"`
}

type Portfolio struct {
	Projects []CaseStudy `json:"projects"`
}

// Find returns the case study with exactly the given slug.
func (p *Portfolio) Find(slug string) (*CaseStudy, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Projects {
		if p.Projects[i].Slug == slug {
			return &p.Projects[i], true
		}
	}
	return nil, false
}
