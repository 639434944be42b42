package model

// Go models that match cv.schema.json. Records are read-only after decoding.

type Meta struct {
	Name     string `json:"name"`
	Title    Text   `json:"title"`
	Location Text   `json:"location"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Phone    string `json:"phone,omitempty"`
}

type Role struct {
	Title       Text     `json:"title"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	Description TextList `json:"description"`
}

type Job struct {
	Company     string   `json:"company"`
	CompanyURL  string   `json:"companyUrl,omitempty"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	Description TextList `json:"description"`
	Roles       []Role   `json:"roles"`
	Tags        []string `json:"tags,omitempty"`
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      Text     `json:"degree"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	Description TextList `json:"description"`
}

// Skill is a proficiency entry. Level <= Max is assumed, not enforced.
type Skill struct {
	Name  Text    `json:"name"`
	Level float64 `json:"level"`
	Max   float64 `json:"max"`
}

type Skills struct {
	Specialized []Skill  `json:"specialized"`
	Tools       []Skill  `json:"tools"`
	Misc        TextList `json:"misc"`
}

type LanguageSkill struct {
	Name  Text    `json:"name"`
	Label Text    `json:"label"`
	Level float64 `json:"level"`
	Max   float64 `json:"max"`
}

type Certification struct {
	Name   Text   `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

type Link struct {
	Label Text   `json:"label"`
	URL   string `json:"url"`
}

type SideProject struct {
	Title       Text   `json:"title"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description Text   `json:"description"`
	Links       []Link `json:"links,omitempty"`
}

type CV struct {
	Meta           Meta            `json:"meta"`
	Summary        Text            `json:"summary"`
	Experience     []Job           `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Languages      []LanguageSkill `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Projects       []SideProject   `json:"projects"`
}
