package usecase

import (
	"strings"

	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/i18n"
)

func errorMessage(lang i18n.Lang) *html.Node {
	return dom.El("p", dom.Attrs{"class": "cv-error", "role": "alert"}, dom.Text(i18n.T(lang, "cv.error")))
}

func renderContact(s CVState) []*html.Node {
	m := s.CV.Meta
	var items []*html.Node
	if loc := i18n.Localize(m.Location, s.Lang); loc != "" {
		items = append(items, dom.El("li", dom.Attrs{"class": "contact__item contact__item--location"}, dom.Text(loc)))
	}
	if m.Email != "" {
		items = append(items, dom.El("li", dom.Attrs{"class": "contact__item contact__item--email"},
			dom.Link("mailto:"+m.Email, m.Email, false)))
	}
	if m.Phone != "" {
		tel := strings.NewReplacer(" ", "", "-", "", "/", "").Replace(m.Phone)
		items = append(items, dom.El("li", dom.Attrs{"class": "contact__item contact__item--phone"},
			dom.Link("tel:"+tel, m.Phone, false)))
	}
	if m.Website != "" {
		items = append(items, dom.El("li", dom.Attrs{"class": "contact__item contact__item--website"},
			dom.Link(absoluteURL(m.Website), linkLabel(m.Website), true)))
	}
	var list *html.Node
	if len(items) > 0 {
		list = dom.El("ul", dom.Attrs{"class": "contact"}, items...)
	}
	return []*html.Node{
		dom.El("h1", dom.Attrs{"id": HeaderID, "class": "cv-name"}, dom.Text(m.Name)),
		dom.TextEl("p", dom.Attrs{"class": "cv-title"}, i18n.Localize(m.Title, s.Lang)),
		list,
		dom.El("a", dom.Attrs{
			"class":    "cv-download",
			"href":     "/export/cv.pdf?lang=" + string(s.Lang),
			"download": "",
		}, dom.Text(i18n.T(s.Lang, "cv.download"))),
	}
}

func renderSummary(s CVState) []*html.Node {
	return []*html.Node{dom.TextEl("p", dom.Attrs{"class": "summary"}, i18n.Localize(s.CV.Summary, s.Lang))}
}

func renderExperience(s CVState) []*html.Node {
	out := make([]*html.Node, 0, len(s.CV.Experience))
	for _, job := range s.CV.Experience {
		company := dom.Text(job.Company)
		if job.CompanyURL != "" {
			company = dom.Link(absoluteURL(job.CompanyURL), job.Company, true)
		}
		header := dom.El("header", dom.Attrs{"class": "job__header"},
			dom.El("h3", dom.Attrs{"class": "job__company"}, company),
			dom.TextEl("span", dom.Attrs{"class": "job__period"}, i18n.FormatPeriod(job.Start, job.End, s.Lang)),
		)

		// organisation-level and role-level narratives are independent
		var roles []*html.Node
		for _, r := range job.Roles {
			roles = append(roles, dom.El("div", dom.Attrs{"class": "role"},
				dom.TextEl("h4", dom.Attrs{"class": "role__title"}, i18n.Localize(r.Title, s.Lang)),
				dom.TextEl("span", dom.Attrs{"class": "role__period"}, i18n.FormatPeriod(r.Start, r.End, s.Lang)),
				dom.List("role__description", i18n.LocalizeList(r.Description, s.Lang)),
			))
		}
		var rolesNode *html.Node
		if len(roles) > 0 {
			rolesNode = dom.El("div", dom.Attrs{"class": "roles", "aria-label": i18n.T(s.Lang, "cv.roles")}, roles...)
		}

		out = append(out, dom.El("article", dom.Attrs{"class": "job", "data-reveal": ""},
			header,
			dom.List("job__description", i18n.LocalizeList(job.Description, s.Lang)),
			rolesNode,
			tagList(job.Tags),
		))
	}
	return out
}

func renderEducation(s CVState) []*html.Node {
	out := make([]*html.Node, 0, len(s.CV.Education))
	for _, ed := range s.CV.Education {
		out = append(out, dom.El("article", dom.Attrs{"class": "edu", "data-reveal": ""},
			dom.TextEl("h3", dom.Attrs{"class": "edu__degree"}, i18n.Localize(ed.Degree, s.Lang)),
			dom.TextEl("p", dom.Attrs{"class": "edu__institution"}, ed.Institution),
			dom.TextEl("span", dom.Attrs{"class": "edu__period"}, i18n.FormatPeriod(ed.Start, ed.End, s.Lang)),
			dom.List("edu__description", i18n.LocalizeList(ed.Description, s.Lang)),
		))
	}
	return out
}

func renderSkills(s CVState) []*html.Node {
	sk := s.CV.Skills
	var out []*html.Node
	group := func(key string, body *html.Node) {
		out = append(out, dom.El("div", dom.Attrs{"class": "skills-group", "data-reveal": ""},
			dom.El("h3", dom.Attrs{"class": "skills-group__title"}, dom.Text(i18n.T(s.Lang, key))),
			body,
		))
	}
	if len(sk.Specialized) > 0 {
		rows := make([]*html.Node, 0, len(sk.Specialized))
		for _, it := range sk.Specialized {
			rows = append(rows, skillRow(i18n.Localize(it.Name, s.Lang), it.Level, it.Max, s.Lang, ""))
		}
		group("section.skills.special", dom.El("div", dom.Attrs{"class": "meters"}, rows...))
	}
	if len(sk.Tools) > 0 {
		rows := make([]*html.Node, 0, len(sk.Tools))
		for _, it := range sk.Tools {
			rows = append(rows, skillRow(i18n.Localize(it.Name, s.Lang), it.Level, it.Max, s.Lang, ""))
		}
		group("section.skills.tools", dom.El("div", dom.Attrs{"class": "meters"}, rows...))
	}
	if misc := dom.List("chips", i18n.LocalizeList(sk.Misc, s.Lang)); misc != nil {
		group("section.skills.misc", misc)
	}
	return out
}

func renderLanguages(s CVState) []*html.Node {
	out := make([]*html.Node, 0, len(s.CV.Languages))
	for _, l := range s.CV.Languages {
		out = append(out, skillRow(i18n.Localize(l.Name, s.Lang), l.Level, l.Max, s.Lang, i18n.Localize(l.Label, s.Lang)))
	}
	return out
}

func renderCertifications(s CVState) []*html.Node {
	if len(s.CV.Certifications) == 0 {
		return nil
	}
	items := make([]*html.Node, 0, len(s.CV.Certifications))
	for _, c := range s.CV.Certifications {
		name := i18n.Localize(c.Name, s.Lang)
		nameNode := dom.TextEl("span", dom.Attrs{"class": "cert__name"}, name)
		if c.URL != "" && name != "" {
			nameNode = dom.El("span", dom.Attrs{"class": "cert__name"}, dom.Link(absoluteURL(c.URL), name, true))
		}
		var date *html.Node
		if c.Date != "" {
			date = dom.TextEl("span", dom.Attrs{"class": "cert__date"}, i18n.FormatDate(c.Date, s.Lang))
		}
		items = append(items, dom.El("li", dom.Attrs{"class": "cert", "data-reveal": ""},
			nameNode,
			dom.TextEl("span", dom.Attrs{"class": "cert__issuer"}, c.Issuer),
			date,
		))
	}
	return []*html.Node{dom.El("ul", dom.Attrs{"class": "certs"}, items...)}
}

func renderProjects(s CVState) []*html.Node {
	out := make([]*html.Node, 0, len(s.CV.Projects))
	for _, p := range s.CV.Projects {
		var links []*html.Node
		for _, l := range p.Links {
			if l.URL == "" {
				continue
			}
			label := i18n.Localize(l.Label, s.Lang)
			if label == "" {
				label = linkLabel(l.URL)
			}
			links = append(links, dom.El("li", nil, dom.Link(absoluteURL(l.URL), label, true)))
		}
		var linkList *html.Node
		if len(links) > 0 {
			linkList = dom.El("ul", dom.Attrs{"class": "project__links"}, links...)
		}
		out = append(out, dom.El("article", dom.Attrs{"class": "project", "data-reveal": ""},
			dom.TextEl("h3", dom.Attrs{"class": "project__title"}, i18n.Localize(p.Title, s.Lang)),
			dom.TextEl("span", dom.Attrs{"class": "project__period"}, i18n.FormatPeriod(p.Start, p.End, s.Lang)),
			dom.TextEl("p", dom.Attrs{"class": "project__description"}, i18n.Localize(p.Description, s.Lang)),
			linkList,
		))
	}
	return out
}
