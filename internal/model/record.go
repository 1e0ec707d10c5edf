package model

import (
	"fmt"
	"slices"
)

// Domain identifies one catalog of content records.
type Domain string

const (
	DomainProjects Domain = "projects"
	DomainTimeline Domain = "timeline"
)

// Domains lists every catalog served by the API, in display order.
var Domains = []Domain{DomainProjects, DomainTimeline}

// ParseDomain converts a path segment into a Domain.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainProjects, DomainTimeline:
		return Domain(s), nil
	default:
		return "", fmt.Errorf("unknown domain %q", s)
	}
}

// Category is a value of a domain's closed category enumeration.
type Category string

// Project categories.
const (
	CategoryWebApplication    Category = "Web Application"
	CategoryMobileApplication Category = "Mobile Application"
	CategoryUIUXDesign        Category = "UI/UX Design"
	CategoryBranding          Category = "Branding"
)

// Timeline categories.
const (
	CategoryEducation  Category = "education"
	CategoryExperience Category = "experience"
	CategoryProject    Category = "project"
)

var domainCategories = map[Domain][]Category{
	DomainProjects: {CategoryWebApplication, CategoryMobileApplication, CategoryUIUXDesign, CategoryBranding},
	DomainTimeline: {CategoryEducation, CategoryExperience, CategoryProject},
}

// Categories returns the domain's category enumeration in display order.
// The returned slice is a copy.
func (d Domain) Categories() []Category {
	src := domainCategories[d]
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// Allows reports whether c belongs to the domain's enumeration.
func (d Domain) Allows(c Category) bool {
	for _, v := range domainCategories[d] {
		if v == c {
			return true
		}
	}
	return false
}

// Links holds the optional outbound URLs of a record.
type Links struct {
	Demo     string `json:"demo,omitempty"`
	Code     string `json:"code,omitempty"`
	External string `json:"external,omitempty"`
}

// IsZero reports whether no link is set.
func (l Links) IsZero() bool {
	return l.Demo == "" && l.Code == "" && l.External == ""
}

// ContentRecord is a project or timeline entry of the portfolio.
// Records are built once at startup and treated as read-only afterwards.
type ContentRecord struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Category    Category       `json:"category"`
	Description string         `json:"description,omitempty"`
	Tags        []string       `json:"tags"`
	DateSpan    string         `json:"date_span"`
	PublishDate string         `json:"publish_date,omitempty"`
	Location    string         `json:"location,omitempty"`
	Details     []string       `json:"details,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Links       Links          `json:"links,omitzero"`
	Detail      *ProjectDetail `json:"detail,omitempty"`
}

// Clone returns a copy of r that shares no slices with it.
func (r ContentRecord) Clone() ContentRecord {
	r.Tags = slices.Clone(r.Tags)
	r.Details = slices.Clone(r.Details)
	r.Images = slices.Clone(r.Images)
	r.Detail = r.Detail.Clone()
	return r
}

// ClientInfo describes who a project was delivered for.
type ClientInfo struct {
	Name     string `json:"name"`
	Services string `json:"services,omitempty"`
	Website  string `json:"website,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// TechGroup is a titled list of technologies used on a project.
type TechGroup struct {
	Title string   `json:"title"`
	Techs []string `json:"techs"`
}

// ShareLink is a social network a project page can be shared to.
type ShareLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// ProjectDetail is the long-form case study of a project.
// RelatedIDs reference other records of the same domain.
type ProjectDetail struct {
	Client       *ClientInfo `json:"client,omitempty"`
	Objectives   string      `json:"objectives,omitempty"`
	Technologies []TechGroup `json:"technologies,omitempty"`
	Sharing      []ShareLink `json:"sharing,omitempty"`
	RelatedIDs   []int       `json:"related_ids,omitempty"`
}

// Clone returns a deep copy of d. A nil detail stays nil.
func (d *ProjectDetail) Clone() *ProjectDetail {
	if d == nil {
		return nil
	}
	out := *d
	if d.Client != nil {
		c := *d.Client
		out.Client = &c
	}
	if d.Technologies != nil {
		out.Technologies = make([]TechGroup, len(d.Technologies))
		for i, g := range d.Technologies {
			out.Technologies[i] = TechGroup{Title: g.Title, Techs: slices.Clone(g.Techs)}
		}
	}
	out.Sharing = slices.Clone(d.Sharing)
	out.RelatedIDs = slices.Clone(d.RelatedIDs)
	return &out
}
