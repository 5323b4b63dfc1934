// Package jobs builds deterministic, offline job recommendations. It exists
// to guarantee the conversation always has something concrete to show even
// without a working job-search integration: no network I/O, no failure mode.
package jobs

import (
	"fmt"
	"net/url"
	"strings"
)

// Category buckets a position by keyword for picking a listing template set.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryEngineering
	CategoryData
	CategorySales
)

func (c Category) String() string {
	switch c {
	case CategoryEngineering:
		return "engineering"
	case CategoryData:
		return "data"
	case CategorySales:
		return "sales"
	default:
		return "generic"
	}
}

var (
	engineeringKeywords = []string{
		"developer", "engineer", "programming", "software", "web",
		"full stack", "frontend", "backend",
	}
	dataKeywords = []string{
		"data", "analyst", "scientist", "machine learning", "ai", "analytics",
	}
	salesKeywords = []string{"sales", "marketing"}
)

// Classify buckets the position by keyword match against its lower-cased
// form. Unrecognized positions fall through to the generic category.
func Classify(position string) Category {
	lower := strings.ToLower(position)

	for _, kw := range engineeringKeywords {
		if strings.Contains(lower, kw) {
			return CategoryEngineering
		}
	}
	for _, kw := range dataKeywords {
		if strings.Contains(lower, kw) {
			return CategoryData
		}
	}
	for _, kw := range salesKeywords {
		if strings.Contains(lower, kw) {
			return CategorySales
		}
	}

	return CategoryGeneric
}

// Listing is one job-recommendation entry.
type Listing struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string
	Link        string
}

// FormatError reports a listing that cannot be rendered.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format listing: %s", e.Reason)
}

// Format renders the listing as a multi-line entry. Title and link are
// required; the remaining fields fall back to placeholders.
func (l Listing) Format() (string, error) {
	if strings.TrimSpace(l.Title) == "" {
		return "", &FormatError{Reason: "title is empty"}
	}
	if strings.TrimSpace(l.Link) == "" {
		return "", &FormatError{Reason: "link is empty"}
	}

	company := l.Company
	if company == "" {
		company = "Hiring Company"
	}
	salary := l.Salary
	if salary == "" {
		salary = "Competitive salary"
	}
	description := l.Description
	if description == "" {
		description = "Join a team of professionals in a collaborative environment with opportunities for growth."
	}

	return fmt.Sprintf(
		"- %s\n  Company: %s\n  Location: %s\n  Salary: %s\n  %s\n  Apply: %s",
		l.Title, company, l.Location, salary, description, l.Link,
	), nil
}

// Builder produces formatted recommendation entries for a position and
// location. It satisfies the stage machine's Recommender contract: always
// 4-5 non-empty entries, never an error.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Recommend returns the formatted listing set for the classified category
// plus one guaranteed catch-all entry linking to a generic web search.
func (b *Builder) Recommend(position, location string) []string {
	listings := templateListings(Classify(position), position, location)

	out := make([]string, 0, len(listings)+1)
	for _, l := range listings {
		entry, err := l.Format()
		if err != nil {
			continue
		}
		out = append(out, entry)
	}

	// Deterministic default entry, appended unconditionally so the result is
	// never empty.
	out = append(out, fmt.Sprintf(
		"- Search: %s Jobs\n  Company: Job Search Engines\n  Location: %s and surrounding areas\n  Salary: All salary ranges\n  Compare listings matching your criteria across the major job platforms and apply directly.\n  Apply: %s",
		titleCase(position), location, searchAllURL(position),
	))

	return out
}

func templateListings(category Category, position, location string) []Listing {
	title := titleCase(position)

	switch category {
	case CategoryEngineering:
		return []Listing{
			{
				Title:       title + " Opportunities",
				Company:     "Multiple Tech Companies",
				Location:    location,
				Salary:      "$85,000 - $125,000 per year (typical range)",
				Description: "Browse software development opportunities from startups to Fortune 500 companies.",
				Link:        linkedinURL(position, location),
			},
			{
				Title:       title + " - Senior Roles",
				Company:     "Various Tech Employers",
				Location:    location,
				Salary:      "$120,000+ (typical for senior roles)",
				Description: "Numerous developer roles requiring technical expertise. Filter by salary, company size, and more.",
				Link:        indeedURL(position, location),
			},
			{
				Title:       title + " - Entry & Mid-Level",
				Company:     "Tech Companies Hiring Now",
				Location:    location,
				Salary:      "$65,000 - $110,000 per year (typical range)",
				Description: "Positions for all experience levels across various tech stacks and company cultures.",
				Link:        ziprecruiterURL(position, location),
			},
		}
	case CategoryData:
		return []Listing{
			{
				Title:       title + " Roles",
				Company:     "Top Tech Companies",
				Location:    location,
				Salary:      "$95,000 - $135,000 per year (typical range)",
				Description: "Explore data science and analytics roles with employee ratings and salary information.",
				Link:        glassdoorURL(position, location),
			},
			{
				Title:       title + " - Remote Options",
				Company:     "Various Tech Employers",
				Location:    strings.TrimSpace(location + " & Remote"),
				Salary:      "$90,000 - $150,000 per year (typical range)",
				Description: "Flexible data positions; many companies now embrace remote work for data professionals.",
				Link:        linkedinURL(position, location),
			},
			{
				Title:       title + " - All Levels",
				Company:     "Multiple Organizations",
				Location:    location,
				Salary:      "$75,000 - $180,000 based on experience",
				Description: "Data positions from entry-level to director roles. Filter by company, job type, and experience.",
				Link:        indeedURL(position, location),
			},
		}
	case CategorySales:
		return []Listing{
			{
				Title:       title + " - Latest Listings",
				Company:     "Multiple Employers",
				Location:    location,
				Salary:      "Varies by employer",
				Description: "Help grow businesses through strategic initiatives. Strong communication skills required.",
				Link:        indeedURL(position, location),
			},
			{
				Title:       title + " Opportunities",
				Company:     "Various Organizations",
				Location:    location,
				Salary:      "Competitive based on experience",
				Description: "Connect with recruiters and companies directly through extensive professional listings.",
				Link:        linkedinURL(position, location),
			},
			{
				Title:       title + " - All Levels",
				Company:     "Multiple Companies",
				Location:    location,
				Salary:      "Varies by experience level",
				Description: "A wide range of opportunities from entry-level to senior positions.",
				Link:        ziprecruiterURL(position, location),
			},
		}
	default:
		return []Listing{
			{
				Title:       title + " - Latest Listings",
				Company:     "Multiple Employers",
				Location:    location,
				Salary:      "Varies by employer",
				Description: "Numerous positions matching your search criteria. Filter results to find your ideal match.",
				Link:        indeedURL(position, location),
			},
			{
				Title:       title + " Opportunities",
				Company:     "Various Organizations",
				Location:    location,
				Salary:      "Competitive based on experience",
				Description: "Browse extensive job listings for this position and connect with recruiters directly.",
				Link:        linkedinURL(position, location),
			},
			{
				Title:       title + " - All Levels",
				Company:     "Multiple Companies",
				Location:    location,
				Salary:      "Varies by experience level",
				Description: "A wide range of opportunities from entry-level to senior positions.",
				Link:        ziprecruiterURL(position, location),
			},
		}
	}
}

func linkedinURL(position, location string) string {
	q := url.Values{}
	q.Set("keywords", position)
	q.Set("location", location)
	return "https://linkedin.com/jobs/search?" + q.Encode()
}

func indeedURL(position, location string) string {
	q := url.Values{}
	q.Set("q", position)
	q.Set("l", location)
	return "https://indeed.com/jobs?" + q.Encode()
}

func ziprecruiterURL(position, location string) string {
	q := url.Values{}
	q.Set("q", position)
	q.Set("l", location)
	return "https://ziprecruiter.com/jobs/search?" + q.Encode()
}

func glassdoorURL(position, location string) string {
	q := url.Values{}
	q.Set("sc.keyword", position)
	q.Set("locKeyword", location)
	return "https://glassdoor.com/Job/jobs.htm?" + q.Encode()
}

func searchAllURL(position string) string {
	q := url.Values{}
	q.Set("q", strings.TrimSpace("jobs "+position))
	return "https://www.google.com/search?" + q.Encode()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
