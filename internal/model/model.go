package model

import "time"

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

type EventType string

const (
	EventPageView     EventType = "page_view"
	EventProjectClick EventType = "project_click"
)

// DefaultProjectOrder sorts projects without an explicit position last.
const DefaultProjectOrder = 999

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	GithubLink  string    `json:"github_link,omitempty"`
	LiveLink    string    `json:"live_link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Skill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Proficiency Proficiency `json:"proficiency"`
	CreatedAt   time.Time   `json:"created_at"`
}

type AnalyticsEvent struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	Page         string    `json:"page,omitempty"`
	Referrer     string    `json:"referrer,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	ProjectID    string    `json:"project_id,omitempty"`
	ProjectTitle string    `json:"project_title,omitempty"`
	CreatedAt    time.Time `json:"timestamp"`
}

type PageViews struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

type ProjectClicks struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Clicks    int    `json:"clicks"`
}

type DailyViews struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Views int    `json:"views"`
}
