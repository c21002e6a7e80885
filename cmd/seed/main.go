// Command seed loads sample projects and skills into the configured
// store so a fresh deployment has something to show.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"portfolio-site/backend/internal/config"
	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
	"portfolio-site/backend/internal/store/postgres"

	"github.com/joho/godotenv"
)

var sampleProjects = []model.Project{
	{
		Title:       "E-Commerce Platform",
		Description: "Full-stack e-commerce application with payment integration, inventory management, and an admin dashboard.",
		TechStack:   []string{"React", "Node.js", "MongoDB", "Stripe"},
		GithubLink:  "https://github.com/yourusername/ecommerce",
		Order:       1,
	},
	{
		Title:       "Task Management App",
		Description: "Collaborative task management tool with real-time updates, team workspaces, and progress tracking.",
		TechStack:   []string{"Vue.js", "Express", "PostgreSQL", "Socket.io"},
		GithubLink:  "https://github.com/yourusername/taskmanager",
		Order:       2,
	},
	{
		Title:       "Weather Dashboard",
		Description: "Weather application with location-based forecasts, interactive maps, and historical data visualization.",
		TechStack:   []string{"JavaScript", "Chart.js", "OpenWeather API"},
		GithubLink:  "https://github.com/yourusername/weather",
		Order:       3,
	},
}

var sampleSkills = []model.Skill{
	{Name: "JavaScript", Category: "Frontend", Proficiency: model.ProficiencyExpert},
	{Name: "React", Category: "Frontend", Proficiency: model.ProficiencyAdvanced},
	{Name: "Vue.js", Category: "Frontend", Proficiency: model.ProficiencyIntermediate},
	{Name: "Node.js", Category: "Backend", Proficiency: model.ProficiencyAdvanced},
	{Name: "Python", Category: "Backend", Proficiency: model.ProficiencyAdvanced},
	{Name: "Go", Category: "Backend", Proficiency: model.ProficiencyIntermediate},
	{Name: "PostgreSQL", Category: "Database", Proficiency: model.ProficiencyAdvanced},
	{Name: "MongoDB", Category: "Database", Proficiency: model.ProficiencyIntermediate},
	{Name: "Docker", Category: "DevOps", Proficiency: model.ProficiencyIntermediate},
	{Name: "AWS", Category: "DevOps", Proficiency: model.ProficiencyBeginner},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for seeding")
	}

	st, err := postgres.NewStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	existing, err := st.ListProjects(ctx)
	if err != nil {
		log.Fatalf("list projects: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("projects already present (%d), skipping project seed", len(existing))
	} else {
		for _, p := range sampleProjects {
			created, err := st.CreateProject(ctx, p)
			if err != nil {
				log.Fatalf("create project %q: %v", p.Title, err)
			}
			log.Printf("seeded project %q (%s)", created.Title, created.ID)
		}
	}

	n, err := st.CreateSkills(ctx, sampleSkills)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Printf("skills already present, skipping skill seed")
			return
		}
		log.Fatalf("create skills: %v", err)
	}
	log.Printf("seeded %d skills", n)
}
