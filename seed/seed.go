// Package seed fills a database with an admin account and demo users for local work.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/repositories"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "Admin123!"
	DemoPassword  = "Password123!"
)

const day = 24 * time.Hour

type demoUser struct {
	name     string
	email    string
	projects int
}

var demoUsers = []demoUser{
	{"John Doe", "john.doe@example.com", 5},
	{"Jane Smith", "jane.smith@example.com", 3},
	{"Robert Johnson", "robert.johnson@example.com", 6},
	{"Sarah Williams", "sarah.williams@example.com", 4},
	{"Michael Brown", "michael.brown@example.com", 3},
}

var templates = []struct{ title, description string }{
	{"Website Redesign", "Complete overhaul of company website with modern UI/UX"},
	{"Mobile App Development", "Create a cross-platform mobile app for our services"},
	{"Content Marketing Strategy", "Develop a comprehensive content strategy for Q3 and Q4"},
	{"Customer Feedback System", "Implement an automated customer feedback collection and analysis system"},
	{"Staff Training Program", "Develop and execute a training program for new team members"},
	{"Product Launch Campaign", "Plan and execute marketing campaign for new product launch"},
	{"Social Media Revamp", "Update and optimize all social media channels"},
	{"Email Marketing Automation", "Set up automated email sequences for lead nurturing"},
	{"Data Analytics Implementation", "Implement comprehensive data tracking and analytics"},
	{"Customer Loyalty Program", "Design and launch a program to increase customer retention"},
	{"Security Audit", "Conduct thorough security assessment of all systems"},
	{"Process Optimization", "Analyze and improve internal workflows for efficiency"},
}

var (
	statuses   = []models.Status{models.StatusActive, models.StatusCompleted, models.StatusOnHold, models.StatusCancelled}
	priorities = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
)

// Seeder writes demo data through the repositories.
type Seeder struct {
	db       *gorm.DB
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	log      *redislog.Logger
	rng      *rand.Rand
	now      func() time.Time
}

// New seeds with a fixed random source when seed != 0, a time-based one otherwise.
func New(db *gorm.DB, log *redislog.Logger, seed uint64) *Seeder {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Seeder{
		db:       db,
		users:    repositories.NewUserRepository(db),
		projects: repositories.NewProjectRepository(db),
		log:      log,
		rng:      rand.New(rand.NewPCG(seed, seed>>1)),
		now:      time.Now,
	}
}

// Run upserts the admin, replaces every other user with the demo set, and resets the
// admin's projects.
func (s *Seeder) Run(ctx context.Context) error {
	admin, err := s.upsertAdmin(ctx)
	if err != nil {
		return err
	}

	// Demo users are recreated from scratch on every run.
	others := s.db.WithContext(ctx).Model(&models.User{}).Select("id").Where("email <> ?", AdminEmail)
	if err := s.db.WithContext(ctx).Where("user_id IN (?)", others).Delete(&models.Project{}).Error; err != nil {
		return fmt.Errorf("clear demo projects: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("email <> ?", AdminEmail).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clear demo users: %w", err)
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	for _, du := range demoUsers {
		name := du.name
		u := &models.User{Name: &name, Email: du.email, Password: hash, Role: models.RoleUser}
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("create %s: %w", du.email, err)
		}
		for i := range du.projects {
			if err := s.projects.Create(ctx, s.randomProject(u.ID, i+1)); err != nil {
				return fmt.Errorf("create project for %s: %w", du.email, err)
			}
		}
		s.log.Info("seeded user", map[string]string{"email": du.email, "projects": fmt.Sprint(du.projects)})
	}

	if err := s.db.WithContext(ctx).Where("user_id = ?", admin.ID).Delete(&models.Project{}).Error; err != nil {
		return fmt.Errorf("clear admin projects: %w", err)
	}
	for _, p := range s.adminProjects(admin.ID) {
		if err := s.projects.Create(ctx, p); err != nil {
			return fmt.Errorf("create admin project: %w", err)
		}
	}
	s.log.Info("seed completed", map[string]string{"admin": AdminEmail})
	return nil
}

func (s *Seeder) upsertAdmin(ctx context.Context) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, AdminEmail)
	if err == nil {
		return u, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	hash, err := utils.HashPassword(AdminPassword)
	if err != nil {
		return nil, err
	}
	name := "Admin User"
	u = &models.User{Name: &name, Email: AdminEmail, Password: hash, Role: models.RoleAdmin}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	s.log.Info("seeded admin user", map[string]string{"email": AdminEmail})
	return u, nil
}

// randomProject starts within 45 days of now; 70% of projects get an end date 15 to 75 days later.
func (s *Seeder) randomProject(userID string, n int) *models.Project {
	t := templates[s.rng.IntN(len(templates))]
	desc := t.description
	start := s.now().Add(time.Duration(s.rng.IntN(91)-45) * day)
	p := &models.Project{
		Title:       fmt.Sprintf("%s %d", t.title, n),
		Description: &desc,
		Status:      statuses[s.rng.IntN(len(statuses))],
		Priority:    priorities[s.rng.IntN(len(priorities))],
		StartDate:   start,
		UserID:      userID,
	}
	if s.rng.Float64() > 0.3 {
		end := start.Add(time.Duration(s.rng.IntN(61)+15) * day)
		p.EndDate = &end
	}
	return p
}

func (s *Seeder) adminProjects(adminID string) []*models.Project {
	now := s.now()
	mk := func(i int, status models.Status, prio models.Priority, start, end time.Time) *models.Project {
		desc := templates[i].description
		return &models.Project{
			Title: templates[i].title, Description: &desc, Status: status, Priority: prio,
			StartDate: start, EndDate: &end, UserID: adminID,
		}
	}
	return []*models.Project{
		mk(0, models.StatusActive, models.PriorityHigh, now, now.Add(30*day)),
		mk(1, models.StatusActive, models.PriorityMedium, now, now.Add(60*day)),
		mk(2, models.StatusOnHold, models.PriorityMedium, now, now.Add(45*day)),
		mk(3, models.StatusActive, models.PriorityLow, now, now.Add(15*day)),
		mk(4, models.StatusCompleted, models.PriorityHigh, now.Add(-30*day), now.Add(-5*day)),
	}
}
