package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"team-management-backend/internal/api/middleware"
	"team-management-backend/internal/config"
	"team-management-backend/internal/database"
	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/repository"
	"team-management-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TeamsFile is the layout of one fixture file
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type TeamData struct {
	Name             string          `yaml:"name"`
	CreatedBy        uint            `yaml:"created_by"`
	SportTypeID      uint            `yaml:"sport_type_id"`
	Description      string          `yaml:"description"`
	City             string          `yaml:"city"`
	Level            string          `yaml:"level"`
	PrimaryColor     string          `yaml:"primary_color"`
	SecondaryColor   string          `yaml:"secondary_color"`
	MaxMembers       *int            `yaml:"max_members,omitempty"`
	RequiresApproval *bool           `yaml:"requires_approval,omitempty"`
	Members          []MemberData    `yaml:"members,omitempty"`
	Statistics       *StatisticsData `yaml:"statistics,omitempty"`
}

type MemberData struct {
	UserID       uint   `yaml:"user_id"`
	Role         string `yaml:"role"`
	JerseyNumber *int   `yaml:"jersey_number,omitempty"`
	Position     string `yaml:"position"`
}

type StatisticsData struct {
	Matches        []MatchData `yaml:"matches,omitempty"`
	TournamentsWon int         `yaml:"tournaments_won"`
}

type MatchData struct {
	GoalsFor     int    `yaml:"goals_for"`
	GoalsAgainst int    `yaml:"goals_against"`
	Tournament   bool   `yaml:"tournament"`
	Result       string `yaml:"result"`
}

// seeder loads fixtures through the services so every business rule applies
type seeder struct {
	teams      service.TeamServiceInterface
	members    service.MemberServiceInterface
	statistics service.StatisticsServiceInterface
}

func main() {
	dataDir := flag.String("data", "cmd/seed/data", "directory scanned recursively for *.yaml fixture files")
	attempts := flag.Int("db-attempts", 60, "database connection attempts before giving up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	middleware.ConfigureLogging(cfg)

	db, err := connectWithRetry(cfg.DatabaseURL, *attempts, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	teams, err := loadTeams(*dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read fixtures: %v", err)
	}

	store := repository.NewStore(db)
	validator := service.NewValidator()
	s := &seeder{
		teams:      service.NewTeamService(store, validator),
		members:    service.NewMemberService(store, nil, validator),
		statistics: service.NewStatisticsService(store),
	}

	if err := s.seed(context.Background(), teams); err != nil {
		logrus.Fatalf("Failed to seed data: %v", err)
	}

	logrus.Info("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Keep GORM quiet while loading fixtures
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadTeams collects the teams of every *.yaml file below dataDir
func loadTeams(dataDir string) ([]TeamData, error) {
	var all []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Teams...)
		return nil
	})

	return all, err
}

func (s *seeder) seed(ctx context.Context, teams []TeamData) error {
	teamsCreated, membersCreated := 0, 0

	for _, data := range teams {
		team, created, err := s.ensureTeam(ctx, data)
		if err != nil {
			return fmt.Errorf("team %s: %w", data.Name, err)
		}
		if created {
			teamsCreated++
		}

		for _, m := range data.Members {
			ok, err := s.ensureMember(ctx, team.ID, m)
			if err != nil {
				return fmt.Errorf("team %s member %d: %w", data.Name, m.UserID, err)
			}
			if ok {
				membersCreated++
			}
		}

		if data.Statistics != nil {
			if err := s.ensureStatistics(ctx, team.ID, data.Statistics); err != nil {
				return fmt.Errorf("team %s statistics: %w", data.Name, err)
			}
		}
	}

	logrus.Infof("Teams: %d created, %d total", teamsCreated, len(teams))
	logrus.Infof("Members: %d created", membersCreated)
	return nil
}

// ensureTeam creates the team or returns the existing one with the same name
func (s *seeder) ensureTeam(ctx context.Context, data TeamData) (*models.Team, bool, error) {
	team, err := s.teams.Create(ctx, &service.CreateTeamRequest{
		Name:             data.Name,
		CreatedBy:        data.CreatedBy,
		SportTypeID:      data.SportTypeID,
		Description:      data.Description,
		City:             data.City,
		Level:            models.TeamLevel(data.Level),
		PrimaryColor:     data.PrimaryColor,
		SecondaryColor:   data.SecondaryColor,
		MaxMembers:       data.MaxMembers,
		RequiresApproval: data.RequiresApproval,
	})
	if err == nil {
		return team, true, nil
	}
	if !errors.Is(err, apperrors.ErrTeamExists) {
		return nil, false, err
	}

	existing, err := s.teams.List(ctx, data.Name, service.PageRequest{PageSize: 100})
	if err != nil {
		return nil, false, err
	}
	for i := range existing.Teams {
		if strings.EqualFold(existing.Teams[i].Name, data.Name) {
			return &existing.Teams[i], false, nil
		}
	}
	return nil, false, fmt.Errorf("team reported as existing but not found by name")
}

// ensureMember adds the membership unless the user is already on the team
func (s *seeder) ensureMember(ctx context.Context, teamID uint, data MemberData) (bool, error) {
	_, err := s.members.Create(ctx, &service.CreateMemberRequest{
		TeamID:       teamID,
		UserID:       data.UserID,
		Role:         models.MemberRole(data.Role),
		JerseyNumber: data.JerseyNumber,
		Position:     data.Position,
	})
	if errors.Is(err, apperrors.ErrMemberExists) {
		return false, nil
	}
	return err == nil, err
}

// ensureStatistics initializes statistics once and replays the fixture matches.
// Existing statistics are left untouched so reruns do not double count.
func (s *seeder) ensureStatistics(ctx context.Context, teamID uint, data *StatisticsData) error {
	if _, err := s.statistics.Initialize(ctx, teamID); err != nil {
		if errors.Is(err, apperrors.ErrStatisticsExist) {
			return nil
		}
		return err
	}

	for _, m := range data.Matches {
		if _, err := s.statistics.UpdateAfterMatch(ctx, teamID, &service.MatchResultRequest{
			GoalsFor:     m.GoalsFor,
			GoalsAgainst: m.GoalsAgainst,
			Tournament:   m.Tournament,
			Result:       m.Result,
		}); err != nil {
			return err
		}
	}
	for i := 0; i < data.TournamentsWon; i++ {
		if _, err := s.statistics.IncrementTournamentsWon(ctx, teamID); err != nil {
			return err
		}
	}
	return nil
}
