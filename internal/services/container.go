package services

import (
	"task-scheduler/internal/config"
	"task-scheduler/internal/repository/sqlite"
)

// NewServiceContainer wires every service around one repository.
// A nil cfg uses the default configuration and a nil clock the system clock.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config, clock Clock) *ServiceContainer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if clock == nil {
		clock = SystemClock
	}

	return &ServiceContainer{
		TaskService:           NewTaskService(repo, cfg, clock),
		RecommendationService: NewRecommendationService(repo, cfg, clock),
		Clock:                 clock,
	}
}
