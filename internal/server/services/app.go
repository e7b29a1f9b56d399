// Package services contains server-side business logic. This file implements
// AppService, which backs the liveness and stats endpoints.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
)

// Status reports the health of the two backing stores.
type Status struct {
	DB    bool `json:"db"`
	Redis bool `json:"redis"`
}

// Stats reports entity counts across all users.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// AppService answers liveness and usage questions about the deployment.
type AppService struct {
	repomanager repomanager.RepositoryManager
	sessions    *sessions.Store
}

func NewAppService(m repomanager.RepositoryManager, s *sessions.Store) *AppService {
	return &AppService{repomanager: m, sessions: s}
}

// Status probes both stores; it never fails, it reports.
func (s *AppService) Status(ctx context.Context) *Status {
	return &Status{
		DB:    s.repomanager.Ping(ctx) == nil,
		Redis: s.sessions.IsAlive(ctx),
	}
}

// Stats counts users and file entries.
func (s *AppService) Stats(ctx context.Context) (*Stats, error) {
	userCount, err := s.repomanager.Users().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %v", err)
	}
	fileCount, err := s.repomanager.Files().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting files: %v", err)
	}
	return &Stats{Users: userCount, Files: fileCount}, nil
}
