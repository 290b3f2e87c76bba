package memory

import (
	"context"
	"sync"

	"teachback-backend/domain/config"
	"teachback-backend/domain/core/entities"
)

// WorkspaceRepository holds the live workspaces, one per user. Workspace
// state is process-local; a restart starts everyone fresh.
type WorkspaceRepository struct {
	mu         sync.Mutex
	workspaces map[string]*entities.Workspace
	cfg        *config.DomainConfig
}

// NewWorkspaceRepository creates an empty workspace repository
func NewWorkspaceRepository(cfg *config.DomainConfig) *WorkspaceRepository {
	return &WorkspaceRepository{
		workspaces: make(map[string]*entities.Workspace),
		cfg:        cfg,
	}
}

// GetOrCreate returns the user's workspace, creating it on first use
func (r *WorkspaceRepository) GetOrCreate(ctx context.Context, userID string) (*entities.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if workspace, ok := r.workspaces[userID]; ok {
		return workspace, nil
	}

	workspace, err := entities.NewWorkspace(userID, r.cfg)
	if err != nil {
		return nil, err
	}
	r.workspaces[userID] = workspace
	return workspace, nil
}
