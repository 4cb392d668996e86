// Package favorites persists per-user workspace favorites in redis.
//
// Two keys are kept in sync per user: an id list for fast membership
// checks, and a denormalized workspace snapshot so a favorites panel
// can render without touching the entity graph.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"manageme.app/hub/internal/store"
)

const (
	idsKey       = "project-favorites"
	snapshotsKey = "favorite-projects"
)

// ErrNotFavoritable is returned when toggling a workspace that does not exist.
var ErrNotFavoritable = errors.New("workspace cannot be favorited")

// Snapshot is the denormalized form stored under favorite-projects.
type Snapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// KV is the minimal key-value surface the repository needs. Get returns
// store.ErrNotFound for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Repository struct {
	kv         KV
	workspaces store.WorkspaceStore
}

func NewRepository(kv KV, workspaces store.WorkspaceStore) *Repository {
	return &Repository{kv: kv, workspaces: workspaces}
}

// IDs returns the favorited workspace ids for the user, oldest first.
func (r *Repository) IDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.load(ctx, userKey(idsKey, userID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Toggle flips the favorite state of a workspace and returns the new
// state. Both keys are rewritten together so they never disagree.
func (r *Repository) Toggle(ctx context.Context, userID, workspaceID string) (bool, error) {
	ids, err := r.IDs(ctx, userID)
	if err != nil {
		return false, err
	}

	favorited := !slices.Contains(ids, workspaceID)
	if favorited {
		if _, err := r.workspaces.GetByID(ctx, workspaceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return false, ErrNotFavoritable
			}
			return false, fmt.Errorf("fetching workspace: %w", err)
		}
		ids = append(ids, workspaceID)
	} else {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == workspaceID })
	}

	if err := r.save(ctx, userID, ids); err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "favorite toggled",
		"user_id", userID,
		"workspace_id", workspaceID,
		"favorited", favorited,
	)
	return favorited, nil
}

// List returns the denormalized favorite snapshots for the user.
func (r *Repository) List(ctx context.Context, userID string) ([]Snapshot, error) {
	var snaps []Snapshot
	if err := r.load(ctx, userKey(snapshotsKey, userID), &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}

func (r *Repository) save(ctx context.Context, userID string, ids []string) error {
	snaps := make([]Snapshot, 0, len(ids))
	for _, wsID := range ids {
		ws, err := r.workspaces.GetByID(ctx, wsID)
		if err != nil {
			// A favorited workspace may have been deleted since;
			// drop it from the snapshot rather than failing the write.
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return fmt.Errorf("fetching workspace: %w", err)
		}
		snaps = append(snaps, Snapshot{ID: ws.ID, Name: ws.Name, Icon: ws.Icon})
	}

	if err := r.store(ctx, userKey(idsKey, userID), ids); err != nil {
		return err
	}
	return r.store(ctx, userKey(snapshotsKey, userID), snaps)
}

func (r *Repository) load(ctx context.Context, key string, out any) error {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (r *Repository) store(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func userKey(base, userID string) string {
	return base + ":" + userID
}

// Prune drops a deleted workspace from every provided user's favorites.
// Called after a workspace cascade so stale ids don't linger.
func (r *Repository) Prune(ctx context.Context, userIDs []string, workspaceID string) {
	for _, userID := range userIDs {
		ids, err := r.IDs(ctx, userID)
		if err != nil {
			slog.WarnContext(ctx, "failed to prune favorites", "error", err, "user_id", userID)
			continue
		}
		if !slices.Contains(ids, workspaceID) {
			continue
		}
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == workspaceID })
		if err := r.save(ctx, userID, ids); err != nil {
			slog.WarnContext(ctx, "failed to prune favorites", "error", err, "user_id", userID)
		}
	}
}
