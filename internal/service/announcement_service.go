package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
)

type AnnouncementService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewAnnouncementService(db *sqlx.DB, stores *store.Stores) *AnnouncementService {
	return &AnnouncementService{db: db, stores: stores}
}

type AnnouncementInput struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Active bool   `json:"active"`
}

// List returns announcements newest first. The public site only sees active ones.
func (s *AnnouncementService) List(ctx context.Context, activeOnly bool) ([]league.Announcement, error) {
	return s.stores.Announcements.List(ctx, activeOnly)
}

func (s *AnnouncementService) Create(ctx context.Context, in AnnouncementInput) (*league.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidName
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	a := &league.Announcement{Title: strings.TrimSpace(in.Title), Body: in.Body, Active: in.Active}
	if err := s.stores.Announcements.Create(ctx, tx, a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, tx.Commit()
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, in AnnouncementInput) (*league.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidName
	}

	a, err := s.stores.Announcements.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	a.Title = strings.TrimSpace(in.Title)
	a.Body = in.Body
	a.Active = in.Active
	if err := s.stores.Announcements.Update(ctx, tx, a); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return a, tx.Commit()
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.stores.Announcements.Delete(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}
