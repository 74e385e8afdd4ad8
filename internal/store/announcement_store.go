package store

import (
	"context"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/jmoiron/sqlx"
)

type AnnouncementStore struct {
	db *sqlx.DB
}

const (
	createAnnouncementQuery = `
		INSERT INTO announcements (title, body, active)
		VALUES (:title, :body, :active)
	`
	updateAnnouncementQuery = `
		UPDATE announcements SET
		title = :title,
		body = :body,
		active = :active
		WHERE id = :id
	`
)

func NewAnnouncementStore(db *sqlx.DB) *AnnouncementStore {
	return &AnnouncementStore{db: db}
}

// List returns the newest announcements first.
func (s *AnnouncementStore) List(ctx context.Context, activeOnly bool) ([]league.Announcement, error) {
	query := "SELECT * FROM announcements"
	if activeOnly {
		query += " WHERE active = 1"
	}
	announcements := []league.Announcement{}
	err := s.db.SelectContext(ctx, &announcements, query+" ORDER BY created_at DESC, id DESC")
	return announcements, err
}

func (s *AnnouncementStore) Get(ctx context.Context, id int64) (*league.Announcement, error) {
	var a league.Announcement
	if err := s.db.GetContext(ctx, &a, "SELECT * FROM announcements WHERE id = ?", id); err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (s *AnnouncementStore) Create(ctx context.Context, tx *sqlx.Tx, a *league.Announcement) error {
	res, err := tx.NamedExecContext(ctx, createAnnouncementQuery, a)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return tx.GetContext(ctx, a, "SELECT * FROM announcements WHERE id = ?", id)
}

func (s *AnnouncementStore) Update(ctx context.Context, tx *sqlx.Tx, a *league.Announcement) error {
	return expectRows(tx.NamedExecContext(ctx, updateAnnouncementQuery, a))
}

func (s *AnnouncementStore) Delete(ctx context.Context, tx *sqlx.Tx, id int64) error {
	return expectRows(tx.ExecContext(ctx, "DELETE FROM announcements WHERE id = ?", id))
}
