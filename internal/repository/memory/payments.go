package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

type Payments struct {
	s *Store
}

var _ repository.PaymentRepository = (*Payments)(nil)

func (r *Payments) Insert(_ context.Context, p model.Payment) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	r.s.payments = append(r.s.payments, p)
	return p.ID, nil
}

type Announcements struct {
	s *Store
}

var _ repository.AnnouncementRepository = (*Announcements)(nil)

func (r *Announcements) Insert(_ context.Context, a model.Announcement) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	r.s.announcements = append(r.s.announcements, a)
	return a.ID, nil
}

func (r *Announcements) ListSince(_ context.Context, sinceMillis int64) ([]model.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	items := []model.Announcement{}
	for _, a := range r.s.announcements {
		if a.Timestamp >= sinceMillis {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items, nil
}
