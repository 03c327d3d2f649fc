package activitylog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestActivityLog(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "ActivityLog Module Suite")
}

type mockEntryRepository struct {
	entries []*Entry
}

func (m *mockEntryRepository) GetRecent(limit int) ([]*Entry, error) {
	if len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockEntryRepository) Create(entry *Entry) error {
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

var _ = ginkgo.Describe("ActivityLogService", func() {
	var (
		service *Service
		repo    *mockEntryRepository
		bus     *events.EventBus
	)

	ginkgo.BeforeEach(func() {
		repo = &mockEntryRepository{}
		bus = events.NewEventBus(slog.Default())
		service = NewService(repo, slog.Default())
		service.RegisterSubscriptions(bus)
	})

	publish := func(eventType string, data map[string]interface{}) {
		err := bus.PublishSync(context.Background(), events.BaseEvent{
			ID:        "evt-1",
			Type:      eventType,
			Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			Data:      data,
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	}

	ginkgo.It("should record a registration event", func() {
		publish("user.registered", map[string]interface{}{
			"user_id": int64(7),
			"email":   "new@factory.fr",
			"role":    "operator",
		})

		gomega.Expect(repo.entries).To(gomega.HaveLen(1))
		entry := repo.entries[0]
		gomega.Expect(entry.Action).To(gomega.Equal("user.registered"))
		gomega.Expect(entry.EntityType).To(gomega.Equal("user"))
		gomega.Expect(entry.EntityID).To(gomega.Equal(int64(7)))
		gomega.Expect(entry.Details).To(gomega.ContainSubstring("new@factory.fr"))
	})

	ginkgo.It("should record the acting admin on a role change", func() {
		publish("user.role_changed", map[string]interface{}{
			"user_id":       int64(2),
			"previous_role": "operator",
			"new_role":      "technician",
			"actor_id":      int64(1),
		})

		gomega.Expect(repo.entries).To(gomega.HaveLen(1))
		entry := repo.entries[0]
		gomega.Expect(entry.ActorID).To(gomega.Equal(int64(1)))
		gomega.Expect(entry.EntityID).To(gomega.Equal(int64(2)))
	})

	ginkgo.It("should record compliance document creation", func() {
		publish("compliance_document.created", map[string]interface{}{
			"document_id":   int64(11),
			"document_name": "ISO 13006",
			"uploaded_by":   int64(3),
		})

		gomega.Expect(repo.entries).To(gomega.HaveLen(1))
		entry := repo.entries[0]
		gomega.Expect(entry.EntityType).To(gomega.Equal("compliance_document"))
		gomega.Expect(entry.ActorID).To(gomega.Equal(int64(3)))
	})

	ginkgo.It("should tolerate float payload ids from decoded JSON", func() {
		publish("quality_test.created", map[string]interface{}{
			"test_id":     float64(5),
			"lot_id":      float64(2),
			"operator_id": float64(4),
		})

		gomega.Expect(repo.entries).To(gomega.HaveLen(1))
		gomega.Expect(repo.entries[0].EntityID).To(gomega.Equal(int64(5)))
		gomega.Expect(repo.entries[0].ActorID).To(gomega.Equal(int64(4)))
	})

	ginkgo.It("should keep the event timestamp", func() {
		publish("user.registered", map[string]interface{}{"user_id": int64(1)})

		gomega.Expect(repo.entries[0].CreatedAt).To(gomega.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
	})

	ginkgo.Describe("ListRecent", func() {
		ginkgo.It("should return recorded entries", func() {
			publish("user.registered", map[string]interface{}{"user_id": int64(1)})
			publish("user.registered", map[string]interface{}{"user_id": int64(2)})

			entries, err := service.ListRecent()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(entries).To(gomega.HaveLen(2))
		})
	})
})
