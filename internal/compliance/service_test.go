package compliance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestCompliance(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Compliance Module Suite")
}

type mockDocumentRepository struct {
	docs      map[int64]*Document
	nextID    int64
	createErr error
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{
		docs:   make(map[int64]*Document),
		nextID: 1,
	}
}

func (m *mockDocumentRepository) GetAll() ([]*Document, error) {
	result := make([]*Document, 0, len(m.docs))
	for _, d := range m.docs {
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDocumentRepository) GetByID(id int64) (*Document, error) {
	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	return nil, ErrDocumentNotFound
}

func (m *mockDocumentRepository) Create(d *Document) error {
	if m.createErr != nil {
		return m.createErr
	}
	d.ID = m.nextID
	m.nextID++
	m.docs[d.ID] = d
	return nil
}

func (m *mockDocumentRepository) Update(d *Document) error {
	if _, ok := m.docs[d.ID]; !ok {
		return ErrDocumentNotFound
	}
	m.docs[d.ID] = d
	return nil
}

var _ = ginkgo.Describe("ComplianceService", func() {
	var (
		service *Service
		repo    *mockDocumentRepository
		bus     *events.EventBus
	)

	validDTO := func() DocumentDTO {
		return DocumentDTO{
			DocumentName:     "Certificat ISO 13006",
			DocumentType:     "Certification",
			IssuingAuthority: "AFNOR",
			IssueDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			ExpiryDate:       time.Date(2028, 1, 15, 0, 0, 0, 0, time.UTC),
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockDocumentRepository()
		bus = events.NewEventBus(slog.Default())
		service = NewService(repo, bus, slog.Default())
	})

	ginkgo.Describe("CreateDocument", func() {
		ginkgo.It("should assign an id, default the status and stamp the uploader", func() {
			doc, err := service.CreateDocument(validDTO(), 4)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(doc.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(doc.Status).To(gomega.Equal(StatusValid))
			gomega.Expect(doc.UploadedBy).To(gomega.Equal(int64(4)))
		})

		ginkgo.It("should appear in the list after creation", func() {
			created, err := service.CreateDocument(validDTO(), 4)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			listed, err := service.ListDocuments()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(listed).To(gomega.HaveLen(1))
			gomega.Expect(listed[0].ID).To(gomega.Equal(created.ID))
			gomega.Expect(listed[0].DocumentName).To(gomega.Equal("Certificat ISO 13006"))
		})

		ginkgo.It("should reject a document without a name", func() {
			dto := validDTO()
			dto.DocumentName = ""

			_, err := service.CreateDocument(dto, 4)
			gomega.Expect(err).To(gomega.HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should reject an expiry date before the issue date", func() {
			dto := validDTO()
			dto.ExpiryDate = dto.IssueDate.AddDate(0, 0, -1)

			_, err := service.CreateDocument(dto, 4)
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("expiry_date"))
		})

		ginkgo.It("should publish a creation event for the activity log", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe("compliance_document.created", func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			doc, err := service.CreateDocument(validDTO(), 4)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			var evt events.Event
			gomega.Eventually(received).Should(gomega.Receive(&evt))
			data := evt.Payload().(map[string]interface{})
			gomega.Expect(data["document_id"]).To(gomega.Equal(doc.ID))
			gomega.Expect(data["uploaded_by"]).To(gomega.Equal(int64(4)))
		})

		ginkgo.It("should report a storage failure as an internal error", func() {
			repo.createErr = errors.New("pq: connection reset by peer")

			_, err := service.CreateDocument(validDTO(), 4)
			gomega.Expect(err).To(gomega.HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(appErr.GetDetailedMessage()).ToNot(gomega.ContainSubstring("pq:"))
		})
	})

	ginkgo.Describe("UpdateDocument", func() {
		ginkgo.It("should replace the mutable fields and keep the uploader", func() {
			created, err := service.CreateDocument(validDTO(), 4)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			dto := validDTO()
			dto.Status = StatusExpired
			dto.Notes = "renouvellement en cours"

			updated, err := service.UpdateDocument(created.ID, dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(StatusExpired))
			gomega.Expect(updated.Notes).To(gomega.Equal("renouvellement en cours"))
			gomega.Expect(updated.UploadedBy).To(gomega.Equal(int64(4)))
		})

		ginkgo.It("should return not found for an unknown id", func() {
			_, err := service.UpdateDocument(42, validDTO())
			gomega.Expect(err).To(gomega.Equal(ErrDocumentNotFound))
		})

		ginkgo.It("should publish an update event with the new status", func() {
			created, err := service.CreateDocument(validDTO(), 4)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			received := make(chan events.Event, 1)
			bus.Subscribe("compliance_document.updated", func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			dto := validDTO()
			dto.Status = StatusPending
			_, err = service.UpdateDocument(created.ID, dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			var evt events.Event
			gomega.Eventually(received).Should(gomega.Receive(&evt))
			data := evt.Payload().(map[string]interface{})
			gomega.Expect(data["status"]).To(gomega.Equal(StatusPending))
		})
	})
})
