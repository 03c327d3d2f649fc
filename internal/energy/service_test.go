package energy

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestEnergy(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Energy Module Suite")
}

type mockRecordRepository struct {
	records   []*Record
	nextID    int64
	createErr error
	getAllErr error
}

func newMockRecordRepository() *mockRecordRepository {
	return &mockRecordRepository{nextID: 1}
}

func (m *mockRecordRepository) GetAll() ([]*Record, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.records, nil
}

func (m *mockRecordRepository) Create(r *Record) error {
	if m.createErr != nil {
		return m.createErr
	}
	r.ID = m.nextID
	m.nextID++
	m.records = append(m.records, r)
	return nil
}

var _ = ginkgo.Describe("EnergyService", func() {
	var (
		service *Service
		repo    *mockRecordRepository
	)

	validDTO := func() CreateRecordDTO {
		return CreateRecordDTO{
			EnergySource:   SourceElectricity,
			ConsumptionKwh: 420.5,
			CostAmount:     63.2,
			RecordedAt:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			EquipmentName:  "Four tunnel 2",
			Department:     "Cuisson",
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockRecordRepository()
		service = NewService(repo, slog.Default())
	})

	ginkgo.Describe("CreateRecord", func() {
		ginkgo.It("should assign an id and stamp the recording user", func() {
			record, err := service.CreateRecord(validDTO(), 9)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(record.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(record.RecordedBy).To(gomega.Equal(int64(9)))
			gomega.Expect(record.EquipmentName).To(gomega.Equal("Four tunnel 2"))
			gomega.Expect(record.Department).To(gomega.Equal("Cuisson"))
		})

		ginkgo.It("should appear in the list after creation", func() {
			created, err := service.CreateRecord(validDTO(), 9)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			listed, err := service.ListRecords()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(listed).To(gomega.HaveLen(1))
			gomega.Expect(listed[0].ID).To(gomega.Equal(created.ID))
			gomega.Expect(listed[0].ConsumptionKwh).To(gomega.Equal(420.5))
		})

		ginkgo.It("should reject an unknown energy source", func() {
			dto := validDTO()
			dto.EnergySource = "charbon"

			_, err := service.CreateRecord(dto, 9)
			gomega.Expect(err).To(gomega.HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should reject a non-positive consumption", func() {
			dto := validDTO()
			dto.ConsumptionKwh = 0

			_, err := service.CreateRecord(dto, 9)
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("consumption_kwh"))
		})

		ginkgo.It("should report a storage failure as an internal error", func() {
			repo.createErr = errors.New("pq: connection reset by peer")

			_, err := service.CreateRecord(validDTO(), 9)
			gomega.Expect(err).To(gomega.HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(appErr.GetDetailedMessage()).ToNot(gomega.ContainSubstring("pq:"))
		})
	})
})

type stubRecordService struct {
	createErr error
}

func (s *stubRecordService) ListRecords() ([]*Record, error) { return nil, nil }

func (s *stubRecordService) CreateRecord(dto CreateRecordDTO, recordedBy int64) (*Record, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &Record{ID: 1, EnergySource: dto.EnergySource, RecordedBy: recordedBy}, nil
}

var _ = ginkgo.Describe("EnergyHandler", func() {
	postRecord := func(svc ServiceAPI, payload interface{}) *httptest.ResponseRecorder {
		handler := NewHandler(svc)

		body, err := json.Marshal(payload)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/api/energy-consumption", bytes.NewReader(body))
		req = req.WithContext(auth.ContextWithUser(req.Context(), &auth.User{ID: 9, Role: auth.RoleTechnician}))

		rec := httptest.NewRecorder()
		handler.CreateRecord(rec, req)
		return rec
	}

	ginkgo.It("should answer 201 with the stored record", func() {
		rec := postRecord(&stubRecordService{}, CreateRecordDTO{
			EnergySource:   SourceGas,
			ConsumptionKwh: 100,
			RecordedAt:     time.Now(),
		})

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
	})

	ginkgo.It("should answer 500 without leaking the driver error when persistence fails", func() {
		rec := postRecord(&stubRecordService{createErr: errors.New("pq: connection reset by peer")}, CreateRecordDTO{
			EnergySource:   SourceGas,
			ConsumptionKwh: 100,
			RecordedAt:     time.Now(),
		})

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))

		var body internal.ErrorBody
		gomega.Expect(json.NewDecoder(rec.Body).Decode(&body)).To(gomega.Succeed())
		gomega.Expect(body.Error).To(gomega.Equal("internal server error"))
	})

	ginkgo.It("should answer 400 with the field problems when validation fails", func() {
		repo := newMockRecordRepository()
		rec := postRecord(NewService(repo, slog.Default()), CreateRecordDTO{
			EnergySource: "charbon",
			RecordedAt:   time.Now(),
		})

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))

		var body internal.ErrorBody
		gomega.Expect(json.NewDecoder(rec.Body).Decode(&body)).To(gomega.Succeed())
		gomega.Expect(body.Error).To(gomega.ContainSubstring("energy_source"))
	})
})
