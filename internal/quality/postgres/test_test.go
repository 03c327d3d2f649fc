package postgres_test

import (
	"testing"
	"time"

	testDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/quality"
	"github.com/ceramiqa/quality-management/internal/quality"
	qualityPostgres "github.com/ceramiqa/quality-management/internal/quality/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestQualityPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quality Postgres Suite")
}

// SQLiteQualityTest mirrors the production table without postgres defaults.
type SQLiteQualityTest struct {
	ID                     int64     `gorm:"primaryKey"`
	LotID                  int64     `gorm:"column:lot_id;not null"`
	OperatorID             int64     `gorm:"column:operator_id;not null"`
	TestDate               time.Time `gorm:"column:test_date"`
	LengthMm               float64   `gorm:"column:length_mm"`
	WidthMm                float64   `gorm:"column:width_mm"`
	ThicknessMm            float64   `gorm:"column:thickness_mm"`
	WaterAbsorptionPercent float64   `gorm:"column:water_absorption_percent"`
	BreakResistanceN       float64   `gorm:"column:break_resistance_n"`
	DefectType             string    `gorm:"column:defect_type"`
	DefectCount            int       `gorm:"column:defect_count"`
	Status                 string    `gorm:"column:status"`
	Notes                  string    `gorm:"column:notes"`
	CreatedAt              time.Time `gorm:"column:created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at"`
}

func (SQLiteQualityTest) TableName() string {
	return "quality_tests"
}

var _ = Describe("Quality test repository", func() {
	var (
		db   *gorm.DB
		repo quality.Repository
	)

	newTest := func(lotID int64, date time.Time, status string) *testDatamodel.Test {
		return &testDatamodel.Test{
			LotID:      lotID,
			OperatorID: 1,
			TestDate:   date,
			LengthMm:   300,
			Status:     status,
			DefectType: "none",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteQualityTest{})
		Expect(err).NotTo(HaveOccurred())

		repo = qualityPostgres.NewTestRepository(db)
	})

	Describe("Create and GetAll", func() {
		It("should round-trip a created test", func() {
			created := newTest(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Conforme")
			Expect(repo.Create(created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].LotID).To(Equal(int64(1)))
			Expect(all[0].Status).To(Equal("Conforme"))
		})

		It("should list most recent test date first", func() {
			older := newTest(1, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "Conforme")
			newer := newTest(1, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "Non-conforme")
			Expect(repo.Create(older)).To(Succeed())
			Expect(repo.Create(newer)).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].ID).To(Equal(newer.ID))
			Expect(all[1].ID).To(Equal(older.ID))
		})
	})

	Describe("GetByID", func() {
		It("should return the stored test", func() {
			created := newTest(2, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "En cours")
			Expect(repo.Create(created)).To(Succeed())

			found, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.LotID).To(Equal(int64(2)))
		})

		It("should return not found for a missing id", func() {
			_, err := repo.GetByID(404)
			Expect(err).To(Equal(quality.ErrTestNotFound))
		})
	})

	Describe("Update", func() {
		It("should persist the replaced fields", func() {
			created := newTest(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "En cours")
			Expect(repo.Create(created)).To(Succeed())

			created.Status = "Non-conforme"
			created.DefectType = "crack"
			created.DefectCount = 2
			created.UpdatedAt = time.Now()
			Expect(repo.Update(created)).To(Succeed())

			found, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal("Non-conforme"))
			Expect(found.DefectType).To(Equal("crack"))
			Expect(found.DefectCount).To(Equal(2))
		})

		It("should return not found when nothing matches", func() {
			ghost := newTest(1, time.Now(), "Conforme")
			ghost.ID = 999
			Expect(repo.Update(ghost)).To(Equal(quality.ErrTestNotFound))
		})
	})
})
