package postgres

import (
	testDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/quality"
	"github.com/ceramiqa/quality-management/internal/quality"
	"gorm.io/gorm"
)

type TestRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) quality.Repository {
	return &TestRepository{db: db}
}

func (r *TestRepository) GetAll() ([]*testDatamodel.Test, error) {
	var tests []*testDatamodel.Test
	err := r.db.Order("test_date DESC, id DESC").Find(&tests).Error
	return tests, err
}

func (r *TestRepository) GetByID(id int64) (*testDatamodel.Test, error) {
	var test testDatamodel.Test
	err := r.db.Where("id = ?", id).First(&test).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, quality.ErrTestNotFound
		}
		return nil, err
	}
	return &test, nil
}

func (r *TestRepository) Create(test *testDatamodel.Test) error {
	return r.db.Create(test).Error
}

func (r *TestRepository) Update(test *testDatamodel.Test) error {
	result := r.db.Model(&testDatamodel.Test{}).Where("id = ?", test.ID).Updates(map[string]interface{}{
		"lot_id":                   test.LotID,
		"test_date":                test.TestDate,
		"length_mm":                test.LengthMm,
		"width_mm":                 test.WidthMm,
		"thickness_mm":             test.ThicknessMm,
		"water_absorption_percent": test.WaterAbsorptionPercent,
		"break_resistance_n":       test.BreakResistanceN,
		"defect_type":              test.DefectType,
		"defect_count":             test.DefectCount,
		"status":                   test.Status,
		"notes":                    test.Notes,
		"updated_at":               test.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return quality.ErrTestNotFound
	}
	return nil
}
