package repository

import "gorm.io/gorm"

// nextPosition returns the next insertion-order slot for the model's table.
func nextPosition(db *gorm.DB, model any, scope ...any) (int64, error) {
	var max int64
	query := db.Model(model)
	if len(scope) > 0 {
		query = query.Where(scope[0], scope[1:]...)
	}
	if err := query.Select("COALESCE(MAX(position), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
