package employees

import (
	"context"
	"errors"
	"time"

	employeesdomain "flowspace-go/internal/domain/employees"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUsers(ctx context.Context, tenantID string) ([]employeesdomain.User, error) {
	var items []employeesdomain.User
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, tenantID, userID string) (*employeesdomain.User, error) {
	var user employeesdomain.User
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*employeesdomain.User, error) {
	var user employeesdomain.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *employeesdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *employeesdomain.User) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", user.ID, user.TenantID).
		Save(user).Error
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, tenantID, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&employeesdomain.User{}, "tenant_id = ? AND id = ?", tenantID, userID)
	return result.RowsAffected > 0, result.Error
}

// UpsertAttendance relies on the unique (user_id, date) index so a second
// mark for the same day replaces the first.
func (r *PostgresRepository) UpsertAttendance(ctx context.Context, record *employeesdomain.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "check_in", "check_out", "late_minutes", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *PostgresRepository) ListAttendanceByMonth(ctx context.Context, tenantID string, from, to time.Time) ([]employeesdomain.AttendanceRecord, error) {
	var items []employeesdomain.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, from, to).
		Order("date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
