package employees

import (
	"context"
	"time"
)

type Repository interface {
	ListUsers(ctx context.Context, tenantID string) ([]User, error)
	GetUserByID(ctx context.Context, tenantID, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, tenantID, userID string) (bool, error)

	// UpsertAttendance inserts or replaces the record for (user, date).
	UpsertAttendance(ctx context.Context, record *AttendanceRecord) error
	ListAttendanceByMonth(ctx context.Context, tenantID string, from, to time.Time) ([]AttendanceRecord, error)
}
