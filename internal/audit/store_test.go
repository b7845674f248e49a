package audit

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: glogger.Default.LogMode(glogger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(gdb), mock
}

func TestRecordLogin(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "login_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := store.RecordLogin(context.Background(), &LoginEvent{
		Portal:    "employee",
		SubjectID: "EMP001",
		Success:   true,
		ClientIP:  "10.0.0.5",
		RequestID: "req-123",
	})
	if err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRecordUpload(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "uploaded_documents"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := store.RecordUpload(context.Background(), &UploadedDocument{
		Portal:      "employee",
		SubjectID:   "EMP001",
		Kind:        "profile-photo",
		FileName:    "photo.png",
		StoredPath:  "uploads/EMP001/photo.png",
		ContentType: "image/png",
		SizeBytes:   2048,
	})
	if err != nil {
		t.Fatalf("RecordUpload: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRecentLogins(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "portal", "subject_id", "success"}).
		AddRow(2, "customer", "CUST001", true).
		AddRow(1, "customer", "CUST001", false)
	mock.ExpectQuery(`SELECT \* FROM "login_events"`).
		WithArgs("customer", "CUST001", 5).
		WillReturnRows(rows)

	events, err := store.RecentLogins(context.Background(), "customer", "CUST001", 5)
	if err != nil {
		t.Fatalf("RecentLogins: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	if !events[0].Success || events[1].Success {
		t.Errorf("unexpected order or values: %+v", events)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var store *Store

	if err := store.Migrate(); err != nil {
		t.Errorf("Migrate on nil store: %v", err)
	}
	if err := store.RecordLogin(context.Background(), &LoginEvent{}); err != nil {
		t.Errorf("RecordLogin on nil store: %v", err)
	}
	if err := store.RecordUpload(context.Background(), &UploadedDocument{}); err != nil {
		t.Errorf("RecordUpload on nil store: %v", err)
	}
	events, err := store.RecentLogins(context.Background(), "employee", "EMP001", 10)
	if err != nil || events != nil {
		t.Errorf("RecentLogins on nil store = %v, %v", events, err)
	}
}
