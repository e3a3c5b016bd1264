package backup

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hunkymanie/shoply/internal/database"
)

type fakeS3 struct {
	puts []s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, *input)
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func newTestManager(t *testing.T) (*Manager, *fakeS3) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "shoply.db")
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := Config{
		S3: S3Config{
			Bucket:    "shoply-backups",
			Region:    "auto",
			AccessKey: "test",
			SecretKey: "test",
		},
		DBPath:     dbPath,
		Passphrase: "test-passphrase",
		Interval:   time.Hour,
	}
	m := NewManager(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	fake := &fakeS3{}
	m.client = fake
	return m, fake
}

func TestRunNowUploadsEncryptedSnapshot(t *testing.T) {
	m, fake := newTestManager(t)

	key, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}
	if key == "" {
		t.Fatal("RunNow() returned empty key")
	}
	if len(fake.puts) != 1 {
		t.Fatalf("PutObject calls = %d, want 1", len(fake.puts))
	}
	if *fake.puts[0].Bucket != "shoply-backups" {
		t.Errorf("bucket = %q", *fake.puts[0].Bucket)
	}

	// The uploaded blob decrypts back to a SQLite database.
	plain, err := Decrypt(fake.body, "test-passphrase")
	if err != nil {
		t.Fatalf("decrypt uploaded blob: %v", err)
	}
	if len(plain) < 16 || string(plain[:15]) != "SQLite format 3" {
		t.Errorf("decrypted snapshot does not look like a SQLite database")
	}

	status := m.Status()
	if status.State != StateIdle || status.LastBackup == nil {
		t.Errorf("status after backup = %+v", status)
	}
}

func TestManagerDisabledWithoutConfig(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "shoply.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m := NewManager(Config{DBPath: "x"}, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if m.Enabled() {
		t.Error("Enabled() = true with empty config")
	}
	if m.Status().State != StateDisabled {
		t.Errorf("state = %q, want disabled", m.Status().State)
	}
	if _, err := m.RunNow(context.Background()); err == nil {
		t.Error("RunNow() on disabled manager, want error")
	}

	// Start is a no-op when disabled; Stop must not hang.
	m.Start(context.Background())
	m.Stop()
}
