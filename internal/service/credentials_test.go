package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestHashPassword_SelfDescribingFormat(t *testing.T) {
	svc := newTestCredentials(newFakeUsers())

	hash, err := svc.HashPassword(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected hash prefix: %q", hash)
	}

	p, salt, key, err := decodeHash(hash)
	if err != nil {
		t.Fatalf("decodeHash: %v", err)
	}
	if p.Memory != 64 || p.Iterations != 1 || p.Parallelism != 1 {
		t.Fatalf("unexpected params: %+v", p)
	}
	if len(salt) != 16 || len(key) != 32 {
		t.Fatalf("unexpected lengths: salt=%d key=%d", len(salt), len(key))
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	svc := newTestCredentials(newFakeUsers())
	ctx := context.Background()

	a, err := svc.HashPassword(ctx, "same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := svc.HashPassword(ctx, "same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
	if !svc.VerifyPassword(ctx, a, "same") || !svc.VerifyPassword(ctx, b, "same") {
		t.Fatal("both hashes should verify")
	}
}

func TestHashPassword_RandomSourceFailure(t *testing.T) {
	svc := newTestCredentials(newFakeUsers())
	svc.rand = iotest.ErrReader(errors.New("entropy exhausted"))

	_, err := svc.HashPassword(context.Background(), "pw")
	if !errors.Is(err, ErrHashingFailure) {
		t.Fatalf("expected ErrHashingFailure, got %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	svc := newTestCredentials(newFakeUsers())
	ctx := context.Background()

	good, err := svc.HashPassword(ctx, "s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	parts := strings.Split(good, "$")
	b64 := base64.RawStdEncoding.EncodeToString

	tests := []struct {
		name   string
		stored string
		pw     string
		want   bool
	}{
		{"match", good, "s3cret", true},
		{"wrong password", good, "s3cret!", false},
		{"empty password", good, "", false},
		{"empty hash", "", "s3cret", false},
		{"garbage", "not-a-hash", "s3cret", false},
		{"bcrypt hash", "$2a$10$abcdefghijklmnopqrstuuJ0bUJ2tWcCYl8Zx7H5yH7kTg2dPnq6", "s3cret", false},
		{"argon2i variant", strings.Replace(good, "argon2id", "argon2i", 1), "s3cret", false},
		{"wrong version", strings.Replace(good, "v=19", "v=16", 1), "s3cret", false},
		{"zero iterations", strings.Replace(good, "t=1", "t=0", 1), "s3cret", false},
		{"zero parallelism", strings.Replace(good, "p=1", "p=0", 1), "s3cret", false},
		{"huge memory", strings.Replace(good, "m=64", "m=99999999", 1), "s3cret", false},
		{"bad salt encoding", strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$"), "s3cret", false},
		{"short salt", strings.Join([]string{"", parts[1], parts[2], parts[3], b64([]byte("abc")), parts[5]}, "$"), "s3cret", false},
		{"empty key", strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], ""}, "$"), "s3cret", false},
		{"truncated", strings.Join(parts[:5], "$"), "s3cret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.VerifyPassword(ctx, tt.stored, tt.pw); got != tt.want {
				t.Fatalf("VerifyPassword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyPassword_UsesStoredParameters(t *testing.T) {
	ctx := context.Background()
	old := NewCredentialService(newFakeUsers(), NewHashPool(1), Argon2Params{Memory: 32, Iterations: 2, Parallelism: 2}, nil)
	hash, err := old.HashPassword(ctx, "pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// A service configured with different costs still verifies old hashes.
	current := newTestCredentials(newFakeUsers())
	if !current.VerifyPassword(ctx, hash, "pw") {
		t.Fatal("hash produced with other parameters should verify")
	}
}

func TestSetPassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	id, _ := users.Create(ctx, "alice", nil)
	svc := newTestCredentials(users)

	if err := svc.SetPassword(ctx, id, "s3cret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	u, _ := users.GetByName(ctx, "alice")
	if !u.HasPassword() || !svc.VerifyPassword(ctx, *u.PasswordHash, "s3cret") {
		t.Fatal("stored hash should verify")
	}

	if err := svc.SetPassword(ctx, id+1, "x"); !errors.Is(err, ErrNoSuchUser) {
		t.Fatalf("expected ErrNoSuchUser, got %v", err)
	}

	users.err = errors.New("disk I/O error")
	err := svc.SetPassword(ctx, id, "y")
	if err == nil || errors.Is(err, ErrNoSuchUser) {
		t.Fatalf("expected store error, got %v", err)
	}
}
