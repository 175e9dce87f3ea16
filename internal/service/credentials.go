package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"wordbook/internal/logger"
	"wordbook/internal/repository"
)

const argon2Variant = "argon2id"

// Accepted ranges for parameters read back from a stored hash.
// argon2.IDKey panics on zero time or threads.
const (
	maxMemoryKiB  = 1 << 20
	maxIterations = 64
	minSaltLen    = 8
	minKeyLen     = 16
)

// Argon2Params are the cost parameters used for new hashes. Verification
// always uses the parameters encoded in the stored hash.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follow the OWASP minimum for Argon2id.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      19456,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// withDefaults fills every zero field from DefaultArgon2Params.
func (p Argon2Params) withDefaults() Argon2Params {
	d := DefaultArgon2Params()
	if p.Memory == 0 {
		p.Memory = d.Memory
	}
	if p.Iterations == 0 {
		p.Iterations = d.Iterations
	}
	if p.Parallelism == 0 {
		p.Parallelism = d.Parallelism
	}
	if p.SaltLength == 0 {
		p.SaltLength = d.SaltLength
	}
	if p.KeyLength == 0 {
		p.KeyLength = d.KeyLength
	}
	return p
}

// CredentialService stores and checks password hashes.
type CredentialService struct {
	users  repository.Users
	pool   *HashPool
	params Argon2Params
	rand   io.Reader
	log    *logger.Logger
}

func NewCredentialService(users repository.Users, pool *HashPool, params Argon2Params, log *logger.Logger) *CredentialService {
	return &CredentialService{
		users:  users,
		pool:   pool,
		params: params.withDefaults(),
		rand:   rand.Reader,
		log:    logger.OrNop(log),
	}
}

// HashPassword derives a PHC-formatted Argon2id hash with a fresh salt.
func (s *CredentialService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %v", ErrHashingFailure, err)
	}

	var encoded string
	err := s.pool.Do(ctx, func() error {
		key := argon2.IDKey([]byte(plaintext), salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, s.params.KeyLength)
		encoded = encodeHash(s.params, salt, key)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingFailure, err)
	}
	return encoded, nil
}

// SetPassword hashes plaintext and replaces the user's stored hash.
func (s *CredentialService) SetPassword(ctx context.Context, userID int64, plaintext string) error {
	hash, err := s.HashPassword(ctx, plaintext)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("set password for user %d: %w", userID, ErrNoSuchUser)
		}
		return fmt.Errorf("set password for user %d: %w", userID, err)
	}
	return nil
}

// VerifyPassword reports whether plaintext matches storedHash. It never
// fails: a malformed hash is logged and treated as a mismatch.
func (s *CredentialService) VerifyPassword(ctx context.Context, storedHash, plaintext string) bool {
	p, salt, want, err := decodeHash(storedHash)
	if err != nil {
		s.log.Warnw("malformed_password_hash", "err", err)
		return false
	}

	var match bool
	err = s.pool.Do(ctx, func() error {
		got := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(want)))
		match = subtle.ConstantTimeCompare(got, want) == 1
		return nil
	})
	if err != nil {
		s.log.Warnw("password_verify_aborted", "err", err)
		return false
	}
	return match
}

func encodeHash(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Variant,
		argon2.Version,
		p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

var errMalformedHash = errors.New("malformed password hash")

// decodeHash parses "$argon2id$v=19$m=..,t=..,p=..$salt$key".
func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 fields, got %d", errMalformedHash, len(parts))
	}
	if parts[1] != argon2Variant {
		return p, nil, nil, fmt.Errorf("%w: unsupported variant %q", errMalformedHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %v", errMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", errMalformedHash, version)
	}

	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("%w: parameters: %v", errMalformedHash, err)
	}
	if parallelism < 1 || parallelism > 255 {
		return p, nil, nil, fmt.Errorf("%w: parallelism %d out of range", errMalformedHash, parallelism)
	}
	p.Parallelism = uint8(parallelism)
	if p.Iterations < 1 || p.Iterations > maxIterations {
		return p, nil, nil, fmt.Errorf("%w: iterations %d out of range", errMalformedHash, p.Iterations)
	}
	if p.Memory < 8*parallelism || p.Memory > maxMemoryKiB {
		return p, nil, nil, fmt.Errorf("%w: memory %d out of range", errMalformedHash, p.Memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %v", errMalformedHash, err)
	}
	if len(salt) < minSaltLen {
		return p, nil, nil, fmt.Errorf("%w: salt too short", errMalformedHash)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: key: %v", errMalformedHash, err)
	}
	if len(key) < minKeyLen {
		return p, nil, nil, fmt.Errorf("%w: key too short", errMalformedHash)
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}
