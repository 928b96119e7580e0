package otpstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
)

// Registro de verificação pendente, chaveado pelo e-mail de contato,
// com expiração explícita no servidor (substitui OTP em sessão).
const (
	otpTTL      = 10 * time.Minute
	maxAttempts = 5
)

type record struct {
	CodeHash string `json:"code_hash"`
	Purpose  string `json:"purpose"`
	Attempts int    `json:"attempts"`
	Verified bool   `json:"verified"`
}

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(email string) string {
	return "otp:" + email
}

// Save grava um novo código (hash bcrypt), descartando qualquer
// verificação pendente anterior do mesmo contato.
func (s *Store) Save(ctx context.Context, email, purpose, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(record{
		CodeHash: string(hash),
		Purpose:  purpose,
	})
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, key(email), raw, otpTTL).Err()
}

// Verify confere o código e marca o registro como verificado. O erro é
// genérico: não distingue código errado, expirado ou inexistente.
func (s *Store) Verify(ctx context.Context, email, purpose, code string) error {
	raw, err := s.rdb.Get(ctx, key(email)).Result()
	if err != nil {
		return httperr.ErrAuth("invalid_otp", "Código inválido ou expirado.")
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return httperr.ErrAuth("invalid_otp", "Código inválido ou expirado.")
	}

	if rec.Verified || rec.Attempts >= maxAttempts || rec.Purpose != purpose {
		return httperr.ErrAuth("invalid_otp", "Código inválido ou expirado.")
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(code)) != nil {
		rec.Attempts++
		s.rewrite(ctx, email, rec)
		return httperr.ErrAuth("invalid_otp", "Código inválido ou expirado.")
	}

	rec.Verified = true
	return s.rewrite(ctx, email, rec)
}

// Consume checa que o contato foi verificado e apaga o registro
// (uso único).
func (s *Store) Consume(ctx context.Context, email, purpose string) error {
	raw, err := s.rdb.Get(ctx, key(email)).Result()
	if err != nil {
		return httperr.ErrAuth("otp_required", "Verifique o e-mail antes de continuar.")
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil ||
		!rec.Verified || rec.Purpose != purpose {
		return httperr.ErrAuth("otp_required", "Verifique o e-mail antes de continuar.")
	}

	return s.rdb.Del(ctx, key(email)).Err()
}

// rewrite preserva o TTL restante do registro.
func (s *Store) rewrite(ctx context.Context, email string, rec record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ttl, err := s.rdb.TTL(ctx, key(email)).Result()
	if err != nil || ttl <= 0 {
		ttl = time.Minute
	}

	return s.rdb.Set(ctx, key(email), raw, ttl).Err()
}
