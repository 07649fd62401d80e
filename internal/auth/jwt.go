package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token audiences. Staff and vigilante tokens share the signing key and are
// told apart by the tipo claim.
const (
	TipoUsuario   = "usuario"
	TipoVigilante = "vigilante"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

type Claims struct {
	Tipo      string `json:"tipo"`
	Rol       string `json:"rol,omitempty"`
	NegocioID int64  `json:"negocio_id,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID is the numeric id carried in the subject claim.
func (c *Claims) SubjectID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaims
	}
	return id, nil
}

type TokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// GenerateUsuarioToken issues a staff session token.
func (m *TokenManager) GenerateUsuarioToken(usuarioID int64, rol string, ttl time.Duration) (string, error) {
	return m.sign(Claims{Tipo: TipoUsuario, Rol: rol}, usuarioID, ttl)
}

// GenerateVigilanteToken issues a guard token bound to one negocio.
func (m *TokenManager) GenerateVigilanteToken(colaboradorID, negocioID int64, ttl time.Duration) (string, error) {
	return m.sign(Claims{Tipo: TipoVigilante, NegocioID: negocioID}, colaboradorID, ttl)
}

func (m *TokenManager) sign(claims Claims, subject int64, ttl time.Duration) (string, error) {
	now := m.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subject, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies signature and expiry. Expired tokens yield
// ErrExpiredToken, every other failure ErrInvalidToken.
func (m *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Tipo == "" {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
