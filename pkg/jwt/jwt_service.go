package jwt

import (
	"FoodExpiryTracker/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService verifies bearer credentials issued by the identity
	// provider and extracts the subject email. Issuing is kept for
	// tests and tooling.
	JWTService interface {
		GenerateToken(email string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetEmailByToken(token string) (string, error)
	}

	jwtClaim struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "FoodExpiryTracker",
	}
}

func (j *jwtService) GenerateToken(email string) string {
	claims := jwtClaim{
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, _ := token.SignedString([]byte(j.secretKey))
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

func (j *jwtService) GetEmailByToken(token string) (string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Email == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Email, nil
}
