package security

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"fitboard/internal/domain"
)

// Identity is what the token carries about a caller. Participant is the
// normalized leaderboard identifier: the lower-cased email claim when
// present, the token subject otherwise.
type Identity struct {
	Participant string
	Name        string
}

// TokenManager validates bearer tokens issued by the external identity
// provider. This service never issues tokens itself.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) Validate(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	var id Identity
	if email, _ := claims["email"].(string); email != "" {
		id.Participant = domain.NormalizeParticipant(email)
	} else if sub, _ := claims["sub"].(string); sub != "" {
		id.Participant = domain.NormalizeParticipant(sub)
	} else {
		return Identity{}, errors.New("token has no subject")
	}
	id.Name, _ = claims["name"].(string)
	return id, nil
}
