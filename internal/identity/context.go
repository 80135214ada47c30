package identity

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller principal carried by a verified token.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

// FromContext extracts the caller identity from the JWT the auth middleware
// stored in context locals.
func FromContext(c *fiber.Ctx) (Identity, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return Identity{}, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Identity{}, errors.New("invalid sub claim")
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return Identity{UserID: uint(id), IsAdmin: isAdmin}, nil
}

// GetUserID extracts just the user id from the verified token.
func GetUserID(c *fiber.Ctx) (uint, error) {
	ident, err := FromContext(c)
	if err != nil {
		return 0, err
	}
	return ident.UserID, nil
}

func claimsFromContext(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
