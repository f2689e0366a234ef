package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/avarich/internal/common"
)

const userIDKey = "userID"

// authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the token subject in the request locals.
func (s *HTTPServer) authenticate(c *fiber.Ctx) error {
	token, ok := common.BearerToken(c.Get(common.AuthorizationHeaderName))
	if !ok {
		return message(c, fiber.StatusUnauthorized, msgAuthHeaderInvalid)
	}

	claims, err := s.users.Authenticate(token)
	if err != nil {
		s.logger.Warn(c.UserContext(), "token verification failed", "error", err)
		return message(c, fiber.StatusUnauthorized, msgUnauthorized)
	}

	c.Locals(userIDKey, claims.UserID)
	return c.Next()
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
