package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie nombre del cookie de sesión del catálogo.
// La sesión existe solo para anclar favoritos y solicitudes abiertas; no es
// autenticación (el catálogo es público, igual que la página original).
const SessionCookie = "vitrina_session"

// LocalSessionID key del id de sesión en c.Locals.
const LocalSessionID = "session_id"

// SessionMiddleware asegura que cada visitante tenga un id de sesión (UUID) en
// cookie y lo expone en c.Locals. Un cookie ausente o malformado se reemplaza.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if uuid.Validate(sid) != nil {
			sid = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				HTTPOnly: true,
				SameSite: "Lax",
				MaxAge:   60 * 60 * 24 * 365,
			})
		}
		c.Locals(LocalSessionID, sid)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
