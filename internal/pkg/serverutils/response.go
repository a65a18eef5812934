package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse builds the flat response envelope:
// {"error": false, "message": ..., <payload fields>}.
func SuccessResponse(message string, payload fiber.Map) fiber.Map {
	body := fiber.Map{
		"error":   false,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"error":   true,
		"message": message,
	}
}
