package httpapi

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/jma-forecast/internal/city"
	"github.com/i474232898/jma-forecast/internal/weather"
)

var validate = validator.New()

// forecastUnavailable is the single message shown for every reconciliation failure.
const forecastUnavailable = "forecast unavailable"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, forecasts weather.Reconciler) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"groups": city.Groups(),
		})
	})

	v1.Get("/cities/:cityId", func(c *fiber.Ctx) error {
		id, err := parseCityID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entry, err := city.Resolve(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "unknown city")
		}
		return c.JSON(fiber.Map{
			"city":           entry,
			"weeklyAreaCode": city.WeeklyAreaCode(id),
		})
	})

	v1.Get("/forecast/:cityId", func(c *fiber.Ctx) error {
		id, err := parseCityID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := forecasts.Reconcile(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, weather.ErrUnknownCity):
				return fiber.NewError(fiber.StatusNotFound, "unknown city")
			case errors.Is(err, weather.ErrMalformedPayload):
				log.Printf("ERROR: forecast %s: malformed upstream payload: %v", id, err)
			case errors.Is(err, weather.ErrUpstreamFetch):
				log.Printf("ERROR: forecast %s: upstream fetch failed: %v", id, err)
			default:
				log.Printf("ERROR: forecast %s: %v", id, err)
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, forecastUnavailable)
		}

		return c.JSON(forecast)
	})
}

// cityQuery holds the path parameter identifying a city.
type cityQuery struct {
	CityID string `validate:"required,numeric,len=6"`
}

func parseCityID(c *fiber.Ctx) (string, error) {
	q := cityQuery{CityID: c.Params("cityId")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.CityID, nil
}
