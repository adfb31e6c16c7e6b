package server

import (
	"net/http"
	"sync"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/ghanshyammann/seawar/internal/api"
	"github.com/ghanshyammann/seawar/internal/controller"
)

// New builds the echo.Echo instance serving the Battleship HTTP API: JWT
// auth on every route but /login, a per-caller token bucket, and the full
// lobby/gameplay route set backed by ctrl.
func New(ctrl *controller.AppController, jwtSecret string, ratePerMinute int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(rateLimit(ratePerMinute))

	h := api.NewEchoHandler(ctrl)

	e.POST("/login", h.Login)

	authenticated := e.Group("")
	authenticated.Use(echojwt.WithConfig(echojwt.Config{SigningKey: []byte(jwtSecret)}))
	authenticated.Use(RequirePlayerID)

	authenticated.GET("/fleets", h.ListFleets)
	authenticated.GET("/games/open", h.ListOpenGames)
	authenticated.GET("/games/mine", h.ListMyGames)
	authenticated.POST("/games", h.HostGame)
	authenticated.POST("/games/:id/join", h.JoinGame)
	authenticated.DELETE("/games/:id", h.DeleteGame)
	authenticated.GET("/games/:id", h.GetState)
	authenticated.GET("/games/:id/stats", h.GetStats)
	authenticated.GET("/games/:id/shots", h.ListShots)
	authenticated.POST("/games/:id/ships", h.PlaceShip)
	authenticated.POST("/games/:id/shots", h.Shoot)
	authenticated.GET("/games/:id/events", h.Subscribe)

	return e
}

// errorHandler renders echo.HTTPError (and anything else) as a uniform
// {"error": "..."} JSON body instead of echo's default HTML page.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "internal error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}

	if !c.Response().Committed {
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}

// rateLimit enforces a per-caller-IP token bucket, refilled at
// ratePerMinute tokens per minute with a burst equal to that same rate.
func rateLimit(ratePerMinute int) echo.MiddlewareFunc {
	if ratePerMinute <= 0 {
		ratePerMinute = 60
	}

	limiters := struct {
		sync.Mutex
		byIP map[string]*rate.Limiter
	}{byIP: make(map[string]*rate.Limiter)}

	every := rate.Every(time.Minute / time.Duration(ratePerMinute))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			limiters.Lock()
			lim, ok := limiters.byIP[ip]
			if !ok {
				lim = rate.NewLimiter(every, ratePerMinute)
				limiters.byIP[ip] = lim
			}
			limiters.Unlock()

			if !lim.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
