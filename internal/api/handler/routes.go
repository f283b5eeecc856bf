package handler

import (
	"net/http"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/api/handler/router"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/aggregating"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/authenticating"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/scanning"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/register",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Revenue(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenue/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyTotal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/trend",
			Method:      http.MethodGet,
			Handler:     GetTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/records",
			Method:      http.MethodPost,
			Handler:     IngestRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Niches(service scanning.Scanner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/niches",
			Method:      http.MethodGet,
			Handler:     ListNicheOpportunities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/revenue/collection/status",
			Method:      http.MethodGet,
			Handler:     GetCollectionStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
