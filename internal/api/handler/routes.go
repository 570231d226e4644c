package handler

import (
	"net/http"

	"github.com/shakemap/shakemap-api/infrastructure/integrator/places"
	"github.com/shakemap/shakemap-api/internal/api/handler/router"
	"github.com/shakemap/shakemap-api/internal/usecases/authenticating"
	"github.com/shakemap/shakemap-api/internal/usecases/favouriting"
	"github.com/shakemap/shakemap-api/internal/usecases/ranking"
	"github.com/shakemap/shakemap-api/internal/usecases/reviewing"
	"github.com/shakemap/shakemap-api/internal/usecases/shopkeeping"
	"github.com/shakemap/shakemap-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Shops(service shopkeeping.ShopDirectory) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shops",
			Method:  http.MethodGet,
			Handler: ListShops(service),
		},
		{
			// Fora de /v1/shops para não colidir com o parâmetro :id
			Path:    "/v1/stream/shops",
			Method:  http.MethodGet,
			Handler: StreamShops(service),
		},
		{
			Path:    "/v1/shops/:id",
			Method:  http.MethodGet,
			Handler: GetShop(service),
		},
		{
			Path:    "/v1/shops",
			Method:  http.MethodPost,
			Handler: AddShop(service),
		},
	}
}

func Ratings(service reviewing.Reviewer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/shops/:id/ratings",
			Method:      http.MethodPost,
			Handler:     AddShopRating(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Ranking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking/nearest",
			Method:  http.MethodGet,
			Handler: GetNearestShops(service),
		},
		{
			Path:    "/v1/ranking/shake-of-the-day",
			Method:  http.MethodGet,
			Handler: GetShakeOfTheDay(service),
		},
	}
}

func Favourites(service favouriting.Favouriter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/favourites",
			Method:  http.MethodGet,
			Handler: ListFavourites(service),
		},
		{
			Path:    "/v1/favourites/toggle",
			Method:  http.MethodPost,
			Handler: ToggleFavourite(service),
		},
		{
			Path:    "/v1/walkthrough",
			Method:  http.MethodGet,
			Handler: GetWalkthrough(service),
		},
		{
			Path:    "/v1/walkthrough",
			Method:  http.MethodPost,
			Handler: MarkWalkthrough(service),
		},
	}
}

func Places(service places.PlacesIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/places/search",
			Method:  http.MethodGet,
			Handler: SearchPlaces(service),
		},
		{
			Path:    "/v1/places/details/:id",
			Method:  http.MethodGet,
			Handler: GetPlaceDetails(service),
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
	}
}
