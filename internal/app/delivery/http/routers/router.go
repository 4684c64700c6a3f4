package routers

import (
	"fmt"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/delivery/http/controllers"
	"labdash-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *controllers.CatalogController,
	draftController *controllers.DraftController,
	templateController *controllers.TemplateController,
	orderController *controllers.OrderController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/labs", func(r chi.Router) {
				attachCatalogRoutes(r, catalogController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, catalogController)
			})

			r.Route("/drafts", func(r chi.Router) {
				attachDraftRoutes(r, draftController)
			})

			r.Route("/templates", func(r chi.Router) {
				attachTemplateRoutes(r, templateController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachOrderRoutes(r, orderController)
			})
		})
	})
}
