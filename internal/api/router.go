package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/musicschool/payments/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/payments", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.OptionalAuth)
				r.Post("/", h.InitiatePayment)
			})

			r.Get("/confirmation", h.Confirmation)
			r.Get("/{paymentId}", h.Payment)

			r.Group(func(r chi.Router) {
				r.Use(mw.TPayIPWL)
				r.Post("/callbacks/tpay", h.TPayNotification)
			})
		})

		r.Get("/invoices/{invoiceId}", h.Invoice)

		r.Route("/private/v1", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/invoices/{invoiceId}/file", h.SaveInvoicePDF)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Delete("/children/{childId}", h.DeleteChild)
		})
	})

	return mux
}
