package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/diwise/paranuara/internal/pkg/application/paranuara"
	"github.com/diwise/paranuara/internal/pkg/presentation/api/auth"
	apierrors "github.com/diwise/paranuara/internal/pkg/presentation/api/errors"
	paranuaraerrors "github.com/diwise/paranuara/pkg/paranuara/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app paranuara.App) error {

	authorizer, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authorizer: %w", err)
	}

	r.Use(
		Logger(logging.GetFromContext(ctx)),
		Authorize(authorizer),
	)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", NewListCompaniesHandler(app))
		r.Get("/{name}", NewRetrieveCompanyHandler(app))
	})

	r.Route("/people", func(r chi.Router) {
		r.Get("/", NewListPeopleHandler(app))

		r.Get("/company/{name}", NewListEmployeesHandler(app))
		r.Get("/company/{name}/", NewListEmployeesHandler(app))

		r.Get("/employee1/{first}/employee2/{second}", NewMutualFriendsHandler(app))

		r.Get("/index/{index}", NewRetrievePersonByIndexHandler(app))

		r.Get("/{name}", NewRetrievePersonHandler(app))
		r.Get("/{name}/foods", NewFavouriteFoodsHandler(app))
		r.Get("/{name}/company", NewRetrieveEmployerHandler(app))
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize rejects every request that the configured policies do not allow
func Authorize(authorizer auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := authorizer.CheckAccess(ctx, r)
			if err != nil {
				logging.GetFromContext(ctx).Warn("access not granted", "err", err.Error())
				apierrors.ReportForbidden(w, "access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// pathParam returns a decoded path parameter. chi routes on the raw path only when
// the request path holds escapes that do not round trip, e.g. %2F.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)

	if r.URL.RawPath == "" {
		return value
	}

	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return unescaped
}

func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response", "err", err.Error())
		apierrors.ReportInternalError(w, "failed to encode response")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

func reportError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, paranuaraerrors.ErrNotFound) {
		apierrors.ReportNotFoundError(w, err.Error())
		return
	}

	logging.GetFromContext(ctx).Error("request failed", "err", err.Error())
	apierrors.ReportInternalError(w, "internal error")
}
