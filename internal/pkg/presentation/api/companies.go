package api

import (
	"net/http"

	"github.com/diwise/paranuara/internal/pkg/application/paranuara"
)

func NewListCompaniesHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writeJSON(ctx, w, app.Companies(ctx))
	})
}

func NewRetrieveCompanyHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		company, err := app.Company(ctx, pathParam(r, "name"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, company)
	})
}

// NewListEmployeesHandler handles GET requests for all employees of a company
func NewListEmployeesHandler(app paranuara.EmployeeLister) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		employees, err := app.EmployeesOf(ctx, pathParam(r, "name"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, employees)
	})
}
