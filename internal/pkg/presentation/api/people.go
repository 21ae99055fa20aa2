package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/diwise/paranuara/internal/pkg/application/paranuara"
	apierrors "github.com/diwise/paranuara/internal/pkg/presentation/api/errors"
)

func NewListPeopleHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writeJSON(ctx, w, app.People(ctx))
	})
}

func NewRetrievePersonHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		person, err := app.Person(ctx, pathParam(r, "name"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, person)
	})
}

func NewRetrievePersonByIndexHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		param := pathParam(r, "index")
		index, err := strconv.Atoi(param)
		if err != nil {
			apierrors.ReportBadRequest(w, fmt.Sprintf("%q is not a valid index", param))
			return
		}

		person, err := app.PersonByIndex(ctx, index)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, person)
	})
}

func NewRetrieveEmployerHandler(app paranuara.EntityRetriever) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		company, err := app.Employer(ctx, pathParam(r, "name"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, company)
	})
}

// NewMutualFriendsHandler handles GET requests for the living, brown eyed friends
// that two people have in common
func NewMutualFriendsHandler(app paranuara.FriendFinder) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result, err := app.MutualFriends(ctx, pathParam(r, "first"), pathParam(r, "second"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, result)
	})
}

func NewFavouriteFoodsHandler(app paranuara.FoodClassifier) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		breakdown, err := app.FavouriteFoods(ctx, pathParam(r, "name"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, breakdown)
	})
}
