package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/paranuara/internal/pkg/application/datastore"
	"github.com/diwise/paranuara/internal/pkg/application/paranuara"
	"github.com/diwise/paranuara/internal/pkg/presentation/api/auth"
	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestListCompanies(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/companies")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	companies := []types.Company{}
	is.NoErr(json.Unmarshal([]byte(body), &companies))
	is.Equal(len(companies), 2)
	is.True(strings.Contains(body, `"company":"Bluegrape"`))
}

func TestListPeople(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people")
	is.Equal(resp.StatusCode, http.StatusOK)

	people := []types.Person{}
	is.NoErr(json.Unmarshal([]byte(body), &people))
	is.Equal(len(people), 6)
	is.Equal(people[0].Name, "Collins Berger")
}

func TestListEmployees(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	for _, path := range []string{"/people/company/bluegrape/", "/people/company/bluegrape"} {
		resp, body := newTestRequest(is, ts, http.MethodGet, path)
		is.Equal(resp.StatusCode, http.StatusOK)

		employees := []types.Person{}
		is.NoErr(json.Unmarshal([]byte(body), &employees))
		is.Equal(len(employees), 1)
		is.Equal(employees[0].Name, "Collins Berger")
	}
}

func TestListEmployeesOfCompanyWithoutEmployees(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/company/Zentix/")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "[]")
}

func TestListEmployeesOfUnknownCompany(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/company/Acme/")
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(body, `{"message":"company Acme doesn't exist"}`)
}

func TestMutualFriends(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/employee1/Collins%20Berger/employee2/shelby%20duke")
	is.Equal(resp.StatusCode, http.StatusOK)

	result := struct {
		Employees1 types.ContactSummary `json:"employees1"`
		Employees2 types.ContactSummary `json:"employees2"`
		Friends    []types.Person       `json:"friends"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &result))

	is.Equal(result.Employees1.Name, "Collins Berger")
	is.Equal(result.Employees1.Phone, "+1 (800) 555-0101")
	is.Equal(result.Employees2.Name, "Shelby Duke")
	is.Equal(len(result.Friends), 1)
	is.Equal(result.Friends[0].Index, 12)
}

func TestMutualFriendsWithUnknownPerson(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/employee1/Collins%20Berger/employee2/nobody")
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(body, `{"message":"employee nobody doesn't exist"}`)
}

func TestFavouriteFoods(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/collins%20berger/foods")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"username":"Collins Berger","age":33,"fruits":["apple","banana"],"vegetables":["beetroot","carrot"]}`)
}

func TestFavouriteFoodsForUnknownPerson(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/people/nobody/foods")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestRetrievePerson(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/SHELBY%20DUKE")
	is.Equal(resp.StatusCode, http.StatusOK)

	p := types.Person{}
	is.NoErr(json.Unmarshal([]byte(body), &p))
	is.Equal(p.Index, 2)
}

func TestRetrievePersonWithPercentInName(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/Fifty%2541")
	is.Equal(resp.StatusCode, http.StatusOK) // the name should be decoded exactly once

	p := types.Person{}
	is.NoErr(json.Unmarshal([]byte(body), &p))
	is.Equal(p.Name, "Fifty%41")
}

func TestRetrievePersonWithSlashInName(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/AC%2FDC")
	is.Equal(resp.StatusCode, http.StatusOK)

	p := types.Person{}
	is.NoErr(json.Unmarshal([]byte(body), &p))
	is.Equal(p.Index, 21)
}

func TestRetrievePersonWithoutGUIDOmitsIt(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/index/12")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(!strings.Contains(body, `"guid"`)) // no nil uuid for people without a guid
}

func TestRetrievePersonByIndex(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/index/12")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"name":"Brown Alive"`))

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/people/index/twelve")
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/people/index/99")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestRetrieveEmployer(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/people/Collins%20Berger/company")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"index":1,"company":"Bluegrape"}`)

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/people/Shelby%20Duke/company")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestRetrieveCompany(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/companies/zentix")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"index":0,"company":"Zentix"}`)
}

func TestWritesAreForbidden(t *testing.T) {
	is, ts := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/people")
	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(body, `{"message":"access denied"}`)
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server) {
	is := is.New(t)

	store, err := datastore.New(testPeople(), testCompanies())
	is.NoErr(err)

	r := chi.NewRouter()
	err = RegisterHandlers(context.Background(), r, strings.NewReader(auth.DefaultPolicy), paranuara.New(store))
	is.NoErr(err)

	return is, httptest.NewServer(r)
}

func testCompanies() []types.Company {
	return []types.Company{
		{Index: 0, Name: "Zentix"},
		{Index: 1, Name: "Bluegrape"},
	}
}

func testPeople() []types.Person {
	bluegrape := 1

	return []types.Person{
		{
			Index: 1, Name: "Collins Berger", Age: 33, EyeColor: "brown",
			Phone: "+1 (800) 555-0101", CompanyID: &bluegrape,
			Friends:       []types.Friend{{Index: 2}, {Index: 12}},
			FavouriteFood: []string{"apple", "beetroot", "banana", "carrot"},
		},
		{
			Index: 2, Name: "Shelby Duke", Age: 41, EyeColor: "blue",
			Friends: []types.Friend{{Index: 1}, {Index: 12}},
		},
		{Index: 12, Name: "Brown Alive", Age: 30, EyeColor: "brown"},
		{Index: 13, Name: "Brown Dead", Age: 70, EyeColor: "brown", HasDied: true},
		{Index: 20, Name: "Fifty%41", Age: 50, EyeColor: "green"},
		{Index: 21, Name: "AC/DC", Age: 51, EyeColor: "green"},
	}
}
