package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultPolicyAllowsReads(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(DefaultPolicy))
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/people/company/bluegrape/", nil)
	is.NoErr(a.CheckAccess(context.Background(), req))
}

func TestDefaultPolicyDeniesWrites(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(DefaultPolicy))
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodDelete, "/people", nil)
	is.True(a.CheckAccess(context.Background(), req) != nil) // only reads are allowed
}

func TestPolicyCanRequireToken(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(tokenPolicy))
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	is.True(a.CheckAccess(context.Background(), req) != nil) // no token should be denied

	req = httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Add("Authorization", "Bearer s3cr3t")
	is.NoErr(a.CheckAccess(context.Background(), req))
}

func TestPolicyCanInspectPath(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(pathPolicy))
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	is.NoErr(a.CheckAccess(context.Background(), req))

	req = httptest.NewRequest(http.MethodGet, "/people", nil)
	is.True(a.CheckAccess(context.Background(), req) != nil) // only companies are public
}

func TestInvalidPolicyFails(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthorizer(context.Background(), strings.NewReader("this is not rego"))
	is.True(err != nil) // should fail to compile
}

const tokenPolicy string = `
package paranuara.authz

default allow := false

allow = response {
    input.token == "s3cr3t"
    response := {}
}
`

const pathPolicy string = `
package paranuara.authz

default allow := false

allow = response {
    input.path[0] == "companies"
    response := {}
}
`
