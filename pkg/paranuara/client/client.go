package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diwise/paranuara/pkg/paranuara/errors"
	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type ParanuaraClient interface {
	Companies(ctx context.Context) ([]types.Company, error)
	Company(ctx context.Context, name string) (*types.Company, error)
	People(ctx context.Context) ([]types.Person, error)
	Person(ctx context.Context, name string) (*types.Person, error)
	PersonByIndex(ctx context.Context, index int) (*types.Person, error)
	Employer(ctx context.Context, personName string) (*types.Company, error)
	EmployeesOf(ctx context.Context, companyName string) ([]types.Person, error)
	MutualFriends(ctx context.Context, firstName, secondName string) (*types.MutualFriends, error)
	FavouriteFoods(ctx context.Context, personName string) (*types.FoodBreakdown, error)
}

func Token(token string) func(*pClient) {
	return func(c *pClient) {
		c.token = token
	}
}

func NewParanuaraClient(baseURL string, options ...func(*pClient)) ParanuaraClient {
	c := &pClient{
		baseURL: baseURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

var tracer = otel.Tracer("paranuara-client")

type pClient struct {
	baseURL    string
	token      string
	httpClient http.Client
}

func (c *pClient) Companies(ctx context.Context) ([]types.Company, error) {
	companies := []types.Company{}
	err := c.get(ctx, "list-companies", "/companies", &companies)
	return companies, err
}

func (c *pClient) Company(ctx context.Context, name string) (*types.Company, error) {
	company := &types.Company{}
	err := c.get(ctx, "retrieve-company", "/companies/"+url.PathEscape(name), company)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (c *pClient) People(ctx context.Context) ([]types.Person, error) {
	people := []types.Person{}
	err := c.get(ctx, "list-people", "/people", &people)
	return people, err
}

func (c *pClient) Person(ctx context.Context, name string) (*types.Person, error) {
	person := &types.Person{}
	err := c.get(ctx, "retrieve-person", "/people/"+url.PathEscape(name), person)
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (c *pClient) PersonByIndex(ctx context.Context, index int) (*types.Person, error) {
	person := &types.Person{}
	err := c.get(ctx, "retrieve-person-by-index", "/people/index/"+strconv.Itoa(index), person)
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (c *pClient) Employer(ctx context.Context, personName string) (*types.Company, error) {
	company := &types.Company{}
	err := c.get(ctx, "retrieve-employer", "/people/"+url.PathEscape(personName)+"/company", company)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (c *pClient) EmployeesOf(ctx context.Context, companyName string) ([]types.Person, error) {
	employees := []types.Person{}
	err := c.get(ctx, "employees-of", "/people/company/"+url.PathEscape(companyName)+"/", &employees)
	return employees, err
}

func (c *pClient) MutualFriends(ctx context.Context, firstName, secondName string) (*types.MutualFriends, error) {
	result := &types.MutualFriends{}
	err := c.get(ctx, "mutual-friends",
		"/people/employee1/"+url.PathEscape(firstName)+"/employee2/"+url.PathEscape(secondName),
		result,
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *pClient) FavouriteFoods(ctx context.Context, personName string) (*types.FoodBreakdown, error) {
	breakdown := &types.FoodBreakdown{}
	err := c.get(ctx, "favourite-foods", "/people/"+url.PathEscape(personName)+"/foods", breakdown)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (c *pClient) get(ctx context.Context, operation, path string, result any) error {
	var err error

	ctx, span := tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
		return err
	}

	req.Header.Add("Accept", "application/json")

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromResponse(resp.StatusCode, respBody)
		return err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return err
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response: %s (%w)", err.Error(), errors.ErrBadResponse)
		return err
	}

	return nil
}
