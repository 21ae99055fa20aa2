package paranuara

import (
	"context"

	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type EmployeeLister interface {
	EmployeesOf(ctx context.Context, companyName string) ([]types.Person, error)
}

type FriendFinder interface {
	MutualFriends(ctx context.Context, firstName, secondName string) (*types.MutualFriends, error)
}

type FoodClassifier interface {
	FavouriteFoods(ctx context.Context, personName string) (*types.FoodBreakdown, error)
}

type EntityRetriever interface {
	Person(ctx context.Context, name string) (types.Person, error)
	PersonByIndex(ctx context.Context, index int) (types.Person, error)
	Company(ctx context.Context, name string) (types.Company, error)
	Employer(ctx context.Context, personName string) (types.Company, error)
	People(ctx context.Context) []types.Person
	Companies(ctx context.Context) []types.Company
}

// App answers every query the paranuara api exposes
type App interface {
	EmployeeLister
	FriendFinder
	FoodClassifier
	EntityRetriever
}

// Registry is the read only lookup surface of the loaded datasets
type Registry interface {
	FindCompanyByName(name string) (types.Company, error)
	FindCompanyByID(index int) (types.Company, error)
	FindPersonByName(name string) (types.Person, error)
	FindPersonByID(index int) (types.Person, error)
	Companies() []types.Company
	People() []types.Person
}

const (
	TraceAttributeCompanyName string = "company-name"
	TraceAttributePersonName  string = "person-name"
	TraceAttributePersonIndex string = "person-index"
)

var tracer = otel.Tracer("paranuara/app")

type paranuaraApp struct {
	registry Registry
}

func New(registry Registry) App {
	return &paranuaraApp{
		registry: registry,
	}
}

func (a *paranuaraApp) Person(ctx context.Context, name string) (types.Person, error) {
	var err error

	_, span := tracer.Start(ctx, "retrieve-person",
		trace.WithAttributes(attribute.String(TraceAttributePersonName, name)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p, err := a.registry.FindPersonByName(name)
	return p, err
}

func (a *paranuaraApp) PersonByIndex(ctx context.Context, index int) (types.Person, error) {
	var err error

	_, span := tracer.Start(ctx, "retrieve-person-by-index",
		trace.WithAttributes(attribute.Int(TraceAttributePersonIndex, index)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p, err := a.registry.FindPersonByID(index)
	return p, err
}

func (a *paranuaraApp) Company(ctx context.Context, name string) (types.Company, error) {
	var err error

	_, span := tracer.Start(ctx, "retrieve-company",
		trace.WithAttributes(attribute.String(TraceAttributeCompanyName, name)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	c, err := a.registry.FindCompanyByName(name)
	return c, err
}

func (a *paranuaraApp) People(ctx context.Context) []types.Person {
	return a.registry.People()
}

func (a *paranuaraApp) Companies(ctx context.Context) []types.Company {
	return a.registry.Companies()
}
