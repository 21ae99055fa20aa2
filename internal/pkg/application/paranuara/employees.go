package paranuara

import (
	"context"
	"fmt"

	"github.com/diwise/paranuara/pkg/paranuara/errors"
	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EmployeesOf returns everyone employed by the named company, in the order the people
// were loaded. A company index of 0 is as valid as any other.
func (a *paranuaraApp) EmployeesOf(ctx context.Context, companyName string) ([]types.Person, error) {
	var err error

	_, span := tracer.Start(ctx, "employees-of",
		trace.WithAttributes(attribute.String(TraceAttributeCompanyName, companyName)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	company, err := a.registry.FindCompanyByName(companyName)
	if err != nil {
		return nil, err
	}

	employees := make([]types.Person, 0)

	for _, p := range a.registry.People() {
		if p.WorksFor(company.Index) {
			employees = append(employees, p)
		}
	}

	return employees, nil
}

// Employer returns the company the named person works for
func (a *paranuaraApp) Employer(ctx context.Context, personName string) (types.Company, error) {
	var err error

	_, span := tracer.Start(ctx, "employer-of",
		trace.WithAttributes(attribute.String(TraceAttributePersonName, personName)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	person, err := a.registry.FindPersonByName(personName)
	if err != nil {
		return types.Company{}, err
	}

	if person.CompanyID == nil {
		err = errors.NewNotFoundError(fmt.Sprintf("employee %s has no employer", person.Name))
		return types.Company{}, err
	}

	company, err := a.registry.FindCompanyByID(*person.CompanyID)
	if err != nil {
		err = errors.NewNotFoundError(fmt.Sprintf("employer %d of %s doesn't exist", *person.CompanyID, person.Name))
		return types.Company{}, err
	}

	return company, nil
}
