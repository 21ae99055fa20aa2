package paranuara

import (
	"context"

	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var vegetables = map[string]struct{}{
	"beetroot": {},
	"lettuce":  {},
	"cucumber": {},
	"carrot":   {},
	"celery":   {},
}

// IsVegetable reports whether a food is one of the known vegetables. Anything else is a fruit.
func IsVegetable(food string) bool {
	_, ok := vegetables[food]
	return ok
}

func (a *paranuaraApp) FavouriteFoods(ctx context.Context, personName string) (*types.FoodBreakdown, error) {
	var err error

	_, span := tracer.Start(ctx, "favourite-foods",
		trace.WithAttributes(attribute.String(TraceAttributePersonName, personName)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	person, err := a.registry.FindPersonByName(personName)
	if err != nil {
		return nil, err
	}

	breakdown := &types.FoodBreakdown{
		Username:   person.Name,
		Age:        person.Age,
		Fruits:     make([]string, 0, len(person.FavouriteFood)),
		Vegetables: make([]string, 0),
	}

	for _, food := range person.FavouriteFood {
		if IsVegetable(food) {
			breakdown.Vegetables = append(breakdown.Vegetables, food)
		} else {
			breakdown.Fruits = append(breakdown.Fruits, food)
		}
	}

	return breakdown, nil
}
