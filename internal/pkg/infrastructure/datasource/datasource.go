package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// Source provides the raw JSON document of a single collection
type Source interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

type Dataset struct {
	People    []types.Person
	Companies []types.Company
}

// Load reads the people and companies documents in parallel and decodes them into
// typed collections. Structurally invalid documents fail the whole load.
func Load(ctx context.Context, people, companies Source) (*Dataset, error) {
	ds := &Dataset{}
	v := validator.New()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := loadCollection[types.Person](gCtx, people, peopleSchema, v)
		if err != nil {
			return fmt.Errorf("failed to load people: %w", err)
		}
		ds.People = p
		return nil
	})

	g.Go(func() error {
		c, err := loadCollection[types.Company](gCtx, companies, companiesSchema, v)
		if err != nil {
			return fmt.Errorf("failed to load companies: %w", err)
		}
		ds.Companies = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Info("datasets loaded",
		"people", len(ds.People),
		"companies", len(ds.Companies),
	)

	return ds, nil
}

func loadCollection[T any](ctx context.Context, src Source, schema string, v *validator.Validate) ([]T, error) {
	data, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	return decodeCollection[T](src.Name(), data, schema, v)
}

func decodeCollection[T any](name string, data []byte, schema string, v *validator.Validate) ([]T, error) {
	err := validateAgainstSchema(schema, data)
	if err != nil {
		return nil, fmt.Errorf("%s does not match the expected schema: %w", name, err)
	}

	items := make([]T, 0)

	err = json.NewDecoder(bytes.NewReader(data)).Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	for i := range items {
		err = v.Struct(&items[i])
		if err != nil {
			return nil, fmt.Errorf("invalid record %d in %s: %s", i, name, describeValidationError(err))
		}
	}

	return items, nil
}

func describeValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("%s - %s", ve.Namespace(), ve.Tag())
		}
	}
	return err.Error()
}
