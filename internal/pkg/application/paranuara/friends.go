package paranuara

import (
	"context"
	"log/slog"

	"github.com/diwise/paranuara/pkg/paranuara/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const mutualFriendEyeColor string = "brown"

// MutualFriends finds the friends two people have in common, matched by friend index.
// Only living friends with brown eyes are returned, ordered as they appear among the
// first person's friends.
func (a *paranuaraApp) MutualFriends(ctx context.Context, firstName, secondName string) (*types.MutualFriends, error) {
	var err error

	ctx, span := tracer.Start(ctx, "mutual-friends",
		trace.WithAttributes(
			attribute.String(TraceAttributePersonName+"-1", firstName),
			attribute.String(TraceAttributePersonName+"-2", secondName),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	first, err := a.registry.FindPersonByName(firstName)
	if err != nil {
		return nil, err
	}

	second, err := a.registry.FindPersonByName(secondName)
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)

	friendsOfSecond := make(map[int]struct{}, len(second.Friends))
	for _, f := range second.Friends {
		friendsOfSecond[f.Index] = struct{}{}
	}

	seen := map[int]struct{}{
		first.Index:  {},
		second.Index: {},
	}

	mutual := make([]types.Person, 0)

	for _, f := range first.Friends {
		if _, ok := friendsOfSecond[f.Index]; !ok {
			continue
		}

		if _, ok := seen[f.Index]; ok {
			continue
		}
		seen[f.Index] = struct{}{}

		friend, lookupErr := a.registry.FindPersonByID(f.Index)
		if lookupErr != nil {
			log.Warn("skipping unknown friend", slog.Int("index", f.Index), "err", lookupErr.Error())
			continue
		}

		if friend.EyeColor == mutualFriendEyeColor && !friend.HasDied {
			mutual = append(mutual, friend)
		}
	}

	return &types.MutualFriends{
		First:   first.Contact(),
		Second:  second.Contact(),
		Friends: mutual,
	}, nil
}
