package movies

import (
	"context"
	"regexp"

	"movievault/proj/internal/domain/fields"
	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/lib/validator"
	"movievault/proj/internal/queue"
)

// The date rule is purely lexical, no calendar validity is checked.
var releaseDatePattern = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)

// movieRequestSchema declares every field rule of the creation contract.
// Fields are evaluated independently so a single bad request reports all
// of its violations at once.
var movieRequestSchema = validator.Schema{
	{Name: "name", Rules: []validator.Rule{validator.NotBlank, validator.IsString}},
	{Name: "release_date", Rules: []validator.Rule{validator.NotBlank, validator.IsString, validator.Matches(releaseDatePattern)}},
	{Name: "director", Rules: []validator.Rule{validator.NotBlank, validator.IsString}},
	{Name: "casts", Rules: []validator.Rule{validator.IsArray, validator.MinCount(1), validator.Each(validator.NotBlank, validator.IsString)}},
	{Name: "ratings", Sub: validator.Schema{
		{Name: "imdb", Optional: true, Rules: []validator.Rule{validator.IsFloat}},
		{Name: "rotten_tomatto", Optional: true, Rules: []validator.Rule{validator.IsFloat}},
	}},
}

// ValidateRequest runs the creation schema against a raw request and
// returns the aggregated violations, nil when the request is valid.
// It is a pure function: no state, same input always gives the same map.
func ValidateRequest(req map[string]any) map[string][]string {
	return movieRequestSchema.Validate(req)
}

// Create builds and persists the whole movie aggregate for the owner and
// schedules the creation notification. Validation failure surfaces as a
// *validator.ValidationError and nothing is constructed or stored.
// The notification is enqueued strictly after the transaction commits and
// is never waited on.
func (s *MovieService) Create(ctx context.Context, owner *models.User, req map[string]any) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "user_id", owner.ID)
	if violations := ValidateRequest(req); violations != nil {
		log.Info("movie request failed validation", "fields", len(violations))
		return nil, &validator.ValidationError{Fields: violations}
	}
	movie, err := s.storage.Insert(ctx, buildAggregate(owner, req))
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	event := queue.MovieCreatedEvent{UserID: owner.ID, MovieID: movie.ID}
	s.taskExecutor.Add(func() {
		if err := s.dispatcher.PublishMovieCreated(context.Background(), event); err != nil {
			log.Error("failed to publish movie created event", "errMsg", err.Error(), "movie_id", event.MovieID)
		}
	})
	log.Info("movie created", "movie_id", movie.ID)
	return movie, nil
}

// buildAggregate assumes a validated request: values are copied through
// verbatim, with no trimming or normalization.
func buildAggregate(owner *models.User, req map[string]any) *models.Movie {
	movie := &models.Movie{
		Name:        req["name"].(string),
		Director:    req["director"].(string),
		ReleaseDate: req["release_date"].(string),
		UserID:      owner.ID,
	}
	rawCasts := req["casts"].([]any)
	movie.Casts = make(fields.CastList, 0, len(rawCasts))
	for _, name := range rawCasts {
		movie.Casts = append(movie.Casts, fields.Cast{Name: name.(string)})
	}
	ratings := req["ratings"].(map[string]any)
	movie.Rating = models.MovieRating{
		Imdb:          scoreOrNil(ratings["imdb"]),
		RottenTomatto: scoreOrNil(ratings["rotten_tomatto"]),
	}
	return movie
}

// scoreOrNil maps both an absent key and an explicit null to "no score".
func scoreOrNil(value any) *float64 {
	if score, ok := value.(float64); ok {
		return &score
	}
	return nil
}
