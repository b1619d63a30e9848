package songs

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/melodicname/api/internal/platform/auth"
	applog "github.com/melodicname/api/internal/platform/logging"
	"github.com/melodicname/api/internal/platform/pagination"
	"github.com/melodicname/api/internal/service/photo"
	songsvc "github.com/melodicname/api/internal/service/songrequest"
)

const cursorType = "song"

var bearerSecurity = []map[string][]string{
	{"bearerAuth": {}},
}

// Register wires song request routes into the provided API router.
func Register(api huma.API, svc songsvc.Service, photos photo.Store, prefix string) {
	registerGenres(api)
	registerSubmit(api, svc, photos)
	registerList(api, svc, prefix)
	registerSummary(api, svc)
	registerReceived(api, svc)
	registerEvents(api, svc)
}

func registerGenres(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-genres",
		Method:      http.MethodGet,
		Path:        "/genres",
		Summary:     "List available genres",
		Description: "Returns the fixed genre set a song request must choose from.",
		Tags:        []string{"Songs"},
	}, func(_ context.Context, _ *struct{}) (*GenresOutput, error) {
		return &GenresOutput{
			Body: GenresData{Genres: songsvc.Genres},
		}, nil
	})
}

func registerSubmit(api huma.API, svc songsvc.Service, photos photo.Store) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-song",
		Method:        http.MethodPost,
		Path:          "/songs",
		Summary:       "Submit a song request",
		Description:   "Creates a song request, storing the optional photo first. Non-premium users spend one free song per submission.",
		Tags:          []string{"Songs"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerSecurity,
	}, func(ctx context.Context, input *SongSubmitInput) (*SongSubmitOutput, error) {
		user := auth.UserFromContext(ctx)
		form := input.RawBody.Data()

		if err := validateForm(form); err != nil {
			return nil, err
		}

		photoURL := ""
		if form.Photo.IsSet {
			publicURL, err := photos.Upload(ctx, form.Photo.ContentType, form.Photo)
			if err != nil {
				if errors.Is(err, photo.ErrUnsupportedType) {
					return nil, huma.Error422UnprocessableEntity("unsupported photo type")
				}
				applog.LogError(ctx, "photo upload failed", err)
				return nil, huma.Error502BadGateway("photo upload failed")
			}
			photoURL = publicURL
		}

		req, err := svc.Submit(ctx, user.UID, songsvc.SubmitParams{
			ArtistName:      strings.TrimSpace(form.ArtistName),
			Recipient:       strings.TrimSpace(form.Recipient),
			Genre:           form.Genre,
			SongName:        strings.TrimSpace(form.SongName),
			Whatsapp:        strings.TrimSpace(form.Whatsapp),
			Email:           strings.ToLower(strings.TrimSpace(form.Email)),
			PhotoURL:        photoURL,
			AdditionalNotes: strings.TrimSpace(form.AdditionalNotes),
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &SongSubmitOutput{
			Location: "/v1/songs/" + req.ID,
			Body:     toHTTPSong(req),
		}, nil
	})
}

func registerList(api huma.API, svc songsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-songs",
		Method:      http.MethodGet,
		Path:        "/songs",
		Summary:     "List song requests",
		Description: "Returns the authenticated user's song requests, newest first, with cursor-based pagination.",
		Tags:        []string{"Songs"},
		Security:    bearerSecurity,
	}, func(ctx context.Context, input *SongsListInput) (*SongsListOutput, error) {
		user := auth.UserFromContext(ctx)

		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		requests, err := svc.List(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		result := pagination.Paginate(
			requests,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(r *songsvc.SongRequest) string { return r.ID },
			prefix+"/songs",
			url.Values{},
		)

		page := make([]Song, 0, len(result.Items))
		for _, r := range result.Items {
			page = append(page, toHTTPSong(r))
		}
		return &SongsListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Songs: page,
				Total: result.Total,
			},
		}, nil
	})
}

func registerSummary(api huma.API, svc songsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "song-summary",
		Method:      http.MethodGet,
		Path:        "/songs/summary",
		Summary:     "Summarize song requests",
		Description: "Returns total, completed and pending counts plus the most frequent genre.",
		Tags:        []string{"Songs"},
		Security:    bearerSecurity,
	}, func(ctx context.Context, _ *struct{}) (*SongsSummaryOutput, error) {
		user := auth.UserFromContext(ctx)

		requests, err := svc.List(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		s := songsvc.Summarize(requests)
		return &SongsSummaryOutput{
			Body: SummaryData{
				Total:         s.Total,
				Completed:     s.Completed,
				Pending:       s.Pending,
				FavoriteGenre: s.FavoriteGenre,
			},
		}, nil
	})
}

func registerReceived(api huma.API, svc songsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "mark-song-received",
		Method:      http.MethodPost,
		Path:        "/songs/{id}/received",
		Summary:     "Mark a song request as received",
		Description: "Transitions the request to completed. Marking an already-completed request succeeds without change.",
		Tags:        []string{"Songs"},
		Security:    bearerSecurity,
	}, func(ctx context.Context, input *SongReceivedInput) (*SongReceivedOutput, error) {
		user := auth.UserFromContext(ctx)

		req, err := svc.MarkReceived(ctx, user.UID, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &SongReceivedOutput{
			Body: toHTTPSong(req),
		}, nil
	})
}

func registerEvents(api huma.API, svc songsvc.Service) {
	sse.Register(api, huma.Operation{
		OperationID: "song-events",
		Method:      http.MethodGet,
		Path:        "/songs/events",
		Summary:     "Stream song request changes",
		Description: "Server-sent events for the authenticated user's song requests. On any event, re-fetch the list and profile.",
		Tags:        []string{"Songs"},
		Security:    bearerSecurity,
	}, map[string]any{
		"change": ChangeEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		user := auth.UserFromContext(ctx)

		events, err := svc.Watch(ctx, user.UID)
		if err != nil {
			applog.LogError(ctx, "change feed subscription failed", err)
			return
		}
		for ev := range events {
			if err := send.Data(ChangeEvent{
				Type:      string(ev.Type),
				RequestID: ev.RequestID,
			}); err != nil {
				return
			}
		}
	})
}

// validateForm enforces the required submission fields. The genre check
// runs first so a missing selection is reported even when other fields are
// absent as well.
func validateForm(form *SongForm) error {
	if form.Genre == "" {
		return huma.Error422UnprocessableEntity("a genre must be selected")
	}
	if !songsvc.ValidGenre(form.Genre) {
		return huma.Error422UnprocessableEntity("unknown genre")
	}
	required := map[string]string{
		"artistName": form.ArtistName,
		"recipient":  form.Recipient,
		"songName":   form.SongName,
		"whatsapp":   form.Whatsapp,
		"email":      form.Email,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return huma.Error422UnprocessableEntity(field + " is required")
		}
	}
	return nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, songsvc.ErrQuotaExhausted):
		return huma.NewError(http.StatusPaymentRequired, "no free songs remaining, upgrade to continue")
	case errors.Is(err, songsvc.ErrProfileNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, songsvc.ErrNotFound):
		return huma.Error404NotFound("song request not found")
	case errors.Is(err, songsvc.ErrInvalidGenre):
		return huma.Error422UnprocessableEntity("unknown genre")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
