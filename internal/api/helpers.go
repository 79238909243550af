package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domainerrors "notes-api/internal/errors"
	"notes-api/internal/service"
)

const maxBodyBytes = 1 << 20

// parseID reads the {id} path parameter.
func parseID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, domainerrors.ValidationFields(domainerrors.FieldError{
			Field:   "id",
			Message: "must be a non-negative integer",
		})
	}
	return uint(id), nil
}

// parsePage reads offset and limit from the query string, applying the
// listing defaults. Range checks are left to the service.
func parsePage(r *http.Request) (service.Page, error) {
	page := service.Page{Offset: 0, Limit: service.DefaultLimit}
	var fields []domainerrors.FieldError

	query := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"offset", &page.Offset},
		{"limit", &page.Limit},
	} {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, domainerrors.FieldError{Field: p.name, Message: "must be an integer"})
			continue
		}
		*p.dst = v
	}

	if len(fields) > 0 {
		return page, domainerrors.ValidationFields(fields...)
	}
	return page, nil
}

// decodeJSON decodes the request body into dst. Malformed bodies and
// type mismatches are reported as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return bodyError("is required")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domainerrors.ValidationFields(domainerrors.FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return bodyError("must be valid JSON")
	case errors.As(err, &maxBytesErr):
		return bodyError(fmt.Sprintf("must not exceed %d bytes", maxBodyBytes))
	default:
		return bodyError("must be a JSON object")
	}
}

func bodyError(msg string) error {
	return domainerrors.ValidationFields(domainerrors.FieldError{Field: "body", Message: msg})
}
