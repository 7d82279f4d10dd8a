package feed

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// jobRecord mirrors one element of the jobs resource. Pointer fields let
// validation tell an absent field from a zero value such as false or [].
type jobRecord struct {
	ID        *int64    `json:"id" validate:"required"`
	Company   *string   `json:"company" validate:"required"`
	Logo      *string   `json:"logo" validate:"required"`
	New       *bool     `json:"new" validate:"required"`
	Featured  *bool     `json:"featured" validate:"required"`
	Position  *string   `json:"position" validate:"required"`
	Role      *string   `json:"role" validate:"required"`
	Level     *string   `json:"level" validate:"required"`
	PostedAt  *string   `json:"postedAt" validate:"required"`
	Contract  *string   `json:"contract" validate:"required"`
	Location  *string   `json:"location" validate:"required"`
	Languages *[]string `json:"languages" validate:"required"`
	Tools     *[]string `json:"tools" validate:"required"`
}

func (r jobRecord) toDomain() domain.Job {
	return domain.Job{
		ID:        *r.ID,
		Company:   *r.Company,
		Logo:      *r.Logo,
		New:       *r.New,
		Featured:  *r.Featured,
		Position:  *r.Position,
		Role:      *r.Role,
		Level:     *r.Level,
		PostedAt:  *r.PostedAt,
		Contract:  *r.Contract,
		Location:  *r.Location,
		Languages: *r.Languages,
		Tools:     *r.Tools,
	}
}

type decoder struct {
	validate *validator.Validate
}

func newDecoder() *decoder {
	return &decoder{validate: validation.New()}
}

// decode parses a whole job collection. Any malformed record rejects the
// entire body.
func (d *decoder) decode(body []byte) ([]domain.Job, error) {
	var records []*jobRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceDecode, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of jobs", domain.ErrSourceDecode)
	}

	jobs := make([]domain.Job, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is null", domain.ErrSourceDecode, i)
		}
		if err := d.validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", domain.ErrSourceDecode, i,
				strings.Join(validation.FormatValidationErrors(err), "; "))
		}
		jobs = append(jobs, rec.toDomain())
	}
	return jobs, nil
}
