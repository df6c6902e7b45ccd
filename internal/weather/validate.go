package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeDailyFeed parses and structurally validates a daily feed payload.
func DecodeDailyFeed(data []byte) (*DailyFeed, error) {
	var feed DailyFeed
	if err := decodeJSON(data, &feed); err != nil {
		return nil, fmt.Errorf("%w: daily feed: %v", ErrMalformedPayload, err)
	}
	if err := validate.Struct(&feed); err != nil {
		return nil, fmt.Errorf("%w: daily feed: %v", ErrMalformedPayload, err)
	}
	return &feed, nil
}

// DecodeWeeklyFeed parses and structurally validates a weekly feed payload. Area
// records are only checked to be JSON objects; their shape is interpreted later.
func DecodeWeeklyFeed(data []byte) (WeeklyFeed, error) {
	var feed WeeklyFeed
	if err := decodeJSON(data, &feed); err != nil {
		return nil, fmt.Errorf("%w: weekly feed: %v", ErrMalformedPayload, err)
	}
	if feed == nil {
		return nil, fmt.Errorf("%w: weekly feed: expected an array of sections", ErrMalformedPayload)
	}
	for i := range feed {
		if err := validate.Struct(&feed[i]); err != nil {
			return nil, fmt.Errorf("%w: weekly feed section %d: %v", ErrMalformedPayload, i, err)
		}
	}
	return feed, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON document")
	}
	return nil
}
