package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mailru/mapstructure"
	"github.com/pkg/errors"

	"github.com/mailru/chrono/pkg/chrono"
	"github.com/mailru/chrono/pkg/serializer/errs"
)

var (
	instantType      = reflect.TypeOf(chrono.Instant{})
	localDateType    = reflect.TypeOf(chrono.LocalDate{})
	localTimeType    = reflect.TypeOf(chrono.LocalTime{})
	instantRangeType = reflect.TypeOf(chrono.InstantRange{})
)

// ChronoDecodeHook revives chrono value types from their canonical ISO-8601
// strings while mapstructure walks a decoded document.
func ChronoDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	switch to {
	case instantType:
		v, err := chrono.ParseInstant(s)
		if err != nil {
			return nil, errors.Wrap(err, "error decode instant")
		}

		return v, nil
	case localDateType:
		v, err := chrono.ParseLocalDate(s)
		if err != nil {
			return nil, errors.Wrap(err, "error decode local date")
		}

		return v, nil
	case localTimeType:
		v, err := chrono.ParseLocalTime(s)
		if err != nil {
			return nil, errors.Wrap(err, "error decode local time")
		}

		return v, nil
	case instantRangeType:
		v, err := chrono.ParseInstantRange(s)
		if err != nil {
			return nil, errors.Wrap(err, "error decode instant range")
		}

		return v, nil
	}

	return data, nil
}

// MapstructureUnmarshal decodes a JSON document into v through mapstructure
// with the chrono hook installed, so ISO strings land in chrono-typed fields.
func MapstructureUnmarshal(data string, v any) error {
	m := make(map[string]interface{})

	err := json.Unmarshal([]byte(data), &m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	config := &mapstructure.DecoderConfig{
		// Возвращаем ошибку если в документе остались неиспользованные поля
		ErrorUnused: true,
		// Поля целевой структуры сбрасываются до default value перед декодированием
		ZeroFields: true,
		DecodeHook: ChronoDecodeHook,
		Result:     v,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureDecode, err)
	}

	return nil
}

// MapstructureMarshal encodes v into a JSON document, stringifying chrono
// values through their canonical forms.
func MapstructureMarshal(v any) (string, error) {
	m := make(map[string]interface{})

	err := mapstructure.Decode(v, &m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMapstructureEncode, err)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(b), nil
}
