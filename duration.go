package fireblocks

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// DefaultPollTimeout is the poll timeout applied when signer.poll_timeout is
// entirely absent from the merged sources.
func DefaultPollTimeout() time.Duration { return 180 * time.Second }

// DefaultPollInterval is the poll interval applied when signer.poll_interval
// is entirely absent from the merged sources.
func DefaultPollInterval() time.Duration { return 5 * time.Second }

// applyDurationDefaults normalizes the signer duration keys in the merged
// tree: an absent key receives its named default, a present key is decoded
// through the seconds codec. A key that is present but malformed fails here
// with an InvalidDurationError; it is never silently defaulted.
func applyDurationDefaults(tree map[string]any) error {
	signer, ok := tree["signer"].(map[string]any)
	if !ok {
		return nil
	}
	defaults := map[string]time.Duration{
		"poll_timeout":  DefaultPollTimeout(),
		"poll_interval": DefaultPollInterval(),
	}
	for key, def := range defaults {
		raw, ok := signer[key]
		if !ok {
			signer[key] = def
			continue
		}
		d, err := decodeSeconds(raw)
		if err != nil {
			return err
		}
		signer[key] = d
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// decodeSecondsHook routes every value destined for a time.Duration field
// through decodeSeconds, so configuration durations are always counts of
// whole seconds rather than nanoseconds.
func decodeSecondsHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType || from == durationType {
		return data, nil
	}
	return decodeSeconds(data)
}

// decodeSeconds converts a configuration value into a duration. Accepted
// representations are a non-negative integer and a decimal string, both
// counted in whole seconds. Anything else fails with an
// InvalidDurationError naming the offending value.
func decodeSeconds(v any) (time.Duration, error) {
	switch value := v.(type) {
	case time.Duration:
		return value, nil
	case string:
		secs, err := strconv.ParseUint(value, 10, 63)
		if err != nil {
			return 0, &InvalidDurationError{Value: value}
		}
		return time.Duration(secs) * time.Second, nil
	case int:
		return secondsFromInt(int64(value))
	case int32:
		return secondsFromInt(int64(value))
	case int64:
		return secondsFromInt(value)
	case uint:
		return time.Duration(value) * time.Second, nil
	case uint64:
		return time.Duration(value) * time.Second, nil
	case float64:
		if value < 0 || value != math.Trunc(value) {
			return 0, &InvalidDurationError{Value: strconv.FormatFloat(value, 'g', -1, 64)}
		}
		return time.Duration(value) * time.Second, nil
	default:
		return 0, &InvalidDurationError{Value: fmt.Sprintf("%v", v)}
	}
}

func secondsFromInt(value int64) (time.Duration, error) {
	if value < 0 {
		return 0, &InvalidDurationError{Value: strconv.FormatInt(value, 10)}
	}
	return time.Duration(value) * time.Second, nil
}
