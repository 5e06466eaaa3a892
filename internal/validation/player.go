// Package validation checks untyped request bodies before they reach the store.
//
// Bodies arrive as map[string]any (straight from the JSON decoder) rather than a typed
// struct, because the rules are about the JSON types themselves: "true" as text is not a
// boolean, 21.5 is not an age. Decoding into a struct first would silently coerce or drop
// exactly the values we need to reject.
package validation

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trentd187/players-api/internal/models"
)

// Error messages, in the order they are reported.
const (
	MsgFirstName = "firstName is required and must be text."
	MsgLastName  = "lastName is required and must be text."
	MsgSport     = "sport is required and must be text."
	MsgTeam      = "team is required and must be text."
	MsgAge       = "age is required and must be an integer greater than 0."
	MsgRating    = "rating is required and must be a number between 0 and 100."
	MsgIsActive  = "isActive is required and must be true or false (boolean)."
)

// validate is safe for concurrent use once built; one instance is shared by every request.
var validate = validator.New()

// MaxAge is the largest age every backend can store: PostgreSQL keeps it in an
// INTEGER column, and DecodePlayer converts it to int.
const MaxAge = math.MaxInt32

// Range rules for the numeric fields.
var (
	ageRule    = fmt.Sprintf("gt=0,lte=%d", MaxAge)
	ratingRule = "gte=0,lte=100"
)

// textFields are checked first, in this order.
var textFields = []struct {
	key string
	msg string
}{
	{"firstName", MsgFirstName},
	{"lastName", MsgLastName},
	{"sport", MsgSport},
	{"team", MsgTeam},
}

// ValidatePlayer returns one message per violated constraint, in field order.
// Every check runs; an empty result means the record is valid.
// The same rules apply to create and update, so an update must resubmit every field.
func ValidatePlayer(data map[string]any) []string {
	var errs []string

	for _, f := range textFields {
		if !isText(data[f.key]) {
			errs = append(errs, f.msg)
		}
	}

	if age, ok := number(data["age"]); !ok || age != math.Trunc(age) || validate.Var(age, ageRule) != nil {
		errs = append(errs, MsgAge)
	}

	if rating, ok := number(data["rating"]); !ok || validate.Var(rating, ratingRule) != nil {
		errs = append(errs, MsgRating)
	}

	if _, ok := data["isActive"].(bool); !ok {
		errs = append(errs, MsgIsActive)
	}

	return errs
}

// DecodePlayer converts a record that passed ValidatePlayer into a Player.
// Keys outside the seven known fields are ignored. Calling it on an invalid
// record yields zero values for the offending fields.
func DecodePlayer(data map[string]any) models.Player {
	p := models.Player{}
	p.FirstName, _ = data["firstName"].(string)
	p.LastName, _ = data["lastName"].(string)
	p.Sport, _ = data["sport"].(string)
	p.Team, _ = data["team"].(string)
	if age, ok := number(data["age"]); ok && age > 0 && age <= MaxAge {
		p.Age = int(age)
	}
	p.Rating, _ = number(data["rating"])
	p.IsActive, _ = data["isActive"].(bool)
	return p
}

// isText reports whether v is a non-empty string.
func isText(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// number unwraps the numeric types a decoded body can hold.
// encoding/json produces float64; the integer cases cover records built in Go.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
